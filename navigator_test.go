package xlref

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewport(t *testing.T, text string) ViewportSelection {
	t.Helper()
	v, err := ParseViewportSelection(text)
	require.NoError(t, err)
	return v
}

// applyAll runs each navigation and returns the text of every result,
// or "ignored" when a navigation did not apply.
func applyAll(n *Navigator, v ViewportSelection, navigations ...ViewportNavigation) []string {
	out := make([]string, 0, len(navigations))
	for _, nav := range navigations {
		next, ok := n.Apply(v, nav)
		if !ok {
			out = append(out, "ignored")
			continue
		}
		v = next
		out = append(out, v.String())
	}
	return out
}

func TestNavigator_Move(t *testing.T) {
	n := NewNavigator(nil)
	tests := map[string]struct {
		start    string
		nav      ViewportNavigation
		expected string
	}{
		"cell right":                  {"B2", RightColumn(), "C2"},
		"cell left":                   {"B2", LeftColumn(), "A2"},
		"cell up":                     {"B2", UpRow(), "B1"},
		"cell down":                   {"B2", DownRow(), "B3"},
		"range moves from active":     {"B2:D4 top-left", RightColumn(), "E4"},
		"range bottom-right":          {"B2:D4 bottom-right", RightColumn(), "C2"},
		"range down":                  {"B2:D4 top-right", DownRow(), "B5"},
		"column right":                {"C", RightColumn(), "D"},
		"column range collapses":      {"B:D left", RightColumn(), "E"},
		"column range anchored right": {"B:D right", LeftColumn(), "A"},
		"row down":                    {"3", DownRow(), "4"},
		"row range collapses":         {"2:4 bottom", UpRow(), "1"},
		"absolute kept":               {"$B$2", RightColumn(), "$C$2"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := n.Apply(viewport(t, tt.start), tt.nav)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got.String())
			assert.Equal(t, AnchorNone, got.Anchor())
		})
	}
}

func TestNavigator_Move_Ignored(t *testing.T) {
	n := NewNavigator(nil)
	tests := map[string]struct {
		start string
		nav   ViewportNavigation
	}{
		"left edge":         {"A1", LeftColumn()},
		"top edge":          {"A1", UpRow()},
		"right edge":        {"XFD1", RightColumn()},
		"bottom edge":       {"A1048576", DownRow()},
		"column vertically": {"C", DownRow()},
		"row sideways":      {"3", RightColumn()},
		"column range up":   {"B:C right", UpRow()},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			start := viewport(t, tt.start)
			got, ok := n.Apply(start, tt.nav)
			assert.False(t, ok)
			assert.Equal(t, start, got)
		})
	}
}

func TestNavigator_Move_SkipsHidden(t *testing.T) {
	n := NewNavigator(Grid{
		ColumnHidden: HiddenColumns("C", "D"),
		RowHidden:    HiddenRows("3"),
	})
	assert.Equal(t, []string{"E2", "B2"}, applyAll(n, viewport(t, "B2"), RightColumn(), LeftColumn()))
	assert.Equal(t, []string{"B4", "B2"}, applyAll(n, viewport(t, "B2"), DownRow(), UpRow()))
}

func TestNavigator_Move_OnlyHiddenAhead(t *testing.T) {
	n := NewNavigator(Grid{ColumnHidden: HiddenColumns("C", "D")}, WithMaxColumn(MustParseColumn("D")))
	assert.Equal(t, []string{"ignored"}, applyAll(n, viewport(t, "B2"), RightColumn()))

	n = NewNavigator(Grid{ColumnHidden: HiddenColumns("A")})
	assert.Equal(t, []string{"ignored"}, applyAll(n, viewport(t, "B2"), LeftColumn()))
}

func TestNavigator_Extend(t *testing.T) {
	n := NewNavigator(nil)
	tests := map[string]struct {
		start    string
		navs     []ViewportNavigation
		expected []string
	}{
		"cell right": {
			start:    "B2",
			navs:     []ViewportNavigation{ExtendRightColumn(), ExtendRightColumn()},
			expected: []string{"B2:C2 top-left", "B2:D2 top-left"},
		},
		"cell down then up collapses": {
			start:    "B2",
			navs:     []ViewportNavigation{ExtendDownRow(), ExtendUpRow()},
			expected: []string{"B2:B3 top-left", "B2"},
		},
		"cell up and left": {
			start:    "C3",
			navs:     []ViewportNavigation{ExtendUpRow(), ExtendLeftColumn()},
			expected: []string{"C2:C3 bottom-left", "B2:C3 bottom-right"},
		},
		"range grows from active corner": {
			start:    "B2:D4 top-left",
			navs:     []ViewportNavigation{ExtendDownRow(), ExtendRightColumn()},
			expected: []string{"B2:D5 top-left", "B2:E5 top-left"},
		},
		"range collapses and flips": {
			start:    "B1:D3 bottom-right",
			navs:     []ViewportNavigation{ExtendRightColumn(), ExtendRightColumn(), ExtendRightColumn()},
			expected: []string{"C1:D3 bottom-right", "D1:D3 bottom-right", "D1:E3 bottom-left"},
		},
		"range flips vertically": {
			start:    "B2:C3 top-left",
			navs:     []ViewportNavigation{ExtendUpRow(), ExtendUpRow()},
			expected: []string{"B2:C2 top-left", "B1:C2 bottom-left"},
		},
		"column": {
			start:    "B",
			navs:     []ViewportNavigation{ExtendRightColumn(), ExtendLeftColumn(), ExtendLeftColumn()},
			expected: []string{"B:C left", "B", "A:B right"},
		},
		"column range flips": {
			start:    "B:C right",
			navs:     []ViewportNavigation{ExtendRightColumn(), ExtendRightColumn()},
			expected: []string{"C", "C:D left"},
		},
		"row": {
			start:    "3",
			navs:     []ViewportNavigation{ExtendUpRow(), ExtendDownRow()},
			expected: []string{"2:3 bottom", "3"},
		},
		"at grid edge": {
			start:    "A1",
			navs:     []ViewportNavigation{ExtendLeftColumn(), ExtendUpRow()},
			expected: []string{"ignored", "ignored"},
		},
		"column sideways only": {
			start:    "B:C left",
			navs:     []ViewportNavigation{ExtendDownRow()},
			expected: []string{"ignored"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applyAll(n, viewport(t, tt.start), tt.navs...))
		})
	}
}

func TestNavigator_Extend_SkipsHidden(t *testing.T) {
	n := NewNavigator(Grid{ColumnHidden: HiddenColumns("C")})
	assert.Equal(t, []string{"B2:D2 top-left"}, applyAll(n, viewport(t, "B2"), ExtendRightColumn()))
}

func TestNavigator_Pixels(t *testing.T) {
	n := NewNavigator(nil)
	tests := map[string]struct {
		start    string
		nav      ViewportNavigation
		expected string
	}{
		"partial column":   {"B2", RightPixel(100), "D2"},
		"exact column":     {"B2", RightPixel(64), "C2"},
		"single pixel":     {"B2", RightPixel(1), "C2"},
		"left":             {"D2", LeftPixel(65), "B2"},
		"down":             {"B2", DownPixel(30), "B4"},
		"up stops at edge": {"B3", UpPixel(1000), "B1"},
		"extend right":     {"B2", ExtendRightPixel(100), "B2:D2 top-left"},
		"extend down":      {"B2", ExtendDownPixel(20), "B2:B3 top-left"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := n.Apply(viewport(t, tt.start), tt.nav)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestNavigator_Pixels_Sizes(t *testing.T) {
	n := NewNavigator(Grid{
		ColumnHidden: HiddenColumns("C"),
		ColumnWidths: func(ColumnReference) float64 { return 10 },
		RowHeights:   func(r RowReference) float64 { return float64(10 * (r.Value() + 1)) },
	})
	assert.Equal(t, []string{"F2"}, applyAll(n, viewport(t, "B2"), RightPixel(25)))
	assert.Equal(t, []string{"B4"}, applyAll(n, viewport(t, "B2"), DownPixel(31)))
}

func TestNavigator_Pixels_Limits(t *testing.T) {
	n := NewNavigator(nil, WithMaxColumn(MustParseColumn("D")))
	assert.Equal(t, []string{"D2", "ignored"}, applyAll(n, viewport(t, "B2"), RightPixel(1000), RightPixel(10)))
}

func TestNavigator_Select(t *testing.T) {
	n := NewNavigator(Grid{ColumnHidden: HiddenColumns("E"), RowHidden: HiddenRows("7")})
	start := viewport(t, "B2:D4 top-left")
	tests := map[string]struct {
		nav      ViewportNavigation
		expected string
	}{
		"cell":          {SelectCell(MustParseCell("C3")), "C3"},
		"column":        {SelectColumn(MustParseColumn("D")), "D"},
		"row":           {SelectRow(MustParseRow("9")), "9"},
		"hidden column": {SelectColumn(MustParseColumn("E")), "ignored"},
		"hidden cell":   {SelectCell(MustParseCell("A7")), "ignored"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{tt.expected}, applyAll(n, start, tt.nav))
		})
	}
}

func TestNavigator_ExtendTo(t *testing.T) {
	n := NewNavigator(Grid{ColumnHidden: HiddenColumns("F")})
	tests := map[string]struct {
		start    string
		nav      ViewportNavigation
		expected string
	}{
		"cell to cell":        {"B2", ExtendCell(MustParseCell("D4")), "B2:D4 top-left"},
		"cell to itself":      {"B2", ExtendCell(MustParseCell("B2")), "B2"},
		"range keeps fixed":   {"B2:D4 bottom-right", ExtendCell(MustParseCell("A1")), "A1:D4 bottom-right"},
		"range crosses fixed": {"B2:D4 top-left", ExtendCell(MustParseCell("A1")), "A1:B2 bottom-right"},
		"column to column":    {"B:C left", ExtendColumn(MustParseColumn("E")), "B:E left"},
		"row to row":          {"5", ExtendRow(MustParseRow("2")), "2:5 bottom"},
		"other kind selects":  {"B:C left", ExtendCell(MustParseCell("D4")), "D4"},
		"hidden target":       {"B2", ExtendCell(MustParseCell("F4")), "ignored"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{tt.expected}, applyAll(n, viewport(t, tt.start), tt.nav))
		})
	}
}

func TestNavigator_Labels(t *testing.T) {
	labels := NewLabelStore(mapping(t, "Total", "B2:D4"))
	n := NewNavigator(Grid{Labels: labels})

	start := Select(MustParseLabel("total"))
	assert.Equal(t, []string{"C2"}, applyAll(n, start, RightColumn()))
	assert.Equal(t, []string{"C2:D4 bottom-right"}, applyAll(n, start, ExtendRightColumn()))
	assert.Equal(t, []string{"ignored"}, applyAll(n, Select(MustParseLabel("Missing")), RightColumn()))
}

func TestNavigator_Navigate(t *testing.T) {
	n := NewNavigator(nil)
	got := n.Navigate(viewport(t, "A1"), LeftColumn(), RightColumn(), DownRow(), ExtendRightColumn())
	assert.Equal(t, "B2:C2 top-left", got.String())

	last, ok := got.Navigation()
	require.True(t, ok)
	assert.Equal(t, ExtendRightColumn(), last)
}

func TestNavigator_Navigate_Compacted(t *testing.T) {
	n := NewNavigator(nil)
	list, err := ParseViewportNavigations("extend-left column,up row,extend-right column,down row,right column,extend-left column")
	require.NoError(t, err)
	start := viewport(t, "C3")
	assert.Equal(t, n.Navigate(start, list...).String(), n.Navigate(start, list.Compact()...).String())
}

func TestNavigator_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	n := NewNavigator(nil, WithLogger(logger))

	_, ok := n.Apply(viewport(t, "B2"), RightColumn())
	require.True(t, ok)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "navigation applied", hook.LastEntry().Message)
	assert.Equal(t, "C2", hook.LastEntry().Data["result"])
	assert.Equal(t, "right column", hook.LastEntry().Data["navigation"])

	_, ok = n.Apply(viewport(t, "A1"), LeftColumn())
	require.False(t, ok)
	assert.Equal(t, "navigation ignored", hook.LastEntry().Message)
	assert.Equal(t, "A1", hook.LastEntry().Data["selection"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestNavigator_Window(t *testing.T) {
	tests := map[string]struct {
		ctx      Grid
		opts     []Option
		rect     string
		expected string
	}{
		"defaults":       {rect: "B2:200:50", expected: "B2:E4"},
		"hidden column":  {ctx: Grid{ColumnHidden: HiddenColumns("C")}, rect: "B2:200:50", expected: "B2:F4"},
		"zero size":      {rect: "B2:0:0", expected: "B2"},
		"exact fit":      {rect: "A1:128:40", expected: "A1:B2"},
		"limited":        {opts: []Option{WithMaxColumn(MustParseColumn("C"))}, rect: "B2:500:20", expected: "B2:C2"},
		"custom heights": {ctx: Grid{RowHeights: func(RowReference) float64 { return 5 }}, rect: "A1:1:12", expected: "A1:A3"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rect, err := ParseViewportRectangle(tt.rect)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, NewNavigator(tt.ctx, tt.opts...).Window(rect).String())
		})
	}
}
