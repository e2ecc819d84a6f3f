package xlref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ViewportSelection is a selection together with its anchor and the
// navigation that produced it, if any.
type ViewportSelection struct {
	selection     Selection
	anchor        ViewportAnchor
	navigation    ViewportNavigation
	hasNavigation bool
}

// NewViewportSelection validates that anchor suits s.
func NewViewportSelection(s Selection, anchor ViewportAnchor) (ViewportSelection, error) {
	if s == nil {
		return ViewportSelection{}, errors.New("missing selection")
	}
	if err := anchor.Validate(s); err != nil {
		return ViewportSelection{}, err
	}
	return ViewportSelection{selection: s, anchor: anchor}, nil
}

// Select returns s with its default anchor.
func Select(s Selection) ViewportSelection {
	return ViewportSelection{selection: s, anchor: DefaultAnchor(s)}
}

// ParseViewportSelection parses "<selection>" or "<selection> <anchor>".
func ParseViewportSelection(text string) (ViewportSelection, error) {
	selectionText, anchorText, found := strings.Cut(strings.TrimSpace(text), " ")
	s, err := ParseSelection(selectionText)
	if err != nil {
		return ViewportSelection{}, err
	}
	if !found {
		return Select(s), nil
	}
	anchor, err := ParseViewportAnchor(strings.TrimSpace(anchorText))
	if err != nil {
		return ViewportSelection{}, err
	}
	return NewViewportSelection(s, anchor)
}

func (v ViewportSelection) Selection() Selection     { return v.selection }
func (v ViewportSelection) Anchor() ViewportAnchor { return v.anchor }

// Navigation returns the navigation last applied, if any.
func (v ViewportSelection) Navigation() (ViewportNavigation, bool) {
	return v.navigation, v.hasNavigation
}

// SetAnchor returns the selection with a different, validated anchor.
func (v ViewportSelection) SetAnchor(anchor ViewportAnchor) (ViewportSelection, error) {
	if anchor == v.anchor {
		return v, nil
	}
	if err := anchor.Validate(v.selection); err != nil {
		return v, err
	}
	v.anchor = anchor
	return v, nil
}

// SetNavigation records n as the navigation that produced this selection.
func (v ViewportSelection) SetNavigation(n ViewportNavigation) ViewportSelection {
	v.navigation = n
	v.hasNavigation = true
	return v
}

// ClearNavigation drops any recorded navigation.
func (v ViewportSelection) ClearNavigation() ViewportSelection {
	v.navigation = ViewportNavigation{}
	v.hasNavigation = false
	return v
}

// Equal compares selection, anchor and navigation. Labels compare
// case-insensitively.
func (v ViewportSelection) Equal(other ViewportSelection) bool {
	if v.anchor != other.anchor || v.hasNavigation != other.hasNavigation {
		return false
	}
	if v.hasNavigation && v.navigation.String() != other.navigation.String() {
		return false
	}
	if l, ok := v.selection.(LabelName); ok {
		o, ok := other.selection.(LabelName)
		return ok && l.Equal(o)
	}
	return v.selection == other.selection
}

func (v ViewportSelection) String() string {
	if v.selection == nil {
		return ""
	}
	if v.anchor == AnchorNone {
		return v.selection.String()
	}
	return v.selection.String() + " " + v.anchor.String()
}

// ViewportRectangle is the visible window of a sheet: its top-left home
// cell and its size in pixels.
type ViewportRectangle struct {
	home   CellReference
	width  float64
	height float64
}

// NewViewportRectangle rejects negative dimensions.
func NewViewportRectangle(home CellReference, width, height float64) (ViewportRectangle, error) {
	if width < 0 {
		return ViewportRectangle{}, fmt.Errorf("Invalid width %s < 0", formatPixels(width))
	}
	if height < 0 {
		return ViewportRectangle{}, fmt.Errorf("Invalid height %s < 0", formatPixels(height))
	}
	return ViewportRectangle{home: home, width: width, height: height}, nil
}

// ParseViewportRectangle parses "<home>:<width>:<height>", e.g. "B2:200:300".
func ParseViewportRectangle(text string) (ViewportRectangle, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return ViewportRectangle{}, fmt.Errorf("invalid viewport rectangle %q: expected home:width:height", text)
	}
	home, err := ParseCell(parts[0])
	if err != nil {
		return ViewportRectangle{}, err
	}
	width, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return ViewportRectangle{}, fmt.Errorf("invalid width in %q: %w", text, err)
	}
	height, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return ViewportRectangle{}, fmt.Errorf("invalid height in %q: %w", text, err)
	}
	return NewViewportRectangle(home, width, height)
}

func (r ViewportRectangle) Home() CellReference { return r.home }
func (r ViewportRectangle) Width() float64      { return r.width }
func (r ViewportRectangle) Height() float64     { return r.height }

func (r ViewportRectangle) String() string {
	return r.home.String() + ":" + formatPixels(r.width) + ":" + formatPixels(r.height)
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
