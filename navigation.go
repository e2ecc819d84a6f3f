package xlref

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// NavigationKind identifies one kind of viewport navigation.
type NavigationKind int

const (
	NavigateLeftColumn NavigationKind = iota
	NavigateRightColumn
	NavigateUpRow
	NavigateDownRow
	NavigateExtendLeftColumn
	NavigateExtendRightColumn
	NavigateExtendUpRow
	NavigateExtendDownRow
	NavigateLeftPixel
	NavigateRightPixel
	NavigateUpPixel
	NavigateDownPixel
	NavigateExtendLeftPixel
	NavigateExtendRightPixel
	NavigateExtendUpPixel
	NavigateExtendDownPixel
	NavigateSelectCell
	NavigateSelectColumn
	NavigateSelectRow
	NavigateExtendCell
	NavigateExtendColumn
	NavigateExtendRow
)

type axis int

const (
	horizontalAxis axis = iota
	verticalAxis
	bothAxes
)

const noOpposite NavigationKind = -1

type navigationInfo struct {
	verb     string
	unit     string // "column", "row", "px", or the selection kind for select
	axis     axis
	step     int // -1 towards A/1, +1 away from it
	extend   bool
	pixels   bool
	selects  bool // replaces the selection and everything before it
	opposite NavigationKind
}

var navigationTable = [...]navigationInfo{
	NavigateLeftColumn:        {verb: "left", unit: "column", axis: horizontalAxis, step: -1, opposite: NavigateRightColumn},
	NavigateRightColumn:       {verb: "right", unit: "column", axis: horizontalAxis, step: 1, opposite: NavigateLeftColumn},
	NavigateUpRow:             {verb: "up", unit: "row", axis: verticalAxis, step: -1, opposite: NavigateDownRow},
	NavigateDownRow:           {verb: "down", unit: "row", axis: verticalAxis, step: 1, opposite: NavigateUpRow},
	NavigateExtendLeftColumn:  {verb: "extend-left", unit: "column", axis: horizontalAxis, step: -1, extend: true, opposite: NavigateExtendRightColumn},
	NavigateExtendRightColumn: {verb: "extend-right", unit: "column", axis: horizontalAxis, step: 1, extend: true, opposite: NavigateExtendLeftColumn},
	NavigateExtendUpRow:       {verb: "extend-up", unit: "row", axis: verticalAxis, step: -1, extend: true, opposite: NavigateExtendDownRow},
	NavigateExtendDownRow:     {verb: "extend-down", unit: "row", axis: verticalAxis, step: 1, extend: true, opposite: NavigateExtendUpRow},
	NavigateLeftPixel:         {verb: "left", unit: "px", axis: horizontalAxis, step: -1, pixels: true, opposite: noOpposite},
	NavigateRightPixel:        {verb: "right", unit: "px", axis: horizontalAxis, step: 1, pixels: true, opposite: noOpposite},
	NavigateUpPixel:           {verb: "up", unit: "px", axis: verticalAxis, step: -1, pixels: true, opposite: noOpposite},
	NavigateDownPixel:         {verb: "down", unit: "px", axis: verticalAxis, step: 1, pixels: true, opposite: noOpposite},
	NavigateExtendLeftPixel:   {verb: "extend-left", unit: "px", axis: horizontalAxis, step: -1, extend: true, pixels: true, opposite: noOpposite},
	NavigateExtendRightPixel:  {verb: "extend-right", unit: "px", axis: horizontalAxis, step: 1, extend: true, pixels: true, opposite: noOpposite},
	NavigateExtendUpPixel:     {verb: "extend-up", unit: "px", axis: verticalAxis, step: -1, extend: true, pixels: true, opposite: noOpposite},
	NavigateExtendDownPixel:   {verb: "extend-down", unit: "px", axis: verticalAxis, step: 1, extend: true, pixels: true, opposite: noOpposite},
	NavigateSelectCell:        {verb: "select", unit: "cell", axis: bothAxes, selects: true, opposite: noOpposite},
	NavigateSelectColumn:      {verb: "select", unit: "column", axis: horizontalAxis, selects: true, opposite: noOpposite},
	NavigateSelectRow:         {verb: "select", unit: "row", axis: verticalAxis, selects: true, opposite: noOpposite},
	NavigateExtendCell:        {verb: "extend-cell", axis: bothAxes, extend: true, opposite: noOpposite},
	NavigateExtendColumn:      {verb: "extend-column", axis: bothAxes, extend: true, opposite: noOpposite},
	NavigateExtendRow:         {verb: "extend-row", axis: bothAxes, extend: true, opposite: noOpposite},
}

func (k NavigationKind) info() navigationInfo { return navigationTable[k] }

// ViewportNavigation is one directional move or direct selection applied
// to a viewport selection.
type ViewportNavigation struct {
	kind   NavigationKind
	pixels int
	target Selection
}

func LeftColumn() ViewportNavigation  { return ViewportNavigation{kind: NavigateLeftColumn} }
func RightColumn() ViewportNavigation { return ViewportNavigation{kind: NavigateRightColumn} }
func UpRow() ViewportNavigation       { return ViewportNavigation{kind: NavigateUpRow} }
func DownRow() ViewportNavigation     { return ViewportNavigation{kind: NavigateDownRow} }

func ExtendLeftColumn() ViewportNavigation  { return ViewportNavigation{kind: NavigateExtendLeftColumn} }
func ExtendRightColumn() ViewportNavigation { return ViewportNavigation{kind: NavigateExtendRightColumn} }
func ExtendUpRow() ViewportNavigation       { return ViewportNavigation{kind: NavigateExtendUpRow} }
func ExtendDownRow() ViewportNavigation     { return ViewportNavigation{kind: NavigateExtendDownRow} }

func LeftPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateLeftPixel, pixels: pixels}
}

func RightPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateRightPixel, pixels: pixels}
}

func UpPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateUpPixel, pixels: pixels}
}

func DownPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateDownPixel, pixels: pixels}
}

func ExtendLeftPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendLeftPixel, pixels: pixels}
}

func ExtendRightPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendRightPixel, pixels: pixels}
}

func ExtendUpPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendUpPixel, pixels: pixels}
}

func ExtendDownPixel(pixels int) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendDownPixel, pixels: pixels}
}

func SelectCell(cell CellReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateSelectCell, target: cell}
}

func SelectColumn(column ColumnReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateSelectColumn, target: column}
}

func SelectRow(row RowReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateSelectRow, target: row}
}

func ExtendCell(cell CellReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendCell, target: cell}
}

func ExtendColumn(column ColumnReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendColumn, target: column}
}

func ExtendRow(row RowReference) ViewportNavigation {
	return ViewportNavigation{kind: NavigateExtendRow, target: row}
}

func (n ViewportNavigation) Kind() NavigationKind { return n.kind }

// Pixels is the distance of a pixel navigation and zero otherwise.
func (n ViewportNavigation) Pixels() int { return n.pixels }

// Target is the cell, column or row of a select or extend-to navigation.
func (n ViewportNavigation) Target() Selection { return n.target }

func (n ViewportNavigation) IsExtend() bool { return n.kind.info().extend }

// Opposite returns the navigation that undoes a single column or row step.
func (n ViewportNavigation) Opposite() (ViewportNavigation, bool) {
	opposite := n.kind.info().opposite
	if opposite == noOpposite {
		return n, false
	}
	return ViewportNavigation{kind: opposite}, true
}

// ParseViewportNavigation parses forms such as "left column",
// "extend-down row", "right 100px", "select cell B2" and "extend-cell C3".
func ParseViewportNavigation(text string) (ViewportNavigation, error) {
	fields := strings.Fields(text)
	if len(fields) == 3 && fields[0] == "select" {
		return parseTargetNavigation(text, fields[1]+" "+fields[2], map[string]NavigationKind{
			"cell":   NavigateSelectCell,
			"column": NavigateSelectColumn,
			"row":    NavigateSelectRow,
		})
	}
	if len(fields) != 2 {
		return ViewportNavigation{}, fmt.Errorf("%q: %w", text, ErrInvalidNavigation)
	}
	verb, arg := fields[0], fields[1]
	switch verb {
	case "extend-cell", "extend-column", "extend-row":
		return parseTargetNavigation(text, strings.TrimPrefix(verb, "extend-")+" "+arg, map[string]NavigationKind{
			"cell":   NavigateExtendCell,
			"column": NavigateExtendColumn,
			"row":    NavigateExtendRow,
		})
	}
	for k := range navigationTable {
		kind := NavigationKind(k)
		info := kind.info()
		if info.verb != verb || info.selects || info.unit == "" {
			continue
		}
		if info.pixels {
			amount, ok := strings.CutSuffix(arg, "px")
			if !ok {
				continue
			}
			pixels, err := strconv.Atoi(amount)
			if err != nil || pixels <= 0 {
				return ViewportNavigation{}, fmt.Errorf("%q invalid pixels %q: %w", text, amount, ErrInvalidNavigation)
			}
			return ViewportNavigation{kind: kind, pixels: pixels}, nil
		}
		if info.unit == arg {
			return ViewportNavigation{kind: kind}, nil
		}
	}
	return ViewportNavigation{}, fmt.Errorf("%q: %w", text, ErrInvalidNavigation)
}

// parseTargetNavigation parses "<unit> <reference>" for navigations that
// carry a target.
func parseTargetNavigation(text, unitAndTarget string, kinds map[string]NavigationKind) (ViewportNavigation, error) {
	unit, target, _ := strings.Cut(unitAndTarget, " ")
	kind, ok := kinds[unit]
	if !ok {
		return ViewportNavigation{}, fmt.Errorf("%q: %w", text, ErrInvalidNavigation)
	}
	var (
		s   Selection
		err error
	)
	switch unit {
	case "cell":
		s, err = ParseCell(target)
	case "column":
		s, err = ParseColumn(target)
	default:
		s, err = ParseRow(target)
	}
	if err != nil {
		return ViewportNavigation{}, fmt.Errorf("%q: %w", text, err)
	}
	return ViewportNavigation{kind: kind, target: s}, nil
}

func (n ViewportNavigation) String() string {
	info := n.kind.info()
	switch {
	case info.selects:
		return info.verb + " " + info.unit + " " + n.target.String()
	case info.unit == "":
		return info.verb + " " + n.target.String()
	case info.pixels:
		return info.verb + " " + strconv.Itoa(n.pixels) + "px"
	}
	return info.verb + " " + info.unit
}

func (n ViewportNavigation) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *ViewportNavigation) UnmarshalText(text []byte) error {
	parsed, err := ParseViewportNavigation(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ViewportNavigations is an ordered list of navigations.
type ViewportNavigations []ViewportNavigation

// ParseViewportNavigations parses a comma separated list. Empty text gives
// an empty list.
func ParseViewportNavigations(text string) (ViewportNavigations, error) {
	if strings.TrimSpace(text) == "" {
		return ViewportNavigations{}, nil
	}
	parts := strings.Split(text, ",")
	list := make(ViewportNavigations, 0, len(parts))
	for _, part := range parts {
		n, err := ParseViewportNavigation(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

func (list ViewportNavigations) String() string {
	texts := make([]string, len(list))
	for i, n := range list {
		texts[i] = n.String()
	}
	return strings.Join(texts, ",")
}

func (list ViewportNavigations) MarshalText() ([]byte, error) {
	return []byte(list.String()), nil
}

func (list *ViewportNavigations) UnmarshalText(text []byte) error {
	parsed, err := ParseViewportNavigations(string(text))
	if err != nil {
		return err
	}
	*list = parsed
	return nil
}

// Compact returns the shortest equivalent list. A select navigation drops
// everything before it, and a column or row step cancels the latest
// surviving step on the same axis when that step is its opposite. Pixel
// and extend-to navigations are never cancelled and block cancellation
// across them. Passes repeat until the list stops shrinking.
func (list ViewportNavigations) Compact() ViewportNavigations {
	out := slices.Clone(list)
	for {
		next := compactOnce(out)
		if len(next) == len(out) {
			return next
		}
		out = next
	}
}

func compactOnce(list ViewportNavigations) ViewportNavigations {
	out := make(ViewportNavigations, 0, len(list))
	for _, n := range list {
		info := n.kind.info()
		if info.selects {
			out = append(out[:0], n)
			continue
		}
		if info.opposite != noOpposite {
			if i := lastOnAxis(out, info.axis); i >= 0 && out[i].kind == info.opposite {
				out = slices.Delete(out, i, i+1)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// lastOnAxis finds the latest navigation moving along a, stopping at any
// navigation that moves both axes.
func lastOnAxis(list ViewportNavigations, a axis) int {
	for i := len(list) - 1; i >= 0; i-- {
		switch list[i].kind.info().axis {
		case a:
			return i
		case bothAxes:
			return -1
		}
	}
	return -1
}
