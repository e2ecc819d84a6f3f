package xlref

import (
	"fmt"
	"slices"
	"strings"
)

// ViewportAnchor names the corner or edge of a range selection that stays
// fixed while the selection is extended. Single cell, column, row and label
// selections use AnchorNone.
type ViewportAnchor int

const (
	AnchorNone ViewportAnchor = iota
	AnchorLeft
	AnchorRight
	AnchorTop
	AnchorBottom
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

type horizontalEdge int

const (
	noHorizontal horizontalEdge = iota
	leftEdge
	rightEdge
)

type verticalEdge int

const (
	noVertical verticalEdge = iota
	topEdge
	bottomEdge
)

type anchorInfo struct {
	text       string
	horizontal horizontalEdge
	vertical   verticalEdge
}

var anchorTable = [...]anchorInfo{
	AnchorNone:        {"none", noHorizontal, noVertical},
	AnchorLeft:        {"left", leftEdge, noVertical},
	AnchorRight:       {"right", rightEdge, noVertical},
	AnchorTop:         {"top", noHorizontal, topEdge},
	AnchorBottom:      {"bottom", noHorizontal, bottomEdge},
	AnchorTopLeft:     {"top-left", leftEdge, topEdge},
	AnchorTopRight:    {"top-right", rightEdge, topEdge},
	AnchorBottomLeft:  {"bottom-left", leftEdge, bottomEdge},
	AnchorBottomRight: {"bottom-right", rightEdge, bottomEdge},
}

// ViewportAnchors lists every anchor in declaration order.
var ViewportAnchors = []ViewportAnchor{
	AnchorNone, AnchorLeft, AnchorRight, AnchorTop, AnchorBottom,
	AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight,
}

var (
	cellRangeAnchors   = []ViewportAnchor{AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}
	columnRangeAnchors = []ViewportAnchor{AnchorLeft, AnchorRight}
	rowRangeAnchors    = []ViewportAnchor{AnchorTop, AnchorBottom}
	noneAnchors        = []ViewportAnchor{AnchorNone}
)

func (a ViewportAnchor) info() anchorInfo { return anchorTable[a] }

func anchorOf(h horizontalEdge, v verticalEdge) ViewportAnchor {
	for _, a := range ViewportAnchors {
		if info := a.info(); info.horizontal == h && info.vertical == v {
			return a
		}
	}
	return AnchorNone
}

// ParseViewportAnchor parses the kebab-case form, for example "top-left".
// Matching is case-sensitive.
func ParseViewportAnchor(text string) (ViewportAnchor, error) {
	for _, a := range ViewportAnchors {
		if a.info().text == text {
			return a, nil
		}
	}
	expected := make([]string, len(ViewportAnchors))
	for i, a := range ViewportAnchors {
		expected[i] = a.KebabText()
	}
	return AnchorNone, newParseError(text, expected)
}

func (a ViewportAnchor) KebabText() string { return a.info().text }
func (a ViewportAnchor) String() string    { return a.info().text }

// Opposite flips both components: top-left becomes bottom-right.
func (a ViewportAnchor) Opposite() ViewportAnchor {
	info := a.info()
	h := info.horizontal
	switch h {
	case leftEdge:
		h = rightEdge
	case rightEdge:
		h = leftEdge
	}
	v := info.vertical
	switch v {
	case topEdge:
		v = bottomEdge
	case bottomEdge:
		v = topEdge
	}
	return anchorOf(h, v)
}

// SetLeft replaces the horizontal component with left.
func (a ViewportAnchor) SetLeft() ViewportAnchor { return anchorOf(leftEdge, a.info().vertical) }

// SetRight replaces the horizontal component with right.
func (a ViewportAnchor) SetRight() ViewportAnchor { return anchorOf(rightEdge, a.info().vertical) }

// SetTop replaces the vertical component with top.
func (a ViewportAnchor) SetTop() ViewportAnchor { return anchorOf(a.info().horizontal, topEdge) }

// SetBottom replaces the vertical component with bottom.
func (a ViewportAnchor) SetBottom() ViewportAnchor { return anchorOf(a.info().horizontal, bottomEdge) }

// FixedCell returns the corner of r held by the anchor.
func (a ViewportAnchor) FixedCell(r CellRangeReference) CellReference {
	return CellReference{column: a.FixedColumn(r.ColumnRange()), row: a.FixedRow(r.RowRange())}
}

// Cell returns the corner of r opposite the anchor, the one that moves.
func (a ViewportAnchor) Cell(r CellRangeReference) CellReference {
	return CellReference{column: a.Column(r.ColumnRange()), row: a.Row(r.RowRange())}
}

// FixedColumn returns the end of r held by the anchor. Without a
// horizontal component the begin is fixed.
func (a ViewportAnchor) FixedColumn(r ColumnRangeReference) ColumnReference {
	if a.info().horizontal == rightEdge {
		return r.end
	}
	return r.begin
}

// Column returns the end of r that moves.
func (a ViewportAnchor) Column(r ColumnRangeReference) ColumnReference {
	if a.info().horizontal == rightEdge {
		return r.begin
	}
	return r.end
}

// FixedRow returns the end of r held by the anchor. Without a vertical
// component the begin is fixed.
func (a ViewportAnchor) FixedRow(r RowRangeReference) RowReference {
	if a.info().vertical == bottomEdge {
		return r.end
	}
	return r.begin
}

// Row returns the end of r that moves.
func (a ViewportAnchor) Row(r RowRangeReference) RowReference {
	if a.info().vertical == bottomEdge {
		return r.begin
	}
	return r.end
}

// ValidAnchors returns the anchors a selection may carry.
func ValidAnchors(s Selection) []ViewportAnchor {
	return slices.Clone(validAnchors(s))
}

func validAnchors(s Selection) []ViewportAnchor {
	switch s.(type) {
	case CellRangeReference:
		return cellRangeAnchors
	case ColumnRangeReference:
		return columnRangeAnchors
	case RowRangeReference:
		return rowRangeAnchors
	}
	return noneAnchors
}

// DefaultAnchor returns the anchor a selection gets when none is given.
func DefaultAnchor(s Selection) ViewportAnchor {
	switch s.(type) {
	case CellRangeReference:
		return AnchorBottomRight
	case ColumnRangeReference:
		return AnchorRight
	case RowRangeReference:
		return AnchorBottom
	}
	return AnchorNone
}

// Validate fails when a cannot be used with s.
func (a ViewportAnchor) Validate(s Selection) error {
	valid := validAnchors(s)
	if slices.Contains(valid, a) {
		return nil
	}
	return &anchorError{selection: s, anchor: a, valid: valid}
}

type anchorError struct {
	selection Selection
	anchor    ViewportAnchor
	valid     []ViewportAnchor
}

func (e *anchorError) Error() string {
	names := make([]string, len(e.valid))
	for i, v := range e.valid {
		names[i] = v.KebabText()
	}
	return fmt.Sprintf("%s contains an invalid anchor %s, valid anchors: %s", e.selection, e.anchor, strings.Join(names, ", "))
}

func (e *anchorError) Unwrap() error { return ErrInvalidAnchor }

func (a ViewportAnchor) MarshalText() ([]byte, error) {
	return []byte(a.KebabText()), nil
}

func (a *ViewportAnchor) UnmarshalText(text []byte) error {
	parsed, err := ParseViewportAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
