package xlref

import (
	"iter"
	"strings"
)

// CellRangePath is one of the eight orders that visit every cell of a
// range. The first letter pair names the direction within a sweep line, the
// second the direction the sweep lines advance in. LR and RL orders sweep
// rows, TD and BU orders sweep columns.
type CellRangePath int

const (
	LRTD CellRangePath = iota // rows top to bottom, each left to right
	RLTD                      // rows top to bottom, each right to left
	LRBU                      // rows bottom to top, each left to right
	RLBU                      // rows bottom to top, each right to left
	TDLR                      // columns left to right, each top to bottom
	TDRL                      // columns right to left, each top to bottom
	BULR                      // columns left to right, each bottom to top
	BURL                      // columns right to left, each bottom to top
)

type pathInfo struct {
	code       string
	rowLines   bool // sweep lines are rows
	columnStep int  // +1 when columns are visited left to right
	rowStep    int  // +1 when rows are visited top to bottom
}

var pathTable = [...]pathInfo{
	LRTD: {"LRTD", true, 1, 1},
	RLTD: {"RLTD", true, -1, 1},
	LRBU: {"LRBU", true, 1, -1},
	RLBU: {"RLBU", true, -1, -1},
	TDLR: {"TDLR", false, 1, 1},
	TDRL: {"TDRL", false, -1, 1},
	BULR: {"BULR", false, 1, -1},
	BURL: {"BURL", false, -1, -1},
}

// CellRangePaths lists every path in declaration order.
var CellRangePaths = []CellRangePath{LRTD, RLTD, LRBU, RLBU, TDLR, TDRL, BULR, BURL}

var pathWords = map[string]string{
	"LR": "left-right",
	"RL": "right-left",
	"TD": "top-down",
	"BU": "bottom-up",
}

func (p CellRangePath) info() pathInfo { return pathTable[p] }

// ParseCellRangePath accepts either the lower case form "lrtd" or the
// upper case form "LRTD".
func ParseCellRangePath(text string) (CellRangePath, error) {
	for _, p := range CellRangePaths {
		code := p.info().code
		if text == code || text == strings.ToLower(code) {
			return p, nil
		}
	}
	expected := make([]string, len(CellRangePaths))
	for i, p := range CellRangePaths {
		expected[i] = p.KebabText()
	}
	return LRTD, newParseError(text, expected)
}

func (p CellRangePath) String() string { return p.info().code }

// KebabText returns the lower case token, for example "lrtd".
func (p CellRangePath) KebabText() string { return strings.ToLower(p.info().code) }

// LabelText describes the order, for example "left-right top-down".
func (p CellRangePath) LabelText() string {
	code := p.info().code
	return pathWords[code[:2]] + " " + pathWords[code[2:]]
}

// Compare orders two cells by when this path visits them.
func (p CellRangePath) Compare(a, b CellReference) int {
	info := p.info()
	columns := sign(a.column.value-b.column.value) * info.columnStep
	rows := sign(a.row.value-b.row.value) * info.rowStep
	if info.rowLines {
		if rows != 0 {
			return rows
		}
		return columns
	}
	if columns != 0 {
		return columns
	}
	return rows
}

// Comparator returns Compare as a function for slices.SortFunc.
func (p CellRangePath) Comparator() func(a, b CellReference) int {
	return p.Compare
}

// Width is the length of a sweep line in r.
func (p CellRangePath) Width(r CellRangeReference) int {
	if p.info().rowLines {
		return r.Width()
	}
	return r.Height()
}

// Height is the number of sweep lines in r.
func (p CellRangePath) Height(r CellRangeReference) int {
	if p.info().rowLines {
		return r.Height()
	}
	return r.Width()
}

func (p CellRangePath) startColumn(r CellRangeReference) ColumnReference {
	if p.info().columnStep > 0 {
		return r.begin.column
	}
	return r.end.column
}

func (p CellRangePath) endColumn(r CellRangeReference) ColumnReference {
	if p.info().columnStep > 0 {
		return r.end.column
	}
	return r.begin.column
}

func (p CellRangePath) startRow(r CellRangeReference) RowReference {
	if p.info().rowStep > 0 {
		return r.begin.row
	}
	return r.end.row
}

func (p CellRangePath) endRow(r CellRangeReference) RowReference {
	if p.info().rowStep > 0 {
		return r.end.row
	}
	return r.begin.row
}

// First returns the corner of r this path visits first.
func (p CellRangePath) First(r CellRangeReference) CellReference {
	return CellReference{column: p.startColumn(r), row: p.startRow(r)}
}

// LastColumn returns the last cell on the sweep line holding cell.
func (p CellRangePath) LastColumn(cell CellReference, r CellRangeReference) CellReference {
	if p.info().rowLines {
		return cell.SetColumn(p.endColumn(r))
	}
	return cell.SetRow(p.endRow(r))
}

// NextColumn returns the cell after cell on its sweep line, or false at the
// end of the line.
func (p CellRangePath) NextColumn(cell CellReference, r CellRangeReference) (CellReference, bool) {
	info := p.info()
	if info.rowLines {
		column := ColumnReference{kind: cell.column.kind, value: cell.column.value + info.columnStep}
		if !r.TestColumn(column) {
			return cell, false
		}
		return cell.SetColumn(column), true
	}
	row := RowReference{kind: cell.row.kind, value: cell.row.value + info.rowStep}
	if !r.TestRow(row) {
		return cell, false
	}
	return cell.SetRow(row), true
}

// NextRow returns the first cell of the sweep line after the one holding
// cell, or false when cell is on the last line.
func (p CellRangePath) NextRow(cell CellReference, r CellRangeReference) (CellReference, bool) {
	info := p.info()
	if info.rowLines {
		row := RowReference{kind: cell.row.kind, value: cell.row.value + info.rowStep}
		if !r.TestRow(row) {
			return cell, false
		}
		return CellReference{column: p.startColumn(r), row: row}, true
	}
	column := ColumnReference{kind: cell.column.kind, value: cell.column.value + info.columnStep}
	if !r.TestColumn(column) {
		return cell, false
	}
	return CellReference{column: column, row: p.startRow(r)}, true
}

// Next returns the cell visited after cell, or false after the last cell.
func (p CellRangePath) Next(cell CellReference, r CellRangeReference) (CellReference, bool) {
	if next, ok := p.NextColumn(cell, r); ok {
		return next, true
	}
	return p.NextRow(cell, r)
}

// Cells yields every cell of r in this path's order.
func (p CellRangePath) Cells(r CellRangeReference) iter.Seq[CellReference] {
	return func(yield func(CellReference) bool) {
		for cell, ok := p.First(r), true; ok; cell, ok = p.Next(cell, r) {
			if !yield(cell) {
				return
			}
		}
	}
}

func (p CellRangePath) MarshalText() ([]byte, error) {
	return []byte(p.KebabText()), nil
}

func (p *CellRangePath) UnmarshalText(text []byte) error {
	parsed, err := ParseCellRangePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
