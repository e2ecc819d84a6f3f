package xlref

import (
	"fmt"
	"iter"
	"strings"
)

// CellRangeReference is a rectangular block of cells with inclusive corners.
// begin is always the top-left and end the bottom-right corner.
type CellRangeReference struct {
	begin CellReference
	end   CellReference
}

// NewCellRange creates a range from any two opposite corners. Columns and
// rows are ordered independently so "C1" and "A3" yield A1:C3.
func NewCellRange(a, b CellReference) CellRangeReference {
	beginColumn, endColumn := a.column, b.column
	if beginColumn.value > endColumn.value {
		beginColumn, endColumn = endColumn, beginColumn
	}
	beginRow, endRow := a.row, b.row
	if beginRow.value > endRow.value {
		beginRow, endRow = endRow, beginRow
	}
	return CellRangeReference{
		begin: CellReference{column: beginColumn, row: beginRow},
		end:   CellReference{column: endColumn, row: endRow},
	}
}

// AllCells returns the range covering the whole grid.
func AllCells() CellRangeReference {
	return CellRangeReference{
		begin: CellReference{},
		end:   CellReference{column: ColumnReference{value: MaxColumn}, row: RowReference{value: MaxRow}},
	}
}

// ParseCellRange parses "A1:C3", a single cell "B2", or "*" for every cell.
func ParseCellRange(text string) (CellRangeReference, error) {
	if text == "*" {
		return AllCells(), nil
	}
	first, last, found := strings.Cut(text, ":")
	begin, err := ParseCell(first)
	if err != nil {
		return CellRangeReference{}, fmt.Errorf("invalid cell range %q: %w", text, err)
	}
	if !found {
		return begin.ToCellRange(), nil
	}
	end, err := ParseCell(last)
	if err != nil {
		return CellRangeReference{}, fmt.Errorf("invalid cell range %q: %w", text, err)
	}
	return NewCellRange(begin, end), nil
}

// MustParseCellRange is like ParseCellRange but panics on error.
func MustParseCellRange(text string) CellRangeReference {
	r, err := ParseCellRange(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (r CellRangeReference) Begin() CellReference { return r.begin }
func (r CellRangeReference) End() CellReference   { return r.end }

func (r CellRangeReference) Width() int  { return r.end.column.value - r.begin.column.value + 1 }
func (r CellRangeReference) Height() int { return r.end.row.value - r.begin.row.value + 1 }

// IsUnit reports whether the range covers exactly one cell, ignoring kinds.
func (r CellRangeReference) IsUnit() bool {
	return r.begin.EqualsIgnoreReferenceKind(r.end)
}

// IsAll reports whether the range covers the whole grid.
func (r CellRangeReference) IsAll() bool {
	return r.begin.column.IsFirst() && r.begin.row.IsFirst() && r.end.column.IsLast() && r.end.row.IsLast()
}

// ColumnRange projects the range onto its columns.
func (r CellRangeReference) ColumnRange() ColumnRangeReference {
	return ColumnRangeReference{begin: r.begin.column, end: r.end.column}
}

// RowRange projects the range onto its rows.
func (r CellRangeReference) RowRange() RowRangeReference {
	return RowRangeReference{begin: r.begin.row, end: r.end.row}
}

// SetColumnRange replaces the columns, keeping the rows.
func (r CellRangeReference) SetColumnRange(columns ColumnRangeReference) CellRangeReference {
	return columns.SetRowRange(r.RowRange())
}

// SetRowRange replaces the rows, keeping the columns.
func (r CellRangeReference) SetRowRange(rows RowRangeReference) CellRangeReference {
	return r.ColumnRange().SetRowRange(rows)
}

func (r CellRangeReference) TestCell(cell CellReference) bool {
	return r.TestColumn(cell.column) && r.TestRow(cell.row)
}

func (r CellRangeReference) TestColumn(column ColumnReference) bool {
	return r.ColumnRange().TestColumn(column)
}

func (r CellRangeReference) TestRow(row RowReference) bool {
	return r.RowRange().TestRow(row)
}

// TestCellRange reports whether the two ranges overlap.
func (r CellRangeReference) TestCellRange(other CellRangeReference) bool {
	return r.ColumnRange().TestColumnRange(other.ColumnRange()) && r.RowRange().TestRowRange(other.RowRange())
}

// ContainsAll reports whether every given cell lies within the range.
func (r CellRangeReference) ContainsAll(cells ...CellReference) bool {
	for _, c := range cells {
		if !r.TestCell(c) {
			return false
		}
	}
	return true
}

// All yields every cell of the range row by row, left to right.
func (r CellRangeReference) All() iter.Seq[CellReference] {
	return LRTD.Cells(r)
}

// Referencer is implemented by stored cells that know their coordinate.
type Referencer interface {
	Reference() CellReference
}

// ClassifyCells visits every coordinate of r row by row. present receives
// each supplied cell that lies at a visited coordinate, absent receives each
// coordinate without a supplied cell. Cells outside r are ignored.
func ClassifyCells[C Referencer](r CellRangeReference, cells []C, present func(C), absent func(CellReference)) {
	byKey := make(map[[2]int]C, len(cells))
	for _, c := range cells {
		ref := c.Reference()
		if r.TestCell(ref) {
			byKey[[2]int{ref.column.value, ref.row.value}] = c
		}
	}
	for ref := range r.All() {
		if c, ok := byKey[[2]int{ref.column.value, ref.row.value}]; ok {
			present(c)
		} else {
			absent(ref)
		}
	}
}

// Add shifts the whole range, failing if any corner leaves the grid.
func (r CellRangeReference) Add(columnDelta, rowDelta int) (CellRangeReference, error) {
	begin, err := r.begin.Add(columnDelta, rowDelta)
	if err != nil {
		return r, err
	}
	end, err := r.end.Add(columnDelta, rowDelta)
	if err != nil {
		return r, err
	}
	return CellRangeReference{begin: begin, end: end}, nil
}

// AddSaturated shifts both corners, clamping each to the grid.
func (r CellRangeReference) AddSaturated(columnDelta, rowDelta int) CellRangeReference {
	return NewCellRange(r.begin.AddSaturated(columnDelta, rowDelta), r.end.AddSaturated(columnDelta, rowDelta))
}

// AddIfRelative shifts only the relative coordinates of each corner.
func (r CellRangeReference) AddIfRelative(columnDelta, rowDelta int) (CellRangeReference, error) {
	begin, err := r.begin.AddIfRelative(columnDelta, rowDelta)
	if err != nil {
		return r, err
	}
	end, err := r.end.AddIfRelative(columnDelta, rowDelta)
	if err != nil {
		return r, err
	}
	return NewCellRange(begin, end), nil
}

func (r CellRangeReference) ToAbsolute() CellRangeReference {
	return CellRangeReference{begin: r.begin.ToAbsolute(), end: r.end.ToAbsolute()}
}

func (r CellRangeReference) ToRelative() CellRangeReference {
	return CellRangeReference{begin: r.begin.ToRelative(), end: r.end.ToRelative()}
}

// Simplify returns the begin cell for a unit range and r otherwise.
func (r CellRangeReference) Simplify() Selection {
	if r.IsUnit() {
		return r.begin
	}
	return r
}

// CheckColumns fails listing every column outside the range.
func (r CellRangeReference) CheckColumns(columns ...ColumnReference) error {
	var invalid []string
	for _, c := range columns {
		if !r.TestColumn(c) {
			invalid = append(invalid, c.String())
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("Invalid column(s) %s are not within %s", strings.Join(invalid, ", "), r)
	}
	return nil
}

// CheckRows fails listing every row outside the range.
func (r CellRangeReference) CheckRows(rows ...RowReference) error {
	var invalid []string
	for _, row := range rows {
		if !r.TestRow(row) {
			invalid = append(invalid, row.String())
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("Invalid row(s) %s are not within %s", strings.Join(invalid, ", "), r)
	}
	return nil
}

func (r CellRangeReference) String() string {
	if r.begin == r.end {
		return r.begin.String()
	}
	return r.begin.String() + ":" + r.end.String()
}

func (r CellRangeReference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *CellRangeReference) UnmarshalText(text []byte) error {
	parsed, err := ParseCellRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (CellRangeReference) selection()           {}
func (CellRangeReference) expressionReference() {}
