package xlref

import (
	"fmt"
)

// CellReference is a single cell such as "B5" or "$A$1".
type CellReference struct {
	column ColumnReference
	row    RowReference
}

// NewCell creates a CellReference from a column and row.
func NewCell(column ColumnReference, row RowReference) CellReference {
	return CellReference{column: column, row: row}
}

// ParseCell parses a cell reference string like "A1", "$B$5" or "c$3".
func ParseCell(text string) (CellReference, error) {
	i := 0
	if i < len(text) && text[i] == '$' {
		i++
	}
	for i < len(text) && isAlpha(text[i]) {
		i++
	}
	column, err := ParseColumn(text[:i])
	if err != nil {
		return CellReference{}, fmt.Errorf("invalid cell reference %q: %w", text, err)
	}
	row, err := ParseRow(text[i:])
	if err != nil {
		return CellReference{}, fmt.Errorf("invalid cell reference %q: %w", text, err)
	}
	return CellReference{column: column, row: row}, nil
}

// MustParseCell is like ParseCell but panics on error.
func MustParseCell(text string) CellReference {
	c, err := ParseCell(text)
	if err != nil {
		panic(err)
	}
	return c
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (c CellReference) Column() ColumnReference { return c.column }
func (c CellReference) Row() RowReference       { return c.row }

func (c CellReference) SetColumn(column ColumnReference) CellReference {
	c.column = column
	return c
}

func (c CellReference) SetRow(row RowReference) CellReference {
	c.row = row
	return c
}

// Compare orders cells by column then row, ignoring kinds.
func (c CellReference) Compare(other CellReference) int {
	if d := c.column.Compare(other.column); d != 0 {
		return d
	}
	return c.row.Compare(other.row)
}

func (c CellReference) EqualsIgnoreReferenceKind(other CellReference) bool {
	return c.column.value == other.column.value && c.row.value == other.row.value
}

// Add shifts both coordinates, failing when either leaves the grid.
func (c CellReference) Add(columnDelta, rowDelta int) (CellReference, error) {
	column, err := c.column.Add(columnDelta)
	if err != nil {
		return c, err
	}
	row, err := c.row.Add(rowDelta)
	if err != nil {
		return c, err
	}
	return CellReference{column: column, row: row}, nil
}

func (c CellReference) AddColumn(delta int) (CellReference, error) { return c.Add(delta, 0) }
func (c CellReference) AddRow(delta int) (CellReference, error)    { return c.Add(0, delta) }

// AddSaturated shifts both coordinates, clamping each to the grid.
func (c CellReference) AddSaturated(columnDelta, rowDelta int) CellReference {
	return CellReference{
		column: c.column.AddSaturated(columnDelta),
		row:    c.row.AddSaturated(rowDelta),
	}
}

// AddIfRelative shifts only the relative coordinates.
func (c CellReference) AddIfRelative(columnDelta, rowDelta int) (CellReference, error) {
	column, err := c.column.AddIfRelative(columnDelta)
	if err != nil {
		return c, err
	}
	row, err := c.row.AddIfRelative(rowDelta)
	if err != nil {
		return c, err
	}
	return CellReference{column: column, row: row}, nil
}

func (c CellReference) ToAbsolute() CellReference {
	return CellReference{column: c.column.ToAbsolute(), row: c.row.ToAbsolute()}
}

func (c CellReference) ToRelative() CellReference {
	return CellReference{column: c.column.ToRelative(), row: c.row.ToRelative()}
}

// ToCellRange returns the unit range c:c.
func (c CellReference) ToCellRange() CellRangeReference {
	return CellRangeReference{begin: c, end: c}
}

// CellRange returns the normalized range with c and other as corners.
func (c CellReference) CellRange(other CellReference) CellRangeReference {
	return NewCellRange(c, other)
}

func (c CellReference) String() string {
	return c.column.String() + c.row.String()
}

func (c CellReference) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CellReference) UnmarshalText(text []byte) error {
	parsed, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (CellReference) selection()           {}
func (CellReference) expressionReference() {}
