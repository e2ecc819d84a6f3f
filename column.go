package xlref

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MaxColumn is the largest 0-based column value (XFD).
const MaxColumn = excelize.MaxColumns - 1

// ColumnReference is a 0-based column coordinate with a reference kind.
type ColumnReference struct {
	kind  ReferenceKind
	value int
}

// NewColumn creates a ColumnReference, rejecting values outside 0..MaxColumn.
func NewColumn(kind ReferenceKind, value int) (ColumnReference, error) {
	if value < 0 || value > MaxColumn {
		return ColumnReference{}, fmt.Errorf("column %d not in 0..%d: %w", value, MaxColumn, ErrOutOfBounds)
	}
	return ColumnReference{kind: kind, value: value}, nil
}

// ParseColumn parses column letters such as "B" or "$XFD".
func ParseColumn(text string) (ColumnReference, error) {
	kind, name := splitKind(text)
	value, err := columnNameToValue(name)
	if err != nil {
		return ColumnReference{}, fmt.Errorf("invalid column %q: %w", text, err)
	}
	return ColumnReference{kind: kind, value: value}, nil
}

// MustParseColumn is like ParseColumn but panics on error.
func MustParseColumn(text string) ColumnReference {
	c, err := ParseColumn(text)
	if err != nil {
		panic(err)
	}
	return c
}

// columnNameToValue converts letters to a 0-based value. Names longer than
// "XFD" are rejected before conversion so the multiplier cannot overflow.
func columnNameToValue(name string) (int, error) {
	if name == "" || len(name) > 3 {
		return 0, ErrInvalidReference
	}
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrInvalidReference)
	}
	return n - 1, nil
}

func (c ColumnReference) Kind() ReferenceKind { return c.kind }
func (c ColumnReference) Value() int          { return c.value }

// SetKind returns the column with the given kind.
func (c ColumnReference) SetKind(kind ReferenceKind) ColumnReference {
	c.kind = kind
	return c
}

// SetValue returns the column with the given value, keeping its kind.
func (c ColumnReference) SetValue(value int) (ColumnReference, error) {
	if value == c.value {
		return c, nil
	}
	return NewColumn(c.kind, value)
}

func (c ColumnReference) ToAbsolute() ColumnReference { return c.SetKind(Absolute) }
func (c ColumnReference) ToRelative() ColumnReference { return c.SetKind(Relative) }

// Add shifts the column by delta, failing when the result leaves the grid.
func (c ColumnReference) Add(delta int) (ColumnReference, error) {
	if delta == 0 {
		return c, nil
	}
	return c.SetValue(c.value + delta)
}

// AddSaturated shifts the column by delta, clamping to the grid.
func (c ColumnReference) AddSaturated(delta int) ColumnReference {
	c.value = clamp(c.value+delta, 0, MaxColumn)
	return c
}

// AddIfRelative shifts relative columns and returns absolute ones unchanged.
func (c ColumnReference) AddIfRelative(delta int) (ColumnReference, error) {
	if c.kind == Absolute {
		return c, nil
	}
	return c.Add(delta)
}

func (c ColumnReference) IsFirst() bool { return c.value == 0 }
func (c ColumnReference) IsLast() bool  { return c.value == MaxColumn }

// Compare orders columns by value, ignoring kind.
func (c ColumnReference) Compare(other ColumnReference) int {
	return c.value - other.value
}

func (c ColumnReference) EqualsIgnoreReferenceKind(other ColumnReference) bool {
	return c.value == other.value
}

// Max returns the column with the larger value.
func (c ColumnReference) Max(other ColumnReference) ColumnReference {
	if other.value > c.value {
		return other
	}
	return c
}

// Min returns the column with the smaller value.
func (c ColumnReference) Min(other ColumnReference) ColumnReference {
	if other.value < c.value {
		return other
	}
	return c
}

// SetRow combines the column with a row into a cell.
func (c ColumnReference) SetRow(row RowReference) CellReference {
	return CellReference{column: c, row: row}
}

// ToColumnRange returns the single column range c:c.
func (c ColumnReference) ToColumnRange() ColumnRangeReference {
	return ColumnRangeReference{begin: c, end: c}
}

// ColumnRange returns the normalized range between c and other.
func (c ColumnReference) ColumnRange(other ColumnReference) ColumnRangeReference {
	return NewColumnRange(c, other)
}

// Name returns the column letters without any "$".
func (c ColumnReference) Name() string {
	name, _ := excelize.ColumnNumberToName(c.value + 1)
	return name
}

func (c ColumnReference) String() string {
	return c.kind.prefix() + c.Name()
}

func (c ColumnReference) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ColumnReference) UnmarshalText(text []byte) error {
	parsed, err := ParseColumn(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (ColumnReference) selection() {}

// at returns a column of the same kind with another value.
func (c ColumnReference) at(value int) ColumnReference {
	c.value = value
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
