package xlref

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// MaxRow is the largest 0-based row value (row 1048576).
const MaxRow = excelize.TotalRows - 1

// RowReference is a 0-based row coordinate with a reference kind.
type RowReference struct {
	kind  ReferenceKind
	value int
}

// NewRow creates a RowReference, rejecting values outside 0..MaxRow.
func NewRow(kind ReferenceKind, value int) (RowReference, error) {
	if value < 0 || value > MaxRow {
		return RowReference{}, fmt.Errorf("row %d not in 0..%d: %w", value, MaxRow, ErrOutOfBounds)
	}
	return RowReference{kind: kind, value: value}, nil
}

// ParseRow parses a 1-based row number such as "12" or "$12".
func ParseRow(text string) (RowReference, error) {
	kind, digits := splitKind(text)
	value, err := rowNumberToValue(digits)
	if err != nil {
		return RowReference{}, fmt.Errorf("invalid row %q: %w", text, err)
	}
	return RowReference{kind: kind, value: value}, nil
}

// MustParseRow is like ParseRow but panics on error.
func MustParseRow(text string) RowReference {
	r, err := ParseRow(text)
	if err != nil {
		panic(err)
	}
	return r
}

func rowNumberToValue(digits string) (int, error) {
	if digits == "" || len(digits) > 7 {
		return 0, ErrInvalidReference
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrInvalidReference
		}
	}
	n, _ := strconv.Atoi(digits)
	if n < 1 || n > excelize.TotalRows {
		return 0, ErrOutOfBounds
	}
	return n - 1, nil
}

func (r RowReference) Kind() ReferenceKind { return r.kind }
func (r RowReference) Value() int          { return r.value }

// SetKind returns the row with the given kind.
func (r RowReference) SetKind(kind ReferenceKind) RowReference {
	r.kind = kind
	return r
}

// SetValue returns the row with the given value, keeping its kind.
func (r RowReference) SetValue(value int) (RowReference, error) {
	if value == r.value {
		return r, nil
	}
	return NewRow(r.kind, value)
}

func (r RowReference) ToAbsolute() RowReference { return r.SetKind(Absolute) }
func (r RowReference) ToRelative() RowReference { return r.SetKind(Relative) }

// Add shifts the row by delta, failing when the result leaves the grid.
func (r RowReference) Add(delta int) (RowReference, error) {
	if delta == 0 {
		return r, nil
	}
	return r.SetValue(r.value + delta)
}

// AddSaturated shifts the row by delta, clamping to the grid.
func (r RowReference) AddSaturated(delta int) RowReference {
	r.value = clamp(r.value+delta, 0, MaxRow)
	return r
}

// AddIfRelative shifts relative rows and returns absolute ones unchanged.
func (r RowReference) AddIfRelative(delta int) (RowReference, error) {
	if r.kind == Absolute {
		return r, nil
	}
	return r.Add(delta)
}

func (r RowReference) IsFirst() bool { return r.value == 0 }
func (r RowReference) IsLast() bool  { return r.value == MaxRow }

// Compare orders rows by value, ignoring kind.
func (r RowReference) Compare(other RowReference) int {
	return r.value - other.value
}

func (r RowReference) EqualsIgnoreReferenceKind(other RowReference) bool {
	return r.value == other.value
}

func (r RowReference) Max(other RowReference) RowReference {
	if other.value > r.value {
		return other
	}
	return r
}

func (r RowReference) Min(other RowReference) RowReference {
	if other.value < r.value {
		return other
	}
	return r
}

// SetColumn combines the row with a column into a cell.
func (r RowReference) SetColumn(column ColumnReference) CellReference {
	return CellReference{column: column, row: r}
}

// ToRowRange returns the single row range r:r.
func (r RowReference) ToRowRange() RowRangeReference {
	return RowRangeReference{begin: r, end: r}
}

// RowRange returns the normalized range between r and other.
func (r RowReference) RowRange(other RowReference) RowRangeReference {
	return NewRowRange(r, other)
}

func (r RowReference) String() string {
	return r.kind.prefix() + strconv.Itoa(r.value+1)
}

func (r RowReference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RowReference) UnmarshalText(text []byte) error {
	parsed, err := ParseRow(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (RowReference) selection() {}

// at returns a row of the same kind with another value.
func (r RowReference) at(value int) RowReference {
	r.value = value
	return r
}
