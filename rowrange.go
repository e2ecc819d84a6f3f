package xlref

import (
	"fmt"
	"iter"
	"strings"
)

// RowRangeReference is an inclusive span of whole rows such as "2:4".
type RowRangeReference struct {
	begin RowReference
	end   RowReference
}

// NewRowRange creates a range from two rows given in any order.
func NewRowRange(a, b RowReference) RowRangeReference {
	if a.value > b.value {
		a, b = b, a
	}
	return RowRangeReference{begin: a, end: b}
}

// AllRows returns 1:1048576.
func AllRows() RowRangeReference {
	return RowRangeReference{end: RowReference{value: MaxRow}}
}

// ParseRowRange parses "2:4", a single row "3", or "*".
func ParseRowRange(text string) (RowRangeReference, error) {
	if text == "*" {
		return AllRows(), nil
	}
	first, last, found := strings.Cut(text, ":")
	begin, err := ParseRow(first)
	if err != nil {
		return RowRangeReference{}, fmt.Errorf("invalid row range %q: %w", text, err)
	}
	if !found {
		return begin.ToRowRange(), nil
	}
	end, err := ParseRow(last)
	if err != nil {
		return RowRangeReference{}, fmt.Errorf("invalid row range %q: %w", text, err)
	}
	return NewRowRange(begin, end), nil
}

// MustParseRowRange is like ParseRowRange but panics on error.
func MustParseRowRange(text string) RowRangeReference {
	r, err := ParseRowRange(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (r RowRangeReference) Begin() RowReference { return r.begin }
func (r RowRangeReference) End() RowReference   { return r.end }

// Count returns the number of rows in the range.
func (r RowRangeReference) Count() int { return r.end.value - r.begin.value + 1 }

func (r RowRangeReference) IsUnit() bool { return r.begin.value == r.end.value }

func (r RowRangeReference) IsAll() bool { return r.begin.IsFirst() && r.end.IsLast() }

func (r RowRangeReference) TestRow(row RowReference) bool {
	return row.value >= r.begin.value && row.value <= r.end.value
}

// TestRowRange reports whether the two ranges overlap.
func (r RowRangeReference) TestRowRange(other RowRangeReference) bool {
	return r.begin.value <= other.end.value && other.begin.value <= r.end.value
}

// All yields each row from begin to end.
func (r RowRangeReference) All() iter.Seq[RowReference] {
	return func(yield func(RowReference) bool) {
		for v := r.begin.value; v <= r.end.value; v++ {
			if !yield(RowReference{kind: r.begin.kind, value: v}) {
				return
			}
		}
	}
}

func (r RowRangeReference) Add(delta int) (RowRangeReference, error) {
	begin, err := r.begin.Add(delta)
	if err != nil {
		return r, err
	}
	end, err := r.end.Add(delta)
	if err != nil {
		return r, err
	}
	return RowRangeReference{begin: begin, end: end}, nil
}

func (r RowRangeReference) AddSaturated(delta int) RowRangeReference {
	return NewRowRange(r.begin.AddSaturated(delta), r.end.AddSaturated(delta))
}

// AddIfRelative shifts relative ends and leaves absolute ends in place.
func (r RowRangeReference) AddIfRelative(delta int) (RowRangeReference, error) {
	begin, err := r.begin.AddIfRelative(delta)
	if err != nil {
		return r, err
	}
	end, err := r.end.AddIfRelative(delta)
	if err != nil {
		return r, err
	}
	return NewRowRange(begin, end), nil
}

// SetColumnRange combines the rows with columns into a cell range.
func (r RowRangeReference) SetColumnRange(columns ColumnRangeReference) CellRangeReference {
	return columns.SetRowRange(r)
}

// ToCellRange returns the cells of these rows across every column.
func (r RowRangeReference) ToCellRange() CellRangeReference {
	return r.SetColumnRange(AllColumns())
}

// Simplify returns the single row for a unit range and r otherwise.
func (r RowRangeReference) Simplify() Selection {
	if r.IsUnit() {
		return r.begin
	}
	return r
}

// CheckFrozen verifies the range starts at row 1, as frozen panes must.
func (r RowRangeReference) CheckFrozen() error {
	if !r.begin.IsFirst() {
		return fmt.Errorf("Range must begin at '1' but was %q", r.String())
	}
	return nil
}

func (r RowRangeReference) String() string {
	if r.begin == r.end {
		return r.begin.String()
	}
	return r.begin.String() + ":" + r.end.String()
}

func (r RowRangeReference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RowRangeReference) UnmarshalText(text []byte) error {
	parsed, err := ParseRowRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (RowRangeReference) selection() {}
