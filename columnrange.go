package xlref

import (
	"fmt"
	"iter"
	"strings"
)

// ColumnRangeReference is an inclusive span of whole columns such as "B:D".
type ColumnRangeReference struct {
	begin ColumnReference
	end   ColumnReference
}

// NewColumnRange creates a range from two columns given in any order.
func NewColumnRange(a, b ColumnReference) ColumnRangeReference {
	if a.value > b.value {
		a, b = b, a
	}
	return ColumnRangeReference{begin: a, end: b}
}

// AllColumns returns A:XFD.
func AllColumns() ColumnRangeReference {
	return ColumnRangeReference{end: ColumnReference{value: MaxColumn}}
}

// ParseColumnRange parses "B:D", a single column "C", or "*".
func ParseColumnRange(text string) (ColumnRangeReference, error) {
	if text == "*" {
		return AllColumns(), nil
	}
	first, last, found := strings.Cut(text, ":")
	begin, err := ParseColumn(first)
	if err != nil {
		return ColumnRangeReference{}, fmt.Errorf("invalid column range %q: %w", text, err)
	}
	if !found {
		return begin.ToColumnRange(), nil
	}
	end, err := ParseColumn(last)
	if err != nil {
		return ColumnRangeReference{}, fmt.Errorf("invalid column range %q: %w", text, err)
	}
	return NewColumnRange(begin, end), nil
}

// MustParseColumnRange is like ParseColumnRange but panics on error.
func MustParseColumnRange(text string) ColumnRangeReference {
	r, err := ParseColumnRange(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (r ColumnRangeReference) Begin() ColumnReference { return r.begin }
func (r ColumnRangeReference) End() ColumnReference   { return r.end }

// Count returns the number of columns in the range.
func (r ColumnRangeReference) Count() int { return r.end.value - r.begin.value + 1 }

func (r ColumnRangeReference) IsUnit() bool { return r.begin.value == r.end.value }

func (r ColumnRangeReference) IsAll() bool { return r.begin.IsFirst() && r.end.IsLast() }

func (r ColumnRangeReference) TestColumn(column ColumnReference) bool {
	return column.value >= r.begin.value && column.value <= r.end.value
}

// TestColumnRange reports whether the two ranges overlap.
func (r ColumnRangeReference) TestColumnRange(other ColumnRangeReference) bool {
	return r.begin.value <= other.end.value && other.begin.value <= r.end.value
}

// All yields each column from begin to end.
func (r ColumnRangeReference) All() iter.Seq[ColumnReference] {
	return func(yield func(ColumnReference) bool) {
		for v := r.begin.value; v <= r.end.value; v++ {
			if !yield(ColumnReference{kind: r.begin.kind, value: v}) {
				return
			}
		}
	}
}

func (r ColumnRangeReference) Add(delta int) (ColumnRangeReference, error) {
	begin, err := r.begin.Add(delta)
	if err != nil {
		return r, err
	}
	end, err := r.end.Add(delta)
	if err != nil {
		return r, err
	}
	return ColumnRangeReference{begin: begin, end: end}, nil
}

func (r ColumnRangeReference) AddSaturated(delta int) ColumnRangeReference {
	return NewColumnRange(r.begin.AddSaturated(delta), r.end.AddSaturated(delta))
}

// AddIfRelative shifts relative ends and leaves absolute ends in place.
func (r ColumnRangeReference) AddIfRelative(delta int) (ColumnRangeReference, error) {
	begin, err := r.begin.AddIfRelative(delta)
	if err != nil {
		return r, err
	}
	end, err := r.end.AddIfRelative(delta)
	if err != nil {
		return r, err
	}
	return NewColumnRange(begin, end), nil
}

// SetRowRange combines the columns with rows into a cell range.
func (r ColumnRangeReference) SetRowRange(rows RowRangeReference) CellRangeReference {
	return CellRangeReference{
		begin: CellReference{column: r.begin, row: rows.begin},
		end:   CellReference{column: r.end, row: rows.end},
	}
}

// ToCellRange returns the cells of these columns across every row.
func (r ColumnRangeReference) ToCellRange() CellRangeReference {
	return r.SetRowRange(AllRows())
}

// Simplify returns the single column for a unit range and r otherwise.
func (r ColumnRangeReference) Simplify() Selection {
	if r.IsUnit() {
		return r.begin
	}
	return r
}

// CheckFrozen verifies the range starts at column A, as frozen panes must.
func (r ColumnRangeReference) CheckFrozen() error {
	if !r.begin.IsFirst() {
		return fmt.Errorf("Range must begin at 'A' but was %q", r.String())
	}
	return nil
}

func (r ColumnRangeReference) String() string {
	if r.begin == r.end {
		return r.begin.String()
	}
	return r.begin.String() + ":" + r.end.String()
}

func (r ColumnRangeReference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ColumnRangeReference) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (ColumnRangeReference) selection() {}
