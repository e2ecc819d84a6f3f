package xlref

import (
	"fmt"
	"strings"
)

// Selection is anything a viewport can select: a cell, column, row, a range
// of any of those, or a label.
type Selection interface {
	fmt.Stringer
	selection()
}

// ExpressionReference is a selection a label may point at: a cell, a cell
// range or another label.
type ExpressionReference interface {
	Selection
	expressionReference()
}

// ParseExpressionReference parses a cell, a cell range or a label.
func ParseExpressionReference(text string) (ExpressionReference, error) {
	if text == "*" || strings.Contains(text, ":") {
		r, err := ParseCellRange(text)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if cell, err := ParseCell(text); err == nil {
		return cell, nil
	}
	label, err := ParseLabel(text)
	if err != nil {
		return nil, fmt.Errorf("invalid expression reference %q: %w", text, ErrInvalidReference)
	}
	return label, nil
}

// ParseSelection parses any selection. Ambiguous text is read as a cell,
// then a column, then a row, then a label: "B" is a column and "3" a row.
func ParseSelection(text string) (Selection, error) {
	if text == "*" {
		return AllCells(), nil
	}
	if strings.Contains(text, ":") {
		if r, err := ParseCellRange(text); err == nil {
			return r.Simplify(), nil
		}
		if r, err := ParseColumnRange(text); err == nil {
			return r.Simplify(), nil
		}
		if r, err := ParseRowRange(text); err == nil {
			return r.Simplify(), nil
		}
		return nil, fmt.Errorf("invalid selection %q: %w", text, ErrInvalidReference)
	}
	if cell, err := ParseCell(text); err == nil {
		return cell, nil
	}
	if column, err := ParseColumn(text); err == nil {
		return column, nil
	}
	if row, err := ParseRow(text); err == nil {
		return row, nil
	}
	if label, err := ParseLabel(text); err == nil {
		return label, nil
	}
	return nil, fmt.Errorf("invalid selection %q: %w", text, ErrInvalidReference)
}

// simplify reduces unit ranges to their single cell, column or row.
func simplify(s Selection) Selection {
	switch v := s.(type) {
	case CellRangeReference:
		return v.Simplify()
	case ColumnRangeReference:
		return v.Simplify()
	case RowRangeReference:
		return v.Simplify()
	}
	return s
}
