package xlref

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetContext is a NavigationContext backed by one worksheet of an
// excelize workbook: hidden columns and rows, column widths and row heights
// converted to pixels, and the workbook's defined names as labels.
type SheetContext struct {
	file    *excelize.File
	sheet   string
	lastRow int // highest 1-based row present in the sheet data
	labels  *LabelStore
}

// NewSheetContext reads sheet from f. The file must stay open while the
// context is in use.
func NewSheetContext(f *excelize.File, sheet string) (*SheetContext, error) {
	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if index < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	lastRow, err := countRows(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	return &SheetContext{
		file:    f,
		sheet:   sheet,
		lastRow: lastRow,
		labels:  LoadDefinedNames(f, sheet),
	}, nil
}

// OpenSheetContext opens an xlsx file and reads sheet from it. Close the
// returned file when done.
func OpenSheetContext(path, sheet string) (*SheetContext, *excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	ctx, err := NewSheetContext(f, sheet)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return ctx, f, nil
}

func countRows(f *excelize.File, sheet string) (int, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Error()
}

func (s *SheetContext) IsColumnHidden(column ColumnReference) bool {
	visible, err := s.file.GetColVisible(s.sheet, column.Name())
	return err == nil && !visible
}

// IsRowHidden reports rows beyond the sheet data as visible; excelize
// reports them as not visible.
func (s *SheetContext) IsRowHidden(row RowReference) bool {
	n := row.value + 1
	if n > s.lastRow {
		return false
	}
	visible, err := s.file.GetRowVisible(s.sheet, n)
	return err == nil && !visible
}

// ColumnWidth converts the width in characters to pixels.
func (s *SheetContext) ColumnWidth(column ColumnReference) float64 {
	width, err := s.file.GetColWidth(s.sheet, column.Name())
	if err != nil {
		return DefaultColumnWidth
	}
	return math.Round(width * 7)
}

// RowHeight converts the height in points to pixels.
func (s *SheetContext) RowHeight(row RowReference) float64 {
	height, err := s.file.GetRowHeight(s.sheet, row.value+1)
	if err != nil {
		return DefaultRowHeight
	}
	return math.Round(height * 4 / 3)
}

func (s *SheetContext) ResolveLabel(label LabelName) (Selection, bool) {
	return s.labels.ResolveLabel(label)
}

// Labels returns the defined names read from the workbook.
func (s *SheetContext) Labels() *LabelStore { return s.labels }

// LoadDefinedNames builds a LabelStore from the workbook scoped and sheet
// scoped defined names of f that refer to a cell, a range or another name
// on sheet. Names referring to other sheets, formulas or constants are
// skipped.
func LoadDefinedNames(f *excelize.File, sheet string) *LabelStore {
	store := NewLabelStore()
	for _, dn := range f.GetDefinedName() {
		if dn.Scope != "Workbook" && dn.Scope != sheet {
			continue
		}
		label, err := ParseLabel(dn.Name)
		if err != nil {
			continue
		}
		refersTo := strings.TrimPrefix(dn.RefersTo, "=")
		if i := strings.LastIndex(refersTo, "!"); i >= 0 {
			if strings.Trim(refersTo[:i], "'") != sheet {
				continue
			}
			refersTo = refersTo[i+1:]
		}
		reference, err := ParseExpressionReference(refersTo)
		if err != nil {
			continue
		}
		m, err := NewLabelMapping(label, reference)
		if err != nil {
			continue
		}
		store.Save(m)
	}
	return store
}
