package xlref

// Default sizes in pixels used when a sheet sets none.
const (
	DefaultColumnWidth = 64.0
	DefaultRowHeight   = 20.0
)

// NavigationContext supplies the sheet state navigation depends on.
type NavigationContext interface {
	IsColumnHidden(column ColumnReference) bool
	IsRowHidden(row RowReference) bool
	ColumnWidth(column ColumnReference) float64
	RowHeight(row RowReference) float64
	ResolveLabel(label LabelName) (Selection, bool)
}

// Grid is a NavigationContext assembled from functions. Nil fields mean
// nothing is hidden, every size is the default and no label resolves.
type Grid struct {
	ColumnHidden func(ColumnReference) bool
	RowHidden    func(RowReference) bool
	ColumnWidths func(ColumnReference) float64
	RowHeights   func(RowReference) float64
	Labels       *LabelStore
}

func (g Grid) IsColumnHidden(column ColumnReference) bool {
	return g.ColumnHidden != nil && g.ColumnHidden(column)
}

func (g Grid) IsRowHidden(row RowReference) bool {
	return g.RowHidden != nil && g.RowHidden(row)
}

func (g Grid) ColumnWidth(column ColumnReference) float64 {
	if g.ColumnWidths == nil {
		return DefaultColumnWidth
	}
	return g.ColumnWidths(column)
}

func (g Grid) RowHeight(row RowReference) float64 {
	if g.RowHeights == nil {
		return DefaultRowHeight
	}
	return g.RowHeights(row)
}

func (g Grid) ResolveLabel(label LabelName) (Selection, bool) {
	if g.Labels == nil {
		return nil, false
	}
	return g.Labels.ResolveLabel(label)
}

// HiddenColumns returns a predicate matching the given columns, ignoring
// kinds. It panics on invalid column text.
func HiddenColumns(columns ...string) func(ColumnReference) bool {
	set := make(map[int]bool, len(columns))
	for _, c := range columns {
		set[MustParseColumn(c).value] = true
	}
	return func(c ColumnReference) bool { return set[c.value] }
}

// HiddenRows returns a predicate matching the given rows, ignoring kinds.
// It panics on invalid row text.
func HiddenRows(rows ...string) func(RowReference) bool {
	set := make(map[int]bool, len(rows))
	for _, r := range rows {
		set[MustParseRow(r).value] = true
	}
	return func(r RowReference) bool { return set[r.value] }
}
