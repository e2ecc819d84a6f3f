package xlref

import (
	"github.com/sirupsen/logrus"
)

// Navigator applies viewport navigations using a sheet's hidden columns
// and rows, sizes and labels. A navigation that cannot change the selection,
// because it is blocked by the edge of the grid or by hidden columns or
// rows, is ignored rather than reported as an error.
type Navigator struct {
	ctx  NavigationContext
	opts *Options
}

// NewNavigator creates a Navigator. A nil ctx behaves like an empty Grid.
func NewNavigator(ctx NavigationContext, opts ...Option) *Navigator {
	if ctx == nil {
		ctx = Grid{}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Navigator{ctx: ctx, opts: o}
}

// Navigate applies each navigation in turn, skipping ignored ones.
func (n *Navigator) Navigate(v ViewportSelection, navigations ...ViewportNavigation) ViewportSelection {
	for _, nav := range navigations {
		v, _ = n.Apply(v, nav)
	}
	return v
}

// Apply returns the selection after nav, recording nav on it. When nav is
// ignored v is returned unchanged with false.
func (n *Navigator) Apply(v ViewportSelection, nav ViewportNavigation) (ViewportSelection, bool) {
	log := n.opts.logger.WithFields(logrus.Fields{
		"selection":  v.String(),
		"navigation": nav.String(),
	})
	next, ok := n.apply(v, nav)
	if !ok {
		log.Debug("navigation ignored")
		return v, false
	}
	log.WithField("result", next.String()).Debug("navigation applied")
	return next.SetNavigation(nav), true
}

func (n *Navigator) apply(v ViewportSelection, nav ViewportNavigation) (ViewportSelection, bool) {
	info := nav.kind.info()
	if info.selects {
		return n.selectTarget(nav.target)
	}
	s, anchor, ok := n.resolve(v)
	if !ok {
		return v, false
	}
	switch {
	case info.unit == "":
		return n.extendTo(s, anchor, nav.target)
	case info.extend:
		return n.extend(s, anchor, info, nav.pixels)
	}
	return n.move(s, anchor, info, nav.pixels)
}

// resolve replaces a label with what it names.
func (n *Navigator) resolve(v ViewportSelection) (Selection, ViewportAnchor, bool) {
	switch s := v.selection.(type) {
	case nil:
		return nil, AnchorNone, false
	case LabelName:
		resolved, ok := n.ctx.ResolveLabel(s)
		if !ok {
			return nil, AnchorNone, false
		}
		return resolved, DefaultAnchor(resolved), true
	}
	return v.selection, v.anchor, true
}

// move collapses the selection to its moving cell, column or row and steps
// it once.
func (n *Navigator) move(s Selection, anchor ViewportAnchor, info navigationInfo, pixels int) (ViewportSelection, bool) {
	switch sel := s.(type) {
	case CellReference:
		return n.moveCell(sel, info, pixels)
	case CellRangeReference:
		return n.moveCell(anchor.Cell(sel), info, pixels)
	case ColumnReference:
		return n.moveColumn(sel, info, pixels)
	case ColumnRangeReference:
		return n.moveColumn(anchor.Column(sel), info, pixels)
	case RowReference:
		return n.moveRow(sel, info, pixels)
	case RowRangeReference:
		return n.moveRow(anchor.Row(sel), info, pixels)
	}
	return ViewportSelection{}, false
}

func (n *Navigator) moveCell(c CellReference, info navigationInfo, pixels int) (ViewportSelection, bool) {
	c, ok := n.travelCell(c, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return Select(c), true
}

func (n *Navigator) moveColumn(c ColumnReference, info navigationInfo, pixels int) (ViewportSelection, bool) {
	if info.axis != horizontalAxis {
		return ViewportSelection{}, false
	}
	v, ok := n.travel(horizontalAxis, c.value, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return Select(c.at(v)), true
}

func (n *Navigator) moveRow(r RowReference, info navigationInfo, pixels int) (ViewportSelection, bool) {
	if info.axis != verticalAxis {
		return ViewportSelection{}, false
	}
	v, ok := n.travel(verticalAxis, r.value, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return Select(r.at(v)), true
}

// extend keeps the anchored corner or edge and steps the opposite one.
func (n *Navigator) extend(s Selection, anchor ViewportAnchor, info navigationInfo, pixels int) (ViewportSelection, bool) {
	switch sel := s.(type) {
	case CellReference:
		return n.extendCells(sel, sel, AnchorNone, info, pixels)
	case CellRangeReference:
		return n.extendCells(anchor.FixedCell(sel), anchor.Cell(sel), anchor, info, pixels)
	case ColumnReference:
		return n.extendColumns(sel, sel, info, pixels)
	case ColumnRangeReference:
		return n.extendColumns(anchor.FixedColumn(sel), anchor.Column(sel), info, pixels)
	case RowReference:
		return n.extendRows(sel, sel, info, pixels)
	case RowRangeReference:
		return n.extendRows(anchor.FixedRow(sel), anchor.Row(sel), info, pixels)
	}
	return ViewportSelection{}, false
}

func (n *Navigator) extendCells(fixed, active CellReference, anchor ViewportAnchor, info navigationInfo, pixels int) (ViewportSelection, bool) {
	active, ok := n.travelCell(active, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return cellRangeSelection(fixed, active, anchor), true
}

func (n *Navigator) extendColumns(fixed, active ColumnReference, info navigationInfo, pixels int) (ViewportSelection, bool) {
	if info.axis != horizontalAxis {
		return ViewportSelection{}, false
	}
	v, ok := n.travel(horizontalAxis, active.value, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return columnRangeSelection(fixed, active.at(v)), true
}

func (n *Navigator) extendRows(fixed, active RowReference, info navigationInfo, pixels int) (ViewportSelection, bool) {
	if info.axis != verticalAxis {
		return ViewportSelection{}, false
	}
	v, ok := n.travel(verticalAxis, active.value, info, pixels)
	if !ok {
		return ViewportSelection{}, false
	}
	return rowRangeSelection(fixed, active.at(v)), true
}

// extendTo stretches the selection from its fixed corner or edge to target.
// A target of a different kind than the selection replaces it.
func (n *Navigator) extendTo(s Selection, anchor ViewportAnchor, target Selection) (ViewportSelection, bool) {
	if target == nil || n.isHidden(target) {
		return ViewportSelection{}, false
	}
	switch t := target.(type) {
	case CellReference:
		switch sel := s.(type) {
		case CellReference:
			return cellRangeSelection(sel, t, AnchorNone), true
		case CellRangeReference:
			return cellRangeSelection(anchor.FixedCell(sel), t, anchor), true
		}
	case ColumnReference:
		switch sel := s.(type) {
		case ColumnReference:
			return columnRangeSelection(sel, t), true
		case ColumnRangeReference:
			return columnRangeSelection(anchor.FixedColumn(sel), t), true
		}
	case RowReference:
		switch sel := s.(type) {
		case RowReference:
			return rowRangeSelection(sel, t), true
		case RowRangeReference:
			return rowRangeSelection(anchor.FixedRow(sel), t), true
		}
	}
	return n.selectTarget(target)
}

func (n *Navigator) selectTarget(target Selection) (ViewportSelection, bool) {
	if target == nil || n.isHidden(target) {
		return ViewportSelection{}, false
	}
	return Select(target), true
}

func (n *Navigator) isHidden(s Selection) bool {
	switch t := s.(type) {
	case CellReference:
		return n.ctx.IsColumnHidden(t.column) || n.ctx.IsRowHidden(t.row)
	case ColumnReference:
		return n.ctx.IsColumnHidden(t)
	case RowReference:
		return n.ctx.IsRowHidden(t)
	}
	return false
}

// cellRangeSelection builds the range between fixed and active. The anchor
// sits on the fixed side of each axis; an axis where both ends meet keeps
// the previous anchor's component, defaulting to top-left. A range that
// collapses to one cell becomes that cell.
func cellRangeSelection(fixed, active CellReference, previous ViewportAnchor) ViewportSelection {
	if fixed.EqualsIgnoreReferenceKind(active) {
		return Select(fixed)
	}
	h := previous.info().horizontal
	switch {
	case active.column.value > fixed.column.value:
		h = leftEdge
	case active.column.value < fixed.column.value:
		h = rightEdge
	case h == noHorizontal:
		h = leftEdge
	}
	v := previous.info().vertical
	switch {
	case active.row.value > fixed.row.value:
		v = topEdge
	case active.row.value < fixed.row.value:
		v = bottomEdge
	case v == noVertical:
		v = topEdge
	}
	return ViewportSelection{selection: NewCellRange(fixed, active), anchor: anchorOf(h, v)}
}

func columnRangeSelection(fixed, active ColumnReference) ViewportSelection {
	switch {
	case active.value > fixed.value:
		return ViewportSelection{selection: NewColumnRange(fixed, active), anchor: AnchorLeft}
	case active.value < fixed.value:
		return ViewportSelection{selection: NewColumnRange(fixed, active), anchor: AnchorRight}
	}
	return Select(fixed)
}

func rowRangeSelection(fixed, active RowReference) ViewportSelection {
	switch {
	case active.value > fixed.value:
		return ViewportSelection{selection: NewRowRange(fixed, active), anchor: AnchorTop}
	case active.value < fixed.value:
		return ViewportSelection{selection: NewRowRange(fixed, active), anchor: AnchorBottom}
	}
	return Select(fixed)
}

func (n *Navigator) travelCell(c CellReference, info navigationInfo, pixels int) (CellReference, bool) {
	if info.axis == horizontalAxis {
		v, ok := n.travel(horizontalAxis, c.column.value, info, pixels)
		return c.SetColumn(c.column.at(v)), ok
	}
	v, ok := n.travel(verticalAxis, c.row.value, info, pixels)
	return c.SetRow(c.row.at(v)), ok
}

// travel moves one visible column or row, or for pixel navigations keeps
// moving until the sizes of the visible columns or rows entered cover the
// distance. Running into the edge of the grid stops early; not moving at
// all reports false.
func (n *Navigator) travel(a axis, from int, info navigationInfo, pixels int) (int, bool) {
	if !info.pixels {
		return n.step(a, from, info.step)
	}
	at, moved := from, false
	for remaining := float64(pixels); remaining > 0; {
		next, ok := n.step(a, at, info.step)
		if !ok {
			break
		}
		at, moved = next, true
		remaining -= n.size(a, next)
	}
	return at, moved
}

// step finds the nearest visible column or row from "from" in direction.
func (n *Navigator) step(a axis, from, direction int) (int, bool) {
	for v := from + direction; v >= 0 && v <= n.limit(a); v += direction {
		if !n.hidden(a, v) {
			return v, true
		}
	}
	return from, false
}

func (n *Navigator) limit(a axis) int {
	if a == horizontalAxis {
		return n.opts.maxColumn
	}
	return n.opts.maxRow
}

func (n *Navigator) hidden(a axis, value int) bool {
	if a == horizontalAxis {
		return n.ctx.IsColumnHidden(ColumnReference{value: value})
	}
	return n.ctx.IsRowHidden(RowReference{value: value})
}

func (n *Navigator) size(a axis, value int) float64 {
	if a == horizontalAxis {
		return n.ctx.ColumnWidth(ColumnReference{value: value})
	}
	return n.ctx.RowHeight(RowReference{value: value})
}

// Window returns the cells visible in r: from its home cell across as many
// visible columns and rows as its width and height reach.
func (n *Navigator) Window(r ViewportRectangle) CellRangeReference {
	column := n.span(horizontalAxis, r.home.column.value, r.width)
	row := n.span(verticalAxis, r.home.row.value, r.height)
	return NewCellRange(r.home, CellReference{column: r.home.column.at(column), row: r.home.row.at(row)})
}

func (n *Navigator) span(a axis, from int, pixels float64) int {
	at, used := from, 0.0
	if !n.hidden(a, from) {
		used = n.size(a, from)
	}
	for used < pixels {
		next, ok := n.step(a, at, 1)
		if !ok {
			break
		}
		at = next
		used += n.size(a, next)
	}
	return at
}
