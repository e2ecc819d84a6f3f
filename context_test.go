package xlref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_Defaults(t *testing.T) {
	var g Grid
	assert.False(t, g.IsColumnHidden(MustParseColumn("A")))
	assert.False(t, g.IsRowHidden(MustParseRow("1")))
	assert.Equal(t, DefaultColumnWidth, g.ColumnWidth(MustParseColumn("A")))
	assert.Equal(t, DefaultRowHeight, g.RowHeight(MustParseRow("1")))

	_, ok := g.ResolveLabel(MustParseLabel("Total"))
	assert.False(t, ok)
}

func TestHiddenColumns(t *testing.T) {
	hidden := HiddenColumns("C", "$E")
	assert.True(t, hidden(MustParseColumn("$C")))
	assert.True(t, hidden(MustParseColumn("E")))
	assert.False(t, hidden(MustParseColumn("D")))

	assert.Panics(t, func() { HiddenColumns("1") })
}

func TestHiddenRows(t *testing.T) {
	hidden := HiddenRows("3")
	assert.True(t, hidden(MustParseRow("$3")))
	assert.False(t, hidden(MustParseRow("4")))

	assert.Panics(t, func() { HiddenRows("C") })
}
