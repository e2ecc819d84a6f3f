package xlref

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	for _, text := range []string{"Total", "_tax", `\path`, "Sales.2024", "ABCD1", "Ünits"} {
		label, err := ParseLabel(text)
		require.NoError(t, err, "parse %q", text)
		assert.Equal(t, text, label.String())
	}
}

func TestParseLabel_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1abc",
		".abc",
		"has space",
		"dash-ed",
		"A1",
		"$B$2",
		"XFD1048576",
		strings.Repeat("a", 256),
	}
	for _, text := range tests {
		_, err := ParseLabel(text)
		assert.ErrorIs(t, err, ErrInvalidReference, "parse %q", text)
	}
}

func TestParseLabel_MaxLength(t *testing.T) {
	_, err := ParseLabel(strings.Repeat("a", 255))
	assert.NoError(t, err)
}

func TestLabelName_CaseInsensitive(t *testing.T) {
	a := MustParseLabel("Total")
	b := MustParseLabel("TOTAL")
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, MustParseLabel("alpha").Compare(MustParseLabel("Beta")))
	assert.Equal(t, "Total", a.String())
}

func TestNewLabelMapping(t *testing.T) {
	m, err := NewLabelMapping(MustParseLabel("Total"), MustParseCellRange("B2:B9"))
	require.NoError(t, err)
	assert.Equal(t, "Total=B2:B9", m.String())
	assert.Equal(t, MustParseLabel("Total"), m.Label())

	m, err = m.SetReference(MustParseCell("$C$1"))
	require.NoError(t, err)
	assert.Equal(t, "Total=$C$1", m.String())
}

func TestNewLabelMapping_Invalid(t *testing.T) {
	_, err := NewLabelMapping(MustParseLabel("Total"), nil)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = NewLabelMapping(MustParseLabel("Total"), MustParseLabel("total"))
	assert.ErrorIs(t, err, ErrSelfReference)
}

func TestLabelMapping_Compare(t *testing.T) {
	a, _ := NewLabelMapping(MustParseLabel("a"), MustParseCell("B2"))
	b, _ := NewLabelMapping(MustParseLabel("A"), MustParseCell("$B$2"))
	c, _ := NewLabelMapping(MustParseLabel("a"), MustParseCell("C2"))
	d, _ := NewLabelMapping(MustParseLabel("b"), MustParseCell("A1"))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, -1, c.Compare(d))
}

func TestLabelMapping_JSON(t *testing.T) {
	m, err := NewLabelMapping(MustParseLabel("Sales"), MustParseCellRange("$A$1:C3"))
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Sales","reference":"$A$1:C3"}`, string(data))

	var out LabelMapping
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, m, out)

	again, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestLabelMapping_JSON_Invalid(t *testing.T) {
	var out LabelMapping
	assert.Error(t, json.Unmarshal([]byte(`{"label":"A1","reference":"B2"}`), &out))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"label":"Loop","reference":"loop"}`), &out), ErrSelfReference)
	assert.Error(t, json.Unmarshal([]byte(`{"label":"Sales","reference":"B:C"}`), &out))
}

func TestParseExpressionReference(t *testing.T) {
	ref, err := ParseExpressionReference("B2")
	require.NoError(t, err)
	assert.Equal(t, MustParseCell("B2"), ref)

	ref, err = ParseExpressionReference("B2:C3")
	require.NoError(t, err)
	assert.Equal(t, MustParseCellRange("B2:C3"), ref)

	ref, err = ParseExpressionReference("Total")
	require.NoError(t, err)
	assert.Equal(t, MustParseLabel("Total"), ref)

	_, err = ParseExpressionReference("bad name")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func mapping(t *testing.T, label, reference string) LabelMapping {
	t.Helper()
	ref, err := ParseExpressionReference(reference)
	require.NoError(t, err)
	m, err := NewLabelMapping(MustParseLabel(label), ref)
	require.NoError(t, err)
	return m
}

func TestLabelStore_SaveLoadDelete(t *testing.T) {
	store := NewLabelStore(mapping(t, "Total", "B9"))

	m, ok := store.Load(MustParseLabel("TOTAL"))
	require.True(t, ok)
	assert.Equal(t, "Total=B9", m.String())

	store.Save(mapping(t, "total", "C9"))
	m, ok = store.Load(MustParseLabel("Total"))
	require.True(t, ok)
	assert.Equal(t, "total=C9", m.String())
	assert.Len(t, store.All(), 1)

	assert.True(t, store.Delete(MustParseLabel("TOTAL")))
	assert.False(t, store.Delete(MustParseLabel("Total")))
	_, ok = store.Load(MustParseLabel("Total"))
	assert.False(t, ok)
}

func TestLabelStore_All_Sorted(t *testing.T) {
	store := NewLabelStore(
		mapping(t, "gamma", "C1"),
		mapping(t, "Alpha", "A1"),
		mapping(t, "beta", "B1"),
	)
	var names []string
	for _, m := range store.All() {
		names = append(names, m.Label().String())
	}
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names)
}

func TestLabelStore_ResolveLabel(t *testing.T) {
	store := NewLabelStore(
		mapping(t, "Total", "Subtotal"),
		mapping(t, "Subtotal", "B2:D4"),
		mapping(t, "Corner", "E5:E5"),
		mapping(t, "Ping", "Pong"),
		mapping(t, "Pong", "Ping"),
		mapping(t, "Dangling", "Nowhere"),
	)

	s, ok := store.ResolveLabel(MustParseLabel("total"))
	require.True(t, ok)
	assert.Equal(t, MustParseCellRange("B2:D4"), s)

	s, ok = store.ResolveLabel(MustParseLabel("Corner"))
	require.True(t, ok)
	assert.Equal(t, MustParseCell("E5"), s)

	_, ok = store.ResolveLabel(MustParseLabel("Ping"))
	assert.False(t, ok)

	_, ok = store.ResolveLabel(MustParseLabel("Dangling"))
	assert.False(t, ok)

	_, ok = store.ResolveLabel(MustParseLabel("Unknown"))
	assert.False(t, ok)
}
