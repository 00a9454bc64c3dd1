package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNested(t *testing.T) {
	row := Flatten(map[string]any{
		"invoice_number": "INV-001",
		"shipper":        map[string]any{"name": "Acme", "address": map[string]any{"city": "Lagos"}},
		"tags":           []any{"fragile", "express"},
		"amount":         float64(100),
		"__source":       "should be stripped",
	})

	assert.Equal(t, "INV-001", row["invoice_number"])
	assert.Equal(t, "Acme", row["shipper_name"])
	assert.Equal(t, "Lagos", row["shipper_address_city"])
	assert.Equal(t, "fragile, express", row["tags"])
	assert.Equal(t, "100", row["amount"])
	_, ok := row["__source"]
	assert.False(t, ok, "reserved keys must not survive flattening")
}

func TestFlattenObjectListKeptStructural(t *testing.T) {
	row := Flatten(map[string]any{
		"items": []any{map[string]any{"sku": "A"}},
	})
	require.Contains(t, row, "items"+StructuralSuffix)
	assert.JSONEq(t, `[{"sku":"A"}]`, row["items"+StructuralSuffix])
}

func TestExplodeList(t *testing.T) {
	data := map[string]any{
		"invoice_number": "INV-001",
		"line_items": []any{
			map[string]any{"sku": "A", "qty": float64(1)},
			map[string]any{"sku": "B", "qty": float64(2)},
		},
	}
	rows := ExplodeList(data, "line_items")
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "INV-001", r["invoice_number"], "line items inherit document fields")
	}
	assert.Equal(t, "A", rows[0]["line_items_sku"])
	assert.Equal(t, "2", rows[1]["line_items_qty"])
}

func TestExplodeListAbsent(t *testing.T) {
	rows := ExplodeList(map[string]any{"invoice_number": "INV-002"}, "line_items")
	require.Len(t, rows, 1)
	assert.Equal(t, "INV-002", rows[0]["invoice_number"])
}

func TestDedupeRows(t *testing.T) {
	tb := New("a", "b")
	tb.AddRow(Row{"a": "1", "b": "2"})
	tb.AddRow(Row{"a": "1", "b": "2"})
	tb.AddRow(Row{"a": "1", "b": "3"})
	tb.DedupeRows()
	assert.Equal(t, 2, tb.Len())
}

func TestCoalesce(t *testing.T) {
	r := Row{"a": "-", "b": "", "c": "x"}
	assert.Equal(t, "x", Coalesce(r, "a", "b", "c"))
	assert.Equal(t, "", Coalesce(r, "a", "b"))
}

func TestIsBlank(t *testing.T) {
	for _, v := range []string{"", " ", "-", "N/A", "null", "None"} {
		assert.True(t, IsBlank(v), "%q should be blank", v)
	}
	assert.False(t, IsBlank("0"))
	assert.False(t, IsBlank("INV-001"))
}
