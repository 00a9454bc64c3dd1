package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/internal/table"
)

func TestUnionMergesColumnsAndRows(t *testing.T) {
	a := table.New("invoice_number", "amount")
	a.AddRow(table.Row{"invoice_number": "INV-1", "amount": "10"})

	b := table.New("invoice_number", "carrier")
	b.AddRow(table.Row{"invoice_number": "INV-2", "carrier": "ACME"})

	out := Union([]*table.Table{a, b}, nil)
	assert.Equal(t, []string{"invoice_number", "amount", "carrier"}, out.Columns)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "10", out.Get(0, "amount"))
	assert.Equal(t, "", out.Get(0, "carrier"), "missing columns stay blank")
	assert.Equal(t, "ACME", out.Get(1, "carrier"))
}

func TestUnionDropsStructuralColumns(t *testing.T) {
	a := table.New("invoice_number", "line_items__json")
	a.AddRow(table.Row{"invoice_number": "INV-1", "line_items__json": `[{"sku":"X"}]`})

	out := Union([]*table.Table{a}, nil)
	assert.Equal(t, []string{"invoice_number"}, out.Columns)
	assert.Equal(t, "", out.Get(0, "line_items__json"))
}

func TestUnionDedupesExactRows(t *testing.T) {
	a := table.New("invoice_number")
	a.AddRow(table.Row{"invoice_number": "INV-1"})

	b := table.New("invoice_number")
	b.AddRow(table.Row{"invoice_number": "INV-1"})
	b.AddRow(table.Row{"invoice_number": "INV-2"})

	out := Union([]*table.Table{a, b}, nil)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "INV-1", out.Get(0, "invoice_number"))
	assert.Equal(t, "INV-2", out.Get(1, "invoice_number"))
}

func TestUnionSkipsEmptyTables(t *testing.T) {
	a := table.New("invoice_number")
	a.AddRow(table.Row{"invoice_number": "INV-1"})

	out := Union([]*table.Table{nil, table.New("x"), a}, nil)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, []string{"invoice_number"}, out.Columns)
}

func TestUnionDoesNotMutateInputs(t *testing.T) {
	a := table.New("invoice_number", "items__json")
	a.AddRow(table.Row{"invoice_number": "INV-1", "items__json": "[]"})

	_ = Union([]*table.Table{a}, nil)
	assert.True(t, a.HasColumn("items__json"), "input table keeps its structural column")
	assert.Equal(t, "[]", a.Get(0, "items__json"))
}
