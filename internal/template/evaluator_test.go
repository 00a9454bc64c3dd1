package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

func sampleTemplate() *entity.ColumnTemplate {
	return &entity.ColumnTemplate{
		TemplateName: "carrier-upload",
		Version:      1,
		ColumnOrder:  []string{"Invoice", "Carrier", "Reference"},
		ColumnDefinitions: map[string]entity.ColumnDef{
			"Invoice":   {Type: entity.ColumnSource, SourceColumn: "invoice_number", DefaultValue: "UNKNOWN"},
			"Carrier":   {Type: entity.ColumnConstant, Value: "ACME"},
			"Reference": {Type: entity.ColumnComputed, Expression: `row.invoice_number + "/" + row.po_number`, DefaultValue: "-"},
		},
	}
}

func sampleInput() *table.Table {
	in := table.New("invoice_number", "po_number")
	in.AddRow(table.Row{"invoice_number": "INV-1", "po_number": "PO-9"})
	in.AddRow(table.Row{"invoice_number": "INV-2", "po_number": "PO-8"})
	return in
}

func TestRenderColumnKinds(t *testing.T) {
	e, err := NewEvaluator(nil)
	require.NoError(t, err)

	out, err := e.Render(sampleInput(), sampleTemplate())
	require.NoError(t, err)
	assert.Equal(t, []string{"Invoice", "Carrier", "Reference"}, out.Columns)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "INV-1", out.Get(0, "Invoice"))
	assert.Equal(t, "ACME", out.Get(0, "Carrier"))
	assert.Equal(t, "INV-1/PO-9", out.Get(0, "Reference"))
	assert.Equal(t, "INV-2/PO-8", out.Get(1, "Reference"))
}

func TestRenderSourceDefaultOnBlank(t *testing.T) {
	e, err := NewEvaluator(nil)
	require.NoError(t, err)

	in := table.New("invoice_number", "po_number")
	in.AddRow(table.Row{"invoice_number": "", "po_number": "PO-1"})

	out, err := e.Render(in, sampleTemplate())
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", out.Get(0, "Invoice"))
}

func TestRenderComputedMissingDependencyUsesDefault(t *testing.T) {
	e, err := NewEvaluator(nil)
	require.NoError(t, err)

	// po_number is absent from the row, so the expression cannot evaluate
	in := table.New("invoice_number")
	in.AddRow(table.Row{"invoice_number": "INV-1"})

	out, err := e.Render(in, sampleTemplate())
	require.NoError(t, err)
	assert.Equal(t, "-", out.Get(0, "Reference"))
}

func TestRenderBadExpressionFails(t *testing.T) {
	e, err := NewEvaluator(nil)
	require.NoError(t, err)

	tpl := sampleTemplate()
	def := tpl.ColumnDefinitions["Reference"]
	def.Expression = "row.("
	tpl.ColumnDefinitions["Reference"] = def

	_, err = e.Render(sampleInput(), tpl)
	require.Error(t, err)
	assert.True(t, common.IsConfigurationError(err))
}

func TestRenderProgramCacheReused(t *testing.T) {
	e, err := NewEvaluator(nil)
	require.NoError(t, err)

	_, err = e.Render(sampleInput(), sampleTemplate())
	require.NoError(t, err)
	_, err = e.Render(sampleInput(), sampleTemplate())
	require.NoError(t, err)

	e.mu.RLock()
	defer e.mu.RUnlock()
	assert.Len(t, e.prgCache, 1)
}
