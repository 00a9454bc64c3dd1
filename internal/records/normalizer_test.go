package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/normalize"
)

func doc(filename string, primary bool, fields map[string]any) SourceDocument {
	return SourceDocument{
		Source: Source{Filename: filename, IsPrimary: primary},
		Fields: fields,
	}
}

func multiCfg() *entity.MappingConfiguration {
	return &entity.MappingConfiguration{
		ItemType:              string(constants.MultiSource),
		ExternalReferencePath: "ref.csv",
		ExternalJoinKeys:      []string{"invoice_number"},
		InternalJoinKey:       "invoice_number",
		JoinNormalize:         normalize.Options{NormalizeWS: true, Lower: true, StripInvisible: true},
		AttachmentSources: []entity.AttachmentSource{
			{JoinKey: "invoice_number", FilenameContains: "packing"},
		},
	}
}

func TestDecodeDocuments(t *testing.T) {
	docs, err := DecodeDocuments(Source{Filename: "a.pdf", IsPrimary: true}, []byte(`{"x": 1}`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	docs, err = DecodeDocuments(Source{}, []byte(`[{"x": 1}, {"x": 2}]`))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	_, err = DecodeDocuments(Source{}, []byte(`"scalar"`))
	require.Error(t, err)
}

func TestSingleSourcePrefersPrimary(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildSingleSource([]SourceDocument{
		doc("main.pdf", true, map[string]any{"invoice_number": "INV-001"}),
		doc("extra.pdf", false, map[string]any{"invoice_number": "INV-XXX"}),
	}, "")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "INV-001", tbl.Get(0, "invoice_number"))
}

func TestSingleSourceFallsBackToAllRows(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildSingleSource([]SourceDocument{
		doc("a.pdf", false, map[string]any{"invoice_number": "INV-001"}),
		doc("b.pdf", false, map[string]any{"invoice_number": "INV-002"}),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestSingleSourceExplodesLineItems(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildSingleSource([]SourceDocument{
		doc("main.pdf", true, map[string]any{
			"invoice_number": "INV-001",
			"line_items": []any{
				map[string]any{"sku": "A"},
				map[string]any{"sku": "B"},
			},
		}),
	}, "")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "INV-001", tbl.Get(1, "invoice_number"))
	assert.Equal(t, "B", tbl.Get(1, "line_items_sku"))
}

func TestMultiSourceMerge(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001", "amount": float64(100)}),
		doc("packing_list.pdf", false, map[string]any{"invoice_number": "inv 001", "shipper": "Acme"}),
	}, multiCfg())
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	// Case/space differences reconciled by the merge-key normalization.
	assert.Equal(t, "INV-001", tbl.Get(0, "invoice_number"))
	assert.Equal(t, "100", tbl.Get(0, "amount"))
	assert.Equal(t, "Acme", tbl.Get(0, "shipper"))
}

func TestMultiSourceUnmatchedPrimaryRowsSurvive(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001"}),
		doc("invoice2.pdf", true, map[string]any{"invoice_number": "INV-002"}),
		doc("packing_list.pdf", false, map[string]any{"invoice_number": "INV-001", "shipper": "Acme"}),
	}, multiCfg())
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Acme", tbl.Get(0, "shipper"))
	assert.Equal(t, "", tbl.Get(1, "shipper"), "no-match rows keep attachment columns blank")
}

func TestMultiSourceFirstNonEmptyWins(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001"}),
		doc("packing_a.pdf", false, map[string]any{"invoice_number": "INV-001", "shipper": ""}),
		doc("packing_b.pdf", false, map[string]any{"invoice_number": "INV-001", "shipper": "Acme"}),
	}, multiCfg())
	require.NoError(t, err)
	assert.Equal(t, "Acme", tbl.Get(0, "shipper"))
}

func TestMultiSourcePrimaryValueWinsOnConflict(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001", "amount": "100"}),
		doc("packing.pdf", false, map[string]any{"invoice_number": "INV-001", "amount": "999"}),
	}, multiCfg())
	require.NoError(t, err)
	assert.Equal(t, "100", tbl.Get(0, "amount"))
	// The conflicting attachment value stays reachable under a shadow column.
	assert.Equal(t, "999", tbl.Get(0, "packing__amount"))
}

func TestMultiSourceBlankPrimaryTakesAttachmentValue(t *testing.T) {
	n := NewNormalizer(nil)
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001", "consignee": "-"}),
		doc("packing.pdf", false, map[string]any{"invoice_number": "INV-001", "consignee": "Globex"}),
	}, multiCfg())
	require.NoError(t, err)
	assert.Equal(t, "Globex", tbl.Get(0, "consignee"))
}

func TestMultiSourceNoPrimaryFails(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.BuildMultiSource([]SourceDocument{
		doc("packing.pdf", false, map[string]any{"invoice_number": "INV-001"}),
	}, multiCfg())
	require.Error(t, err)
	assert.True(t, common.IsConfigurationError(err))
}

func TestMultiSourceMissingMergeKeyFails(t *testing.T) {
	n := NewNormalizer(nil)
	_, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"bill_of_lading": "BL-1"}),
		doc("packing.pdf", false, map[string]any{"invoice_number": "INV-001", "shipper": "Acme"}),
	}, multiCfg())
	require.Error(t, err)
	assert.True(t, common.IsJoinKeyMissing(err))
}

func TestMultiSourceFallbackKeyForUnmatchedFilename(t *testing.T) {
	n := NewNormalizer(nil)
	// "weights.pdf" matches no rule; the configured internal join key applies.
	tbl, err := n.BuildMultiSource([]SourceDocument{
		doc("invoice.pdf", true, map[string]any{"invoice_number": "INV-001"}),
		doc("weights.pdf", false, map[string]any{"invoice_number": "INV-001", "gross_weight": "412"}),
	}, multiCfg())
	require.NoError(t, err)
	assert.Equal(t, "412", tbl.Get(0, "gross_weight"))
}
