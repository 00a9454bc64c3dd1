package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/common"
)

const sampleConfigJSON = `{
	"item_type": "MULTI_SOURCE",
	"external_reference_path": "masters/shipments.xlsx",
	"external_join_keys": ["invoice_number", "container_no:container_number"],
	"column_aliases": {"Cntr No.": "container_number"},
	"join_normalize": {"normalize_ws": true, "lower": true, "strip_invisible": true},
	"attachment_sources": [{"join_key": "invoice_number", "filename_contains": "packing"}],
	"internal_join_key": "invoice_number",
	"merge_suffix": "_ref",
	"output_meta": {"sheet": "Mapped"}
}`

func TestParseMappingConfiguration(t *testing.T) {
	cfg, err := ParseMappingConfiguration([]byte(sampleConfigJSON))
	require.NoError(t, err)
	assert.Equal(t, string(constants.MultiSource), cfg.ItemType)
	assert.Equal(t, "masters/shipments.xlsx", cfg.ExternalReferencePath)
	require.NoError(t, cfg.Validate(string(constants.MultiSource)))

	pairs := cfg.KeyPairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, JoinKeyPair{Local: "invoice_number", Reference: "invoice_number"}, pairs[0])
	assert.Equal(t, JoinKeyPair{Local: "container_no", Reference: "container_number"}, pairs[1])
}

func TestParseMappingConfigurationSchemaRejects(t *testing.T) {
	bad := [][]byte{
		[]byte(`{"item_type": "SINGLE_SOURCE"}`),                        // missing reference + keys
		[]byte(`{"item_type": "WEIRD", "external_reference_path": "x", "external_join_keys": ["k"]}`),
		[]byte(`{"item_type": "SINGLE_SOURCE", "external_reference_path": "x", "external_join_keys": []}`),
		[]byte(`{"item_type": "SINGLE_SOURCE", "external_reference_path": "x", "external_join_keys": ["k"], "bogus": 1}`),
	}
	for _, raw := range bad {
		_, err := ParseMappingConfiguration(raw)
		require.Error(t, err, "raw=%s", raw)
		assert.True(t, common.IsConfigurationError(err))
	}
}

func TestValidateItemTypeMismatch(t *testing.T) {
	cfg, err := ParseMappingConfiguration([]byte(sampleConfigJSON))
	require.NoError(t, err)
	err = cfg.Validate(string(constants.SingleSource))
	require.Error(t, err)
	assert.True(t, common.IsConfigurationError(err))
}

func TestValidateMultiSourceNeedsMergeKey(t *testing.T) {
	cfg := &MappingConfiguration{
		ItemType:              string(constants.MultiSource),
		ExternalReferencePath: "ref.csv",
		ExternalJoinKeys:      []string{"k"},
	}
	require.Error(t, cfg.Validate(""))
}

func TestParseColumnTemplate(t *testing.T) {
	raw := []byte(`{
		"template_name": "customs-export",
		"version": 2,
		"column_order": ["Invoice", "Origin", "Total"],
		"column_definitions": {
			"Invoice": {"type": "source", "source_column": "invoice_number"},
			"Origin":  {"type": "constant", "value": "NG"},
			"Total":   {"type": "computed", "expression": "row.amount", "default_value": "0"}
		}
	}`)
	tpl, err := ParseColumnTemplate(raw)
	require.NoError(t, err)
	assert.Equal(t, "customs-export", tpl.TemplateName)
	assert.Len(t, tpl.ColumnOrder, 3)
}

func TestParseColumnTemplateInvalid(t *testing.T) {
	tests := []string{
		// column listed but not defined
		`{"template_name":"t","column_order":["A"],"column_definitions":{}}`,
		// computed without expression
		`{"template_name":"t","column_order":["A"],"column_definitions":{"A":{"type":"computed"}}}`,
		// source without source_column
		`{"template_name":"t","column_order":["A"],"column_definitions":{"A":{"type":"source"}}}`,
		// unknown kind
		`{"template_name":"t","column_order":["A"],"column_definitions":{"A":{"type":"magic"}}}`,
	}
	for _, raw := range tests {
		_, err := ParseColumnTemplate([]byte(raw))
		require.Error(t, err, "raw=%s", raw)
	}
}
