package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/normalize"
)

// JoinKeyPair names one join column on each side of the external join.
type JoinKeyPair struct {
	Local     string
	Reference string
}

// AttachmentSource routes attachments to a merge key by filename substring.
type AttachmentSource struct {
	JoinKey          string `json:"join_key"`
	FilenameContains string `json:"filename_contains"`
}

// MappingConfiguration declares how one item's extraction output is merged
// and joined against the external reference dataset. This is the persisted
// JSON shape consumed and produced by the resolver.
type MappingConfiguration struct {
	ItemType              string `json:"item_type"`
	ExternalReferencePath string `json:"external_reference_path"`
	// ExternalJoinKeys entries are "local" or "local:reference" when the two
	// sides name the column differently.
	ExternalJoinKeys  []string           `json:"external_join_keys"`
	ColumnAliases     map[string]string  `json:"column_aliases,omitempty"`
	JoinNormalize     normalize.Options  `json:"join_normalize,omitempty"`
	AttachmentSources []AttachmentSource `json:"attachment_sources,omitempty"`
	InternalJoinKey   string             `json:"internal_join_key,omitempty"`
	MergeSuffix       string             `json:"merge_suffix,omitempty"`
	OutputMeta        map[string]string  `json:"output_meta,omitempty"`
	// LineItemField is the nested list exploded into one row per element
	// during flattening.
	LineItemField string `json:"line_item_field,omitempty"`
}

// KeyPairs parses ExternalJoinKeys into local/reference pairs.
func (c *MappingConfiguration) KeyPairs() []JoinKeyPair {
	out := make([]JoinKeyPair, 0, len(c.ExternalJoinKeys))
	for _, k := range c.ExternalJoinKeys {
		local, ref, found := strings.Cut(k, ":")
		if !found {
			ref = local
		}
		out = append(out, JoinKeyPair{Local: strings.TrimSpace(local), Reference: strings.TrimSpace(ref)})
	}
	return out
}

// Validate checks the configuration for structural problems. expectedItemType
// may be empty when the caller has no item context yet.
func (c *MappingConfiguration) Validate(expectedItemType string) error {
	if !constants.ValidItemType(c.ItemType) {
		return common.ConfigurationError("unknown item_type %q", c.ItemType)
	}
	if expectedItemType != "" && c.ItemType != expectedItemType {
		return common.ConfigurationError("configuration item_type %q does not match item type %q", c.ItemType, expectedItemType)
	}
	if strings.TrimSpace(c.ExternalReferencePath) == "" {
		return common.ConfigurationError("external_reference_path is required")
	}
	if len(c.ExternalJoinKeys) == 0 {
		return common.ConfigurationError("external_join_keys must not be empty")
	}
	for _, p := range c.KeyPairs() {
		if p.Local == "" || p.Reference == "" {
			return common.ConfigurationError("malformed join key entry %q", fmt.Sprintf("%s:%s", p.Local, p.Reference))
		}
	}
	if c.ItemType == string(constants.MultiSource) && c.InternalJoinKey == "" && len(c.AttachmentSources) == 0 {
		return common.ConfigurationError("multi-source configuration needs internal_join_key or attachment_sources")
	}
	for _, a := range c.AttachmentSources {
		if a.JoinKey == "" {
			return common.ConfigurationError("attachment source with empty join_key")
		}
	}
	return nil
}

// ParseMappingConfiguration validates raw JSON against the schema and
// decodes it.
func ParseMappingConfiguration(raw []byte) (*MappingConfiguration, error) {
	if err := ValidateJSONAgainstSchema(BuildMappingConfigSchema(), raw); err != nil {
		return nil, common.NewAppError(common.CodeConfiguration, "mapping configuration rejected by schema", err)
	}
	var cfg MappingConfiguration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, common.NewAppError(common.CodeConfiguration, "mapping configuration is not valid JSON", err)
	}
	return &cfg, nil
}

// MappingTemplate is a stored configuration candidate for the resolver.
// A nil CompanyID or DocType acts as a wildcard.
type MappingTemplate struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	CompanyID *uuid.UUID           `json:"company_id,omitempty"`
	DocType   *string              `json:"doc_type,omitempty"`
	ItemType  string               `json:"item_type"`
	IsDefault bool                 `json:"is_default"`
	Config    MappingConfiguration `json:"config"`
}
