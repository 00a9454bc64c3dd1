package entity

import (
	"encoding/json"

	"github.com/joseph-ayodele/order-mapper/internal/common"
)

// ColumnKind tags how a templated export column is produced.
type ColumnKind string

const (
	ColumnSource   ColumnKind = "source"   // copied from a consolidated column
	ColumnConstant ColumnKind = "constant" // fixed value
	ColumnComputed ColumnKind = "computed" // expression evaluated per row
)

// ColumnDef defines one column of a templated export.
type ColumnDef struct {
	Type         ColumnKind `json:"type"`
	SourceColumn string     `json:"source_column,omitempty"`
	Expression   string     `json:"expression,omitempty"`
	Value        string     `json:"value,omitempty"`
	DefaultValue string     `json:"default_value,omitempty"`
}

// ColumnTemplate is the document-type-level export shape: an ordered column
// list plus a definition per column.
type ColumnTemplate struct {
	TemplateName      string               `json:"template_name"`
	Version           int                  `json:"version"`
	ColumnOrder       []string             `json:"column_order"`
	ColumnDefinitions map[string]ColumnDef `json:"column_definitions"`
}

// Validate checks the template exhaustively so malformed definitions fail at
// load time, not deep inside consolidation.
func (t *ColumnTemplate) Validate() error {
	if t.TemplateName == "" {
		return common.ConfigurationError("column template needs template_name")
	}
	if len(t.ColumnOrder) == 0 {
		return common.ConfigurationError("column template %q has empty column_order", t.TemplateName)
	}
	for _, name := range t.ColumnOrder {
		def, ok := t.ColumnDefinitions[name]
		if !ok {
			return common.ConfigurationError("column %q listed in column_order but not defined", name)
		}
		switch def.Type {
		case ColumnSource:
			if def.SourceColumn == "" {
				return common.ConfigurationError("source column %q needs source_column", name)
			}
		case ColumnConstant:
			// empty constants are allowed
		case ColumnComputed:
			if def.Expression == "" {
				return common.ConfigurationError("computed column %q needs expression", name)
			}
		default:
			return common.ConfigurationError("column %q has unknown type %q", name, def.Type)
		}
	}
	return nil
}

// ParseColumnTemplate validates raw JSON against the schema and decodes it.
func ParseColumnTemplate(raw []byte) (*ColumnTemplate, error) {
	if err := ValidateJSONAgainstSchema(BuildColumnTemplateSchema(), raw); err != nil {
		return nil, common.NewAppError(common.CodeConfiguration, "column template rejected by schema", err)
	}
	var t ColumnTemplate
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, common.NewAppError(common.CodeConfiguration, "column template is not valid JSON", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
