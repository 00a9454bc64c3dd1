package entity

import "github.com/joseph-ayodele/order-mapper/constants"

// BuildMappingConfigSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate persisted mapping configurations before
// decoding.
func BuildMappingConfigSchema() map[string]any {
	normalizeProps := map[string]any{
		"strip_non_digits": map[string]any{"type": "boolean"},
		"zfill":            map[string]any{"type": "integer", "minimum": 0},
		"zfill_by_key": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
		},
		"strip_invisible": map[string]any{"type": "boolean"},
		"nfkc":            map[string]any{"type": "boolean"},
		"normalize_ws":    map[string]any{"type": "boolean"},
		"lower":           map[string]any{"type": "boolean"},
		"value_alias_map": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"value_alias_map_by_key": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}

	props := map[string]any{
		"item_type":               map[string]any{"type": "string", "enum": constants.ItemTypes},
		"external_reference_path": map[string]any{"type": "string", "minLength": 1},
		"external_join_keys": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"column_aliases": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"join_normalize": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           normalizeProps,
		},
		"attachment_sources": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"join_key":          map[string]any{"type": "string", "minLength": 1},
					"filename_contains": map[string]any{"type": "string"},
				},
				"required": []string{"join_key"},
			},
		},
		"internal_join_key": map[string]any{"type": "string"},
		"merge_suffix":      map[string]any{"type": "string"},
		"line_item_field":   map[string]any{"type": "string"},
		"output_meta": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"item_type", "external_reference_path", "external_join_keys"},
	}
}

// BuildColumnTemplateSchema returns the schema for document-type column
// templates.
func BuildColumnTemplateSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"template_name": map[string]any{"type": "string", "minLength": 1},
			"version":       map[string]any{"type": "integer", "minimum": 0},
			"column_order": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"column_definitions": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"type":          map[string]any{"type": "string", "enum": []string{"source", "computed", "constant"}},
						"source_column": map[string]any{"type": "string"},
						"expression":    map[string]any{"type": "string"},
						"value":         map[string]any{"type": "string"},
						"default_value": map[string]any{"type": "string"},
					},
					"required": []string{"type"},
				},
			},
		},
		"required": []string{"template_name", "column_order", "column_definitions"},
	}
}
