package table

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ReservedPrefix marks internal bookkeeping keys in raw extraction JSON.
// They are stripped before flattening so they can never collide with a
// genuine extracted field.
const ReservedPrefix = "__"

// StructuralSuffix tags columns that hold an un-flattened nested collection
// (JSON-encoded). Consolidation drops them before the final union.
const StructuralSuffix = "__json"

// Flatten converts a nested extraction object into a flat row. Nested object
// keys are joined with "_" so any nested field can serve as a join key.
// Scalar arrays join with ", "; arrays of objects are kept JSON-encoded
// under "<path>__json".
func Flatten(data map[string]any) Row {
	out := Row{}
	flattenInto(out, "", data)
	return out
}

func flattenInto(out Row, prefix string, data map[string]any) {
	for k, v := range data {
		if strings.HasPrefix(k, ReservedPrefix) {
			continue
		}
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}
		switch t := v.(type) {
		case map[string]any:
			flattenInto(out, key, t)
		case []any:
			if isObjectList(t) {
				if b, err := json.Marshal(t); err == nil {
					out[key+StructuralSuffix] = string(b)
				}
				continue
			}
			parts := make([]string, 0, len(t))
			for _, e := range t {
				parts = append(parts, Scalar(e))
			}
			out[key] = strings.Join(parts, ", ")
		default:
			out[key] = Scalar(v)
		}
	}
}

// ExplodeList flattens data once per element of the nested object list at
// listKey, each element inheriting the document-level fields. When the list
// is absent or empty, a single flattened row is returned.
func ExplodeList(data map[string]any, listKey string) []Row {
	base := Flatten(data)
	delete(base, listKey+StructuralSuffix)

	list, ok := data[listKey].([]any)
	if !ok || !isObjectList(list) || len(list) == 0 {
		return []Row{base}
	}

	rows := make([]Row, 0, len(list))
	for _, e := range list {
		item, _ := e.(map[string]any)
		row := base.Clone()
		flattenInto(row, listKey, item)
		rows = append(rows, row)
	}
	return rows
}

func isObjectList(list []any) bool {
	if len(list) == 0 {
		return false
	}
	for _, e := range list {
		if _, ok := e.(map[string]any); !ok {
			return false
		}
	}
	return true
}

// Scalar renders a decoded JSON value as a cell string. Numbers keep their
// shortest representation (no trailing ".000000").
func Scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// StructuralColumns returns the declared columns holding un-flattened
// collections, sorted for stable output.
func (t *Table) StructuralColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if strings.HasSuffix(c, StructuralSuffix) {
			cols = append(cols, c)
		}
	}
	sort.Strings(cols)
	return cols
}
