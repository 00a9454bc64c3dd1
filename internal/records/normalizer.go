// Package records converts per-document extraction JSON into flat tabular
// rows, composing a primary document with its attachments when an item is
// multi-source.
package records

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

// DefaultLineItemField is the nested list exploded into one row per element
// when a configuration does not name its own.
const DefaultLineItemField = "line_items"

// Source identifies where a document's extraction output came from. It is
// carried alongside the fields rather than embedded in them, so metadata can
// never collide with a genuine extracted field name.
type Source struct {
	FileID    uuid.UUID
	Filename  string
	IsPrimary bool
}

// SourceDocument is one document's decoded extraction output plus its
// provenance.
type SourceDocument struct {
	Source Source
	Fields map[string]any
}

// DecodeDocuments decodes raw extraction JSON (an object or an array of
// objects) into documents tagged with the given source.
func DecodeDocuments(src Source, raw []byte) ([]SourceDocument, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, common.ExtractionError("extraction output is not a JSON array of objects", err)
		}
		docs := make([]SourceDocument, 0, len(list))
		for _, m := range list {
			docs = append(docs, SourceDocument{Source: src, Fields: m})
		}
		return docs, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, common.ExtractionError("extraction output is not a JSON object", err)
	}
	return []SourceDocument{{Source: src, Fields: m}}, nil
}

// Normalizer builds item-level tables from source documents.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// BuildSingleSource flattens the primary-tagged documents (or all documents
// when none is tagged primary) into one table, exploding the line-item list.
func (n *Normalizer) BuildSingleSource(docs []SourceDocument, lineItemField string) (*table.Table, error) {
	if len(docs) == 0 {
		return nil, common.ConfigurationError("no extraction records to normalize")
	}
	if lineItemField == "" {
		lineItemField = DefaultLineItemField
	}
	selected := primaries(docs)
	if len(selected) == 0 {
		selected = docs
	}
	t := table.New()
	for _, d := range selected {
		for _, row := range table.ExplodeList(d.Fields, lineItemField) {
			t.AddRow(row)
		}
	}
	return t, nil
}

// BuildMultiSource composes the primary documents with attachment documents
// grouped and aggregated by their applicable merge key, then left-merges each
// aggregate onto the primary table.
func (n *Normalizer) BuildMultiSource(docs []SourceDocument, cfg *entity.MappingConfiguration) (*table.Table, error) {
	prim := primaries(docs)
	if len(prim) == 0 {
		return nil, common.ConfigurationError("multi-source item has no primary extraction record")
	}
	lineItemField := cfg.LineItemField
	if lineItemField == "" {
		lineItemField = DefaultLineItemField
	}

	base := table.New()
	for _, d := range prim {
		for _, row := range table.ExplodeList(d.Fields, lineItemField) {
			base.AddRow(row)
		}
	}

	groups := n.groupAttachments(docs, cfg)
	for _, g := range groups {
		if err := n.mergeGroup(base, g, cfg); err != nil {
			return nil, err
		}
	}
	return base, nil
}

type attachmentGroup struct {
	joinKey string
	label   string
	docs    []SourceDocument
}

// groupAttachments assigns each attachment to a merge key using the
// filename-substring rules, falling back to the configured internal join
// key. The silent-fallback case is logged: a fallback usually means a rule
// is missing, not that one matched.
func (n *Normalizer) groupAttachments(docs []SourceDocument, cfg *entity.MappingConfiguration) []*attachmentGroup {
	var order []string
	byKey := map[string]*attachmentGroup{}
	for _, d := range docs {
		if d.Source.IsPrimary {
			continue
		}
		key, label, matched := ruleFor(d.Source.Filename, cfg.AttachmentSources)
		if !matched {
			key, label = cfg.InternalJoinKey, "att"
			n.logger.Warn("attachment matched no filename rule, using default join key",
				"filename", d.Source.Filename, "join_key", key)
		}
		if key == "" {
			continue
		}
		g, ok := byKey[key+"\x1f"+label]
		if !ok {
			g = &attachmentGroup{joinKey: key, label: label}
			byKey[key+"\x1f"+label] = g
			order = append(order, key+"\x1f"+label)
		}
		g.docs = append(g.docs, d)
	}
	out := make([]*attachmentGroup, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

func ruleFor(filename string, rules []entity.AttachmentSource) (key, label string, matched bool) {
	lower := strings.ToLower(filename)
	for _, r := range rules {
		if r.FilenameContains != "" && strings.Contains(lower, strings.ToLower(r.FilenameContains)) {
			return r.JoinKey, sanitizeLabel(r.FilenameContains), true
		}
	}
	return "", "", false
}

// mergeGroup aggregates one attachment group by its merge key (first
// non-empty value wins) and left-merges the aggregate onto base. Primary
// values win on collision unless blank; a conflicting attachment value is
// preserved under "<label>__<column>". Attachment-only columns are added
// without prefixing. No base row is ever dropped.
func (n *Normalizer) mergeGroup(base *table.Table, g *attachmentGroup, cfg *entity.MappingConfiguration) error {
	key := g.joinKey
	if !base.HasColumn(key) {
		if err := recoverKey(base, key); err != nil {
			return err
		}
	}

	norm := cfg.JoinNormalize
	agg := map[string]table.Row{}
	var aggOrder []string
	for _, d := range g.docs {
		row := table.Flatten(d.Fields)
		kv := norm.Apply(key, row[key])
		if kv == "" {
			continue
		}
		existing, ok := agg[kv]
		if !ok {
			agg[kv] = row
			aggOrder = append(aggOrder, kv)
			continue
		}
		for col, v := range row {
			if table.IsBlank(existing[col]) && !table.IsBlank(v) {
				existing[col] = v
			}
		}
	}

	for _, r := range base.Rows {
		kv := norm.Apply(key, r[key])
		att, ok := agg[kv]
		if !ok {
			continue
		}
		for col, v := range att {
			if col == key || table.IsBlank(v) {
				continue
			}
			cur, exists := r[col]
			switch {
			case !exists || table.IsBlank(cur):
				r[col] = v
				base.EnsureColumn(col)
			case cur != v:
				shadow := g.label + "__" + col
				r[shadow] = v
				base.EnsureColumn(shadow)
			}
		}
	}

	// Declare attachment-only columns even when no row matched, so the
	// merged shape is stable across items.
	cols := map[string]struct{}{}
	for _, kv := range aggOrder {
		for col := range agg[kv] {
			if col != key {
				cols[col] = struct{}{}
			}
		}
	}
	for _, col := range sortedColumnSet(cols) {
		base.EnsureColumn(col)
	}
	return nil
}

func sortedColumnSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// recoverKey materializes a missing merge key by coalescing prefixed
// variants ("<label>__<key>") produced by earlier merges.
func recoverKey(t *table.Table, key string) error {
	var variants []string
	for _, c := range t.Columns {
		if strings.HasSuffix(c, "__"+key) {
			variants = append(variants, c)
		}
	}
	if len(variants) == 0 {
		return common.JoinKeyMissingError("join key %q not present in primary table", key)
	}
	t.EnsureColumn(key)
	for _, r := range t.Rows {
		if table.IsBlank(r[key]) {
			r[key] = table.Coalesce(r, variants...)
		}
	}
	return nil
}

func primaries(docs []SourceDocument) []SourceDocument {
	var out []SourceDocument
	for _, d := range docs {
		if d.Source.IsPrimary {
			out = append(out, d)
		}
	}
	return out
}

func sanitizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "att"
	}
	return out
}
