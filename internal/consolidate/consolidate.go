// Package consolidate merges the mapped per-item tables into one order-level
// table.
package consolidate

import (
	"log/slog"

	"github.com/joseph-ayodele/order-mapper/internal/table"
)

// Union combines item tables into a single table: column union in first-seen
// order, blanks where an item never declared a column, structural helper
// columns dropped, exact-duplicate rows removed.
func Union(items []*table.Table, logger *slog.Logger) *table.Table {
	if logger == nil {
		logger = slog.Default()
	}
	out := table.New()
	for _, item := range items {
		if item == nil || item.Len() == 0 {
			continue
		}
		clean := item.Clone()
		clean.DropColumns(clean.StructuralColumns()...)
		for _, c := range clean.Columns {
			out.EnsureColumn(c)
		}
		for _, r := range clean.Rows {
			out.Rows = append(out.Rows, r.Clone())
		}
	}
	before := out.Len()
	out.DedupeRows()
	logger.Info("consolidate.union.ok",
		"tables", len(items),
		"rows", out.Len(),
		"deduped", before-out.Len(),
		"columns", len(out.Columns),
	)
	return out
}
