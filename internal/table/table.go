package table

import (
	"sort"
	"strings"
)

// Row is one record keyed by column name. Absent keys render as blanks.
type Row map[string]string

// Table is an ordered set of columns plus rows. It is the unit of exchange
// between the record normalizer, the join engine, and consolidation.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// placeholders that count as "no value" when coalescing.
var blankValues = map[string]struct{}{
	"":     {},
	"-":    {},
	"n/a":  {},
	"na":   {},
	"null": {},
	"none": {},
}

// IsBlank reports whether v carries no usable value.
func IsBlank(v string) bool {
	_, ok := blankValues[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// HasColumn reports whether the table declares column name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumn appends the column if it is not declared yet.
func (t *Table) EnsureColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// AddRow appends a row, declaring any columns it introduces.
func (t *Table) AddRow(r Row) {
	for _, c := range sortedKeys(r) {
		t.EnsureColumn(c)
	}
	t.Rows = append(t.Rows, r)
}

// Get returns the value of column name in row i ("" if unset).
func (t *Table) Get(i int, name string) string {
	return t.Rows[i][name]
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.Rows) }

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, r.Clone())
	}
	return out
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// DropColumns removes the named columns from the declaration and all rows.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, r := range t.Rows {
		for n := range drop {
			delete(r, n)
		}
	}
}

// Coalesce returns the first non-blank value among the named columns of r.
func Coalesce(r Row, names ...string) string {
	for _, n := range names {
		if v, ok := r[n]; ok && !IsBlank(v) {
			return v
		}
	}
	return ""
}

// DedupeRows removes rows that are exact duplicates of an earlier row,
// comparing the declared columns only. Order is preserved.
func (t *Table) DedupeRows() {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for _, r := range t.Rows {
		var b strings.Builder
		for _, c := range t.Columns {
			b.WriteString(r[c])
			b.WriteByte('\x1f')
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r)
	}
	t.Rows = kept
}

func sortedKeys(r Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
