// Package join performs the left outer join between a normalized extraction
// table and the external reference dataset.
package join

import (
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/match"
	"github.com/joseph-ayodele/order-mapper/internal/normalize"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

// MatchedColumn is derived from the join outcome unless the extraction data
// already carries a column of that name.
const MatchedColumn = "Matched"

// DefaultMergeSuffix disambiguates reference columns that collide with
// extraction columns.
const DefaultMergeSuffix = "_ref"

// nearMissLimit caps how many unmatched rows per join get a diagnostic
// pass, so pathological inputs do not turn the join quadratic.
const nearMissLimit = 3

// Engine joins extraction rows against a reference table.
type Engine struct {
	logger  *slog.Logger
	matcher *match.Matcher
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	// the default config carries no regex patterns, so compilation cannot fail
	m, _ := match.NewMatcher(match.DefaultConfig())
	return &Engine{logger: logger, matcher: m}
}

// LeftJoin joins left against ref on the declared key pairs, normalizing
// both sides with opts before comparison. Every left row is preserved; rows
// without a reference match keep blank reference columns and Matched=false.
// Reference rows sharing a key: the first occurrence wins.
func (e *Engine) LeftJoin(left, ref *table.Table, keys []entity.JoinKeyPair, opts normalize.Options, suffix string) (*table.Table, error) {
	if len(keys) == 0 {
		return nil, common.ConfigurationError("join requires at least one key pair")
	}
	if suffix == "" {
		suffix = DefaultMergeSuffix
	}

	for _, k := range keys {
		if !left.HasColumn(k.Local) {
			if err := recoverLocalKey(left, k.Local); err != nil {
				return nil, err
			}
		}
		if !ref.HasColumn(k.Reference) {
			return nil, common.JoinKeyMissingError("reference key %q not present in reference dataset", k.Reference)
		}
	}

	// Index the reference side by the normalized compound key.
	index := make(map[string]table.Row, ref.Len())
	for _, r := range ref.Rows {
		ck := compoundKey(r, keys, opts, refSide)
		if ck == "" {
			continue
		}
		if _, ok := index[ck]; !ok {
			index[ck] = r
		}
	}

	deriveMatched := !left.HasColumn(MatchedColumn)

	out := table.New(left.Columns...)
	// Reference columns come after the extraction columns, renamed on
	// collision.
	refCols := make(map[string]string, len(ref.Columns))
	keyRefCols := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keyRefCols[k.Reference] = struct{}{}
	}
	for _, c := range ref.Columns {
		if _, isKey := keyRefCols[c]; isKey {
			continue
		}
		name := c
		if out.HasColumn(name) {
			name = c + suffix
		}
		refCols[c] = name
		out.EnsureColumn(name)
	}
	if deriveMatched {
		out.EnsureColumn(MatchedColumn)
	}

	// Raw reference values of the first key, for near-miss diagnostics on
	// unmatched rows.
	refKeyVals := make([]string, 0, ref.Len())
	seen := make(map[string]struct{}, ref.Len())
	for _, r := range ref.Rows {
		v := r[keys[0].Reference]
		if table.IsBlank(v) {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			refKeyVals = append(refKeyVals, v)
		}
	}

	matched := 0
	diagnosed := 0
	for _, l := range left.Rows {
		row := l.Clone()
		ck := compoundKey(l, keys, opts, localSide)
		refRow, ok := index[ck]
		if ok && ck != "" {
			matched++
			for c, name := range refCols {
				if v := refRow[c]; v != "" {
					row[name] = v
				}
			}
		} else if diagnosed < nearMissLimit {
			if r, found := e.NearMiss(l[keys[0].Local], refKeyVals); found {
				diagnosed++
				e.logger.Debug("join.near_miss",
					"key", keys[0].Local,
					"value", r.Left,
					"closest", r.Right,
					"strategy", r.Strategy,
					"score", r.Score,
					"reason", r.Reason,
				)
			}
		}
		if deriveMatched {
			if ok && ck != "" {
				row[MatchedColumn] = "true"
			} else {
				row[MatchedColumn] = "false"
			}
		}
		out.Rows = append(out.Rows, row)
	}

	e.logger.Info("join.left.ok",
		"left_rows", left.Len(),
		"reference_rows", ref.Len(),
		"matched", matched,
		"keys", len(keys),
	)
	return out, nil
}

// NearMiss runs the smart matching cascade between an unmatched key value
// and the reference side's values, returning the closest candidate. A result
// with Matched=true means a looser strategy than the join's exact comparison
// would have paired the values, which usually points at a normalization gap
// in the configuration rather than a true orphan.
func (e *Engine) NearMiss(value string, candidates []string) (match.Result, bool) {
	if table.IsBlank(value) || len(candidates) == 0 {
		return match.Result{}, false
	}
	var best match.Result
	bestScore := -1.0
	for _, c := range candidates {
		r := e.matcher.Smart(value, c)
		if r.Matched {
			return r, true
		}
		if r.Score > bestScore {
			best = r
			bestScore = r.Score
		}
	}
	if bestScore < 0 {
		return match.Result{}, false
	}
	return best, true
}

type side int

const (
	localSide side = iota
	refSide
)

// compoundKey normalizes each declared key column of the row and joins them.
// Returns "" when every component is blank.
func compoundKey(r table.Row, keys []entity.JoinKeyPair, opts normalize.Options, s side) string {
	parts := make([]string, 0, len(keys))
	blank := true
	for _, k := range keys {
		col := k.Local
		if s == refSide {
			col = k.Reference
		}
		// Normalization options are keyed by the local column name on both
		// sides, so per-key widths and aliases line up across the join.
		v := opts.Apply(k.Local, r[col])
		if v != "" {
			blank = false
		}
		parts = append(parts, v)
	}
	if blank {
		return ""
	}
	return strings.Join(parts, "\x1f")
}

// recoverLocalKey coalesces multi-source shadow columns ("<label>__<key>")
// into the missing key column.
func recoverLocalKey(t *table.Table, key string) error {
	var variants []string
	for _, c := range t.Columns {
		if strings.HasSuffix(c, "__"+key) {
			variants = append(variants, c)
		}
	}
	if len(variants) == 0 {
		return common.JoinKeyMissingError("join key %q not present in extraction table", key)
	}
	t.EnsureColumn(key)
	for _, r := range t.Rows {
		if table.IsBlank(r[key]) {
			r[key] = table.Coalesce(r, variants...)
		}
	}
	return nil
}
