// Package normalize implements the join-key normalization pipeline applied
// to both sides of a join column before comparison.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Options selects the transforms to apply. The pipeline order is fixed:
// digit stripping, zero padding, invisible-character scrubbing, NFKC,
// whitespace collapsing, case folding, then alias substitution. Aliases run
// last so they are authored against the canonical form.
type Options struct {
	StripNonDigits bool              `json:"strip_non_digits,omitempty"`
	ZFill          int               `json:"zfill,omitempty"`
	ZFillByKey     map[string]int    `json:"zfill_by_key,omitempty"`
	StripInvisible bool              `json:"strip_invisible,omitempty"`
	NFKC           bool              `json:"nfkc,omitempty"`
	NormalizeWS    bool              `json:"normalize_ws,omitempty"`
	Lower          bool              `json:"lower,omitempty"`
	ValueAliases   map[string]string `json:"value_alias_map,omitempty"`
	// ValueAliasesByKey overrides ValueAliases for a specific join key.
	ValueAliasesByKey map[string]map[string]string `json:"value_alias_map_by_key,omitempty"`
}

// Apply runs the pipeline on value for the named join key.
func (o Options) Apply(key, value string) string {
	v := value

	if o.StripNonDigits {
		var b strings.Builder
		for _, r := range v {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		v = b.String()
	}

	if width := o.zfillWidth(key); width > 0 && len(v) < width {
		v = strings.Repeat("0", width-len(v)) + v
	}

	if o.StripInvisible {
		v = strings.Map(dropInvisible, v)
	}

	if o.NFKC {
		v = norm.NFKC.String(v)
	}

	if o.NormalizeWS {
		// Separator characters OCR readily swaps for spaces count as
		// whitespace here, so "INV-001" and "INV 001" canonicalize alike.
		v = strings.Map(func(r rune) rune {
			switch r {
			case '-', '_', '/':
				return ' '
			}
			return r
		}, v)
		v = strings.Join(strings.Fields(v), " ")
	}

	if o.Lower {
		v = strings.ToLower(v)
	}

	if alias, ok := o.lookupAlias(key, v); ok {
		v = alias
	}
	return v
}

func (o Options) zfillWidth(key string) int {
	if w, ok := o.ZFillByKey[key]; ok {
		return w
	}
	return o.ZFill
}

// dropInvisible removes zero-width and control characters that OCR output
// tends to smuggle into identifiers.
func dropInvisible(r rune) rune {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff', '\u00ad', '\u2060':
		return -1
	}
	if unicode.IsControl(r) && r != '\n' && r != '\t' {
		return -1
	}
	return r
}

func (o Options) lookupAlias(key, v string) (string, bool) {
	m := o.ValueAliases
	if per, ok := o.ValueAliasesByKey[key]; ok {
		m = per
	}
	if len(m) == 0 {
		return "", false
	}
	// A value that is already a canonical target stays put. This keeps the
	// pipeline idempotent even when an alias target appears as another key.
	for _, target := range m {
		if v == target {
			return "", false
		}
	}
	alias, ok := m[v]
	return alias, ok
}

// Enabled reports whether any transform is configured.
func (o Options) Enabled() bool {
	return o.StripNonDigits || o.ZFill > 0 || len(o.ZFillByKey) > 0 ||
		o.StripInvisible || o.NFKC || o.NormalizeWS || o.Lower ||
		len(o.ValueAliases) > 0 || len(o.ValueAliasesByKey) > 0
}
