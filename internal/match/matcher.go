// Package match implements the pluggable value-matching strategies used for
// ad-hoc comparisons and join diagnostics. All strategies are pure functions
// over two strings; a Matcher is safe for concurrent use.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

// Strategy names a matching algorithm.
type Strategy string

const (
	StrategyExact    Strategy = "exact"
	StrategyContains Strategy = "contains"
	StrategySplit    Strategy = "split"
	StrategyFuzzy    Strategy = "fuzzy"
	StrategyRegex    Strategy = "regex"
	StrategySmart    Strategy = "smart"
)

// Result is the transient outcome of one comparison. It is used for
// diagnostics and tests, never persisted.
type Result struct {
	Matched  bool
	Strategy Strategy
	Left     string
	Right    string
	Score    float64
	Tokens   []string
	Reason   string
}

// Config tunes the matcher. Zero values fall back to defaults.
type Config struct {
	// Strategies enabled for smart mode. Empty means all non-regex strategies.
	Strategies []Strategy
	// Priority is the order smart mode tries strategies in.
	Priority []Strategy
	// Separators used for token splitting.
	Separators []string
	// FuzzyThreshold is the minimum similarity for a fuzzy success.
	FuzzyThreshold float64
	// MinTokenLength filters out short, noisy tokens.
	MinTokenLength int
	CaseSensitive  bool
	// Patterns holds named regexes for the regex strategy.
	Patterns map[string]string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Strategies:     []Strategy{StrategyExact, StrategySplit, StrategyContains, StrategyFuzzy},
		Priority:       []Strategy{StrategyExact, StrategySplit, StrategyContains, StrategyFuzzy},
		Separators:     []string{" ", "-", "_", "/", ".", ",", ";", ":", "#"},
		FuzzyThreshold: 0.8,
		MinTokenLength: 3,
	}
}

// Matcher evaluates strategies against pairs of values.
type Matcher struct {
	cfg      Config
	enabled  map[Strategy]struct{}
	patterns map[string]*regexp.Regexp
}

// NewMatcher compiles cfg, returning an error for an invalid pattern.
func NewMatcher(cfg Config) (*Matcher, error) {
	def := DefaultConfig()
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = def.Strategies
	}
	if len(cfg.Priority) == 0 {
		cfg.Priority = def.Priority
	}
	if len(cfg.Separators) == 0 {
		cfg.Separators = def.Separators
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = def.FuzzyThreshold
	}
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = def.MinTokenLength
	}

	m := &Matcher{
		cfg:      cfg,
		enabled:  make(map[Strategy]struct{}, len(cfg.Strategies)),
		patterns: make(map[string]*regexp.Regexp, len(cfg.Patterns)),
	}
	for _, s := range cfg.Strategies {
		m.enabled[s] = struct{}{}
	}
	for name, expr := range cfg.Patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", name, err)
		}
		m.patterns[name] = re
	}
	return m, nil
}

// canon trims and, unless case-sensitive, lowercases a value.
func (m *Matcher) canon(v string) string {
	v = strings.Join(strings.Fields(v), " ")
	if !m.cfg.CaseSensitive {
		v = strings.ToLower(v)
	}
	return v
}

// Exact is case/whitespace-normalized equality.
func (m *Matcher) Exact(a, b string) Result {
	ca, cb := m.canon(a), m.canon(b)
	r := Result{Strategy: StrategyExact, Left: a, Right: b}
	if ca != "" && ca == cb {
		r.Matched = true
		r.Score = 1.0
		r.Reason = "values equal after normalization"
	} else {
		r.Reason = "values differ"
	}
	return r
}

// Contains succeeds when either value contains the other (both at least the
// minimum token length). Score is the length ratio shorter/longer.
func (m *Matcher) Contains(a, b string) Result {
	ca, cb := m.canon(a), m.canon(b)
	r := Result{Strategy: StrategyContains, Left: a, Right: b}
	short, long := ca, cb
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) < m.cfg.MinTokenLength {
		r.Reason = fmt.Sprintf("shorter value under %d chars", m.cfg.MinTokenLength)
		return r
	}
	if strings.Contains(long, short) {
		r.Matched = true
		r.Score = float64(len(short)) / float64(len(long))
		r.Reason = "one value contains the other"
	} else {
		r.Reason = "no containment"
	}
	return r
}

// Split decomposes both values into candidate identifier tokens and succeeds
// when the token sets intersect. Score is the Jaccard overlap.
func (m *Matcher) Split(a, b string) Result {
	ta := m.Tokens(a)
	tb := m.Tokens(b)
	r := Result{Strategy: StrategySplit, Left: a, Right: b}
	if len(ta) == 0 || len(tb) == 0 {
		r.Reason = "no usable tokens"
		return r
	}
	var overlap []string
	union := make(map[string]struct{}, len(ta)+len(tb))
	for t := range ta {
		union[t] = struct{}{}
		if _, ok := tb[t]; ok {
			overlap = append(overlap, t)
		}
	}
	for t := range tb {
		union[t] = struct{}{}
	}
	r.Score = float64(len(overlap)) / float64(len(union))
	if len(overlap) > 0 {
		r.Matched = true
		r.Tokens = overlap
		r.Reason = fmt.Sprintf("%d shared token(s)", len(overlap))
	} else {
		r.Reason = "token sets disjoint"
	}
	return r
}

// Fuzzy succeeds when the normalized similarity ratio reaches the threshold.
func (m *Matcher) Fuzzy(a, b string) Result {
	ca, cb := m.canon(a), m.canon(b)
	r := Result{Strategy: StrategyFuzzy, Left: a, Right: b}
	if ca == "" || cb == "" {
		r.Reason = "empty value"
		return r
	}
	r.Score = levenshtein.Match(ca, cb, nil)
	if r.Score >= m.cfg.FuzzyThreshold {
		r.Matched = true
		r.Reason = fmt.Sprintf("similarity %.2f >= %.2f", r.Score, m.cfg.FuzzyThreshold)
	} else {
		r.Reason = fmt.Sprintf("similarity %.2f below %.2f", r.Score, m.cfg.FuzzyThreshold)
	}
	return r
}

// Regex applies the named pattern to both values and succeeds when the
// extracted capture groups are equal.
func (m *Matcher) Regex(name, a, b string) Result {
	r := Result{Strategy: StrategyRegex, Left: a, Right: b}
	re, ok := m.patterns[name]
	if !ok {
		r.Reason = fmt.Sprintf("unknown pattern %q", name)
		return r
	}
	ga := re.FindStringSubmatch(m.canon(a))
	gb := re.FindStringSubmatch(m.canon(b))
	if ga == nil || gb == nil {
		r.Reason = "pattern did not match both values"
		return r
	}
	// Compare capture groups; fall back to the whole match when there are none.
	ka, kb := ga[min(1, len(ga)-1):], gb[min(1, len(gb)-1):]
	if len(ka) == len(kb) {
		equal := true
		for i := range ka {
			if ka[i] != kb[i] {
				equal = false
				break
			}
		}
		if equal {
			r.Matched = true
			r.Score = 1.0
			r.Tokens = ka
			r.Reason = fmt.Sprintf("pattern %q groups equal", name)
			return r
		}
	}
	r.Reason = fmt.Sprintf("pattern %q groups differ", name)
	return r
}

// Smart tries the enabled strategies in priority order and returns the first
// success. When nothing succeeds it returns the highest-scoring attempt with
// Matched=false — never a silent false positive.
func (m *Matcher) Smart(a, b string) Result {
	var best Result
	best.Strategy = StrategySmart
	best.Left, best.Right = a, b
	best.Score = -1
	for _, s := range m.cfg.Priority {
		if _, ok := m.enabled[s]; !ok {
			continue
		}
		var r Result
		switch s {
		case StrategyExact:
			r = m.Exact(a, b)
		case StrategyContains:
			r = m.Contains(a, b)
		case StrategySplit:
			r = m.Split(a, b)
		case StrategyFuzzy:
			r = m.Fuzzy(a, b)
		default:
			continue
		}
		if r.Matched {
			return r
		}
		if r.Score > best.Score {
			best = r
			best.Matched = false
		}
	}
	if best.Score < 0 {
		best.Score = 0
		best.Reason = "no strategy enabled"
	}
	return best
}

// Tokens extracts the candidate identifier token set for a value: separator
// splits plus alphanumeric-only and digits-only derived variants, filtered
// by the minimum token length.
func (m *Matcher) Tokens(v string) map[string]struct{} {
	c := m.canon(v)
	parts := []string{c}
	for _, sep := range m.cfg.Separators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	out := make(map[string]struct{})
	add := func(t string) {
		if len(t) >= m.cfg.MinTokenLength {
			out[t] = struct{}{}
		}
	}
	for _, p := range parts {
		add(p)
		add(keepFunc(p, isAlnum))
		add(keepFunc(p, isDigit))
	}
	return out
}

func keepFunc(s string, keep func(rune) bool) string {
	var b strings.Builder
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
