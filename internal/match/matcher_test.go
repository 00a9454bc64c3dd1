package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatcher(t *testing.T, cfg Config) *Matcher {
	t.Helper()
	m, err := NewMatcher(cfg)
	require.NoError(t, err)
	return m
}

func TestExact(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Exact("INV-001", "inv-001")
	assert.True(t, r.Matched)
	assert.Equal(t, 1.0, r.Score)

	r = m.Exact("INV  001", "inv 001")
	assert.True(t, r.Matched, "whitespace is collapsed before comparison")

	assert.False(t, m.Exact("INV-001", "INV-002").Matched)
	assert.False(t, m.Exact("", "").Matched, "two empties are not a match")
}

func TestExactCaseSensitive(t *testing.T) {
	m := newMatcher(t, Config{CaseSensitive: true})
	assert.False(t, m.Exact("INV-001", "inv-001").Matched)
	assert.True(t, m.Exact("INV-001", "INV-001").Matched)
}

func TestContains(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Contains("INV-001", "SHIPMENT INV-001 COPY")
	assert.True(t, r.Matched)
	assert.InDelta(t, 7.0/21.0, r.Score, 0.001)

	assert.False(t, m.Contains("ab", "abcdef").Matched, "short values are rejected")
	assert.False(t, m.Contains("INV-001", "INV-002").Matched)
}

func TestSplit(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Split("INV-001/2024", "2024 001")
	assert.True(t, r.Matched)
	assert.NotEmpty(t, r.Tokens)
	assert.Greater(t, r.Score, 0.0)

	assert.False(t, m.Split("alpha-beta", "gamma-delta").Matched)
}

func TestSplitDerivedDigitTokens(t *testing.T) {
	m := newMatcher(t, Config{})
	// "BL4471" only shares the digits-only derived token with "4471".
	r := m.Split("BL4471", "4471")
	assert.True(t, r.Matched)
	assert.Contains(t, r.Tokens, "4471")
}

func TestFuzzy(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Fuzzy("ACME Logistics", "ACME Logistcs")
	assert.True(t, r.Matched)
	assert.GreaterOrEqual(t, r.Score, 0.8)

	assert.False(t, m.Fuzzy("ACME Logistics", "Globex Corp").Matched)
	assert.False(t, m.Fuzzy("", "x").Matched)
}

func TestFuzzyThreshold(t *testing.T) {
	strict := newMatcher(t, Config{FuzzyThreshold: 0.99})
	assert.False(t, strict.Fuzzy("ACME Logistics", "ACME Logistcs").Matched)
}

func TestRegex(t *testing.T) {
	m := newMatcher(t, Config{Patterns: map[string]string{
		"invoice": `(\d{3,})`,
	}})
	r := m.Regex("invoice", "INV-00123", "invoice no. 00123")
	assert.True(t, r.Matched)

	assert.False(t, m.Regex("invoice", "INV-00123", "INV-00999").Matched)
	assert.False(t, m.Regex("missing", "a", "a").Matched, "unknown pattern never matches")
}

func TestRegexInvalidPattern(t *testing.T) {
	_, err := NewMatcher(Config{Patterns: map[string]string{"bad": `(`}})
	require.Error(t, err)
}

func TestSmartUsesFirstSuccess(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Smart("INV-001", "inv-001")
	assert.True(t, r.Matched)
	assert.Equal(t, StrategyExact, r.Strategy, "smart reports the winning sub-strategy")
}

func TestSmartAgreesWithSubStrategies(t *testing.T) {
	m := newMatcher(t, Config{})
	pairs := [][2]string{
		{"INV-001", "inv 001"},
		{"BL#4471", "4471"},
		{"ACME Logistics", "ACME Logistcs"},
		{"INV-001", "SHIPMENT INV-001 COPY"},
	}
	for _, p := range pairs {
		sub := m.Exact(p[0], p[1]).Matched ||
			m.Split(p[0], p[1]).Matched ||
			m.Contains(p[0], p[1]).Matched ||
			m.Fuzzy(p[0], p[1]).Matched
		if sub {
			assert.True(t, m.Smart(p[0], p[1]).Matched, "pair %v", p)
		}
	}
}

func TestSmartNoFalsePositive(t *testing.T) {
	m := newMatcher(t, Config{})
	r := m.Smart("alpha", "omega")
	assert.False(t, r.Matched)
	assert.NotEmpty(t, r.Reason, "failed smart match still explains itself")
}

func TestSmartRespectsEnabledSet(t *testing.T) {
	m := newMatcher(t, Config{
		Strategies: []Strategy{StrategyExact},
		Priority:   []Strategy{StrategyExact, StrategyFuzzy},
	})
	// Fuzzy would match this pair but is not enabled.
	r := m.Smart("ACME Logistics", "ACME Logistcs")
	assert.False(t, r.Matched)
}
