package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineOrder(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		key  string
		in   string
		want string
	}{
		{
			name: "case and whitespace reconciled",
			opts: Options{NormalizeWS: true, Lower: true, StripInvisible: true},
			key:  "invoice_number",
			in:   "INV  001",
			want: "inv 001",
		},
		{
			name: "separator punctuation counts as whitespace",
			opts: Options{NormalizeWS: true, Lower: true, StripInvisible: true},
			key:  "invoice_number",
			in:   "INV-001",
			want: "inv 001",
		},
		{
			name: "digits only then zero padded",
			opts: Options{StripNonDigits: true, ZFill: 6},
			key:  "container_no",
			in:   "C-42",
			want: "000042",
		},
		{
			name: "per key zfill overrides global",
			opts: Options{StripNonDigits: true, ZFill: 6, ZFillByKey: map[string]int{"seal_no": 3}},
			key:  "seal_no",
			in:   "7",
			want: "007",
		},
		{
			name: "zero width characters stripped",
			opts: Options{StripInvisible: true},
			key:  "k",
			in:   "INV\u200b-001\ufeff",
			want: "INV-001",
		},
		{
			name: "nfkc folds fullwidth forms",
			opts: Options{NFKC: true},
			key:  "k",
			in:   "ＩＮＶ００１",
			want: "INV001",
		},
		{
			name: "alias applied after canonicalization",
			opts: Options{Lower: true, NormalizeWS: true, ValueAliases: map[string]string{"acme inc": "acme incorporated"}},
			key:  "shipper",
			in:   " ACME  INC ",
			want: "acme incorporated",
		},
		{
			name: "per key alias wins",
			opts: Options{
				ValueAliases:      map[string]string{"x": "global"},
				ValueAliasesByKey: map[string]map[string]string{"k": {"x": "scoped"}},
			},
			key:  "k",
			in:   "x",
			want: "scoped",
		},
		{
			name: "no options is identity",
			opts: Options{},
			key:  "k",
			in:   " Mixed  Case\t",
			want: " Mixed  Case\t",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Apply(tt.key, tt.in))
		})
	}
}

func TestPipelineIdempotent(t *testing.T) {
	opts := []Options{
		{},
		{Lower: true},
		{NormalizeWS: true, Lower: true, StripInvisible: true},
		{StripNonDigits: true, ZFill: 8},
		{NFKC: true, NormalizeWS: true},
		{Lower: true, ValueAliases: map[string]string{"inc": "incorporated"}},
	}
	inputs := []string{
		"INV-001", "inv  001", "ＩＮＶ００１", "C-42", "inc", "incorporated",
		"\u200bx\u200b", "  spaced  out  ",
	}
	for _, o := range opts {
		for _, in := range inputs {
			once := o.Apply("k", in)
			twice := o.Apply("k", once)
			assert.Equal(t, once, twice, "opts=%+v in=%q", o, in)
		}
	}
}

func TestEnabled(t *testing.T) {
	assert.False(t, Options{}.Enabled())
	assert.True(t, Options{Lower: true}.Enabled())
	assert.True(t, Options{ZFillByKey: map[string]int{"k": 4}}.Enabled())
}
