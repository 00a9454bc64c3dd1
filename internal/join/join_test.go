package join

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/normalize"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

func keyPair(local, ref string) entity.JoinKeyPair {
	return entity.JoinKeyPair{Local: local, Reference: ref}
}

func extractionTable(rows ...table.Row) *table.Table {
	t := table.New()
	for _, r := range rows {
		t.AddRow(r)
	}
	return t
}

func TestLeftJoinNormalizedKeys(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"invoice_number": "INV-001", "amount": "100"})
	ref := extractionTable(table.Row{"invoice_number": "inv 001", "shipper": "Acme"})

	opts := normalize.Options{NormalizeWS: true, Lower: true, StripInvisible: true}
	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("invoice_number", "invoice_number")}, opts, "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "INV-001", out.Get(0, "invoice_number"), "extraction value is kept verbatim")
	assert.Equal(t, "100", out.Get(0, "amount"))
	assert.Equal(t, "Acme", out.Get(0, "shipper"))
	assert.Equal(t, "true", out.Get(0, MatchedColumn))
}

func TestLeftJoinUnmatchedRowPreserved(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"invoice_number": "INV-002", "amount": "55"})
	ref := extractionTable(table.Row{"invoice_number": "INV-001", "shipper": "Acme"})

	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("invoice_number", "invoice_number")}, normalize.Options{}, "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "55", out.Get(0, "amount"))
	assert.Equal(t, "", out.Get(0, "shipper"), "reference columns stay blank on no match")
	assert.Equal(t, "false", out.Get(0, MatchedColumn))
}

func TestLeftJoinPreservesRowCount(t *testing.T) {
	e := NewEngine(nil)
	left := table.New()
	for i := 0; i < 50; i++ {
		left.AddRow(table.Row{"k": fmt.Sprintf("K-%03d", i)})
	}
	ref := extractionTable(
		table.Row{"k": "K-001", "v": "a"},
		table.Row{"k": "K-002", "v": "b"},
	)
	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, left.Len(), out.Len())
}

func TestLeftJoinMultipleKeysAllMustMatch(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(
		table.Row{"invoice_number": "INV-001", "container_no": "C1"},
		table.Row{"invoice_number": "INV-001", "container_no": "C2"},
	)
	ref := extractionTable(
		table.Row{"invoice_number": "INV-001", "container_number": "C1", "vessel": "MV Alba"},
	)
	keys := []entity.JoinKeyPair{
		keyPair("invoice_number", "invoice_number"),
		keyPair("container_no", "container_number"),
	}
	out, err := e.LeftJoin(left, ref, keys, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "true", out.Get(0, MatchedColumn))
	assert.Equal(t, "MV Alba", out.Get(0, "vessel"))
	assert.Equal(t, "false", out.Get(1, MatchedColumn), "partial key agreement is not a match")
}

func TestLeftJoinCollidingColumnsSuffixed(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"k": "1", "amount": "100"})
	ref := extractionTable(table.Row{"k": "1", "amount": "105"})

	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "_master")
	require.NoError(t, err)
	assert.Equal(t, "100", out.Get(0, "amount"))
	assert.Equal(t, "105", out.Get(0, "amount_master"))
}

func TestLeftJoinRecoversShadowedKey(t *testing.T) {
	e := NewEngine(nil)
	// The key exists only as a multi-source shadow column.
	left := extractionTable(table.Row{"packing__container_no": "C1", "amount": "7"})
	ref := extractionTable(table.Row{"container_no": "C1", "vessel": "MV Alba"})

	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("container_no", "container_no")}, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "true", out.Get(0, MatchedColumn))
	assert.Equal(t, "MV Alba", out.Get(0, "vessel"))
}

func TestLeftJoinMissingKeyFails(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"other": "x"})
	ref := extractionTable(table.Row{"k": "1"})

	_, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.Error(t, err)
	assert.True(t, common.IsJoinKeyMissing(err))

	_, err = e.LeftJoin(extractionTable(table.Row{"k": "1"}), extractionTable(table.Row{"other": "x"}),
		[]entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.Error(t, err)
	assert.True(t, common.IsJoinKeyMissing(err))
}

func TestLeftJoinBlankKeysNeverMatch(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"k": "", "amount": "9"})
	ref := extractionTable(table.Row{"k": "", "v": "ghost"})

	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "false", out.Get(0, MatchedColumn))
	assert.Equal(t, "", out.Get(0, "v"))
}

func TestLeftJoinDuplicateReferenceFirstWins(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"k": "1"})
	ref := extractionTable(
		table.Row{"k": "1", "v": "first"},
		table.Row{"k": "1", "v": "second"},
	)
	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "first", out.Get(0, "v"))
}

func TestNearMissFindsFormattingVariant(t *testing.T) {
	e := NewEngine(nil)
	r, ok := e.NearMiss("INV-001", []string{"ORD-77", "inv 001", "PO-5"})
	require.True(t, ok)
	assert.True(t, r.Matched, "a looser strategy pairs the formatting variant")
	assert.Equal(t, "inv 001", r.Right)
	assert.NotEmpty(t, r.Reason)
}

func TestNearMissReportsBestAttemptWhenNothingPairs(t *testing.T) {
	e := NewEngine(nil)
	r, ok := e.NearMiss("INV-001", []string{"zzz", "qq"})
	require.True(t, ok)
	assert.False(t, r.Matched)
	assert.NotEmpty(t, r.Reason)

	_, ok = e.NearMiss("", []string{"x"})
	assert.False(t, ok)
	_, ok = e.NearMiss("INV-001", nil)
	assert.False(t, ok)
}

func TestLeftJoinNearMissDoesNotAlterOutput(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"invoice_number": "INV-001", "amount": "12"})
	ref := extractionTable(table.Row{"invoice_number": "inv 001", "shipper": "Acme"})

	// No normalization: the join misses even though the matcher would pair
	// the values; the diagnostic must not turn that into a join.
	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("invoice_number", "invoice_number")}, normalize.Options{}, "")
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "false", out.Get(0, MatchedColumn))
	assert.Equal(t, "", out.Get(0, "shipper"))
}

func TestLeftJoinKeepsDataMatchedColumn(t *testing.T) {
	e := NewEngine(nil)
	left := extractionTable(table.Row{"k": "1", MatchedColumn: "from-extraction"})
	ref := extractionTable(table.Row{"k": "1", "v": "x"})

	out, err := e.LeftJoin(left, ref, []entity.JoinKeyPair{keyPair("k", "k")}, normalize.Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, "from-extraction", out.Get(0, MatchedColumn), "a genuine data column is never overwritten")
}
