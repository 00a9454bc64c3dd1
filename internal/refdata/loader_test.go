package refdata

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return name
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "master.csv", "Invoice Number, Shipper \nINV-001,Acme\nINV-002,Globex\n")

	l := NewLoader(&FSAccessor{Root: dir}, nil)
	tbl, err := l.Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, []string{"Invoice Number", "Shipper"}, tbl.Columns, "header names are whitespace-normalized")
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Acme", tbl.Get(0, "Shipper"))
}

func TestLoadTSV(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "master.tsv", "k\tv\n1\ta\n")

	l := NewLoader(&FSAccessor{Root: dir}, nil)
	tbl, err := l.Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"invoice_number", "vessel"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"INV-001", "MV Alba"}))
	path := filepath.Join(dir, "master.xlsx")
	require.NoError(t, f.SaveAs(path))

	l := NewLoader(&FSAccessor{Root: dir}, nil)
	tbl, err := l.Load(context.Background(), "master.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "MV Alba", tbl.Get(0, "vessel"))
}

func TestLoadFromBlobStore(t *testing.T) {
	store, err := blob.NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	// The Put hint keeps its extension in the URI, which is how the loader
	// detects the format of blob-hosted datasets.
	uri, err := store.Put(context.Background(), "refs/master.csv", []byte("invoice_number,shipper\nINV-001,Acme\n"))
	require.NoError(t, err)

	l := NewLoader(&BlobAccessor{Store: store}, nil)
	tbl, err := l.Load(context.Background(), uri)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Acme", tbl.Get(0, "shipper"))

	_, err = l.Load(context.Background(), uri+".csv")
	require.Error(t, err)
	assert.True(t, common.IsReferenceLoadError(err), "missing blob is a load error")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(&FSAccessor{Root: dir}, nil)

	_, err := l.Load(context.Background(), "missing.csv")
	require.Error(t, err)
	assert.True(t, common.IsReferenceLoadError(err))

	_, err = l.Load(context.Background(), "master.parquet")
	require.Error(t, err)
	assert.True(t, common.IsReferenceLoadError(err), "unsupported format is a load error")

	writeFile(t, dir, "empty.csv", "")
	_, err = l.Load(context.Background(), "empty.csv")
	require.Error(t, err)
}

type countingAccessor struct {
	FSAccessor
	fetches atomic.Int32
}

func (c *countingAccessor) Fetch(ctx context.Context, location string) ([]byte, error) {
	c.fetches.Add(1)
	return c.FSAccessor.Fetch(ctx, location)
}

func TestLoadCachesPerLocation(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "master.csv", "k,v\n1,a\n")

	acc := &countingAccessor{FSAccessor: FSAccessor{Root: dir}}
	l := NewLoader(acc, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Load(context.Background(), name)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acc.fetches.Load(), "concurrent first loads are deduplicated")

	_, err := l.Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, int32(1), acc.fetches.Load())
}

func TestApplyColumnAliases(t *testing.T) {
	tbl := table.New("Cntr No.", "vessel")
	tbl.Rows = append(tbl.Rows, table.Row{"Cntr No.": "C1", "vessel": "MV Alba"})
	ApplyColumnAliases(tbl, map[string]string{"Cntr No.": "container_number"})
	assert.True(t, tbl.HasColumn("container_number"))
	assert.False(t, tbl.HasColumn("Cntr No."))
	assert.Equal(t, "C1", tbl.Get(0, "container_number"))
}
