// Package refdata fetches and caches the external reference dataset
// (master list) that extraction rows are reconciled against.
package refdata

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/table"
)

// FileAccessor resolves an opaque reference location to bytes. Implementations
// exist for the local filesystem and for the blob store.
type FileAccessor interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FSAccessor reads reference datasets from a root directory.
type FSAccessor struct {
	Root string
}

func (a *FSAccessor) Fetch(_ context.Context, location string) ([]byte, error) {
	path := location
	if a.Root != "" && !filepath.IsAbs(location) {
		path = filepath.Join(a.Root, location)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// BlobAccessor reads reference datasets stored in the blob store, for
// configurations whose external_reference_path is a blob URI.
type BlobAccessor struct {
	Store blob.Store
}

func (a *BlobAccessor) Fetch(ctx context.Context, location string) ([]byte, error) {
	return a.Store.Get(ctx, location)
}

// Loader parses and caches reference tables per location. The cache lives as
// long as the Loader; the engine creates one per mapping run, so a dataset is
// fetched once and reused across the run's items, never across runs.
// Concurrent first fetches of the same location are deduplicated.
type Loader struct {
	accessor FileAccessor
	logger   *slog.Logger

	mu       sync.Mutex
	cache    map[string]*table.Table
	inflight map[string]chan struct{}
}

func NewLoader(accessor FileAccessor, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		accessor: accessor,
		logger:   logger,
		cache:    make(map[string]*table.Table),
		inflight: make(map[string]chan struct{}),
	}
}

// Load returns the reference table for location, fetching and parsing it on
// first use. The returned table is shared and must be treated as read-only.
func (l *Loader) Load(ctx context.Context, location string) (*table.Table, error) {
	for {
		l.mu.Lock()
		if t, ok := l.cache[location]; ok {
			l.mu.Unlock()
			return t, nil
		}
		wait, ok := l.inflight[location]
		if !ok {
			done := make(chan struct{})
			l.inflight[location] = done
			l.mu.Unlock()

			t, err := l.fetch(ctx, location)

			l.mu.Lock()
			delete(l.inflight, location)
			if err == nil {
				l.cache[location] = t
			}
			close(done)
			l.mu.Unlock()
			return t, err
		}
		l.mu.Unlock()

		select {
		case <-wait:
			// loader finished; loop to read the cache or retry on failure
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (l *Loader) fetch(ctx context.Context, location string) (*table.Table, error) {
	format := constants.ReferenceFormatForPath(location)
	if format == "" {
		return nil, common.ReferenceLoadError(fmt.Sprintf("unsupported reference format: %s", location), nil)
	}

	raw, err := l.accessor.Fetch(ctx, location)
	if err != nil {
		return nil, common.ReferenceLoadError(fmt.Sprintf("fetch reference %s", location), err)
	}

	var t *table.Table
	switch format {
	case constants.ReferenceCSV:
		t, err = parseDelimited(raw, ',')
	case constants.ReferenceTSV:
		t, err = parseDelimited(raw, '\t')
	case constants.ReferenceXLSX:
		t, err = parseWorkbook(raw)
	}
	if err != nil {
		return nil, common.ReferenceLoadError(fmt.Sprintf("parse reference %s", location), err)
	}

	l.logger.Info("refdata.loaded", "location", location, "format", format, "rows", t.Len(), "columns", len(t.Columns))
	return t, nil
}

func parseDelimited(raw []byte, delim rune) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reference dataset is empty")
	}
	if err != nil {
		return nil, err
	}
	cols := normalizeHeader(header)
	t := table.New(cols...)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, rowFromRecord(cols, rec))
	}
	return t, nil
}

func parseWorkbook(raw []byte) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference dataset is empty")
	}
	cols := normalizeHeader(rows[0])
	t := table.New(cols...)
	for _, rec := range rows[1:] {
		t.Rows = append(t.Rows, rowFromRecord(cols, rec))
	}
	return t, nil
}

// normalizeHeader trims and collapses whitespace in column names; unnamed
// columns get a positional name.
func normalizeHeader(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		name := strings.Join(strings.Fields(h), " ")
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		cols[i] = name
	}
	return cols
}

func rowFromRecord(cols []string, rec []string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		if i < len(rec) {
			row[c] = strings.TrimSpace(rec[i])
		}
	}
	return row
}

// ApplyColumnAliases renames reference columns in place per the
// configuration's alias table ("Cntr No." -> "container_number").
func ApplyColumnAliases(t *table.Table, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}
	for i, c := range t.Columns {
		if to, ok := aliases[c]; ok && to != "" {
			t.Columns[i] = to
			for _, r := range t.Rows {
				if v, present := r[c]; present {
					delete(r, c)
					r[to] = v
				}
			}
		}
	}
}
