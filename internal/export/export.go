// Package export renders tables to the artifact formats orders are
// delivered in.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/order-mapper/internal/table"
)

const sheetName = "Orders"

// minimum and maximum column widths for the XLSX output
const (
	minColWidth = 12
	maxColWidth = 60
)

// XLSX returns an XLSX workbook with a header row and content-sized columns.
func XLSX(t *table.Table, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet if it is not ours
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	widths := make([]int, len(t.Columns))
	for i, h := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
		widths[i] = len(h)
	}
	for r := 0; r < t.Len(); r++ {
		for c, col := range t.Columns {
			v := t.Rows[r][col]
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheetName, cell, v)
			if len(v) > widths[c] {
				widths[c] = len(v)
			}
		}
	}
	for i := range t.Columns {
		w := widths[i] + 2
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, name, name, float64(w))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"rows", t.Len(),
		"columns", len(t.Columns),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// CSV returns the table as RFC 4180 CSV with a header row.
func CSV(t *table.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
