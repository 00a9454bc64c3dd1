package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/order-mapper/internal/table"
)

func sampleTable() *table.Table {
	t := table.New("invoice_number", "amount")
	t.AddRow(table.Row{"invoice_number": "INV-1", "amount": "12.50"})
	t.AddRow(table.Row{"invoice_number": "INV-2", "amount": "7.00"})
	return t
}

func TestXLSXRoundTrip(t *testing.T) {
	data, err := XLSX(sampleTable(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"invoice_number", "amount"}, rows[0])
	assert.Equal(t, []string{"INV-1", "12.50"}, rows[1])
	assert.Equal(t, []string{"INV-2", "7.00"}, rows[2])
}

func TestCSVOutput(t *testing.T) {
	data, err := CSV(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "invoice_number,amount\nINV-1,12.50\nINV-2,7.00\n", string(data))
}

func TestCSVQuotesSpecialCharacters(t *testing.T) {
	tab := table.New("note")
	tab.AddRow(table.Row{"note": `has "quotes", and commas`})
	data, err := CSV(tab)
	require.NoError(t, err)
	assert.Equal(t, "note\n\"has \"\"quotes\"\", and commas\"\n", string(data))
}
