package storage

import (
	"bytes"
	"testing"
	"time"

	"cleaning-quote/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportQuoteToExcel(t *testing.T) {
	o := sampleOrder()
	o.CreatedAt = time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)
	o.Slots[0] = order.PreferredSlot{Date: "2026-11-02", Time: "10:00", Availability: "空きあり"}
	o.Price.Unmatched = []string{"floor.method=wax"}

	data, name, err := ExportQuoteToExcel(o)
	require.NoError(t, err)
	assert.Equal(t, "quote_q-1_20261101_0930.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{quoteSheet}, f.GetSheetList())

	rows, err := f.GetRows(quoteSheet)
	require.NoError(t, err)

	got := map[string]string{}
	for _, r := range rows {
		if len(r) == 2 {
			got[r[0]] = r[1]
		}
	}
	assert.Equal(t, "q-1", got["Quote ID"])
	assert.Equal(t, "toilet", got["Categories"])
	assert.Equal(t, "2026-11-02 10:00 空きあり", got["Slot 1"])
	assert.Equal(t, "7700", got["Total"])
	assert.Equal(t, "floor.method=wax", got["Unmatched"])
	assert.NotContains(t, got, "Slot 2")
}

func TestExportQuoteToExcel_UsesSubmissionTime(t *testing.T) {
	o := sampleOrder()
	at := time.Date(2026, 11, 3, 14, 5, 0, 0, time.UTC)
	o.SubmittedAt = &at

	_, name, err := ExportQuoteToExcel(o)
	require.NoError(t, err)
	assert.Equal(t, "quote_q-1_20261103_1405.xlsx", name)
}

func TestExportSubmissionsToExcel(t *testing.T) {
	subs := []Submission{
		{ID: 1, QuoteID: "q-1", Vendor: "direct", Mode: "customer", Categories: []string{"toilet", "kitchen"},
			Total: 7700, SubmittedAt: time.Date(2026, 11, 2, 1, 0, 0, 0, time.UTC)},
	}

	data, err := ExportSubmissionsToExcel(subs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(submissionsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Quote ID", rows[0][1])
	assert.Equal(t, "q-1", rows[1][1])
	assert.Equal(t, "toilet, kitchen", rows[1][9])
	assert.Equal(t, "2026-11-02 01:00", rows[1][12])
}
