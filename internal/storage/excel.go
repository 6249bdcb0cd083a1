package storage

import (
	"fmt"
	"strings"
	"time"

	"cleaning-quote/internal/order"

	"github.com/xuri/excelize/v2"
)

const (
	quoteSheet       = "Quote"
	submissionsSheet = "Submissions"
)

// ExportQuoteToExcel renders one quote as a two-column sheet and returns
// the workbook bytes with a suggested file name.
func ExportQuoteToExcel(o order.Order) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	categories := make([]string, len(o.Categories))
	for i, c := range o.Categories {
		categories[i] = string(c)
	}

	rows := [][2]any{
		{"Quote ID", o.ID},
		{"Vendor", string(o.Vendor)},
		{"Mode", string(o.Mode)},
		{"Created At", o.CreatedAt.Format("2006-01-02 15:04")},
		{"Name", o.Customer.Name},
		{"Phone", o.Customer.Phone},
		{"Email", o.Customer.Email},
		{"Postal Code", o.Customer.PostalCode},
		{"Address", o.Customer.Address},
		{"Categories", strings.Join(categories, ", ")},
		{"Units", o.NumberOfUnits},
	}
	for i, s := range o.Slots {
		if !s.Filled() {
			continue
		}
		rows = append(rows, [2]any{
			fmt.Sprintf("Slot %d", i+1),
			strings.TrimSpace(s.Date + " " + s.Time + " " + s.Availability),
		})
	}
	rows = append(rows,
		[2]any{"Extra Charge", o.ExtraCharge},
		[2]any{"Discount", o.Price.Discount},
		[2]any{"Total", o.Price.Total},
		[2]any{"Notes", o.Notes},
	)
	if len(o.Price.Unmatched) > 0 {
		rows = append(rows, [2]any{"Unmatched", strings.Join(o.Price.Unmatched, ", ")})
	}

	for i, r := range rows {
		row := i + 1
		f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", row), r[0])
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", row), r[1])
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(quoteSheet, "A1", fmt.Sprintf("A%d", len(rows)), style)
	f.SetColWidth(quoteSheet, "A", "A", 16)
	f.SetColWidth(quoteSheet, "B", "B", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	stamp := o.CreatedAt
	if o.SubmittedAt != nil {
		stamp = *o.SubmittedAt
	}
	filename := fmt.Sprintf("quote_%s_%s.xlsx", o.ID, stamp.Format("20060102_1504"))
	return buf.Bytes(), filename, nil
}

// ExportSubmissionsToExcel writes one row per stored submission.
func ExportSubmissionsToExcel(subs []Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", submissionsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Quote ID", "Vendor", "Mode", "Name", "Phone", "Email",
		"Postal Code", "Address", "Categories", "Total", "Discount", "Submitted At",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(submissionsSheet, cell, header)
	}

	for row, s := range subs {
		data := []any{
			s.ID,
			s.QuoteID,
			s.Vendor,
			s.Mode,
			s.CustomerName,
			s.Phone,
			s.Email,
			s.PostalCode,
			s.Address,
			strings.Join(s.Categories, ", "),
			s.Total,
			s.Discount,
			s.SubmittedAt.In(time.UTC).Format("2006-01-02 15:04"),
		}
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(submissionsSheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
