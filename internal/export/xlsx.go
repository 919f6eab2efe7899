// Package export renders persisted document records into operator-facing
// spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var summaryColumns = []string{"Page", "Total Expenses", "Total Paid", "Total Due"}

var lineItemColumns = []string{
	"Page",
	"Price",
	"Description",
	"Product Code",
	"Diagnosis Code",
	"Provider",
	"Unit Price",
	"Quantity",
}

// asMaps coerces a stored list attribute into its element maps, tolerating
// the loosely typed shape that comes back from the record store.
func asMaps(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var maps []map[string]any
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			maps = append(maps, m)
		}
	}
	return maps
}

func str(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// ExpenseWorkbook renders a document record's per-page expenses into a
// workbook with a totals sheet and a line-item sheet.
func ExpenseWorkbook(docID string, record map[string]any) (*excelize.File, error) {
	pages := asMaps(record["expensesByPage"])
	if pages == nil {
		return nil, fmt.Errorf("document %s has no expense pages", docID)
	}

	f := excelize.NewFile()
	const summarySheet = "Summary"
	const itemSheet = "Line Items"

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(summaryColumns))
	for i, c := range summaryColumns {
		header[i] = c
	}
	if err := writeRow(f, summarySheet, 1, header); err != nil {
		return nil, err
	}
	header = make([]any, len(lineItemColumns))
	for i, c := range lineItemColumns {
		header[i] = c
	}
	if err := writeRow(f, itemSheet, 1, header); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, page := range pages {
		pageNum := i + 1
		row := []any{pageNum, str(page, "totalExpenses"), str(page, "totalPaid"), str(page, "totalDue")}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return nil, err
		}

		for _, expense := range asMaps(page["expenses"]) {
			row := []any{
				pageNum,
				str(expense, "price"),
				str(expense, "description"),
				str(expense, "productCode"),
				str(expense, "diagnosisCode"),
				str(expense, "provider"),
				str(expense, "unitPrice"),
				str(expense, "quantity"),
			}
			if err := writeRow(f, itemSheet, itemRow, row); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	return f, nil
}
