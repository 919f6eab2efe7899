package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseRecord() map[string]any {
	return map[string]any{
		"type": "expense",
		"expensesByPage": []any{
			map[string]any{
				"totalExpenses": "45.00",
				"totalPaid":     "40.00",
				"totalDue":      "5.00",
				"expenses": []any{
					map[string]any{
						"price":       "30.00",
						"description": "Office visit",
						"provider":    "Dr. Doe",
					},
					map[string]any{
						"price":     "15.00",
						"unitPrice": "7.50",
						"quantity":  "2.00",
					},
				},
			},
			map[string]any{
				"totalExpenses": "12.00",
				"totalPaid":     "0.00",
				"totalDue":      "12.00",
			},
		},
	}
}

func TestExpenseWorkbook(t *testing.T) {
	f, err := ExpenseWorkbook("doc-1", expenseRecord())
	require.NoError(t, err)
	defer f.Close()

	get := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Total Expenses", get("Summary", "B1"))
	assert.Equal(t, "1", get("Summary", "A2"))
	assert.Equal(t, "45.00", get("Summary", "B2"))
	assert.Equal(t, "40.00", get("Summary", "C2"))
	assert.Equal(t, "5.00", get("Summary", "D2"))
	assert.Equal(t, "12.00", get("Summary", "B3"))

	assert.Equal(t, "Price", get("Line Items", "B1"))
	assert.Equal(t, "30.00", get("Line Items", "B2"))
	assert.Equal(t, "Office visit", get("Line Items", "C2"))
	assert.Equal(t, "Dr. Doe", get("Line Items", "F2"))
	assert.Equal(t, "15.00", get("Line Items", "B3"))
	assert.Equal(t, "7.50", get("Line Items", "G3"))
	assert.Equal(t, "2.00", get("Line Items", "H3"))
	// Page 2 has no line items, so the item sheet ends at row 3.
	assert.Equal(t, "", get("Line Items", "B4"))
}

func TestExpenseWorkbookWithoutPages(t *testing.T) {
	_, err := ExpenseWorkbook("doc-1", map[string]any{"type": "pleading"})
	require.Error(t, err)
}
