package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docflow/internal/domain"
)

func summaryField(fieldType, value string) domain.ExpenseField {
	return domain.ExpenseField{Type: fieldType, Value: value}
}

func TestSanitizeExpenseValue(t *testing.T) {
	assert.Equal(t, "1234.50", SanitizeExpenseValue(" $1,234.50 "))
	assert.Equal(t, "0.99", SanitizeExpenseValue("$0.99"))
}

func TestParseExpenseValue(t *testing.T) {
	v := ParseExpenseValue("$1,234.50")
	require.NotNil(t, v)
	assert.Equal(t, 1234.5, *v)

	assert.Nil(t, ParseExpenseValue(""))
	assert.Nil(t, ParseExpenseValue("N/A"))
}

func TestParseExpensePageTotals(t *testing.T) {
	doc := domain.ExpenseDoc{
		SummaryFields: []domain.ExpenseField{
			summaryField("TOTAL", "$45.00"),
			summaryField("AMOUNT_PAID", "$40.00"),
		},
	}
	page := ParseExpensePage(doc)
	assert.Equal(t, 45.0, page.TotalExpenses)
	assert.Equal(t, 40.0, page.TotalPaid)
	assert.Equal(t, 0.0, page.TotalDue)

	fields := page.Fields()
	assert.Equal(t, "45.00", fields["totalExpenses"])
	assert.Equal(t, "40.00", fields["totalPaid"])
	assert.Equal(t, "0.00", fields["totalDue"])
}

func TestParseExpensePageLineItems(t *testing.T) {
	doc := domain.ExpenseDoc{
		LineItemGroups: []domain.ExpenseLineItemGroup{{
			LineItems: []domain.ExpenseLineItem{
				{Fields: []domain.ExpenseField{
					summaryField("PRICE", "$10.00"),
					summaryField("ITEM", "Office visit"),
					summaryField("QUANTITY", "2"),
					{Type: "OTHER", Label: "Diagnosis", Value: "J06.9"},
					{Type: "OTHER", Label: "Provider", Value: "Dr. Smith"},
				}},
				// No parseable price, dropped.
				{Fields: []domain.ExpenseField{
					summaryField("ITEM", "Mystery item"),
				}},
			},
		}},
	}
	page := ParseExpensePage(doc)
	require.Len(t, page.Expenses, 1)

	expense := page.Expenses[0]
	assert.Equal(t, 10.0, expense.Price)
	assert.Equal(t, "Office visit", expense.Description)
	assert.Equal(t, "J06.9", expense.DiagnosisCode)
	assert.Equal(t, "Dr. Smith", expense.Provider)
	require.NotNil(t, expense.Quantity)
	assert.Equal(t, 2.0, *expense.Quantity)

	fields := expense.Fields()
	assert.Equal(t, "10.00", fields["price"])
	assert.Equal(t, "2.00", fields["quantity"])
	_, hasUnitPrice := fields["unitPrice"]
	assert.False(t, hasUnitPrice)
	_, hasProductCode := fields["productCode"]
	assert.False(t, hasProductCode)
}

func TestReceiptInfoDedupsValues(t *testing.T) {
	doc := domain.ExpenseDoc{
		SummaryFields: []domain.ExpenseField{
			summaryField("ACCOUNT_NUMBER", "123"),
			summaryField("ACCOUNT_NUMBER", "123"),
			summaryField("VENDOR_NAME", "Clinic A"),
			summaryField("RECEIVER_NAME", "Jane Doe"),
		},
	}
	page := ParseExpensePage(doc)
	assert.Equal(t, []string{"123"}, page.Receipt.AccountNumbers)
	assert.Equal(t, []string{"Clinic A"}, page.Receipt.Provider.Names)
	assert.Equal(t, []string{"Jane Doe"}, page.Receipt.Receiver.Names)
}
