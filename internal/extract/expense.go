package extract

import (
	"strconv"
	"strings"

	"docflow/internal/domain"
)

// SanitizeExpenseValue strips currency symbols and thousands separators
// from a detected monetary value.
func SanitizeExpenseValue(value string) string {
	value = strings.ReplaceAll(value, "$", "")
	value = strings.ReplaceAll(value, ",", "")
	return strings.TrimSpace(value)
}

// ParseExpenseValue sanitizes and parses a monetary value. Absent or
// unparseable values return nil, not zero: absence is decided here, the
// absent-means-zero rule applies only when aggregating totals.
func ParseExpenseValue(raw string) *float64 {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(SanitizeExpenseValue(raw), 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func isFieldType(f domain.ExpenseField, fieldType string) bool {
	return strings.EqualFold(f.Type, fieldType)
}

func hasLabel(f domain.ExpenseField, label string) bool {
	return strings.EqualFold(f.Label, label)
}

// summaryValue returns the first summary field of the given semantic type,
// parsed as a monetary amount.
func summaryValue(doc domain.ExpenseDoc, fieldType string) *float64 {
	for _, f := range doc.SummaryFields {
		if isFieldType(f, fieldType) {
			return ParseExpenseValue(f.Value)
		}
	}
	return nil
}

// valuesForType collects the distinct raw values of every summary field of
// the given type, preserving first-seen order.
func valuesForType(fields []domain.ExpenseField, fieldType string) []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, f := range fields {
		if !isFieldType(f, fieldType) || f.Value == "" {
			continue
		}
		if _, ok := seen[f.Value]; ok {
			continue
		}
		seen[f.Value] = struct{}{}
		values = append(values, f.Value)
	}
	return values
}

func receiptInfo(doc domain.ExpenseDoc) domain.ReceiptInfo {
	return domain.ReceiptInfo{
		AccountNumbers: valuesForType(doc.SummaryFields, "ACCOUNT_NUMBER"),
		Receiver: domain.ContactInfo{
			Names:     valuesForType(doc.SummaryFields, "RECEIVER_NAME"),
			Addresses: valuesForType(doc.SummaryFields, "RECEIVER_ADDRESS"),
		},
		Provider: domain.ContactInfo{
			Names:     valuesForType(doc.SummaryFields, "VENDOR_NAME"),
			Addresses: valuesForType(doc.SummaryFields, "VENDOR_ADDRESS"),
		},
	}
}

func itemText(item domain.ExpenseLineItem, fieldType string) string {
	for _, f := range item.Fields {
		if isFieldType(f, fieldType) {
			return f.Value
		}
	}
	return ""
}

func itemValue(item domain.ExpenseLineItem, fieldType string) *float64 {
	return ParseExpenseValue(itemText(item, fieldType))
}

// otherField returns the value of an OTHER-typed field whose label matches
// labelText case-insensitively. Diagnosis codes and providers come through
// as OTHER fields identified only by their label.
func otherField(item domain.ExpenseLineItem, labelText string) string {
	for _, f := range item.Fields {
		if isFieldType(f, "OTHER") && hasLabel(f, labelText) {
			return f.Value
		}
	}
	return ""
}

// lineItemExpenses extracts normalized line items. Items without a
// parseable PRICE are dropped silently.
func lineItemExpenses(doc domain.ExpenseDoc) []domain.Expense {
	var expenses []domain.Expense
	for _, group := range doc.LineItemGroups {
		for _, item := range group.LineItems {
			price := itemValue(item, "PRICE")
			if price == nil {
				continue
			}
			expenses = append(expenses, domain.Expense{
				Price:         *price,
				ProductCode:   itemText(item, "PRODUCT_CODE"),
				Description:   itemText(item, "ITEM"),
				DiagnosisCode: otherField(item, "Diagnosis"),
				Provider:      otherField(item, "provider"),
				UnitPrice:     itemValue(item, "UNIT_PRICE"),
				Quantity:      itemValue(item, "QUANTITY"),
			})
		}
	}
	return expenses
}

// ParseExpensePage normalizes one page of expense-analysis output. Each
// page's totals and line items are independent; absent summary totals count
// as zero in the aggregate.
func ParseExpensePage(doc domain.ExpenseDoc) domain.ExpensePage {
	page := domain.ExpensePage{
		Receipt:  receiptInfo(doc),
		Expenses: lineItemExpenses(doc),
	}
	if total := summaryValue(doc, "TOTAL"); total != nil {
		page.TotalExpenses = *total
	}
	if paid := summaryValue(doc, "AMOUNT_PAID"); paid != nil {
		page.TotalPaid = *paid
	}
	if due := summaryValue(doc, "AMOUNT_DUE"); due != nil {
		page.TotalDue = *due
	}
	return page
}
