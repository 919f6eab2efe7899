package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// DocumentID derives the stable, content-derived identifier for a source
// object key. Re-processing the same key maps to the same record.
func DocumentID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Location identifies an object (or prefix) in object storage.
type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Prefix string `json:"prefix"`
}

// Block is one unit of OCR output: a line of text, a pre-submitted query or
// a query answer.
type Block struct {
	ID            string
	BlockType     string
	Text          string
	Page          int32
	QueryAlias    string
	Relationships []Relationship
}

// Relationship links a block to related blocks, e.g. a QUERY to its ANSWER
// result blocks.
type Relationship struct {
	Type string
	IDs  []string
}

// Query is a natural-language question submitted alongside a document
// analysis job.
type Query struct {
	Text  string
	Alias string
	Pages []string
}

// ExpenseField is one typed field of an expense document: the semantic type
// assigned by the service, the label text found on the page, and the
// detected value.
type ExpenseField struct {
	Type  string
	Label string
	Value string
}

// ExpenseLineItem is a single line item's fields.
type ExpenseLineItem struct {
	Fields []ExpenseField
}

// ExpenseLineItemGroup groups the line items of one table on a page.
type ExpenseLineItemGroup struct {
	LineItems []ExpenseLineItem
}

// ExpenseDoc is one page of expense-analysis output.
type ExpenseDoc struct {
	SummaryFields  []ExpenseField
	LineItemGroups []ExpenseLineItemGroup
}

// Expense is one normalized expense line item. Price is required; items
// without a parseable price are dropped during extraction.
type Expense struct {
	Price         float64
	ProductCode   string
	Description   string
	DiagnosisCode string
	Provider      string
	UnitPrice     *float64
	Quantity      *float64
}

// ContactInfo carries the deduplicated names and addresses found for one
// party on a receipt.
type ContactInfo struct {
	Names     []string
	Addresses []string
}

// ReceiptInfo is the receipt metadata of one expense page.
type ReceiptInfo struct {
	AccountNumbers []string
	Provider       ContactInfo
	Receiver       ContactInfo
}

// ExpensePage aggregates one page of expense output. Absent summary totals
// are zero here; absence vs. zero is decided during parsing.
type ExpensePage struct {
	TotalExpenses float64
	TotalPaid     float64
	TotalDue      float64
	Receipt       ReceiptInfo
	Expenses      []Expense
}

// money renders a currency amount with exactly two decimal digits, the fixed
// serialization for all persisted monetary values.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Fields renders the page in its persisted shape.
func (p ExpensePage) Fields() map[string]any {
	expenses := make([]map[string]any, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		expenses = append(expenses, e.Fields())
	}
	return map[string]any{
		"totalExpenses": money(p.TotalExpenses),
		"totalPaid":     money(p.TotalPaid),
		"totalDue":      money(p.TotalDue),
		"receiptInfo": map[string]any{
			"accountNumbers": p.Receipt.AccountNumbers,
			"provider": map[string]any{
				"names":     p.Receipt.Provider.Names,
				"addresses": p.Receipt.Provider.Addresses,
			},
			"receiver": map[string]any{
				"names":     p.Receipt.Receiver.Names,
				"addresses": p.Receipt.Receiver.Addresses,
			},
		},
		"expenses": expenses,
	}
}

// Fields renders the line item in its persisted shape. Optional fields are
// omitted entirely when absent rather than stored empty.
func (e Expense) Fields() map[string]any {
	out := map[string]any{"price": money(e.Price)}
	if e.ProductCode != "" {
		out["productCode"] = e.ProductCode
	}
	if e.Description != "" {
		out["description"] = e.Description
	}
	if e.DiagnosisCode != "" {
		out["diagnosisCode"] = e.DiagnosisCode
	}
	if e.Provider != "" {
		out["provider"] = e.Provider
	}
	if e.UnitPrice != nil {
		out["unitPrice"] = money(*e.UnitPrice)
	}
	if e.Quantity != nil {
		out["quantity"] = money(*e.Quantity)
	}
	return out
}

// Condition is one ICD10-CM coded medical condition.
type Condition struct {
	Code        string   `json:"code"`
	Description string   `json:"description,omitempty"`
	Condition   string   `json:"condition"`
	Attributes  []string `json:"attributes"`
}

// Prescription is one RxNorm coded medication.
type Prescription struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Attributes  []string `json:"attributes"`
}

// Diagnosis is one SNOMED-CT coded clinical finding.
type Diagnosis struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Attributes  []string `json:"attributes"`
	Traits      []string `json:"traits"`
}

// PleadingHeader holds the heuristic header fields of a legal pleading's
// first page. Query answers, when present, supersede these.
type PleadingHeader struct {
	Plaintiff  string
	CaseNumber string
	Division   string
	Defendants []string
}

// EmailAttachment is an attachment's name and raw content.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// EmailExtraction is the parsed form of an .eml correspondence document.
type EmailExtraction struct {
	MessageID   string
	Date        string
	From        []string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	References  []string
	Attachments []EmailAttachment
}

// AttachmentNames lists the attachment filenames for persistence.
func (e EmailExtraction) AttachmentNames() []string {
	names := make([]string, 0, len(e.Attachments))
	for _, a := range e.Attachments {
		names = append(names, a.Filename)
	}
	return names
}

// Fields renders the extraction in its persisted shape (attachment contents
// are stored in object storage, not on the record).
func (e EmailExtraction) Fields() map[string]any {
	return map[string]any{
		"messageId":   e.MessageID,
		"date":        e.Date,
		"from":        e.From,
		"to":          e.To,
		"cc":          e.Cc,
		"bcc":         e.Bcc,
		"subject":     e.Subject,
		"body":        e.Body,
		"references":  e.References,
		"attachments": e.AttachmentNames(),
	}
}

// TranscriptTurn is one utterance of a call transcript.
type TranscriptTurn struct {
	Content       string `json:"Content"`
	Sentiment     string `json:"Sentiment"`
	ParticipantID string `json:"ParticipantId"`
}

// NLPEntity is a scored entity detected in free text.
type NLPEntity struct {
	Type  string
	Text  string
	Score *float64
}

// KeyPhrase is a scored key phrase detected in free text.
type KeyPhrase struct {
	Text  string
	Score *float64
}
