package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentIDStable(t *testing.T) {
	a := DocumentID("expenses/invoice.pdf")
	b := DocumentID("expenses/invoice.pdf")
	c := DocumentID("expenses/other.pdf")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestJobStatusTerminal(t *testing.T) {
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusFailed.Terminal())
	assert.True(t, JobStatusStopped.Terminal())
	assert.False(t, JobStatusInProgress.Terminal())
	assert.False(t, JobStatusPending.Terminal())

	assert.False(t, JobStatusCompleted.Failure())
	assert.True(t, JobStatusPartialDone.Failure())
	assert.True(t, JobStatusStopRequested.Failure())
}

func TestOntologyKindFields(t *testing.T) {
	assert.Equal(t, "icd10Conditions", OntologyICD10.Field())
	assert.Equal(t, "prescriptions", OntologyRxNorm.Field())
	assert.Equal(t, "snomedCodes", OntologySNOMED.Field())

	assert.Equal(t, "MEDICAL_CONDITION", OntologyICD10.Category())
	assert.Equal(t, "MEDICATION", OntologyRxNorm.Category())
	assert.Equal(t, "", OntologySNOMED.Category())
}

func TestExpenseFieldsOmitsAbsentOptionals(t *testing.T) {
	unit := 5.0
	e := Expense{Price: 10, Description: "visit", UnitPrice: &unit}
	fields := e.Fields()

	assert.Equal(t, "10.00", fields["price"])
	assert.Equal(t, "visit", fields["description"])
	assert.Equal(t, "5.00", fields["unitPrice"])
	_, ok := fields["diagnosisCode"]
	assert.False(t, ok)
	_, ok = fields["quantity"]
	assert.False(t, ok)
}
