package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatText(t *testing.T) {
	got := FormatText(Parse(sampleText))

	want := "Doctor: Jane Smith\n" +
		"Patient: John Doe\n" +
		"\nMedications:\n" +
		"1. Amoxicillin\n" +
		"   Dosage: 500mg\n" +
		"   Frequency: twice daily\n" +
		"   Duration: 7 days\n" +
		"\n" +
		"2. Ibuprofen\n" +
		"   Instructions: As needed\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestFormatText_DateAndNotes(t *testing.T) {
	got := FormatText(PrescriptionData{
		Date:        "03/15/2024",
		Medications: []Medication{},
		Notes:       "Take with food",
	})

	assert.Equal(t, "Date: 03/15/2024\n\nMedications:\n\nNotes: Take with food\n", got)
}
