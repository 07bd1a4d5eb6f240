package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Dr. Jane Smith\nPatient: John Doe\n1. Amoxicillin 500mg\nTake twice daily\nFor 7 days\n2. Ibuprofen\nAs needed"

func TestParse_SampleText(t *testing.T) {
	got := Parse(sampleText)

	assert.Equal(t, "Jane Smith", got.DoctorName)
	assert.Equal(t, "John Doe", got.PatientName)
	assert.Empty(t, got.Date)
	assert.Empty(t, got.Notes)
	require.Len(t, got.Medications, 2)
	assert.Equal(t, Medication{Name: "Amoxicillin", Dosage: "500mg", Frequency: "twice daily", Duration: "7 days"}, got.Medications[0])
	assert.Equal(t, Medication{Name: "Ibuprofen", Instructions: "As needed"}, got.Medications[1])
}

func TestParse_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\r\n"} {
		got := Parse(in)
		require.NotNil(t, got.Medications, "input %q", in)
		assert.Empty(t, got.Medications)
		assert.Equal(t, PrescriptionData{Medications: []Medication{}}, got)
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		sampleText,
		"continue the current regimen of Lisinopril and atorvastatin as before",
		"- Metformin 850mg twice daily\n- Lisinopril 10mg once daily\nNotes: Check glucose weekly",
	}
	for _, in := range inputs {
		assert.Equal(t, Parse(in), Parse(in))
	}
}

func TestParse_CRLFAndFullWidth(t *testing.T) {
	got := Parse("Dr. Jane Smith\r\nPatient: John Doe\r\n1. Amoxicillin ５００ｍｇ\r\nTake twice daily")

	assert.Equal(t, "Jane Smith", got.DoctorName)
	assert.Equal(t, "John Doe", got.PatientName)
	require.Len(t, got.Medications, 1)
	assert.Equal(t, "500mg", got.Medications[0].Dosage)
	assert.Equal(t, "twice daily", got.Medications[0].Frequency)
}

func TestParse_FallbackOnlyWhenSegmentationFindsNothing(t *testing.T) {
	got := Parse("continue the current regimen of Lisinopril and atorvastatin as before")

	assert.Equal(t, []Medication{{Name: "Lisinopril"}, {Name: "atorvastatin"}}, got.Medications)

	// con una entrada segmentada, el fallback no corre
	got = Parse("Amoxicillin\n500mg\ncontinue the current regimen of Lisinopril and atorvastatin as before")
	require.Len(t, got.Medications, 1)
	assert.Equal(t, "Amoxicillin", got.Medications[0].Name)
}

func TestParse_DoctorAndPatientNeverEqual(t *testing.T) {
	inputs := []string{
		sampleText,
		"Dr. John Doe\nfor John Doe",
		"Doctor: Ann Lee\nPatient: Ann Lee",
	}
	for _, in := range inputs {
		got := Parse(in)
		if got.DoctorName != "" && got.PatientName != "" {
			assert.NotEqual(t, got.DoctorName, got.PatientName, "input %q", in)
		}
	}
}

func TestNewParser_CustomRules(t *testing.T) {
	rules := DefaultRules().Extend(RuleOverrides{MaxFallbackNames: 1})
	p := NewParser(rules)

	got := p.Parse("continue the current regimen of Lisinopril and atorvastatin as before")
	assert.Equal(t, []Medication{{Name: "Lisinopril"}}, got.Medications)
	assert.Equal(t, 1, p.Rules().MaxFallbackNames)

	// el parser por defecto no se ve afectado
	assert.Len(t, Parse("continue the current regimen of Lisinopril and atorvastatin as before").Medications, 2)
}

func TestParse_SigLineFeedsMedicationAndNotes(t *testing.T) {
	got := Parse("1. Amoxicillin\nSig: 500mg twice daily\nFor 7 days")

	require.Len(t, got.Medications, 1)
	assert.Equal(t, "500mg", got.Medications[0].Dosage)
	assert.Equal(t, "7 days", got.Medications[0].Duration)
	assert.Equal(t, "500mg twice daily", got.Notes)
}
