package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	full := PrescriptionData{
		DoctorName:  "Jane Smith",
		PatientName: "John Doe",
		Medications: []Medication{{Name: "Amoxicillin"}},
	}

	v := Validate(full)
	assert.True(t, v.IsValid)
	assert.NotNil(t, v.Warnings)
	assert.Empty(t, v.Warnings)

	v = Validate(PrescriptionData{})
	assert.False(t, v.IsValid)
	assert.Equal(t, []string{WarnNoMedications, WarnNoDoctor, WarnNoPatient}, v.Warnings)

	noPatient := full
	noPatient.PatientName = "   "
	v = Validate(noPatient)
	assert.False(t, v.IsValid)
	assert.Equal(t, []string{WarnNoPatient}, v.Warnings)
}

func TestValidate_DoesNotModifyInput(t *testing.T) {
	in := PrescriptionData{Medications: []Medication{}}
	_ = Validate(in)
	assert.Equal(t, PrescriptionData{Medications: []Medication{}}, in)
}
