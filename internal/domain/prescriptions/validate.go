package prescriptions

import "strings"

const (
	WarnNoMedications = "No medications detected in the prescription"
	WarnNoDoctor      = "Doctor name not detected"
	WarnNoPatient     = "Patient name not detected"
)

// Validate revisa si los datos extraídos parecen razonables.
// Es solo informativo: no modifica data ni bloquea nada.
func Validate(data PrescriptionData) Validation {
	warnings := make([]string, 0, 3)

	if len(data.Medications) == 0 {
		warnings = append(warnings, WarnNoMedications)
	}
	if strings.TrimSpace(data.DoctorName) == "" {
		warnings = append(warnings, WarnNoDoctor)
	}
	if strings.TrimSpace(data.PatientName) == "" {
		warnings = append(warnings, WarnNoPatient)
	}

	return Validation{
		IsValid:  len(warnings) == 0,
		Warnings: warnings,
	}
}
