package prescriptions

// Medication es una entrada de medicamento extraída del texto OCR.
// Solo Name es obligatorio; el resto queda vacío si no se encontró.
type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// PrescriptionData es el resultado del parseo de un texto.
// Medications nunca es nil (puede estar vacío).
type PrescriptionData struct {
	DoctorName  string       `json:"doctor_name,omitempty"`
	PatientName string       `json:"patient_name,omitempty"`
	Date        string       `json:"date,omitempty"`
	Medications []Medication `json:"medications"`
	Notes       string       `json:"notes,omitempty"`
}

// Validation es el resultado (solo informativo) de Validate.
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
}
