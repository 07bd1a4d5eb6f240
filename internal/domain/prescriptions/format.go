package prescriptions

import (
	"fmt"
	"strings"
)

// FormatText arma la versión en texto plano de la receta (la que se copia al portapapeles).
func FormatText(data PrescriptionData) string {
	var b strings.Builder

	if data.DoctorName != "" {
		fmt.Fprintf(&b, "Doctor: %s\n", data.DoctorName)
	}
	if data.PatientName != "" {
		fmt.Fprintf(&b, "Patient: %s\n", data.PatientName)
	}
	if data.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", data.Date)
	}

	b.WriteString("\nMedications:\n")
	for i, m := range data.Medications {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Name)
		writeDetail(&b, "Dosage", m.Dosage)
		writeDetail(&b, "Frequency", m.Frequency)
		writeDetail(&b, "Duration", m.Duration)
		writeDetail(&b, "Instructions", m.Instructions)
		b.WriteString("\n")
	}

	if data.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", data.Notes)
	}
	return b.String()
}

func writeDetail(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "   %s: %s\n", label, value)
}
