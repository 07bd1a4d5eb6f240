package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNotes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"own paragraph", "1. Amoxicillin 500mg\n\nNotes: Take with food\n\nThank you", "Take with food"},
		{"end of text", "1. Amoxicillin 500mg\nNotes: Take with food", "Take with food"},
		{"stops at next line", "Sig: 1 tab po\nRefills: 2", "1 tab po"},
		{"keeps numeric continuation", "Directions: 1 tab\n2 times daily\nDr. Smith", "1 tab\n2 times daily"},
		{"singular label", "Note: avoid alcohol", "avoid alcohol"},
		{"label inside a word", "Signature on file", ""},
		{"no label", "1. Amoxicillin 500mg", ""},
		{"empty block", "1. Amoxicillin\nNotes:", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, defaultParser.extractNotes(normalizeText(c.in)))
		})
	}
}

func TestParse_NotesFromOwnParagraph(t *testing.T) {
	got := Parse("Dr. Jane Smith\nPatient: John Doe\n1. Amoxicillin 500mg\n\nNotes: Take with food")

	assert.Equal(t, "Take with food", got.Notes)
	assert.Len(t, got.Medications, 1)
}
