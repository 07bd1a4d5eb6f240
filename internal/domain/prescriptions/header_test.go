package prescriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(text string) PrescriptionData {
	var out PrescriptionData
	defaultParser.extractHeader(normalizeText(text), &out)
	return out
}

func TestExtractHeader_Doctor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Dr. Jane Smith\nPatient: John Doe", "Jane Smith"},
		{"dr jane smith", "Jane Smith"},
		{"Doctor Name: Gregory House", "Gregory House"},
		{"Prescribed by: Alan Grant", "Alan Grant"},
		{"Physician - Ellie Sattler.", "Ellie Sattler"},
		{"Dr. j.r. smith", "J.R. Smith"},
		{"Take twice daily", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, header(c.in).DoctorName, "input %q", c.in)
	}
}

func TestExtractHeader_Patient(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Patient: John Doe\n1. Amoxicillin", "John Doe"},
		{"Patient Name: mary jane", "Mary Jane"},
		{"Name - Peter Parker", "Peter Parker"},
		{"Prescribed by: Alan Grant\nfor Ellie Sattler", "Ellie Sattler"},
		{"1. Amoxicillin 500mg", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, header(c.in).PatientName, "input %q", c.in)
	}
}

func TestExtractHeader_PatientEqualToDoctorIsDropped(t *testing.T) {
	got := header("Dr. John Doe\nfor John Doe")

	assert.Equal(t, "John Doe", got.DoctorName)
	assert.Empty(t, got.PatientName)
}

func TestExtractHeader_Date(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Date: 03/15/2024", "03/15/2024"},
		{"Date: 3-5-24", "3-5-24"},
		{"Issued 2024-03-15", "2024-03-15"},
		{"Seen on March 5, 2024 at the clinic", "March 5, 2024"},
		{"Seen on Sept. 12 2023", "Sept. 12 2023"},
		{"Take 2 tablets", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, header(c.in).Date, "input %q", c.in)
	}
}

func TestCleanName(t *testing.T) {
	cases := map[string]string{
		"  jane   smith ": "Jane Smith",
		"Jane Smith,":     "Jane Smith",
		"john doe.-":      "John Doe",
		"McDonald":        "McDonald",
		"j.r. smith":      "J.R. Smith",
		"dr.jane smith":   "Dr.Jane Smith",
		" , ":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanName(in), "cleanName(%q)", in)
	}
}
