package prescriptions

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var trailingNamePunct = regexp.MustCompile(`[,.\-]+$`)

// extractHeader busca médico, paciente y fecha sobre el texto completo.
// Cada campo es independiente; si ningún patrón coincide queda vacío.
func (p *Parser) extractHeader(text string, out *PrescriptionData) {
	out.DoctorName = firstName(p.rules.Doctor, text, "")
	out.PatientName = firstName(p.rules.Patient, text, out.DoctorName)
	out.Date = firstCapture(p.rules.Date, text)
}

// firstName prueba los patrones en orden y devuelve el primer nombre limpio.
// Un nombre igual a reject se descarta y se sigue con el próximo patrón.
func firstName(patterns []*regexp.Regexp, text, reject string) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		name := cleanName(m[1])
		if name == "" || name == reject {
			continue
		}
		return name
	}
	return ""
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			return m[1]
		}
	}
	return ""
}

// cleanName colapsa espacios, quita , . - finales y pone en mayúscula la
// primera letra de cada palabra (el resto de la palabra no se toca).
// Las iniciales también cuentan como palabras: "j.r. smith" => "J.R. Smith".
func cleanName(name string) string {
	name = collapseSpaces(name)
	name = strings.TrimSpace(trailingNamePunct.ReplaceAllString(name, ""))
	if name == "" {
		return ""
	}

	// cases.Caser no es seguro entre goroutines, se crea por llamada.
	title := cases.Title(language.Und, cases.NoLower)
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = title.String(p)
	}
	return strings.Join(parts, ".")
}
