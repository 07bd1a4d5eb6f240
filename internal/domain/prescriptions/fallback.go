package prescriptions

import (
	"strings"
	"unicode/utf8"
)

const tokenPunct = `.,;()[]"'`

// fallbackNames busca palabras con forma de medicamento cuando la segmentación
// no encontró nada. Devuelve a lo sumo MaxFallbackNames nombres distintos.
func (p *Parser) fallbackNames(text string) []Medication {
	r := &p.rules
	out := make([]Medication, 0)
	seen := map[string]struct{}{}

	for _, tok := range strings.Fields(text) {
		if len(out) >= r.MaxFallbackNames {
			break
		}

		// ":" no se recorta: "Patient:" es una etiqueta, no un nombre.
		word := strings.Trim(tok, tokenPunct)
		n := utf8.RuneCountInString(word)
		if n < r.FallbackMinLen || n > r.FallbackMaxLen {
			continue
		}
		if _, stop := r.stopWords[strings.ToLower(word)]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		if !r.looksLikeDrug(word) {
			continue
		}

		seen[word] = struct{}{}
		out = append(out, Medication{Name: word})
	}
	return out
}

func (r *Rules) looksLikeDrug(word string) bool {
	if r.CapitalizedWord != nil && r.CapitalizedWord.MatchString(word) {
		return true
	}
	return r.drugSuffix != nil && r.drugSuffix.MatchString(word)
}
