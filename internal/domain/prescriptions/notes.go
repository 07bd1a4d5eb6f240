package prescriptions

import "strings"

// extractNotes toma el bloque que sigue a la primera etiqueta de notas
// (notes, instructions, sig, directions) hasta una línea en blanco, una línea
// que empieza con letra o el final del texto.
func (p *Parser) extractNotes(text string) string {
	if p.rules.NotesLabel == nil {
		return ""
	}
	loc := p.rules.NotesLabel.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	rest := text[loc[1]:]
	if p.rules.NotesEnd != nil {
		if end := p.rules.NotesEnd.FindStringIndex(rest); end != nil {
			rest = rest[:end[0]]
		}
	}
	return strings.TrimSpace(rest)
}
