// Package prescriptions extrae datos estructurados de recetas a partir del
// texto crudo que entrega un motor OCR externo.
//
// El motor es puro: no hace I/O, no guarda estado entre llamadas y nunca
// devuelve error. Si no encuentra estructura, los campos quedan vacíos.
package prescriptions

// Parser aplica el pipeline de extracción con un conjunto de reglas fijo.
// Es inmutable después de NewParser y se puede usar desde varias goroutines.
type Parser struct {
	rules Rules
}

func NewParser(rules Rules) *Parser {
	return &Parser{rules: rules.compile()}
}

var defaultParser = NewParser(DefaultRules())

// Parse usa las reglas por defecto.
func Parse(text string) PrescriptionData {
	return defaultParser.Parse(text)
}

// Rules devuelve las reglas con las que se construyó el parser.
func (p *Parser) Rules() Rules {
	return p.rules
}

// Parse corre las etapas en orden: encabezado, segmentación, fallback
// (solo si la segmentación no encontró nada) y notas.
func (p *Parser) Parse(text string) PrescriptionData {
	text = normalizeText(text)

	var out PrescriptionData
	p.extractHeader(text, &out)

	out.Medications = p.segment(splitLines(text))
	if len(out.Medications) == 0 {
		out.Medications = p.fallbackNames(text)
	}

	out.Notes = p.extractNotes(text)
	return out
}
