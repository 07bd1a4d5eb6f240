package prescriptions

import (
	"strings"
	"unicode/utf8"
)

type segmentState int

const (
	stateScanning segmentState = iota
	stateCollecting
)

// segmenter recorre las líneas una sola vez y arma las entradas de medicamentos.
//
// SCANNING: busca el inicio de una entrada (marcador de lista o línea corta).
// COLLECTING: acumula detalles en cur hasta que la línea siguiente parece otra entrada.
// cur solo se agrega al resultado en flush, y solo si tiene nombre.
type segmenter struct {
	rules *Rules
	state segmentState
	cur   Medication
	meds  []Medication
}

func (p *Parser) segment(lines []string) []Medication {
	s := &segmenter{
		rules: &p.rules,
		state: stateScanning,
		meds:  make([]Medication, 0),
	}

	for i, line := range lines {
		if s.isMetadata(line) {
			continue
		}

		// Un marcador de lista siempre abre una entrada nueva, aunque estemos
		// en medio de los detalles de la anterior.
		if s.state == stateCollecting && s.isListItem(line) {
			s.flush()
			s.state = stateScanning
		}

		switch s.state {
		case stateScanning:
			if s.startsEntry(line) {
				s.start(line)
			}
		case stateCollecting:
			s.assign(line)

			if i+1 < len(lines) && s.startsEntry(lines[i+1]) {
				s.flush()
				s.state = stateScanning
			}
		}
	}

	s.flush()
	return s.meds
}

func (s *segmenter) isMetadata(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range s.rules.MetadataKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, re := range s.rules.SkipLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (s *segmenter) isListItem(line string) bool {
	for _, re := range s.rules.ListMarkers {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// isShortLine: largo entre los umbrales y sin dosis, frecuencia ni duración.
func (s *segmenter) isShortLine(line string) bool {
	n := utf8.RuneCountInString(line)
	if n <= s.rules.ShortLineMin || n >= s.rules.ShortLineMax {
		return false
	}
	for _, fr := range s.rules.Details {
		if fr.Pattern.MatchString(line) {
			return false
		}
	}
	return true
}

func (s *segmenter) startsEntry(line string) bool {
	if s.isListItem(line) {
		return true
	}
	return !s.isLabel(line) && s.isShortLine(line)
}

func (s *segmenter) isLabel(line string) bool {
	for _, re := range s.rules.LabelLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (s *segmenter) start(line string) {
	s.flush()

	name := line
	for _, re := range s.rules.ListMarkers {
		name = re.ReplaceAllString(name, "")
	}
	s.cur = Medication{Name: collapseSpaces(name)}
	s.splitNameLine()

	s.state = stateCollecting
}

// splitNameLine separa "Amoxicillin 500mg twice daily" en nombre y detalles.
// Si antes del primer detalle no queda texto, el nombre se deja entero.
func (s *segmenter) splitNameLine() {
	cut := -1
	for _, fr := range s.rules.Details {
		loc := fr.Pattern.FindStringIndex(s.cur.Name)
		if loc != nil && loc[0] > 0 && (cut < 0 || loc[0] < cut) {
			cut = loc[0]
		}
	}
	if cut < 0 {
		return
	}

	name := strings.TrimRight(strings.TrimSpace(s.cur.Name[:cut]), ",;:-")
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	rest := s.cur.Name[cut:]
	s.cur.Name = name

	for _, fr := range s.rules.Details {
		f := fieldOf(&s.cur, fr.Field)
		if *f != "" {
			continue
		}
		if m := fr.Pattern.FindString(rest); m != "" {
			*f = m
		}
	}
}

// assign ubica la línea en el primer campo vacío cuyo patrón coincide.
// Si no hay campo disponible, la línea se suma a Instructions.
func (s *segmenter) assign(line string) {
	for _, fr := range s.rules.Details {
		f := fieldOf(&s.cur, fr.Field)
		if *f != "" {
			continue
		}
		if m := fr.Pattern.FindString(line); m != "" {
			*f = m
			return
		}
	}

	if s.isListItem(line) || utf8.RuneCountInString(line) >= s.rules.MaxInstructionLen {
		return
	}
	if s.cur.Instructions == "" {
		s.cur.Instructions = line
	} else {
		s.cur.Instructions += " " + line
	}
}

func (s *segmenter) flush() {
	if strings.TrimSpace(s.cur.Name) != "" {
		s.meds = append(s.meds, s.cur)
	}
	s.cur = Medication{}
}

func fieldOf(m *Medication, f Field) *string {
	switch f {
	case FieldDosage:
		return &m.Dosage
	case FieldFrequency:
		return &m.Frequency
	case FieldDuration:
		return &m.Duration
	default:
		return &m.Instructions
	}
}
