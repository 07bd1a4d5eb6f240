package prescriptions

import (
	"regexp"
	"strings"
)

// Field identifica un campo de detalle de Medication.
type Field string

const (
	FieldDosage    Field = "dosage"
	FieldFrequency Field = "frequency"
	FieldDuration  Field = "duration"
)

// FieldRule asocia un patrón con el campo que completa.
type FieldRule struct {
	Field   Field
	Pattern *regexp.Regexp
}

// Rules agrupa las constantes de política de las heurísticas.
// La máquina de estados no conoce palabras clave ni umbrales: todo sale de acá.
type Rules struct {
	// Líneas que nunca inician ni continúan una entrada.
	MetadataKeywords []string
	SkipLines        []*regexp.Regexp

	// Etiquetas (Sig:, Notes:) que no abren una entrada pero sí se asignan
	// como detalle si ya hay una abierta.
	LabelLines []*regexp.Regexp

	ListMarkers []*regexp.Regexp

	// Orden = prioridad de asignación.
	Details []FieldRule

	// Línea corta: ShortLineMin < runas < ShortLineMax.
	ShortLineMin      int
	ShortLineMax      int
	MaxInstructionLen int

	Doctor  []*regexp.Regexp
	Patient []*regexp.Regexp
	Date    []*regexp.Regexp

	NotesLabel *regexp.Regexp
	NotesEnd   *regexp.Regexp

	// Fallback: largo de token inclusivo.
	FallbackMinLen   int
	FallbackMaxLen   int
	MaxFallbackNames int
	StopWords        []string
	DrugSuffixes     []string
	CapitalizedWord  *regexp.Regexp

	drugSuffix *regexp.Regexp
	stopWords  map[string]struct{}
}

var (
	dosagePattern = regexp.MustCompile(
		`(?i)\d+(?:\.\d+)?\s*(?:mcg|mg|ml|g|tablets?|tabs?|capsules?|caps?|pills?|drops?|units?)`)

	frequencyPattern = regexp.MustCompile(`(?i)` +
		`\d+\s*(?:x|times?)\s*(?:daily|a\s*day|per\s*day)` +
		`|(?:once|twice|thrice)\s*(?:daily|a\s*day)` +
		`|\b(?:morning|evening|night|bedtime)` +
		`|(?:before|after)\s*(?:meals?|food)` +
		`|\bq\.?\d+[dh]?\b` +
		`|\bb\.?i\.?d\b\.?|\bt\.?i\.?d\b\.?|\bq\.?i\.?d\b\.?`)

	durationPattern = regexp.MustCompile(`(?i)\d+\s*(?:days?|weeks?|months?|years?)`)

	numberedMarker = regexp.MustCompile(`^\d+[.)]\s*`)
	bulletMarker   = regexp.MustCompile(`^[*\-•]\s*`)
)

var defaultDrugSuffixes = []string{
	"cillin", "mycin", "zole", "pram", "pine", "pril",
	"sartan", "statin", "profen", "azole", "idine", "olol",
}

// DefaultRules devuelve las reglas por defecto. Cada llamada devuelve una copia
// independiente, se puede modificar sin afectar a otros parsers.
func DefaultRules() Rules {
	r := Rules{
		MetadataKeywords: []string{
			"prescription", "rx", "date", "doctor", "patient",
			"name", "address", "phone", "license",
		},
		SkipLines: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?:dr\.?|doctor)\b`),
			regexp.MustCompile(`(?i)^(?:prescribed\s*by|physician)\b`),
			regexp.MustCompile(`\b(?:MD|M\.D\.?|DO|D\.O\.?)$`),
		},
		LabelLines: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(?:notes?|instructions?|sig|directions?)\b`),
		},
		ListMarkers: []*regexp.Regexp{numberedMarker, bulletMarker},
		Details: []FieldRule{
			{Field: FieldDosage, Pattern: dosagePattern},
			{Field: FieldFrequency, Pattern: frequencyPattern},
			{Field: FieldDuration, Pattern: durationPattern},
		},
		ShortLineMin:      2,
		ShortLineMax:      50,
		MaxInstructionLen: 100,

		Doctor: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:dr\.?|doctor(?:[ \t]+name)?)\s*[:\-]?\s*([a-z][a-z \t.]*)`),
			regexp.MustCompile(`(?i)\b(?:prescribed\s*by|physician)\s*[:\-]?\s*([a-z][a-z \t.]*)`),
			regexp.MustCompile(`\b((?i:[a-z]+)[ \t]*,?[ \t]*(?:MD|M\.D\.?|DO|D\.O\.?))\b`),
		},
		Patient: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:patient(?:[ \t]+name)?|name)\s*[:\-]?\s*([a-z][a-z \t]*)`),
			regexp.MustCompile(`(?i)\b(?:for|to)\b\s*[:\-]?\s*([a-z][a-z \t]*)`),
		},
		Date: []*regexp.Regexp{
			regexp.MustCompile(`\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})\b`),
			regexp.MustCompile(`\b(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2})\b`),
			regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4})\b`),
		},

		NotesLabel: regexp.MustCompile(`(?i)\b(?:notes?|instructions?|sig|directions?)\b[:\-]?\s*`),
		NotesEnd:   regexp.MustCompile(`\n\n|\n[A-Za-z]`),

		FallbackMinLen:   4,
		FallbackMaxLen:   29,
		MaxFallbackNames: 10,
		StopWords: []string{
			"the", "and", "for", "with", "from",
			"take", "daily", "twice", "once", "every",
		},
		DrugSuffixes:    append([]string(nil), defaultDrugSuffixes...),
		CapitalizedWord: regexp.MustCompile(`^[A-Z][a-z]+$`),
	}
	return r.compile()
}

// RuleOverrides son ajustes de política que llegan desde configuración.
// Las listas se agregan a las reglas por defecto; los enteros en cero no cambian nada.
type RuleOverrides struct {
	MetadataKeywords  []string `mapstructure:"metadata_keywords" json:"metadata_keywords"`
	StopWords         []string `mapstructure:"stop_words" json:"stop_words"`
	DrugSuffixes      []string `mapstructure:"drug_suffixes" json:"drug_suffixes"`
	ShortLineMax      int      `mapstructure:"short_line_max" json:"short_line_max"`
	MaxInstructionLen int      `mapstructure:"max_instruction_len" json:"max_instruction_len"`
	MaxFallbackNames  int      `mapstructure:"max_fallback_names" json:"max_fallback_names"`
}

// Extend devuelve una copia de r con los overrides aplicados.
func (r Rules) Extend(o RuleOverrides) Rules {
	out := r
	out.MetadataKeywords = appendLower(r.MetadataKeywords, o.MetadataKeywords)
	out.StopWords = appendLower(r.StopWords, o.StopWords)
	out.DrugSuffixes = appendLower(r.DrugSuffixes, o.DrugSuffixes)

	if o.ShortLineMax > out.ShortLineMin {
		out.ShortLineMax = o.ShortLineMax
	}
	if o.MaxInstructionLen > 0 {
		out.MaxInstructionLen = o.MaxInstructionLen
	}
	if o.MaxFallbackNames > 0 {
		out.MaxFallbackNames = o.MaxFallbackNames
	}
	return out.compile()
}

func (r Rules) compile() Rules {
	quoted := make([]string, 0, len(r.DrugSuffixes))
	for _, s := range r.DrugSuffixes {
		if s = strings.TrimSpace(s); s != "" {
			quoted = append(quoted, regexp.QuoteMeta(s))
		}
	}
	if len(quoted) > 0 {
		r.drugSuffix = regexp.MustCompile(`(?i)\w*(?:` + strings.Join(quoted, "|") + `)\w*`)
	} else {
		r.drugSuffix = nil
	}

	r.stopWords = make(map[string]struct{}, len(r.StopWords))
	for _, w := range r.StopWords {
		r.stopWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return r
}

func appendLower(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
