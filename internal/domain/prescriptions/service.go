package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prescription-reader/internal/platform/logger"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInputTooLarge = errors.New("input too large")
)

// ParseResult es lo que devuelve el servicio: los datos extraídos más
// un id y timestamp para poder correlacionar logs y respuestas.
type ParseResult struct {
	ID           string
	ParsedAt     time.Time
	Prescription PrescriptionData
	Validation   Validation
}

type ServiceOptions struct {
	Parser *Parser       // nil => reglas por defecto
	Logger logger.Logger // nil => no loguea
	// MaxInputBytes <= 0 => sin límite
	MaxInputBytes int64
}

type Service struct {
	parser   *Parser
	log      logger.Logger
	maxInput int64
	now      func() time.Time
}

func NewService(opts ServiceOptions) *Service {
	p := opts.Parser
	if p == nil {
		p = defaultParser
	}
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Service{
		parser:   p,
		log:      l,
		maxInput: opts.MaxInputBytes,
		now:      time.Now,
	}
}

func (s *Service) Parse(ctx context.Context, text string) (ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return ParseResult{}, err
	}
	if s.maxInput > 0 && int64(len(text)) > s.maxInput {
		return ParseResult{}, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(text), s.maxInput)
	}

	data := s.parser.Parse(text)
	res := ParseResult{
		ID:           uuid.NewString(),
		ParsedAt:     s.now().UTC(),
		Prescription: data,
		Validation:   Validate(data),
	}

	s.log.Info("prescription parsed", map[string]any{
		"parse_id":    res.ID,
		"input_bytes": len(text),
		"medications": len(data.Medications),
		"valid":       res.Validation.IsValid,
		"warnings":    len(res.Validation.Warnings),
	})
	return res, nil
}

// Validate expone Validate con logging; acepta datos que no salieron del parser.
func (s *Service) Validate(ctx context.Context, data PrescriptionData) (Validation, error) {
	if err := ctx.Err(); err != nil {
		return Validation{}, err
	}
	v := Validate(data)
	s.log.Debug("prescription validated", map[string]any{
		"valid":    v.IsValid,
		"warnings": v.Warnings,
	})
	return v, nil
}
