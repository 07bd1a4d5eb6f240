package prescriptions

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"prescription-reader/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RouteOptions controla autenticación y límites de las rutas de recetas.
type RouteOptions struct {
	// RequireAuth exige claims en el contexto (bearer token o X-Debug-User-ID en dev).
	RequireAuth bool
	// MaxBodyBytes limita el body; <= 0 usa defaultMaxBody.
	MaxBodyBytes int64
}

const defaultMaxBody = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, opts RouteOptions) {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBody
	}

	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Post("/parse", parseHandler(svc, opts))
		pr.Post("/validate", validateHandler(svc, opts))
	})
}

// parseRequest es el cuerpo JSON para parsear texto OCR.
type parseRequest struct {
	Text string `json:"text"`
}

// parseResponse es el resultado del parseo devuelto por la API.
type parseResponse struct {
	ID           string           `json:"id"`
	ParsedAt     time.Time        `json:"parsed_at"`
	Prescription PrescriptionData `json:"prescription"`
	Validation   Validation       `json:"validation"`
}

// parseHandler godoc
// @Summary Parsear texto OCR de una receta
// @Description Extrae médico, paciente, fecha, medicamentos y notas del texto reconocido por el OCR. Acepta `application/json` con `{"text": "..."}` o el texto crudo como `text/plain`. Con `format=text` devuelve la receta en texto plano. Autenticación (si está habilitada): `Authorization: Bearer <token>`.
// @Tags prescriptions
// @Accept json
// @Accept plain
// @Produce json
// @Produce plain
// @Param Authorization header string false "Bearer token (si AUTH_JWT_SECRET está configurado)"
// @Param format query string false "json (default) o text"
// @Param payload body parseRequest false "Texto OCR"
// @Success 200 {object} parseResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 413 {string} string "input too large"
// @Router /prescriptions/parse [post]
func parseHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, opts) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		text, err := readText(w, r, opts.MaxBodyBytes)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Parse(r.Context(), text)
		if err != nil {
			writeError(w, err)
			return
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "text") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Parse-ID", res.ID)
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, FormatText(res.Prescription))
			return
		}

		writeJSON(w, http.StatusOK, parseResponse{
			ID:           res.ID,
			ParsedAt:     res.ParsedAt,
			Prescription: res.Prescription,
			Validation:   res.Validation,
		})
	}
}

// validateHandler godoc
// @Summary Validar datos de una receta
// @Description Revisa datos de receta (extraídos por este servicio u otro) y devuelve advertencias: sin medicamentos, sin médico, sin paciente. Es solo informativo.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (si AUTH_JWT_SECRET está configurado)"
// @Param payload body PrescriptionData true "Datos de la receta"
// @Success 200 {object} Validation
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Router /prescriptions/validate [post]
func validateHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, opts) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes))
		dec.DisallowUnknownFields()

		var data PrescriptionData
		if err := dec.Decode(&data); err != nil {
			writeError(w, decodeError(err))
			return
		}

		v, err := svc.Validate(r.Context(), data)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func authorized(r *http.Request, opts RouteOptions) bool {
	if !opts.RequireAuth {
		return true
	}
	claims, ok := middleware.GetClaims(r.Context())
	return ok && strings.TrimSpace(claims.UserID) != ""
}

// readText acepta JSON {"text": ...} o el body crudo como texto.
func readText(w http.ResponseWriter, r *http.Request, max int64) (string, error) {
	body := http.MaxBytesReader(w, r.Body, max)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var req parseRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return "", decodeError(err)
		}
		return req.Text, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", decodeError(err)
	}
	return string(raw), nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrInputTooLarge
	}
	return ErrInvalidInput
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInputTooLarge):
		http.Error(w, "input too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid json", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
