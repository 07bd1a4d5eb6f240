package router

import (
	"net/http"

	_ "prescription-reader/docs"
	"prescription-reader/internal/domain/prescriptions"
	"prescription-reader/internal/middleware"
	"prescription-reader/internal/platform/logger"
	"prescription-reader/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// RequireAuth exige claims en /prescriptions/*. En dev alcanza con X-Debug-User-ID.
	RequireAuth bool

	Logger logger.Logger // nil => no loguea

	// Opcional: si viene, reemplaza las reglas por defecto del parser.
	Rules *prescriptions.Rules

	// <= 0 => sin límite en el servicio (el handler igual limita el body a 1MB).
	MaxInputBytes int64

	// Vacío => sin CORS.
	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Debug-User-ID"},
			ExposedHeaders:   []string{"X-Parse-ID", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}).Handler)
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	rules := prescriptions.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}

	svc := prescriptions.NewService(prescriptions.ServiceOptions{
		Parser:        prescriptions.NewParser(rules),
		Logger:        log,
		MaxInputBytes: opts.MaxInputBytes,
	})

	body := int64(0)
	if opts.MaxInputBytes > 0 {
		// margen para el envoltorio JSON y los escapes
		body = 2*opts.MaxInputBytes + 1024
	}

	prescriptions.RegisterRoutes(r, svc, prescriptions.RouteOptions{
		RequireAuth:  opts.RequireAuth,
		MaxBodyBytes: body,
	})

	return r
}
