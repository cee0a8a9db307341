package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/okian/champions/pkg/logger"
)

const corsMaxAgeSeconds = 300

// RouterOptions configures the middleware stack installed by NewRouter.
type RouterOptions struct {
	// AllowedOrigins feeds the CORS handler. Empty allows every origin.
	AllowedOrigins []string

	// RequestTimeout cancels the request context after the duration. Zero disables it.
	RequestTimeout time.Duration

	Logger logger.Logger
}

// NewRouter returns a chi router with the shared middleware stack applied.
// Routes must be registered on it afterwards.
func NewRouter(opts RouterOptions) chi.Router {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(l))
	r.Use(Recoverer(l))
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsMaxAgeSeconds,
	}))
	return r
}
