package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"kiegw/internal/http/handlers"
	"kiegw/internal/middleware"
)

// Options configures the HTTP router.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter wires middleware and routes for the gateway API.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.Locale,
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/tools", app.ListTools)

	r.Group(func(r chi.Router) {
		if opts.RateLimitPerMin > 0 {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
		}
		r.Post("/v1/tools/{tool}", app.InvokeTool)
	})

	r.Get("/v1/tasks", app.ListTasks)
	r.Get("/v1/tasks/{task_id}", app.GetTask)
	r.Get("/v1/veo/1080p/{task_id}", app.Veo1080p)

	return r
}
