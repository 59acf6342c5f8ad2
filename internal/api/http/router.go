package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mind-engage/sensory-profile/internal/scoring"
)

type RouterOptions struct {
	Aggregator     *scoring.Aggregator
	Logger         *slog.Logger
	CORSOrigins    []string      // empty means any origin
	RequestTimeout time.Duration // zero disables the timeout middleware
}

// NewRouter mounts every endpoint of the calculator.
func NewRouter(opts RouterOptions) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	agg := opts.Aggregator
	if agg == nil {
		agg = scoring.NewAggregator(scoring.WithLogger(log))
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/", IndexHandler)
	r.Head("/", IndexHandler)
	r.Post("/calculate", CalculateHandler(agg, log))
	r.Get("/profile", ProfileHandler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
