package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const defaultRequestTimeout = 15 * time.Second

// Options tunes the router. The zero value is usable: 15s timeout, no rate
// limit and the global logger.
type Options struct {
	Timeout   time.Duration
	RateLimit rate.Limit // requests per second, 0 disables limiting
	Burst     int
	Logger    *zerolog.Logger
}

// Server is the catalog's chi router with its middleware chain installed.
type Server struct{ mux *chi.Mux }

func New(o Options) *Server {
	if o.Timeout <= 0 {
		o.Timeout = defaultRequestTimeout
	}
	lg := log.Logger
	if o.Logger != nil {
		lg = *o.Logger
	}

	m := chi.NewRouter()
	m.Use(chimw.RealIP, chimw.RequestID, chimw.Recoverer)
	m.Use(Timeout(o.Timeout), Metrics, Logger(lg))
	if o.RateLimit > 0 {
		m.Use(RateLimit(rate.NewLimiter(o.RateLimit, max(o.Burst, 1))))
	}

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, http.StatusNotFound, "Not Found", "no route for "+r.URL.Path)
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" is not supported here")
	})
	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches an extra handler, such as /metrics, to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
