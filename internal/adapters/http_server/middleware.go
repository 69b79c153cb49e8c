package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"hobby_catalog/internal/adapters/observability"
)

var timeoutBody = func() string {
	b, _ := json.Marshal(problem{
		Type: "about:blank", Title: "Service Unavailable",
		Status: http.StatusServiceUnavailable, Detail: "request timed out",
	})
	return string(b)
}()

// Timeout bounds each request to d. A request that runs over gets a 503
// problem response; whatever the handler writes afterwards is discarded.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(problemOn503{w}, r)
		})
	}
}

// problemOn503 labels the timeout body. TimeoutHandler writes it without a
// Content-Type, while handler-written 503s already carry one.
type problemOn503 struct{ http.ResponseWriter }

func (w problemOn503) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/problem+json")
	}
	w.ResponseWriter.WriteHeader(code)
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// /healthz is never limited.
func RateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/healthz" && !l.Allow() {
				observability.ObserveRateLimited()
				w.Header().Set("Retry-After", "1")
				writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routePattern is the matched chi pattern, so metrics labels stay bounded.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func status(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// ---- Metrics middleware ----

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		observability.ObserveHTTP(routePattern(r), r.Method, status(ww), time.Since(start))
	})
}

// ---- Structured logging middleware ----

// Logger writes one line per request. RealIP runs earlier in the chain, so
// RemoteAddr already holds the client address.
func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			st := status(ww)
			ev := l.Info()
			if st >= http.StatusInternalServerError {
				ev = l.Error()
			}
			ev.
				Str("route", routePattern(r)).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Int("status", st).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("remote", r.RemoteAddr).
				Str("ua", r.UserAgent()).
				Str("request_id", chimw.GetReqID(r.Context())).
				Msg("http_request")
		})
	}
}
