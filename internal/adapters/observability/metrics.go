package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "catalog", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "catalog", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	BookingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "catalog", Name: "booking_requests_total", Help: "Book taps forwarded to the notifier."},
		[]string{"category"},
	)
	SeededRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "catalog", Name: "seeded_records_total", Help: "Establishments written by the seeder."},
		[]string{"result"}, // ok|error
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "catalog", Name: "rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)
)

// Serve starts a standalone metrics listener on addr. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, BookingRequests, SeededRecords, RateLimited)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveBooking(category string) {
	if category == "" {
		category = "unknown"
	}
	BookingRequests.WithLabelValues(category).Inc()
}

func ObserveSeed(err error) {
	if err != nil {
		SeededRecords.WithLabelValues("error").Inc()
		return
	}
	SeededRecords.WithLabelValues("ok").Inc()
}

func ObserveRateLimited() { RateLimited.Inc() }
