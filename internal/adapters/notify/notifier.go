// Package notify delivers "Book" taps. Today that means a structured log
// line and a counter; there is no booking backend.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"hobby_catalog/internal/adapters/observability"
	"hobby_catalog/internal/domain"
)

type LogNotifier struct{ l zerolog.Logger }

func NewLogNotifier(l zerolog.Logger) *LogNotifier { return &LogNotifier{l: l} }

func (n *LogNotifier) BookingRequested(ctx context.Context, est domain.EstablishmentRecord, a domain.Activity) error {
	ev := n.l.Info().
		Str("establishment_id", est.ID).
		Str("establishment", est.Name).
		Str("activity_id", a.ID).
		Str("activity", a.Name).
		Str("price", a.PriceLabel)
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok && rid != "" {
		ev = ev.Str("request_id", rid)
	}
	ev.Msg("booking_requested")
	observability.ObserveBooking(est.Category)
	return nil
}

type requestIDKey struct{}

// WithRequestID tags ctx so booking log lines can be joined to access logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
