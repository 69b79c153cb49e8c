package domain

import "context"

// CatalogSource produces ranked establishment records. The in-memory
// generator and the MySQL repo both satisfy it.
type CatalogSource interface {
	List(ctx context.Context, count, offset int) ([]EstablishmentRecord, error)
}

type DetailRepository interface {
	// Write paths. position is the record's rank in the global catalog order.
	UpsertEstablishment(ctx context.Context, position int, d EstablishmentDetail) error

	// Read paths
	GetEstablishment(ctx context.Context, id string) (EstablishmentDetail, error)
	ListEstablishments(ctx context.Context, count, offset int) ([]EstablishmentRecord, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// BookingNotifier receives the "Book" tap. There is no booking transaction behind it.
type BookingNotifier interface {
	BookingRequested(ctx context.Context, est EstablishmentRecord, a Activity) error
}
