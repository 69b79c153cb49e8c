package app

import (
	"context"
	"errors"
	"fmt"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

type SeedService struct {
	repo  domain.DetailRepository
	cache domain.Cache
}

// NewSeedService writes establishments into repo. cache may be nil.
func NewSeedService(r domain.DetailRepository, c domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: c}
}

// SeedItem is one establishment and its rank position in the catalog.
type SeedItem struct {
	Position int
	Detail   domain.EstablishmentDetail
}

// GeneratedDetails expands the three home lists into storable details,
// uncapped so every generated id can be looked up. Positions match the
// generator's, so List(count, offset) over the store returns what the
// generator would.
func GeneratedDetails() []SeedItem {
	var out []SeedItem
	for _, spec := range catalog.HomeSpecs {
		for i, rec := range catalog.Generate(spec.Count, spec.Offset) {
			n := spec.Offset + i
			out = append(out, SeedItem{Position: n, Detail: detailFromRecord(rec, n)})
		}
	}
	return out
}

// DecodeRecords maps loosely-shaped seed records. Invalid records are
// reported in the returned error and skipped; the valid ones are returned
// with positions in file order.
func DecodeRecords(raw []map[string]any) ([]SeedItem, error) {
	out := make([]SeedItem, 0, len(raw))
	var errs []error
	seen := make(map[string]bool, len(raw))
	for i, p := range raw {
		d, err := mapEstablishment(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("record %d: duplicate id %s: %w", i, d.ID, domain.ErrInvalidArgument))
			continue
		}
		seen[d.ID] = true
		out = append(out, SeedItem{Position: len(out), Detail: d})
	}
	return out, errors.Join(errs...)
}

// SeedOne upserts the item and evicts its cached copy so lookups see the new row.
func (s *SeedService) SeedOne(ctx context.Context, it SeedItem) error {
	d := it.Detail
	if d.ID == "" {
		return fmt.Errorf("seed: empty id: %w", domain.ErrInvalidArgument)
	}
	if err := s.repo.UpsertEstablishment(ctx, it.Position, d); err != nil {
		return fmt.Errorf("upsert %s: %w", d.ID, err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, detailKey(d.ID))
	}
	return nil
}

// InvalidateLists drops the cached home lists after a seeding run.
func (s *SeedService) InvalidateLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, spec := range catalog.HomeSpecs {
		_ = s.cache.Del(ctx, fmt.Sprintf("list:%d:%d", spec.Offset, spec.Count))
	}
}

type BookingService struct {
	resolver Resolver
	notifier domain.BookingNotifier
}

func NewBookingService(r Resolver, n domain.BookingNotifier) *BookingService {
	return &BookingService{resolver: r, notifier: n}
}

// Book forwards a "Book" tap to the notifier. Nothing is reserved or stored.
func (s *BookingService) Book(ctx context.Context, p domain.DetailParams, activityID string) error {
	if activityID == "" {
		return fmt.Errorf("activity id is required: %w", domain.ErrInvalidArgument)
	}
	d, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return err
	}
	for _, a := range d.Activities {
		if a.ID == activityID {
			return s.notifier.BookingRequested(ctx, d.EstablishmentRecord, a)
		}
	}
	return fmt.Errorf("activity %s at %s: %w", activityID, d.ID, domain.ErrNotFound)
}
