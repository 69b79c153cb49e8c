package app

import (
	"context"
	"fmt"
	"time"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

// Resolver turns navigation params into the detail record to show.
type Resolver interface {
	Resolve(ctx context.Context, p domain.DetailParams) (domain.EstablishmentDetail, error)
}

// PlaceholderResolver hydrates a fixed base record. Unknown ids are not
// detected; every id resolves.
type PlaceholderResolver struct {
	Base func() domain.EstablishmentDetail
}

func NewPlaceholderResolver() PlaceholderResolver {
	return PlaceholderResolver{Base: catalog.DefaultDetail}
}

func (r PlaceholderResolver) Resolve(_ context.Context, p domain.DetailParams) (domain.EstablishmentDetail, error) {
	return catalog.Hydrate(r.Base(), p.ID, p.Name), nil
}

// LookupResolver reads the record keyed by id and fails with
// domain.ErrNotFound when nothing matches.
type LookupResolver struct {
	repo     domain.DetailRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewLookupResolver(r domain.DetailRepository, c domain.Cache, ttl time.Duration) *LookupResolver {
	return &LookupResolver{repo: r, cache: c, cacheTTL: ttl}
}

func (r *LookupResolver) Resolve(ctx context.Context, p domain.DetailParams) (domain.EstablishmentDetail, error) {
	if p.ID == nil || *p.ID == "" {
		return domain.EstablishmentDetail{}, fmt.Errorf("establishment id is required: %w", domain.ErrInvalidArgument)
	}
	id := *p.ID

	key := detailKey(id)
	var d domain.EstablishmentDetail
	if r.cache != nil {
		if ok, _ := r.cache.Get(ctx, key, &d); ok {
			return catalog.Hydrate(d, nil, p.Name), nil
		}
	}
	d, err := r.repo.GetEstablishment(ctx, id)
	if err != nil {
		return domain.EstablishmentDetail{}, fmt.Errorf("establishment %s: %w", id, err)
	}
	if r.cache != nil {
		_ = r.cache.Set(ctx, key, d, int(r.cacheTTL.Seconds()))
	}
	// the stored record is cached; the name override is applied per request
	return catalog.Hydrate(d, nil, p.Name), nil
}

func detailKey(id string) string { return "est:" + id }
