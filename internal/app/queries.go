package app

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

type HomeService struct {
	source   domain.CatalogSource
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewHomeService builds the home feed over source. c may be nil.
func NewHomeService(src domain.CatalogSource, c domain.Cache, ttl time.Duration) *HomeService {
	return &HomeService{source: src, cache: c, cacheTTL: ttl}
}

func (s *HomeService) Home(ctx context.Context) (HomeView, error) {
	lists := make([]ListView, 0, len(catalog.HomeSpecs))
	for _, spec := range catalog.HomeSpecs {
		l, err := s.list(ctx, spec)
		if err != nil {
			return HomeView{}, err
		}
		lists = append(lists, mapList(l))
	}
	grid, err := s.Categories(catalog.DefaultGridColumns)
	if err != nil {
		return HomeView{}, err
	}
	return HomeView{Lists: lists, Categories: grid}, nil
}

// List returns one named home list by slug.
func (s *HomeService) List(ctx context.Context, slug string) (ListView, error) {
	spec, ok := catalog.SpecBySlug(slug)
	if !ok {
		return ListView{}, fmt.Errorf("list %q: %w", slug, domain.ErrNotFound)
	}
	l, err := s.list(ctx, spec)
	if err != nil {
		return ListView{}, err
	}
	return mapList(l), nil
}

func (s *HomeService) Categories(columns int) ([][]domain.Category, error) {
	return catalog.Layout(catalog.Categories(), columns)
}

func (s *HomeService) list(ctx context.Context, spec catalog.ListSpec) (domain.NamedCatalogList, error) {
	key := fmt.Sprintf("list:%d:%d", spec.Offset, spec.Count)
	var items []domain.EstablishmentRecord
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &items); ok {
			return catalog.Cap(domain.NamedCatalogList{Slug: spec.Slug, Title: spec.Title, Items: items}, catalog.MaxListItems), nil
		}
	}
	items, err := s.source.List(ctx, spec.Count, spec.Offset)
	if err != nil {
		return domain.NamedCatalogList{}, fmt.Errorf("list %s: %w", spec.Slug, err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds()))
	}
	return catalog.Cap(domain.NamedCatalogList{Slug: spec.Slug, Title: spec.Title, Items: items}, catalog.MaxListItems), nil
}

type DetailService struct {
	resolver Resolver
}

func NewDetailService(r Resolver) *DetailService {
	return &DetailService{resolver: r}
}

// Detail resolves p and maps it to the detail view. from, when set, adds the
// distance between the caller and the establishment's map pin.
func (s *DetailService) Detail(ctx context.Context, p domain.DetailParams, from *orb.Point) (DetailView, error) {
	d, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return DetailView{}, err
	}
	return mapDetail(d, from), nil
}
