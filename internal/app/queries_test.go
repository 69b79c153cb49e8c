package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"hobby_catalog/internal/app"
	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	byID     map[string]domain.EstablishmentDetail
	list     []domain.EstablishmentRecord
	upserts  []string
	getCalls int
}

func (f *fakeRepo) UpsertEstablishment(ctx context.Context, position int, d domain.EstablishmentDetail) error {
	if f.byID == nil {
		f.byID = map[string]domain.EstablishmentDetail{}
	}
	f.byID[d.ID] = d
	f.upserts = append(f.upserts, d.ID)
	return nil
}

func (f *fakeRepo) GetEstablishment(ctx context.Context, id string) (domain.EstablishmentDetail, error) {
	f.getCalls++
	d, ok := f.byID[id]
	if !ok {
		return domain.EstablishmentDetail{}, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeRepo) ListEstablishments(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
	return f.list, nil
}

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type sourceFunc func(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error)

func (f sourceFunc) List(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
	return f(ctx, count, offset)
}

// ---- home ----

func TestHome_ListsCappedWithTreatmentsAndRoutes(t *testing.T) {
	q := app.NewHomeService(catalog.Generator{}, nil, time.Minute)
	h, err := q.Home(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(h.Lists) != 3 {
		t.Fatalf("lists=%d", len(h.Lists))
	}
	rec := h.Lists[0]
	if rec.Title != "Recommended" || len(rec.Items) != 15 {
		t.Fatalf("unexpected list: %s len=%d", rec.Title, len(rec.Items))
	}
	if rec.Items[0].ID != "est-0" || rec.Items[14].ID != "est-14" {
		t.Fatalf("first=%s last=%s", rec.Items[0].ID, rec.Items[14].ID)
	}
	for i, c := range rec.Items {
		if c.Treatment != catalog.Treatment(i) {
			t.Fatalf("card %d treatment=%s", i, c.Treatment)
		}
		if !strings.HasPrefix(c.Route, catalog.DetailPath+"?id="+c.ID) {
			t.Fatalf("card %d route=%s", i, c.Route)
		}
		if len(c.Rating.Stars) != 5 || c.Rating.Count != "" {
			t.Fatalf("card %d rating=%+v", i, c.Rating)
		}
	}
	if got := rec.Items[9].Rating.Label; got != "4.9" {
		t.Fatalf("label=%s", got)
	}
	if len(h.Categories) != 5 || len(h.Categories[0]) != 2 {
		t.Fatalf("unexpected grid shape: %d rows", len(h.Categories))
	}
}

func TestHome_RenderTimeCapOnLongSource(t *testing.T) {
	src := sourceFunc(func(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
		return catalog.Generate(40, offset), nil // ignores count
	})
	q := app.NewHomeService(src, nil, time.Minute)
	l, err := q.List(context.Background(), "trending")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(l.Items) != catalog.MaxListItems || l.Items[0].ID != "est-40" {
		t.Fatalf("len=%d first=%s", len(l.Items), l.Items[0].ID)
	}
}

func TestHome_UnknownList(t *testing.T) {
	q := app.NewHomeService(catalog.Generator{}, nil, time.Minute)
	if _, err := q.List(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestHome_SourceErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	src := sourceFunc(func(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
		return nil, boom
	})
	q := app.NewHomeService(src, nil, time.Minute)
	if _, err := q.Home(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}

func TestHome_CacheMissThenHit(t *testing.T) {
	calls := 0
	src := sourceFunc(func(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
		calls++
		return catalog.Generate(count, offset), nil
	})
	cache := &fakeCache{}
	q := app.NewHomeService(src, cache, time.Minute)

	first, err := q.List(context.Background(), "recommended")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := q.List(context.Background(), "recommended")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if calls != 1 {
		t.Fatalf("source calls=%d, want 1", calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached list differs:\n%s", diff)
	}
}

// ---- detail ----

func TestDetail_PlaceholderHydratesFromParams(t *testing.T) {
	d := app.NewDetailService(app.NewPlaceholderResolver())
	id, name := "est-3", "Pulse Gym 1"
	v, err := d.Detail(context.Background(), domain.DetailParams{ID: &id, Name: &name}, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.ID != id || v.Name != name {
		t.Fatalf("identity=%s %s", v.ID, v.Name)
	}
	if v.Rating.Label != "4.9" || v.Rating.Count != "(116)" {
		t.Fatalf("rating=%+v", v.Rating)
	}
	if len(v.Contact) != 4 || v.Contact[0].URI != "tel:+973 3333 3333" {
		t.Fatalf("contact=%+v", v.Contact)
	}
	if v.Map == nil || v.DistanceMeters != nil {
		t.Fatalf("map=%+v distance=%v", v.Map, v.DistanceMeters)
	}
}

func TestDetail_PlaceholderWithoutParamsUsesBase(t *testing.T) {
	d := app.NewDetailService(app.NewPlaceholderResolver())
	v, err := d.Detail(context.Background(), domain.DetailParams{}, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	base := catalog.DefaultDetail()
	if v.ID != base.ID || v.Name != base.Name {
		t.Fatalf("identity=%s %s", v.ID, v.Name)
	}
}

func TestDetail_Distance(t *testing.T) {
	d := app.NewDetailService(app.NewPlaceholderResolver())
	from := catalog.DefaultDetail().Location.Point
	v, err := d.Detail(context.Background(), domain.DetailParams{}, &from)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.DistanceMeters == nil || *v.DistanceMeters != 0 {
		t.Fatalf("distance=%v", v.DistanceMeters)
	}
	far := orb.Point{from.Lon(), from.Lat() + 1}
	v, _ = d.Detail(context.Background(), domain.DetailParams{}, &far)
	if *v.DistanceMeters < 100_000 {
		t.Fatalf("distance=%v", *v.DistanceMeters)
	}
}

func TestLookupResolver_NotFound(t *testing.T) {
	r := app.NewLookupResolver(&fakeRepo{}, nil, time.Minute)
	id := "est-999"
	if _, err := r.Resolve(context.Background(), domain.DetailParams{ID: &id}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
	if _, err := r.Resolve(context.Background(), domain.DetailParams{}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("err=%v", err)
	}
}

func TestLookupResolver_CacheMissThenHit(t *testing.T) {
	stored := catalog.DefaultDetail()
	stored.ID, stored.Name = "est-5", "Rhythm Dance 1"
	repo := &fakeRepo{byID: map[string]domain.EstablishmentDetail{"est-5": stored}}
	r := app.NewLookupResolver(repo, &fakeCache{}, time.Minute)

	id := "est-5"
	got, err := r.Resolve(context.Background(), domain.DetailParams{ID: &id})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if diff := cmp.Diff(stored, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	// Mutate repo to ensure second read comes from cache
	changed := stored
	changed.About = "SHOULD NOT SEE THIS"
	repo.byID["est-5"] = changed

	name := "Tapped Name"
	got2, err := r.Resolve(context.Background(), domain.DetailParams{ID: &id, Name: &name})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.getCalls != 1 || got2.About != stored.About {
		t.Fatalf("expected cached record, calls=%d about=%q", repo.getCalls, got2.About)
	}
	if got2.Name != name {
		t.Fatalf("name override not applied: %s", got2.Name)
	}
}
