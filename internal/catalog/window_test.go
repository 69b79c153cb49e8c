package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

func listOf(items ...domain.EstablishmentRecord) domain.NamedCatalogList {
	return domain.NamedCatalogList{Slug: "test", Title: "Test", Items: items}
}

func TestCap_LengthAndPrefix(t *testing.T) {
	src := catalog.Generate(20, 0)
	for _, limit := range []int{-1, 0, 1, 5, 15, 20, 25} {
		got := catalog.Cap(listOf(src...), limit)

		want := min(len(src), max(limit, 0))
		if len(got.Items) != want {
			t.Fatalf("limit %d: len=%d want %d", limit, len(got.Items), want)
		}
		if diff := cmp.Diff(src[:want], got.Items); diff != "" {
			t.Fatalf("limit %d: not a prefix (-want +got):\n%s", limit, diff)
		}
		if got.Title != "Test" || got.Slug != "test" {
			t.Fatalf("title/slug changed: %+v", got)
		}
	}
}

func TestCap_Idempotent(t *testing.T) {
	l := listOf(catalog.Generate(18, 0)...)
	once := catalog.Cap(l, 15)
	twice := catalog.Cap(once, 15)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("capping twice changed the list:\n%s", diff)
	}
}

func TestCap_DoesNotTouchSource(t *testing.T) {
	src := catalog.Generate(18, 0)
	before := append([]domain.EstablishmentRecord(nil), src...)
	l := listOf(src...)

	got := catalog.Cap(l, 15)
	got.Items = append(got.Items, domain.EstablishmentRecord{ID: "intruder"})

	if len(l.Items) != 18 {
		t.Fatalf("source length changed: %d", len(l.Items))
	}
	if diff := cmp.Diff(before, l.Items); diff != "" {
		t.Fatalf("source modified (-before +after):\n%s", diff)
	}
}

func TestCap_ShortListUnchanged(t *testing.T) {
	l := listOf(catalog.Generate(3, 0)...)
	if diff := cmp.Diff(l, catalog.Cap(l, 15)); diff != "" {
		t.Fatalf("short list changed:\n%s", diff)
	}
}
