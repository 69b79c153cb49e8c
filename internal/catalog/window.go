package catalog

import "hobby_catalog/internal/domain"

// MaxListItems is the most cards any horizontal list shows.
const MaxListItems = 15

// Cap returns list with at most limit items, in the original order.
// The source list is never modified; the returned slice has its capacity
// clipped so appends on it cannot reach the source's backing array.
func Cap(list domain.NamedCatalogList, limit int) domain.NamedCatalogList {
	if limit < 0 {
		limit = 0
	}
	if len(list.Items) > limit {
		list.Items = list.Items[:limit:limit]
	}
	return list
}
