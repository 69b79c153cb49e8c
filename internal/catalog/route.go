package catalog

import (
	"net/url"

	"hobby_catalog/internal/domain"
)

// DetailPath is where the detail screen is served.
const DetailPath = "/v1/establishment"

// ParamsFor is the navigation payload a tap on rec produces.
func ParamsFor(rec domain.EstablishmentRecord) domain.DetailParams {
	id, name := rec.ID, rec.Name
	return domain.DetailParams{ID: &id, Name: &name}
}

// DetailRoute encodes p as a detail-screen URL. Absent fields are omitted.
func DetailRoute(p domain.DetailParams) string {
	q := url.Values{}
	if v := present(p.ID); v != "" {
		q.Set("id", v)
	}
	if v := present(p.Name); v != "" {
		q.Set("name", v)
	}
	if len(q) == 0 {
		return DetailPath
	}
	return DetailPath + "?" + q.Encode()
}

// ParseDetailParams reads the navigation payload back out of a query string.
func ParseDetailParams(q url.Values) domain.DetailParams {
	var p domain.DetailParams
	if v := q.Get("id"); v != "" {
		p.ID = &v
	}
	if v := q.Get("name"); v != "" {
		p.Name = &v
	}
	return p
}

func present(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
