package app

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

/********** alias registries (single source of truth) **********/

var establishmentAliases = map[string][]string{
	"id":       {"id", "establishment_id", "establishmentId", "slug"},
	"name":     {"name", "title", "business_name", "businessName"},
	"area":     {"area", "district", "neighbourhood", "neighborhood", "city"},
	"category": {"category", "tag", "type", "venue_type"},
	"hero":     {"hero_image", "heroImageUri", "heroImageRef", "image", "thumbnail", "image_url"},
	"about":    {"about", "description", "summary", "bio"},
	"address":  {"address", "address_raw", "full_address", "location.address"},
	"phone":    {"phone", "contact.phone", "telephone", "tel"},
	"email":    {"email", "contact.email", "mail"},
	"website":  {"website", "contact.website", "url", "web"},
	"contact_address": {
		"contact.address", "address", "full_address", "location.address",
	},
}

var activityAliases = map[string][]string{
	"id":       {"id", "activity_id", "code"},
	"name":     {"name", "title", "service"},
	"duration": {"duration", "durationLabel", "length"},
	"price":    {"price", "priceLabel", "cost"},
}

var teamAliases = map[string][]string{
	"id":     {"id", "member_id", "staff_id"},
	"name":   {"name", "full_name", "fullName"},
	"role":   {"role", "title", "position"},
	"avatar": {"avatar", "avatarUri", "avatarRef", "photo", "image"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// getFloatFlexible: number from several paths (float64/int/string like "4,8").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstSliceMaps returns the first []any of objects found under paths.
func firstSliceMaps(m map[string]any, paths ...string) []map[string]any {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, it := range raw {
			if obj, ok := it.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// stableID hashes the identifying fields of a nested row that came without an id.
func stableID(prefix string, parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return prefix + hex.EncodeToString(sum[:])[:12]
}

/********** ingestion-boundary validation **********/

// clampRating keeps external ratings inside [0,5], rounded to one decimal.
func clampRating(f *float64) float64 {
	if f == nil {
		return 0
	}
	r := catalog.ClampRating(*f)
	return math.Round(r*10) / 10
}

func clampCount(f *float64) int {
	if f == nil || math.IsNaN(*f) || *f < 0 {
		return 0
	}
	return int(*f)
}

/********** establishment mapper **********/

// mapEstablishment turns one loosely-shaped seed record into a detail.
// Records without an id or a name are rejected.
func mapEstablishment(p map[string]any) (domain.EstablishmentDetail, error) {
	id := deref(firstNonEmptyAlias(p, establishmentAliases, "id"))
	if id == "" {
		return domain.EstablishmentDetail{}, fmt.Errorf("record without id: %w", domain.ErrInvalidArgument)
	}
	name := deref(firstNonEmptyAlias(p, establishmentAliases, "name"))
	if name == "" {
		return domain.EstablishmentDetail{}, fmt.Errorf("record %s without name: %w", id, domain.ErrInvalidArgument)
	}

	rawRating := getFloatFlexible(p, "rating", "rating.value", "score", "stars")
	if rawRating != nil && (*rawRating < 0 || *rawRating > catalog.MaxRating) {
		log.Warn().Str("id", id).Float64("rating", *rawRating).Msg("rating out of range, clamped")
	}

	d := domain.EstablishmentDetail{
		EstablishmentRecord: domain.EstablishmentRecord{
			ID:       id,
			Name:     name,
			Area:     deref(firstNonEmptyAlias(p, establishmentAliases, "area")),
			Category: deref(firstNonEmptyAlias(p, establishmentAliases, "category")),
			Rating:   clampRating(rawRating),
		},
		HeroImageRef: domain.ImageRef(deref(firstNonEmptyAlias(p, establishmentAliases, "hero"))),
		RatingCount:  clampCount(getFloatFlexible(p, "ratingCount", "rating_count", "review_count", "reviews")),
		Address:      deref(firstNonEmptyAlias(p, establishmentAliases, "address")),
		About:        deref(firstNonEmptyAlias(p, establishmentAliases, "about")),
		Contact: domain.ContactInfo{
			Phone:   firstNonEmptyAlias(p, establishmentAliases, "phone"),
			Email:   firstNonEmptyAlias(p, establishmentAliases, "email"),
			Website: firstNonEmptyAlias(p, establishmentAliases, "website"),
			Address: firstNonEmptyAlias(p, establishmentAliases, "contact_address"),
		},
		Activities: mapActivities(id, firstSliceMaps(p, "activities", "services", "menu")),
		Team:       mapTeam(id, firstSliceMaps(p, "team", "staff", "instructors")),
	}

	lat := getFloatFlexible(p, "lat", "latitude", "location.lat", "location.latitude")
	lon := getFloatFlexible(p, "lon", "lng", "longitude", "location.lon", "location.lng", "location.longitude")
	if lat != nil && lon != nil {
		d.Location = &domain.Location{Point: orb.Point{*lon, *lat}, SpanDeg: defaultMapSpan, Title: name}
	}
	return d, nil
}

const defaultMapSpan = 0.01

func mapActivities(estID string, in []map[string]any) []domain.Activity {
	out := make([]domain.Activity, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, a := range in {
		name := deref(firstNonEmptyAlias(a, activityAliases, "name"))
		if name == "" {
			continue
		}
		price := deref(firstNonEmptyAlias(a, activityAliases, "price"))
		id := deref(firstNonEmptyAlias(a, activityAliases, "id"))
		if id == "" {
			id = stableID("a-", estID, name, price)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, domain.Activity{
			ID:            id,
			Name:          name,
			DurationLabel: firstNonEmptyAlias(a, activityAliases, "duration"),
			PriceLabel:    price,
		})
	}
	return out
}

func mapTeam(estID string, in []map[string]any) []domain.TeamMember {
	out := make([]domain.TeamMember, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, m := range in {
		name := deref(firstNonEmptyAlias(m, teamAliases, "name"))
		if name == "" {
			continue
		}
		id := deref(firstNonEmptyAlias(m, teamAliases, "id"))
		if id == "" {
			id = stableID("t-", estID, name)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		tm := domain.TeamMember{ID: id, Name: name, Role: firstNonEmptyAlias(m, teamAliases, "role")}
		if av := firstNonEmptyAlias(m, teamAliases, "avatar"); av != nil {
			ref := domain.ImageRef(*av)
			tm.AvatarRef = &ref
		}
		out = append(out, tm)
	}
	return out
}

/********** generated records **********/

// detailFromRecord dresses a generated record with the default detail's
// activities, team and contact so it can be stored and looked up.
func detailFromRecord(rec domain.EstablishmentRecord, n int) domain.EstablishmentDetail {
	d := catalog.Hydrate(catalog.DefaultDetail(), nil, nil)
	d.EstablishmentRecord = rec
	d.RatingCount = 50 + (n*37)%200
	d.Address = rec.Area
	if d.Location != nil {
		d.Location.Title = rec.Name
	}
	return d
}
