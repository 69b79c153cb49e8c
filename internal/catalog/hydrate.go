package catalog

import (
	"slices"

	"hobby_catalog/internal/domain"
)

// Hydrate returns a copy of base with id and name replaced by the overrides
// that are present. A nil override keeps base's value; a non-nil one wins even
// when it is empty. base is never modified, and the copy shares no slices or
// pointers with it.
//
// Every other field comes from base whatever id is supplied, so an unknown
// id still yields a plausible detail. Callers with a real data source should
// use a lookup instead (see app.LookupResolver).
func Hydrate(base domain.EstablishmentDetail, overrideID, overrideName *string) domain.EstablishmentDetail {
	out := cloneDetail(base)
	if overrideID != nil {
		out.ID = *overrideID
	}
	if overrideName != nil {
		out.Name = *overrideName
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDetail(d domain.EstablishmentDetail) domain.EstablishmentDetail {
	d.Activities = slices.Clone(d.Activities)
	for i := range d.Activities {
		d.Activities[i].DurationLabel = clonePtr(d.Activities[i].DurationLabel)
	}
	d.Team = slices.Clone(d.Team)
	for i := range d.Team {
		d.Team[i].Role = clonePtr(d.Team[i].Role)
		d.Team[i].AvatarRef = clonePtr(d.Team[i].AvatarRef)
	}
	d.Contact = domain.ContactInfo{
		Phone:   clonePtr(d.Contact.Phone),
		Email:   clonePtr(d.Contact.Email),
		Website: clonePtr(d.Contact.Website),
		Address: clonePtr(d.Contact.Address),
	}
	d.Location = clonePtr(d.Location)
	return d
}
