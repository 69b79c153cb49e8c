package catalog

import (
	"strings"

	"hobby_catalog/internal/domain"
)

type ContactChannel string

const (
	ChannelPhone   ContactChannel = "phone"
	ChannelEmail   ContactChannel = "email"
	ChannelWebsite ContactChannel = "website"
	ChannelAddress ContactChannel = "address"
)

// ContactAction is one renderable contact row. URI is what the client hands
// to the platform; an empty URI means the row is not tappable.
type ContactAction struct {
	Channel ContactChannel `json:"channel"`
	Label   string         `json:"label"`
	URI     string         `json:"uri,omitempty"`
}

// ContactActions lists the present channels in display order.
func ContactActions(c domain.ContactInfo) []ContactAction {
	var out []ContactAction
	if v, ok := field(c.Phone); ok {
		out = append(out, ContactAction{Channel: ChannelPhone, Label: v, URI: "tel:" + v})
	}
	if v, ok := field(c.Email); ok {
		out = append(out, ContactAction{Channel: ChannelEmail, Label: v, URI: "mailto:" + v})
	}
	if v, ok := field(c.Website); ok {
		out = append(out, ContactAction{Channel: ChannelWebsite, Label: v, URI: WebURI(v)})
	}
	if v, ok := field(c.Address); ok {
		out = append(out, ContactAction{Channel: ChannelAddress, Label: v})
	}
	return out
}

// WebURI prefixes a bare domain with https://.
func WebURI(site string) string {
	if strings.HasPrefix(strings.ToLower(site), "http") {
		return site
	}
	return "https://" + site
}

func field(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}
