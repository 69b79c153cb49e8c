package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hobby_catalog/internal/catalog"
	"hobby_catalog/internal/domain"
)

func TestContactActions_AllChannels(t *testing.T) {
	got := catalog.ContactActions(catalog.DefaultDetail().Contact)
	want := []catalog.ContactAction{
		{Channel: catalog.ChannelPhone, Label: "+973 3333 3333", URI: "tel:+973 3333 3333"},
		{Channel: catalog.ChannelEmail, Label: "hello@millitrims.example", URI: "mailto:hello@millitrims.example"},
		{Channel: catalog.ChannelWebsite, Label: "https://millitrims.example", URI: "https://millitrims.example"},
		{Channel: catalog.ChannelAddress, Label: "saar centre, Saar, Bahrain"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestContactActions_MissingFieldsSkipped(t *testing.T) {
	got := catalog.ContactActions(domain.ContactInfo{Email: sp("a@b.example"), Phone: sp("  ")})
	if len(got) != 1 || got[0].Channel != catalog.ChannelEmail {
		t.Fatalf("unexpected actions: %+v", got)
	}
	if got := catalog.ContactActions(domain.ContactInfo{}); len(got) != 0 {
		t.Fatalf("empty contact should give no actions: %+v", got)
	}
}

func TestWebURI(t *testing.T) {
	tests := map[string]string{
		"example.com":          "https://example.com",
		"http://example.com":   "http://example.com",
		"https://example.com":  "https://example.com",
		"HTTPS://Example.com":  "HTTPS://Example.com",
		"www.example.com/path": "https://www.example.com/path",
	}
	for in, want := range tests {
		if got := catalog.WebURI(in); got != want {
			t.Errorf("WebURI(%q)=%q want %q", in, got, want)
		}
	}
}
