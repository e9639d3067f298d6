package vocab

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	tables := Default()
	if len(tables.Terms.PathFragments) == 0 {
		t.Error("embedded terms.path_fragments is empty")
	}
	if len(tables.SaaS.HostFragments) == 0 {
		t.Error("embedded saas.host_fragments is empty")
	}
	if len(tables.Blocklist) == 0 {
		t.Error("embedded blocklist is empty")
	}

	// Default caches; both calls must observe the same tables.
	if Default() != tables {
		t.Error("Default returned a different instance on a second call")
	}
}

func TestLoadNormalizesCase(t *testing.T) {
	data := []byte(`
terms:
  path_fragments:
    - " /Terms "
    - Privacy-Policy
  title_phrases:
    - Terms Of Service
saas:
  host_fragments:
    - APP.
blocklist:
  - host: Wikipedia.ORG
    path: /Wiki
`)

	tables, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := tables.Terms.PathFragments[0]; got != "/terms" {
		t.Errorf("path fragment = %q, want trimmed lowercase %q", got, "/terms")
	}
	if got := tables.Terms.TitlePhrases[0]; got != "terms of service" {
		t.Errorf("title phrase = %q, want %q", got, "terms of service")
	}
	if got := tables.SaaS.HostFragments[0]; got != "app." {
		t.Errorf("host fragment = %q, want %q", got, "app.")
	}
	if b := tables.Blocklist[0]; b.Host != "wikipedia.org" || b.Path != "/wiki" {
		t.Errorf("blocklist entry = %+v, want lowercase", b)
	}
}

func TestLoadRejectsEmptyVocabularies(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no path fragments", data: "terms:\n  title_phrases:\n    - terms of service\n"},
		{name: "no title phrases", data: "terms:\n  path_fragments:\n    - /terms\n"},
		{name: "invalid yaml", data: "terms: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.data)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

// Every PDF title phrase must also be a title phrase, so a PDF title match is
// never weaker evidence than a plain title match.
func TestPDFTitlesAreTitlePhrases(t *testing.T) {
	tables := Default()

	phrases := make(map[string]bool, len(tables.Terms.TitlePhrases))
	for _, p := range tables.Terms.TitlePhrases {
		phrases[p] = true
	}
	for _, p := range tables.Terms.PDFTitles {
		if !phrases[p] {
			t.Errorf("pdf title %q is not among title phrases", p)
		}
	}
}

func TestEmbeddedEntriesAlreadyNormalized(t *testing.T) {
	tables := Default()
	for _, frag := range tables.Terms.PathFragments {
		if frag != strings.ToLower(strings.TrimSpace(frag)) {
			t.Errorf("fragment %q not normalized", frag)
		}
		if frag == "" {
			t.Error("empty path fragment; would match every URL")
		}
	}
}
