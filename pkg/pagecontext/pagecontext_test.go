package pagecontext

import (
	"testing"

	"github.com/clauseai/clausehound/models"
)

const termsHTML = `<!DOCTYPE html>
<html>
<head>
  <title>
    Terms of   Service – Example
  </title>
  <meta name="description" content="The terms of service for Example.">
  <meta property="og:description" content="Legal terms for the Example platform.">
</head>
<body>
  <main class="legal-content">
    <h1>Terms of Service</h1>
    <h2>1. Acceptance
        of Terms</h2>
    <p>By using Example you agree to these terms.</p>
    <a href="/legal/privacy">Privacy Policy</a>
    <a href="https://example.io/pricing">Pricing</a>
  </main>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	page, err := FromHTML("https://app.example.io/legal/terms-of-service?ref=footer", termsHTML)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	if page.Hostname != "app.example.io" {
		t.Errorf("Hostname = %q", page.Hostname)
	}
	if page.Path != "/legal/terms-of-service" {
		t.Errorf("Path = %q", page.Path)
	}
	if page.Query != "ref=footer" {
		t.Errorf("Query = %q", page.Query)
	}
	if page.IsPDF {
		t.Error("IsPDF = true for an HTML page")
	}

	if page.Title != "Terms of Service – Example" {
		t.Errorf("Title = %q, want collapsed whitespace", page.Title)
	}
	if page.MetaDescription != "The terms of service for Example." {
		t.Errorf("MetaDescription = %q", page.MetaDescription)
	}
	if page.OGDescription != "Legal terms for the Example platform." {
		t.Errorf("OGDescription = %q", page.OGDescription)
	}

	wantHeadings := []string{"Terms of Service", "1. Acceptance of Terms"}
	if len(page.Headings) != len(wantHeadings) {
		t.Fatalf("Headings = %v, want %v", page.Headings, wantHeadings)
	}
	for i, h := range wantHeadings {
		if page.Headings[i] != h {
			t.Errorf("Headings[%d] = %q, want %q", i, page.Headings[i], h)
		}
	}

	wantLinks := []models.Link{
		{Text: "Privacy Policy", Href: "/legal/privacy"},
		{Text: "Pricing", Href: "https://example.io/pricing"},
	}
	if len(page.Links) != len(wantLinks) {
		t.Fatalf("Links = %v, want %v", page.Links, wantLinks)
	}
	for i, l := range wantLinks {
		if page.Links[i] != l {
			t.Errorf("Links[%d] = %+v, want %+v", i, page.Links[i], l)
		}
	}

	hits := make(map[string]bool, len(page.ContainerHits))
	for _, h := range page.ContainerHits {
		hits[h] = true
	}
	for _, sel := range []string{"main", ".legal-content"} {
		if !hits[sel] {
			t.Errorf("ContainerHits missing %q: %v", sel, page.ContainerHits)
		}
	}
}

func TestFromHTMLInvalidURL(t *testing.T) {
	if _, err := FromHTML("http://exa mple.com/%zz", "<html></html>"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}

func TestFromHTMLEmptyBody(t *testing.T) {
	page, err := FromHTML("https://example.com/terms", "")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if page.URL != "https://example.com/terms" || page.Path != "/terms" {
		t.Errorf("URL fields = %q %q", page.URL, page.Path)
	}
	if page.Title != "" || len(page.Headings) != 0 || len(page.Links) != 0 {
		t.Errorf("expected empty DOM fields, got %+v", page)
	}
}

func TestFromHTMLPDFURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/contracts/msa.pdf", true},
		{"https://example.com/viewer?file=msa.pdf", true},
		{"https://example.com/contracts/msa", false},
	}

	for _, tt := range tests {
		page, err := FromHTML(tt.url, "")
		if err != nil {
			t.Fatalf("FromHTML(%s): %v", tt.url, err)
		}
		if page.IsPDF != tt.want {
			t.Errorf("IsPDF(%s) = %v, want %v", tt.url, page.IsPDF, tt.want)
		}
	}
}
