// Package pagecontext builds the per-run PageContext snapshot from a page
// URL and its raw HTML.
package pagecontext

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clauseai/clausehound/models"
)

// containerSelectors are the designated content containers whose presence
// counts as DOM evidence: article roles plus known legal-content wrappers.
var containerSelectors = []string{
	"article",
	"main",
	"[role=main]",
	"[role=article]",
	".legal-content",
	".terms-content",
	".policy-content",
	"#terms",
	"#legal",
	"#privacy-policy",
}

// FromHTML builds a PageContext from a URL and raw HTML. The URL must parse;
// everything read from the DOM degrades silently, so malformed HTML yields a
// context with URL-derived fields only and never an error.
func FromHTML(rawURL, html string) (models.PageContext, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return models.PageContext{}, fmt.Errorf("pagecontext: invalid url %q: %w", rawURL, err)
	}

	page := models.PageContext{
		URL:      rawURL,
		Hostname: parsed.Hostname(),
		Path:     parsed.Path,
		Query:    parsed.RawQuery,
		IsPDF:    looksLikePDF(parsed),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return page, nil
	}

	page.Title = normalizeText(doc.Find("title").First().Text())
	page.MetaDescription, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	page.OGDescription, _ = doc.Find(`meta[property="og:description"]`).First().Attr("content")

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			page.Headings = append(page.Headings, text)
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		page.Links = append(page.Links, models.Link{
			Text: normalizeText(s.Text()),
			Href: href,
		})
	})

	for _, sel := range containerSelectors {
		if doc.Find(sel).Length() > 0 {
			page.ContainerHits = append(page.ContainerHits, sel)
		}
	}

	return page, nil
}

func looksLikePDF(u *url.URL) bool {
	path := strings.ToLower(u.Path)
	return strings.HasSuffix(path, ".pdf") || strings.Contains(strings.ToLower(u.String()), ".pdf")
}

// normalizeText trims a string and collapses internal whitespace runs.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
