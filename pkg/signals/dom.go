package signals

import (
	"strings"
	"unicode/utf8"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// Heading texts outside this range are navigation noise or whole paragraphs
// misparsed as headings; both are skipped.
const (
	minHeadingLen = 1
	maxHeadingLen = 199
)

// ExtractDOM derives evidence from page structure: heading texts, anchors,
// and the presence of known content containers.
func ExtractDOM(page models.PageContext, t *vocab.Tables) models.DOMSignals {
	return models.DOMSignals{
		HeadingMatch:   headingMatch(page.Headings, t),
		LinkMatch:      linkMatch(page.Links, t),
		ContainerMatch: len(page.ContainerHits) > 0,
	}
}

func headingMatch(headings []string, t *vocab.Tables) bool {
	for _, h := range headings {
		text := strings.TrimSpace(h)
		if n := utf8.RuneCountInString(text); n <= minHeadingLen || n >= maxHeadingLen {
			continue
		}
		if containsAny(text, t.Terms.TitlePhrases) || containsAny(text, t.Terms.LinkText) {
			return true
		}
	}
	return false
}

func linkMatch(links []models.Link, t *vocab.Tables) bool {
	for _, l := range links {
		if containsAny(strings.TrimSpace(l.Text), t.Terms.LinkText) {
			return true
		}
		if containsAny(l.Href, t.Terms.PathFragments) {
			return true
		}
	}
	return false
}
