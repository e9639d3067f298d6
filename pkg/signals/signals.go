// Package signals computes typed evidence from a PageContext. Each category
// is extracted independently from the others; all textual matching is
// case-insensitive substring containment against the static vocabulary
// tables. Substring false positives are an accepted trade-off for having no
// dependency on language models or external services.
package signals

import (
	"strings"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// Extract computes the full SignalSet for one page. When the page is
// blocklisted, category extraction is skipped and the set short-circuits to
// zero values with Blocklisted set.
func Extract(page models.PageContext, t *vocab.Tables) models.SignalSet {
	if Blocklisted(page, t) {
		return models.SignalSet{Blocklisted: true}
	}

	return models.SignalSet{
		URL:  ExtractURL(page, t),
		Meta: ExtractMeta(page, t),
		DOM:  ExtractDOM(page, t),
		PDF:  ExtractPDF(page, t),
		SaaS: ExtractSaaS(page, t),
	}
}

// containsAny reports whether the lowercased haystack contains any vocabulary
// fragment. An empty haystack never matches.
func containsAny(haystack string, fragments []string) bool {
	if haystack == "" {
		return false
	}
	lowered := strings.ToLower(haystack)
	for _, frag := range fragments {
		if frag != "" && strings.Contains(lowered, frag) {
			return true
		}
	}
	return false
}
