package signals

import (
	"strings"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// ExtractURL derives evidence from the page URL: terms-like path fragments,
// terms-like query assignments, and the PDF flag.
func ExtractURL(page models.PageContext, t *vocab.Tables) models.URLSignals {
	return models.URLSignals{
		PathMatch:  containsAny(page.Path, t.Terms.PathFragments),
		QueryMatch: queryMatch(page.Query, t.Terms.PathFragments),
		IsPDF:      isPDFURL(page),
	}
}

// queryMatch accepts a fragment as a bare substring or as a "key=" assignment.
func queryMatch(query string, fragments []string) bool {
	if query == "" {
		return false
	}
	lowered := strings.ToLower(query)
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		bare := strings.Trim(frag, "/")
		if strings.Contains(lowered, bare) || strings.Contains(lowered, bare+"=") {
			return true
		}
	}
	return false
}

func isPDFURL(page models.PageContext) bool {
	if page.IsPDF {
		return true
	}
	path := strings.ToLower(page.Path)
	return strings.HasSuffix(path, ".pdf") || strings.Contains(strings.ToLower(page.URL), ".pdf")
}
