package signals

import (
	"strings"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// ExtractMeta derives evidence from the document title and the description
// meta tags. The description and Open Graph description are ORed together.
func ExtractMeta(page models.PageContext, t *vocab.Tables) models.MetaSignals {
	title := strings.TrimSpace(page.Title)

	return models.MetaSignals{
		TitleMatch: containsAny(title, t.Terms.TitlePhrases),
		MetaMatch: containsAny(page.MetaDescription, t.Terms.MetaKeywords) ||
			containsAny(page.OGDescription, t.Terms.MetaKeywords),
	}
}
