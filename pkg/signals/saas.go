package signals

import (
	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// ExtractSaaS derives evidence that the hosting site sells software as a
// subscription service: hosting conventions, product paths, product links,
// and marketing copy in the title/description.
func ExtractSaaS(page models.PageContext, t *vocab.Tables) models.SaaSSignals {
	s := models.SaaSSignals{
		HostMatch: containsAny(page.Hostname, t.SaaS.HostFragments),
		PathMatch: containsAny(page.Path, t.SaaS.PathFragments),
		LinkMatch: saasLinkMatch(page.Links, t),
		MetaMatch: containsAny(page.Title+" "+page.MetaDescription, t.SaaS.MetaKeywords),
	}
	s.SaaSDetected = s.HostMatch || s.PathMatch || s.LinkMatch || s.MetaMatch
	return s
}

func saasLinkMatch(links []models.Link, t *vocab.Tables) bool {
	for _, l := range links {
		if containsAny(l.Href, t.SaaS.PathFragments) || containsAny(l.Text, t.SaaS.LinkText) {
			return true
		}
	}
	return false
}
