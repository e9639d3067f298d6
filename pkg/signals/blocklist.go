package signals

import (
	"strings"

	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// Blocklisted reports whether the page's host/path matches a blocklist entry.
// An entry matches when the hostname contains its host fragment and either
// the entry has no path fragment or the page path contains it.
func Blocklisted(page models.PageContext, t *vocab.Tables) bool {
	host := strings.ToLower(page.Hostname)
	path := strings.ToLower(page.Path)

	for _, entry := range t.Blocklist {
		if entry.Host == "" || !strings.Contains(host, entry.Host) {
			continue
		}
		if entry.Path == "" || strings.Contains(path, entry.Path) {
			return true
		}
	}
	return false
}
