package classify

import (
	"math"
	"sort"
	"strings"
)

// RankedProduct is one example product with its score and the reasons for it.
type RankedProduct struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RankProducts returns the top-N example products for a category. Scoring is
// deterministic: a category-alignment baseline, a phrase-match boost when the
// product name or an alias appears in the website text, a weaker token-overlap
// boost, and a vendor-name alignment boost. Ties break by name.
func RankProducts(category, vendorName string, signals ExtractedSignals, t *Taxonomy, topN int) []RankedProduct {
	products := t.Products[category]
	if len(products) == 0 || topN <= 0 {
		return nil
	}

	vendorNorm := normalizeText(vendorName)

	ranked := make([]RankedProduct, 0, len(products))
	for _, product := range products {
		productNorm := normalizeText(product)
		score := 1.0
		reasons := []string{"category alignment"}

		phraseCandidates := []string{productNorm}
		for _, alias := range t.ProductAliases[product] {
			if norm := normalizeText(alias); norm != "" && norm != productNorm {
				phraseCandidates = append(phraseCandidates, norm)
			}
		}

		matchedPhrase := ""
		for _, candidate := range phraseCandidates {
			if candidate != "" && strings.Contains(signals.WebsiteText, candidate) {
				matchedPhrase = candidate
				break
			}
		}

		if matchedPhrase != "" {
			score += 3.0
			if matchedPhrase == productNorm {
				reasons = append(reasons, "name phrase match in website text")
			} else {
				reasons = append(reasons, "alias phrase match ("+matchedPhrase+")")
			}
		} else {
			tokenHits := 0
			for _, candidate := range phraseCandidates {
				for _, tok := range strings.Fields(candidate) {
					if _, ok := signals.WebsiteTokens[tok]; ok {
						tokenHits++
					}
				}
			}
			if tokenHits > 0 {
				score += math.Min(1.5, 0.5*float64(tokenHits))
				reasons = append(reasons, "token match")
			}
		}

		// Helps when classifying the product's own vendor (AWS on aws.amazon.com).
		if vendorNorm != "" && productNorm != "" {
			switch {
			case vendorNorm == productNorm:
				score += 2.0
				reasons = append(reasons, "vendor name equals product")
			case strings.Contains(vendorNorm, productNorm) || strings.Contains(productNorm, vendorNorm):
				score += 1.0
				reasons = append(reasons, "vendor name similar to product")
			}
		}

		ranked = append(ranked, RankedProduct{
			Name:   product,
			Score:  math.Round(score*1000) / 1000,
			Reason: strings.Join(reasons, "; "),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return strings.ToLower(ranked[i].Name) < strings.ToLower(ranked[j].Name)
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
