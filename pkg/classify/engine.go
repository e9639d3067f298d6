// Package classify assigns a SaaS vendor to a taxonomy category using
// deterministic weighted keyword scoring. No ML, no external APIs; every
// score is explainable through its breakdown.
package classify

import (
	"math"
	"sort"
	"strings"
)

// Scoring weights.
const (
	weightWebsiteKeyword  = 1.0
	weightWebsitePhrase   = 2.0
	weightMetadataMatch   = 1.5
	weightExactProductTag = 2.0
	negativeSignalPenalty = 2.0
)

// Generic payments tokens commonly appear on non-payments sites (cloud
// billing pages and the like). They are downweighted for the Payments
// category unless a higher-signal phrase also matches.
var genericPaymentsTokens = map[string]struct{}{
	"payment": {}, "payments": {}, "billing": {}, "checkout": {},
	"transaction": {}, "transactions": {}, "merchant": {}, "card": {},
	"refund": {}, "chargeback": {},
}

const genericPaymentsTokenMultiplier = 0.25

// ScoreBreakdown is the per-category score components for explainability.
type ScoreBreakdown struct {
	WebsiteKeywordScore float64 `json:"website_keyword_score"`
	MetadataMatchScore  float64 `json:"metadata_match_score"`
	ProductTagScore     float64 `json:"product_tag_score"`
	NegativePenalty     float64 `json:"negative_penalty"`
	TotalRaw            float64 `json:"total_raw"`
}

// Result is the public classification output.
type Result struct {
	Category     string                    `json:"category"`
	Confidence   float64                   `json:"confidence"`
	BenchmarkKey string                    `json:"benchmark_key"`
	Breakdown    map[string]ScoreBreakdown `json:"score_breakdown,omitempty"`
	TopProducts  []RankedProduct           `json:"top_products,omitempty"`
}

// Classify scores all taxonomy categories for a vendor and returns the
// winning category, a confidence in [0,1], the benchmark key, and the top
// example products. Confidence comes from decisiveness: best divided by
// best plus second best.
func Classify(input VendorInput, t *Taxonomy) Result {
	if t == nil {
		t = DefaultTaxonomy()
	}
	signals := ExtractSignals(input)

	// Sorted iteration keeps ties deterministic: the first category in name
	// order wins them.
	names := make([]string, 0, len(t.Categories))
	for category := range t.Categories {
		names = append(names, category)
	}
	sort.Strings(names)

	bestCategory := "Unknown"
	bestScore, secondBest := 0.0, 0.0
	breakdowns := make(map[string]ScoreBreakdown, len(t.Categories))

	for _, category := range names {
		total, breakdown := scoreCategory(category, t.Categories[category], signals)
		breakdowns[category] = breakdown
		switch {
		case total > bestScore:
			secondBest = bestScore
			bestScore = total
			bestCategory = category
		case total > secondBest:
			secondBest = total
		}
	}

	confidence := 0.0
	if bestScore > 0 {
		confidence = bestScore / (bestScore + secondBest)
		confidence = math.Min(1.0, math.Max(0.0, confidence))
	}

	return Result{
		Category:     bestCategory,
		Confidence:   round4(confidence),
		BenchmarkKey: t.BenchmarkKey(bestCategory),
		Breakdown:    breakdowns,
		TopProducts:  RankProducts(bestCategory, input.Name, signals, t, 3),
	}
}

// scoreCategory scores one category: website keywords and phrases, metadata
// triggers, product tags, minus the negative-signal penalty.
func scoreCategory(category string, def CategoryDef, signals ExtractedSignals) (float64, ScoreBreakdown) {
	keywords := toSet(def.Keywords)
	triggers := toSet(def.MetadataTriggers)
	negatives := toSet(def.NegativeSignals)

	websiteScore := 0.0
	for token := range signals.WebsiteTokens {
		if _, ok := keywords[token]; !ok {
			continue
		}
		increment := weightWebsiteKeyword
		if category == "Payments" {
			if _, generic := genericPaymentsTokens[token]; generic {
				increment *= genericPaymentsTokenMultiplier
			}
		}
		websiteScore += increment
	}

	// Multi-word keywords also match at phrase level, which outweighs single
	// tokens.
	for _, keyword := range def.Keywords {
		if strings.Contains(keyword, " ") && strings.Contains(signals.WebsiteText, keyword) {
			websiteScore += weightWebsitePhrase
		}
	}

	metadataScore := 0.0
	for val := range signals.MetadataValues {
		if matchesTrigger(val, triggers) {
			metadataScore += weightMetadataMatch
		}
	}

	tagScore := 0.0
	for tag := range signals.ProductTags {
		_, kw := keywords[tag]
		_, tr := triggers[tag]
		if kw || tr {
			tagScore += weightExactProductTag
		}
	}

	penalty := 0.0
	for token := range signals.WebsiteTokens {
		if _, ok := negatives[token]; ok {
			penalty += negativeSignalPenalty
		}
	}
	for val := range signals.MetadataValues {
		if _, ok := negatives[val]; ok {
			penalty += negativeSignalPenalty
		}
	}
	for tag := range signals.ProductTags {
		if _, ok := negatives[tag]; ok {
			penalty += negativeSignalPenalty
		}
	}

	total := math.Max(0, websiteScore+metadataScore+tagScore-penalty)

	return total, ScoreBreakdown{
		WebsiteKeywordScore: round2(websiteScore),
		MetadataMatchScore:  round2(metadataScore),
		ProductTagScore:     round2(tagScore),
		NegativePenalty:     round2(-penalty),
		TotalRaw:            round2(total),
	}
}

// matchesTrigger accepts an exact trigger match or a trigger contained in a
// longer metadata value.
func matchesTrigger(value string, triggers map[string]struct{}) bool {
	if _, ok := triggers[value]; ok {
		return true
	}
	for trigger := range triggers {
		if strings.Contains(value, trigger) {
			return true
		}
	}
	return false
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
