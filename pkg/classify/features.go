package classify

import (
	"regexp"
	"strings"
)

// Tokenization keeps words of at least this length and drops pure numbers.
const minTokenLength = 2

var (
	tokenPattern      = regexp.MustCompile(`[a-z0-9_]+`)
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)
)

// VendorInput is what the classifier knows about a vendor. All fields are
// optional; at least one of WebsiteText, Description, or ProductTags is
// needed for a meaningful result.
type VendorInput struct {
	// Raw or pre-extracted website/marketing copy.
	WebsiteText string `json:"website_text,omitempty"`
	// Short description, e.g. from a vendor directory.
	Description string `json:"description,omitempty"`
	// Product or vendor name.
	Name string `json:"name,omitempty"`
	// Explicit product tags, e.g. ["payments", "api", "fintech"].
	ProductTags []string `json:"product_tags,omitempty"`
	// Arbitrary metadata key-value pairs, e.g. industry or segment.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ExtractedSignals is the normalized, deduplicated input for scoring. All
// sets are lowercased; WebsiteText carries the combined normalized text for
// phrase-level matching.
type ExtractedSignals struct {
	WebsiteTokens  map[string]struct{}
	MetadataValues map[string]struct{}
	ProductTags    map[string]struct{}
	WebsiteText    string
}

// ExtractSignals normalizes vendor metadata, tokenizes website and
// description text, and deduplicates product tags.
func ExtractSignals(input VendorInput) ExtractedSignals {
	combined := strings.TrimSpace(strings.Join(nonEmpty(input.WebsiteText, input.Description, input.Name), " "))
	normalized := normalizeText(combined)

	websiteTokens := make(map[string]struct{})
	for _, tok := range tokenize(normalized) {
		websiteTokens[tok] = struct{}{}
	}

	metadataValues := make(map[string]struct{})
	for k, v := range input.Metadata {
		for _, part := range normalizeMetadataValue(k) {
			metadataValues[part] = struct{}{}
		}
		for _, part := range normalizeMetadataValue(v) {
			metadataValues[part] = struct{}{}
		}
	}

	productTags := make(map[string]struct{})
	for _, tag := range input.ProductTags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		normalizedTag := normalizeText(tag)
		productTags[normalizedTag] = struct{}{}
		for _, tok := range tokenize(normalizedTag) {
			productTags[tok] = struct{}{}
		}
	}

	return ExtractedSignals{
		WebsiteTokens:  websiteTokens,
		MetadataValues: metadataValues,
		ProductTags:    productTags,
		WebsiteText:    normalized,
	}
}

// normalizeText lowercases and collapses whitespace for consistent matching.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// tokenize splits normalized text into words of minTokenLength or longer,
// dropping pure-digit tokens. Underscores survive for dev-style tokens.
func tokenize(normalized string) []string {
	raw := tokenPattern.FindAllString(normalized, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) >= minTokenLength && !digitsOnlyPattern.MatchString(t) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// normalizeMetadataValue flattens a metadata value into normalized strings
// and tokens. Numbers and booleans are skipped; nested lists and maps are
// walked recursively.
func normalizeMetadataValue(value any) []string {
	switch v := value.(type) {
	case string:
		normalized := normalizeText(v)
		if normalized == "" {
			return nil
		}
		out := []string{normalized}
		out = append(out, tokenize(normalized)...)
		return out
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, normalizeMetadataValue(item)...)
		}
		return out
	case []string:
		var out []string
		for _, item := range v {
			out = append(out, normalizeMetadataValue(item)...)
		}
		return out
	case map[string]any:
		var out []string
		for k, item := range v {
			out = append(out, normalizeMetadataValue(k)...)
			out = append(out, normalizeMetadataValue(item)...)
		}
		return out
	default:
		return nil
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
