package classify

import (
	"testing"
)

func stripeInput() VendorInput {
	return VendorInput{
		Name:        "Stripe",
		Description: "Payment processing for the internet. APIs for payments, billing, and more.",
		ProductTags: []string{"payments", "api", "fintech"},
		Metadata:    map[string]any{"industry": "fintech"},
	}
}

func TestClassifyPaymentsVendor(t *testing.T) {
	res := Classify(stripeInput(), nil)

	if res.Category != "Payments" {
		t.Errorf("Category = %q, want Payments", res.Category)
	}
	if res.BenchmarkKey != "fintech_benchmark_v1" {
		t.Errorf("BenchmarkKey = %q, want fintech_benchmark_v1", res.BenchmarkKey)
	}
	if res.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5", res.Confidence)
	}
	if res.Confidence > 1.0 {
		t.Errorf("Confidence = %v, out of range", res.Confidence)
	}

	breakdown, ok := res.Breakdown["Payments"]
	if !ok {
		t.Fatal("no Payments breakdown")
	}
	if breakdown.TotalRaw <= 0 {
		t.Errorf("Payments TotalRaw = %v, want positive", breakdown.TotalRaw)
	}
	if breakdown.ProductTagScore <= 0 {
		t.Errorf("ProductTagScore = %v, want positive for payments/fintech tags", breakdown.ProductTagScore)
	}
	if breakdown.MetadataMatchScore <= 0 {
		t.Errorf("MetadataMatchScore = %v, want positive for industry=fintech", breakdown.MetadataMatchScore)
	}
}

func TestClassifyDevToolsVendor(t *testing.T) {
	res := Classify(VendorInput{
		Name:        "DevFlow",
		Description: "CI/CD platform for developers. Git-based deployments, container builds, and observability.",
		ProductTags: []string{"devtools", "api", "kubernetes"},
		Metadata:    map[string]any{"segment": "developer tools"},
	}, nil)

	if res.Category != "DevTools" {
		t.Errorf("Category = %q, want DevTools", res.Category)
	}
	if res.BenchmarkKey != "devtools_growth_benchmark" {
		t.Errorf("BenchmarkKey = %q", res.BenchmarkKey)
	}
	if res.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5", res.Confidence)
	}
}

func TestClassifyCRMVendor(t *testing.T) {
	res := Classify(VendorInput{
		Name:        "SellWell",
		Description: "CRM with sales pipeline management, lead scoring, and contact management for revenue teams.",
		ProductTags: []string{"crm", "sales"},
		Metadata:    map[string]any{"industry": "sales"},
	}, nil)

	if res.Category != "CRM" {
		t.Errorf("Category = %q, want CRM", res.Category)
	}
	if res.BenchmarkKey != "crm_sales_benchmark_v1" {
		t.Errorf("BenchmarkKey = %q", res.BenchmarkKey)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	res := Classify(VendorInput{}, nil)

	if res.Category != "Unknown" {
		t.Errorf("Category = %q, want Unknown", res.Category)
	}
	if res.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want 0.0", res.Confidence)
	}
	if res.BenchmarkKey != "general_saas_benchmark_v1" {
		t.Errorf("BenchmarkKey = %q, want the default", res.BenchmarkKey)
	}
	if len(res.TopProducts) != 0 {
		t.Errorf("TopProducts = %v, want none for Unknown", res.TopProducts)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify(stripeInput(), nil)
	second := Classify(stripeInput(), nil)

	if first.Category != second.Category || first.Confidence != second.Confidence {
		t.Errorf("classification not deterministic: %+v vs %+v", first, second)
	}
	if len(first.TopProducts) != len(second.TopProducts) {
		t.Fatalf("product rankings differ in length")
	}
	for i := range first.TopProducts {
		if first.TopProducts[i] != second.TopProducts[i] {
			t.Errorf("TopProducts[%d] differs: %+v vs %+v", i, first.TopProducts[i], second.TopProducts[i])
		}
	}
}

// Two categories scoring identically must always resolve to the same winner,
// run after run.
func TestClassifyTiedCategories(t *testing.T) {
	taxonomy := &Taxonomy{
		Categories: map[string]CategoryDef{
			"Beta":  {Keywords: []string{"widget"}},
			"Alpha": {Keywords: []string{"widget"}},
		},
		DefaultBenchmark: "general_saas_benchmark_v1",
	}
	input := VendorInput{Description: "widget platform"}

	for i := 0; i < 200; i++ {
		res := Classify(input, taxonomy)
		if res.Category != "Alpha" {
			t.Fatalf("run %d: Category = %q, want Alpha (first in name order)", i, res.Category)
		}
		if res.Confidence != 0.5 {
			t.Fatalf("run %d: Confidence = %v, want 0.5 for an exact tie", i, res.Confidence)
		}
	}
}

func TestExtractSignals(t *testing.T) {
	signals := ExtractSignals(VendorInput{
		Name:        "Stripe",
		Description: "Payments  API. Payments API.",
		ProductTags: []string{"  Fintech  ", "", "Payments API"},
		Metadata:    map[string]any{"Industry": []any{"Fintech", 42, true}},
	})

	for _, tok := range []string{"payments", "api", "stripe"} {
		if _, ok := signals.WebsiteTokens[tok]; !ok {
			t.Errorf("WebsiteTokens missing %q: %v", tok, signals.WebsiteTokens)
		}
	}
	if _, ok := signals.WebsiteTokens["42"]; ok {
		t.Error("pure-digit token survived")
	}

	if _, ok := signals.ProductTags["fintech"]; !ok {
		t.Errorf("ProductTags missing normalized fintech: %v", signals.ProductTags)
	}
	if _, ok := signals.ProductTags["payments api"]; !ok {
		t.Error("multi-word tag not kept whole")
	}
	if _, ok := signals.ProductTags["payments"]; !ok {
		t.Error("multi-word tag not tokenized")
	}
	if _, ok := signals.ProductTags[""]; ok {
		t.Error("empty tag survived")
	}

	for _, val := range []string{"industry", "fintech"} {
		if _, ok := signals.MetadataValues[val]; !ok {
			t.Errorf("MetadataValues missing %q: %v", val, signals.MetadataValues)
		}
	}

	if signals.WebsiteText != "payments api. payments api. stripe" {
		t.Errorf("WebsiteText = %q", signals.WebsiteText)
	}
}

func TestNegativeSignalsPenalize(t *testing.T) {
	// Payroll copy must not land in Payments despite the billing vocabulary
	// overlap.
	res := Classify(VendorInput{
		Name:        "PayTeam",
		Description: "Payroll, benefits, and onboarding for your workforce. Employee hiring and HR in one place.",
		ProductTags: []string{"hr", "payroll"},
	}, nil)

	if res.Category != "HRTech" {
		t.Errorf("Category = %q, want HRTech", res.Category)
	}
	if payments, ok := res.Breakdown["Payments"]; ok && payments.NegativePenalty >= 0 && payments.TotalRaw > res.Breakdown["HRTech"].TotalRaw {
		t.Errorf("Payments outranked HRTech: %+v", res.Breakdown)
	}
}

func TestRankProducts(t *testing.T) {
	signals := ExtractSignals(VendorInput{
		Name:        "Amazon Web Services",
		WebsiteText: "Amazon Web Services offers reliable, scalable cloud computing.",
	})

	ranked := RankProducts("Infrastructure", "Amazon Web Services", signals, DefaultTaxonomy(), 3)
	if len(ranked) != 3 {
		t.Fatalf("ranked = %v, want 3 products", ranked)
	}
	if ranked[0].Name != "AWS" {
		t.Errorf("top product = %q, want AWS via alias match", ranked[0].Name)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("AWS score %v not above runner-up %v", ranked[0].Score, ranked[1].Score)
	}
	if ranked[0].Reason == "" {
		t.Error("empty reason")
	}

	// Unknown category yields no products.
	if got := RankProducts("Unknown", "x", signals, DefaultTaxonomy(), 3); got != nil {
		t.Errorf("RankProducts(Unknown) = %v, want nil", got)
	}
}

func TestBenchmarkKeyFallback(t *testing.T) {
	taxonomy := DefaultTaxonomy()
	if got := taxonomy.BenchmarkKey("NonExistent"); got != "general_saas_benchmark_v1" {
		t.Errorf("BenchmarkKey = %q, want default", got)
	}
	if got := taxonomy.BenchmarkKey("Payments"); got != "fintech_benchmark_v1" {
		t.Errorf("BenchmarkKey = %q", got)
	}
}

func TestLoadTaxonomyRejectsEmpty(t *testing.T) {
	if _, err := LoadTaxonomy([]byte("categories: {}\n")); err == nil {
		t.Error("LoadTaxonomy succeeded on empty categories")
	}
	if _, err := LoadTaxonomy([]byte("categories: [")); err == nil {
		t.Error("LoadTaxonomy succeeded on invalid yaml")
	}
}
