package classify

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var rawTaxonomy []byte

// CategoryDef is one category in the taxonomy.
type CategoryDef struct {
	Keywords         []string `yaml:"keywords"`
	MetadataTriggers []string `yaml:"metadata_triggers"`
	NegativeSignals  []string `yaml:"negative_signals"`
}

// Taxonomy is the full category/product/benchmark configuration.
type Taxonomy struct {
	Categories       map[string]CategoryDef `yaml:"categories"`
	Products         map[string][]string    `yaml:"products"`
	ProductAliases   map[string][]string    `yaml:"product_aliases"`
	Benchmarks       map[string]string      `yaml:"benchmarks"`
	DefaultBenchmark string                 `yaml:"default_benchmark"`
}

var (
	taxonomyOnce sync.Once
	taxonomy     *Taxonomy
	taxonomyErr  error
)

// DefaultTaxonomy returns the embedded taxonomy, loading it on first use.
func DefaultTaxonomy() *Taxonomy {
	taxonomyOnce.Do(func() {
		taxonomy, taxonomyErr = LoadTaxonomy(rawTaxonomy)
	})
	if taxonomyErr != nil {
		panic(fmt.Sprintf("classify: embedded taxonomy is invalid: %v", taxonomyErr))
	}
	return taxonomy
}

// LoadTaxonomy parses a taxonomy from YAML and lowercases all matching
// vocabularies. Category labels and product names keep their display case.
func LoadTaxonomy(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("classify: failed to parse taxonomy: %w", err)
	}
	if len(t.Categories) == 0 {
		return nil, fmt.Errorf("classify: taxonomy has no categories")
	}

	for name, def := range t.Categories {
		lowerAll(def.Keywords)
		lowerAll(def.MetadataTriggers)
		lowerAll(def.NegativeSignals)
		t.Categories[name] = def
	}
	return &t, nil
}

// BenchmarkKey maps a category to its benchmark group key, falling back to
// the default for unknown categories.
func (t *Taxonomy) BenchmarkKey(category string) string {
	if key, ok := t.Benchmarks[category]; ok {
		return key
	}
	return t.DefaultBenchmark
}

func lowerAll(entries []string) {
	for i, e := range entries {
		entries[i] = strings.ToLower(strings.TrimSpace(e))
	}
}
