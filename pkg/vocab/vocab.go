// Package vocab loads the static pattern vocabularies used by the signal
// extractors. Tables are parsed once from the embedded YAML and treated as
// read-only afterwards.
package vocab

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var rawVocab []byte

// TermsVocab holds the legal/terms matching vocabularies.
type TermsVocab struct {
	PathFragments []string `yaml:"path_fragments"`
	TitlePhrases  []string `yaml:"title_phrases"`
	MetaKeywords  []string `yaml:"meta_keywords"`
	LinkText      []string `yaml:"link_text"`
	PDFTitles     []string `yaml:"pdf_titles"`
}

// SaaSVocab holds the SaaS-product marker vocabularies.
type SaaSVocab struct {
	HostFragments []string `yaml:"host_fragments"`
	PathFragments []string `yaml:"path_fragments"`
	LinkText      []string `yaml:"link_text"`
	MetaKeywords  []string `yaml:"meta_keywords"`
}

// BlockEntry is one blocklist rule. Host is matched by containment against
// the hostname; Path, when non-empty, must also appear in the page path.
type BlockEntry struct {
	Host string `yaml:"host"`
	Path string `yaml:"path"`
}

// Tables is the full set of vocabularies for one detection configuration.
type Tables struct {
	Terms     TermsVocab   `yaml:"terms"`
	SaaS      SaaSVocab    `yaml:"saas"`
	Blocklist []BlockEntry `yaml:"blocklist"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the embedded vocabulary tables, loading them on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(rawVocab)
	})
	if defaultErr != nil {
		// The embedded file ships with the binary; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("vocab: embedded vocabulary is invalid: %v", defaultErr))
	}
	return defaultTables
}

// Load parses vocabulary tables from YAML and normalizes every entry to
// lowercase so extractors can match without re-folding case.
func Load(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("vocab: failed to parse vocabulary: %w", err)
	}

	lower(t.Terms.PathFragments)
	lower(t.Terms.TitlePhrases)
	lower(t.Terms.MetaKeywords)
	lower(t.Terms.LinkText)
	lower(t.Terms.PDFTitles)
	lower(t.SaaS.HostFragments)
	lower(t.SaaS.PathFragments)
	lower(t.SaaS.LinkText)
	lower(t.SaaS.MetaKeywords)
	for i := range t.Blocklist {
		t.Blocklist[i].Host = strings.ToLower(t.Blocklist[i].Host)
		t.Blocklist[i].Path = strings.ToLower(t.Blocklist[i].Path)
	}

	if len(t.Terms.PathFragments) == 0 {
		return nil, fmt.Errorf("vocab: terms.path_fragments is empty")
	}
	if len(t.Terms.TitlePhrases) == 0 {
		return nil, fmt.Errorf("vocab: terms.title_phrases is empty")
	}

	return &t, nil
}

func lower(entries []string) {
	for i, e := range entries {
		entries[i] = strings.ToLower(strings.TrimSpace(e))
	}
}
