package extract

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Language detection only makes sense with enough text to go on.
const minTextForLanguage = 40

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// languages covers the locales contract pages realistically ship in.
var languages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Japanese,
}

// DetectLanguage returns the ISO 639-1 code of the text's language, or an
// empty string when the text is too short or no language is confident.
func DetectLanguage(text string) string {
	if len(text) < minTextForLanguage {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
