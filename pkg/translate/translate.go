package translate

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of one translation.
type Result struct {
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	Confidence     float64 `json:"confidence"`
	CharacterCount int     `json:"character_count"`
}

// ErrUnsupportedLanguage reports a language code with no dictionary.
type ErrUnsupportedLanguage struct {
	Code string
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("language %q not supported", e.Code)
}

// Translate renders text from the source to the target language by
// substituting known agricultural terms and tagging the output with the
// target language. Confidence reflects dictionary coverage: the more
// known terms the text contains, the higher the score.
func Translate(text, sourceLang, targetLang string) (*Result, error) {
	if !Supported(sourceLang) {
		return nil, &ErrUnsupportedLanguage{Code: sourceLang}
	}
	if !Supported(targetLang) {
		return nil, &ErrUnsupportedLanguage{Code: targetLang}
	}

	translated := text
	hits := 0
	if sourceLang != targetLang {
		lowered := strings.ToLower(text)
		dict := terms[targetLang]
		for _, key := range termKeys {
			if strings.Contains(lowered, key) {
				translated = strings.ReplaceAll(translated, key, dict[key])
				hits++
			}
		}
		if tag, ok := languageTags[targetLang]; ok {
			translated = tag + translated
		}
	}

	return &Result{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Confidence:     coverageConfidence(hits),
		CharacterCount: utf8.RuneCountInString(text),
	}, nil
}

// coverageConfidence maps dictionary hits onto [0.75, 0.95].
func coverageConfidence(hits int) float64 {
	c := 0.75 + 0.04*float64(hits)
	return math.Round(math.Min(c, 0.95)*100) / 100
}

// DetectResult is the outcome of language detection.
type DetectResult struct {
	Text           string  `json:"text"`
	Language       string  `json:"detected_language"`
	LanguageName   string  `json:"language_name"`
	Confidence     float64 `json:"confidence"`
	CharacterCount int     `json:"character_count"`
}

// Script marker characters checked in order; first language with a hit
// wins. English is the fallback.
var scriptMarkers = []struct {
	lang  string
	runes string
}{
	{"hi", "मिट्टीफसलउर्वरकसिंचाई"},
	{"es", "ñáéíóúü"},
	{"fr", "àâäéèêëïîôùûüÿç"},
	{"de", "äöüß"},
	{"zh", "的土壤作物肥料灌溉"},
}

// DetectLanguage guesses the language of text from script-specific
// characters. Confidence grows with the number of marker characters
// found; plain ASCII text detects as English at the floor confidence.
func DetectLanguage(text string) *DetectResult {
	detected := "en"
	markers := 0
	for _, sm := range scriptMarkers {
		count := 0
		for _, r := range text {
			if strings.ContainsRune(sm.runes, r) {
				count++
			}
		}
		if count > 0 {
			detected = sm.lang
			markers = count
			break
		}
	}

	confidence := math.Min(0.95, 0.8+0.01*float64(markers))
	return &DetectResult{
		Text:           text,
		Language:       detected,
		LanguageName:   languageNames[detected],
		Confidence:     math.Round(confidence*100) / 100,
		CharacterCount: utf8.RuneCountInString(text),
	}
}
