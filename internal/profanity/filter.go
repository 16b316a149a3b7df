// Package profanity censors blacklisted words in model output.
package profanity

import (
	"fmt"
	"os"
	"slices"

	goaway "github.com/TwiN/go-away"
	"gopkg.in/yaml.v3"
)

// WordList is a custom dictionary for the filter.
type WordList struct {
	Profanities    []string `yaml:"profanities"`
	FalsePositives []string `yaml:"false_positives"`
	FalseNegatives []string `yaml:"false_negatives"`
}

// classroomFalsePositives are ordinary coursework words that contain a blacklisted substring.
var classroomFalsePositives = []string{
	"assess", "assessed", "assessing", "assessment", "assessments",
	"assign", "assigned", "assignment", "assignments",
	"assist", "assistant", "associate", "association", "assume", "assumption",
	"bass", "brass", "compass", "embassy", "mass", "passage", "passing",
	"cockpit", "cockatoo", "cockroach", "hancock", "hitchcock", "peacock", "woodcock",
	"dickens", "dickinson", "benedict",
	"analysis", "analyze", "analytic", "canal",
	"grape", "drape", "scrape", "therapist",
	"essex", "sussex", "middlesex", "sextant", "sextet",
	"title", "titan", "titration", "constitution", "competition", "institution", "petition", "appetite",
	"scunthorpe",
}

// DefaultWordList returns the matcher's built-in dictionary extended with classroom vocabulary.
func DefaultWordList() WordList {
	return WordList{
		Profanities:    slices.Clone(goaway.DefaultProfanities),
		FalsePositives: slices.Concat(goaway.DefaultFalsePositives, classroomFalsePositives),
		FalseNegatives: slices.Clone(goaway.DefaultFalseNegatives),
	}
}

// LoadWordList reads a YAML dictionary from path. An empty path yields the default dictionary.
func LoadWordList(path string) (WordList, error) {
	if path == "" {
		return DefaultWordList(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return WordList{}, fmt.Errorf("failed to read word list: %w", err)
	}

	var words WordList
	if err := yaml.Unmarshal(raw, &words); err != nil {
		return WordList{}, fmt.Errorf("failed to parse word list: %w", err)
	}
	if len(words.Profanities) == 0 {
		return WordList{}, fmt.Errorf("word list %s has no profanities", path)
	}
	return words, nil
}

// Filter replaces every character of a matched word with '*'.
// Censoring already-censored text returns it unchanged.
type Filter struct {
	detector *goaway.ProfanityDetector
}

// NewFilter creates a Filter backed by words.
func NewFilter(words WordList) *Filter {
	detector := goaway.NewProfanityDetector().
		WithSanitizeLeetSpeak(true).
		WithSanitizeSpecialCharacters(true).
		WithSanitizeAccents(true).
		WithCustomDictionary(words.Profanities, words.FalsePositives, words.FalseNegatives)
	return &Filter{detector: detector}
}

// Clean returns text with profanities censored.
func (f *Filter) Clean(text string) string {
	if text == "" {
		return text
	}
	return f.detector.Censor(text)
}
