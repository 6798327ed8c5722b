package feedback

import (
	"fmt"
	"strings"
)

// TextType is the NAPLAN writing genre being assessed.
type TextType string

const (
	Narrative  TextType = "Narrative"
	Persuasive TextType = "Persuasive"
)

// ParseTextType returns Narrative for anything that is not Persuasive.
func ParseTextType(s string) TextType {
	if strings.EqualFold(strings.TrimSpace(s), string(Persuasive)) {
		return Persuasive
	}
	return Narrative
}

// Criterion names as used in NAPLAN marking guides.
const (
	CriterionAudience          = "Audience"
	CriterionTextStructure     = "Text Structure"
	CriterionIdeas             = "Ideas"
	CriterionPersuasiveDevices = "Persuasive Devices"
	CriterionVocabulary        = "Vocabulary"
	CriterionCohesion          = "Cohesion"
	CriterionParagraphing      = "Paragraphing"
	CriterionSentenceStructure = "Sentence Structure"
	CriterionPunctuation       = "Punctuation"
	CriterionSpelling          = "Spelling"
)

// CriterionMax is the maximum mark of one criterion.
type CriterionMax struct {
	Name string
	Max  int
}

// MaxScores lists every criterion in marking-guide order.
var MaxScores = []CriterionMax{
	{CriterionAudience, 6},
	{CriterionTextStructure, 6},
	{CriterionIdeas, 6},
	{CriterionPersuasiveDevices, 5},
	{CriterionVocabulary, 6},
	{CriterionCohesion, 5},
	{CriterionParagraphing, 4},
	{CriterionSentenceStructure, 6},
	{CriterionPunctuation, 5},
	{CriterionSpelling, 6},
}

// Applies reports whether the criterion is marked for the text type.
// Persuasive Devices is not assessed for narratives.
func Applies(name string, textType TextType) bool {
	return !(textType == Narrative && name == CriterionPersuasiveDevices)
}

// MaxTotal is the sum of the applicable criterion maxima.
func MaxTotal(textType TextType) int {
	total := 0
	for _, c := range MaxScores {
		if Applies(c.Name, textType) {
			total += c.Max
		}
	}
	return total
}

// WordRange is the expected response length for a year level.
type WordRange struct {
	Min       int
	Max       int
	StrongMax int
}

// WordRanges holds the expected lengths per year level.
var WordRanges = map[int]WordRange{
	3: {Min: 80, Max: 150, StrongMax: 200},
	5: {Min: 180, Max: 300, StrongMax: 350},
	7: {Min: 300, Max: 500, StrongMax: 600},
	9: {Min: 450, Max: 700, StrongMax: 700},
}

// RangeForYear falls back to the Year 3 range for unknown years.
func RangeForYear(year int) WordRange {
	if r, ok := WordRanges[year]; ok {
		return r
	}
	return WordRanges[3]
}

// Word count statuses.
const (
	WordsBelowMinimum     = "below_minimum"
	WordsAboveMaximum     = "above_maximum"
	WordsBelowRecommended = "below_recommended"
	WordsWithinRange      = "within_range"
	WordsTooShortForAI    = "too_short_for_ai"
)

// WordCountFeedback describes how a response length compares to the year range.
type WordCountFeedback struct {
	WordCount  int    `json:"word_count"`
	YearLevel  int    `json:"year_level"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// NewWordCountFeedback grades a word count against the year range.
func NewWordCountFeedback(year, words int) WordCountFeedback {
	r := RangeForYear(year)
	fb := WordCountFeedback{WordCount: words, YearLevel: year}

	switch {
	case words < r.Min:
		fb.Status = WordsBelowMinimum
		fb.Message = fmt.Sprintf("Word count (%d) is below the expected minimum for Year %d.", words, year)
		fb.Suggestion = fmt.Sprintf("Aim for %d-%d words. Add more detail and examples to reach the target.", r.Min, r.Max)
	case words > r.StrongMax:
		fb.Status = WordsAboveMaximum
		fb.Message = fmt.Sprintf("Word count (%d) exceeds the recommended maximum for Year %d.", words, year)
		fb.Suggestion = fmt.Sprintf("Try to be more concise. Target %d-%d words by combining ideas and removing repetition.", r.Min, r.Max)
	case words < r.Max:
		fb.Status = WordsBelowRecommended
		fb.Message = fmt.Sprintf("Word count (%d) is within range but could be developed further.", words)
		fb.Suggestion = fmt.Sprintf("Consider adding more detail to reach %d-%d words.", r.Min, r.Max)
	default:
		fb.Status = WordsWithinRange
		fb.Message = fmt.Sprintf("Word count (%d) is within the expected range for Year %d.", words, year)
		fb.Suggestion = "Good length for this year level."
	}
	return fb
}

// Bands.
const (
	BandBelow = "Below Minimum Standard"
	BandAt    = "At Minimum Standard"
	BandAbove = "Above Minimum Standard"
)

// ValidBand reports whether s is one of the three bands.
func ValidBand(s string) bool {
	return s == BandBelow || s == BandAt || s == BandAbove
}

// BandFromScore maps a total to a band: under 35% is below, under 65% at,
// anything else above the minimum standard.
func BandFromScore(total, maxScore int) string {
	if maxScore <= 0 {
		return BandBelow
	}
	pct := float64(total) / float64(maxScore) * 100
	switch {
	case pct < 35:
		return BandBelow
	case pct < 65:
		return BandAt
	default:
		return BandAbove
	}
}

var (
	persuasiveSignals = []string{
		"convince", "persuade", "should", "must", "because",
		"i think", "i believe", "dear", "first", "second", "therefore",
		"in conclusion", "please",
	}
	narrativeSignals = []string{
		"one day", "once", "then", "suddenly", "after that",
		"the end", "story", "went", "found",
	}
)

// GuessTextType counts genre signals in the prompt and writing. Ties go to Narrative.
func GuessTextType(prompt, writing string) TextType {
	text := strings.ToLower(prompt + "\n" + writing)
	count := func(signals []string) int {
		n := 0
		for _, s := range signals {
			if strings.Contains(text, s) {
				n++
			}
		}
		return n
	}
	if count(persuasiveSignals) > count(narrativeSignals) {
		return Persuasive
	}
	return Narrative
}

// YearExpectation is the marking guidance handed to the assessor per year level.
func YearExpectation(year int) string {
	switch year {
	case 3:
		return "Expect simple sentences, basic vocabulary, and concrete ideas. " +
			"Be age-appropriate and lenient. Focus on relevance to the prompt and clear events."
	case 5:
		return "Expect more detail, clearer sequencing, and some paragraph control. " +
			"Use age-appropriate judgement."
	case 7:
		return "Expect controlled paragraphs, varied sentences, and clearer development of ideas. " +
			"Use age-appropriate judgement."
	case 9:
		return "Expect well-structured writing, controlled language, and developed ideas. " +
			"Use age-appropriate judgement."
	default:
		return "Use age-appropriate expectations."
	}
}
