package feedback

import (
	"fmt"
	"strings"
)

const fallbackSummary = "Good effort. Keep practising and add more detail next time."

// Request is one piece of writing to assess. An empty TextType is guessed
// from the prompt and writing.
type Request struct {
	YearLevel     int
	WritingPrompt string
	Writing       string
	TextType      TextType
}

// ResolveTextType returns the requested text type or a guessed one.
func (r Request) ResolveTextType() TextType {
	if r.TextType == "" {
		return GuessTextType(r.WritingPrompt, r.Writing)
	}
	return ParseTextType(string(r.TextType))
}

// BlankResult is returned when no writing was submitted.
func BlankResult(year int, textType TextType) *Result {
	res := NewResult(year, textType)
	res.Meta.PromptRelevance.Note = "No student writing provided."
	res.Overall.Summary = "No writing was provided for assessment."
	return res
}

// TooShortResult is returned without calling the model when the writing has
// fewer than MinAIWords words.
func TooShortResult(year int, textType TextType, words int) *Result {
	res := NewResult(year, textType)
	res.Meta.Message = fmt.Sprintf("Text length is not enough to assess. Please write at least %d words (current: %d).", MinAIWords, words)
	res.Meta.WordCountFeedback = &WordCountFeedback{
		WordCount:  words,
		YearLevel:  year,
		Status:     WordsTooShortForAI,
		Message:    "Text length is not enough to run NAPLAN evaluation.",
		Suggestion: "Add more sentences with clear ideas and details, then try again.",
	}
	res.Meta.PromptRelevance.Note = "Too little text to judge relevance."
	res.Overall.Summary = "The response is too short to assess reliably."
	return res
}

// FailedResult reports a model failure as an invalid response rather than an error.
func FailedResult(year int, textType TextType, words WordCountFeedback, cause error) *Result {
	res := NewResult(year, textType)
	res.Meta.WordCountFeedback = &words
	res.Meta.Message = "AI evaluation failed."
	if cause != nil {
		res.Meta.ErrorDetail = SanitizeText(cause.Error(), 260)
	}
	res.Overall.Summary = "Prompt relevance was checked, but full assessment failed."
	return res
}

// Assemble turns a decoded model reply into a valid result. Totals, maxima,
// band and section shapes are recomputed here and never trusted from the model.
func Assemble(raw *RawAssessment, year int, textType TextType, words WordCountFeedback) *Result {
	res := NewResult(year, textType)
	res.Meta.ValidResponse = true
	res.Meta.WordCountFeedback = &words

	if pr := raw.Meta.PromptRelevance; pr != nil && pr.Verdict != "" {
		res.Meta.PromptRelevance = PromptRelevance{
			Score:    clamp(int(pr.Score), 0, 100),
			Verdict:  pr.Verdict,
			Note:     SanitizeText(pr.Note, 220),
			Evidence: SanitizeText(pr.Evidence, 220),
		}
	} else {
		res.Meta.PromptRelevance = PromptRelevance{Score: 100, Verdict: VerdictOnTopic}
	}

	criteria, total := NormalizeCriteria(raw.Criteria, textType)
	res.Criteria = criteria
	res.Overall.TotalScore = total

	band := SanitizeText(raw.Overall.Band, 32)
	if !ValidBand(band) {
		band = BandFromScore(total, res.Overall.MaxScore)
	}
	res.Overall.Band = band

	res.Overall.OneLineSummary = orDefault(raw.Overall.OneLineSummary, 140)
	res.Overall.Summary = orDefault(raw.Overall.Summary, 260)
	res.Overall.Strengths = sanitizeList(raw.Overall.Strengths, 4, 120)
	res.Overall.Weaknesses = sanitizeList(raw.Overall.Weaknesses, 4, 120)

	res.ReviewSections = EnsureReviewSections(raw.ReviewSections)
	return res
}

func orDefault(s string, maxLen int) string {
	if strings.TrimSpace(s) == "" {
		return fallbackSummary
	}
	return SanitizeText(s, maxLen)
}
