package feedback

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
)

const defaultSuggestion = "Add more detail and check this area next time."

const narrativeNA = "N/A (narrative)"

var (
	ErrEmptyResponse = errors.New("empty model response")
	ErrNoJSONObject  = errors.New("no JSON object found in model response")
)

// ExtractJSON returns the JSON object in a model reply. The whole reply is
// tried first, then the span from the first '{' to the last '}'.
func ExtractJSON(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, ErrNoJSONObject
	}
	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, ErrNoJSONObject
	}
	return candidate, nil
}

func canonicalCriterion(name string) (CriterionMax, bool) {
	raw := SanitizeText(name, 40)
	for _, c := range MaxScores {
		if strings.EqualFold(raw, c.Name) {
			return c, true
		}
	}
	return CriterionMax{}, false
}

// wholeScore keeps integral scores only; fractional or missing marks count as 0.
func wholeScore(v *float64) int {
	if v == nil || *v != math.Trunc(*v) {
		return 0
	}
	return int(*v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intPtr(v int) *int { return &v }

// NormalizeCriteria maps the model's criteria onto the marking guide. Names
// are matched case-insensitively, duplicates and unknown names are dropped,
// scores are clamped to each maximum, and criteria the model left out are
// added with a zero score. The result follows marking-guide order and the
// returned total covers the scored criteria only.
func NormalizeCriteria(raw []RawCriterion, textType TextType) ([]Criterion, int) {
	byName := make(map[string]Criterion, len(MaxScores))
	total := 0

	for _, rc := range raw {
		def, ok := canonicalCriterion(rc.Name)
		if !ok {
			continue
		}
		if _, seen := byName[def.Name]; seen {
			continue
		}

		if !Applies(def.Name, textType) {
			suggestion := rc.Suggestion
			if strings.TrimSpace(suggestion) == "" {
				suggestion = narrativeNA
			}
			byName[def.Name] = Criterion{Name: def.Name, Suggestion: SanitizeText(suggestion, 220)}
			continue
		}

		score := clamp(wholeScore(rc.Score), 0, def.Max)
		total += score

		suggestion := defaultSuggestion
		if strings.TrimSpace(rc.Suggestion) != "" {
			suggestion = SanitizeText(rc.Suggestion, 220)
		}
		byName[def.Name] = Criterion{
			Name:          def.Name,
			Score:         intPtr(score),
			Max:           intPtr(def.Max),
			Suggestion:    suggestion,
			EvidenceQuote: SanitizeText(rc.EvidenceQuote, 220),
		}
	}

	out := make([]Criterion, 0, len(MaxScores))
	for _, def := range MaxScores {
		if c, ok := byName[def.Name]; ok {
			out = append(out, c)
			continue
		}
		if !Applies(def.Name, textType) {
			out = append(out, Criterion{Name: def.Name, Suggestion: narrativeNA})
			continue
		}
		out = append(out, Criterion{
			Name:       def.Name,
			Score:      intPtr(0),
			Max:        intPtr(def.Max),
			Suggestion: defaultSuggestion,
		})
	}
	return out, total
}

// Review section ids in display order.
const (
	SectionSentenceImprovements = "sentence_improvements"
	SectionIdeasDevelopment     = "ideas_development"
	SectionNextSteps            = "next_steps"
	SectionMiniRewrite          = "mini_rewrite"
)

var reviewSections = []struct {
	id       string
	title    string
	maxItems int
}{
	{SectionSentenceImprovements, "Make these sentences stronger", 8},
	{SectionIdeasDevelopment, "Ideas development suggestions", 6},
	{SectionNextSteps, "Next time try this", 8},
	{SectionMiniRewrite, "Mini rewrite (example)", 4},
}

// EnsureReviewSections returns exactly the four review sections in display
// order, keeping the model's items where present. Titles and items are
// sanitized and item lists capped per section.
func EnsureReviewSections(sections []ReviewSection) []ReviewSection {
	byID := make(map[string]ReviewSection, len(sections))
	for _, s := range sections {
		if _, ok := byID[s.ID]; !ok {
			byID[s.ID] = s
		}
	}

	out := make([]ReviewSection, 0, len(reviewSections))
	for _, def := range reviewSections {
		s := byID[def.id]
		title := SanitizeText(s.Title, 80)
		if title == "" {
			title = def.title
		}
		out = append(out, ReviewSection{
			ID:    def.id,
			Title: title,
			Items: sanitizeItems(s.Items, def.maxItems),
		})
	}
	return out
}

func sanitizeItems(items []interface{}, maxItems int) []interface{} {
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case string:
			out = append(out, SanitizeText(v, 200))
		case map[string]interface{}:
			clean := make(map[string]interface{}, len(v))
			for k, val := range v {
				if s, ok := val.(string); ok {
					clean[k] = SanitizeText(s, 260)
				} else {
					clean[k] = val
				}
			}
			out = append(out, clean)
		}
	}
	return out
}

// sanitizeList drops blank entries and keeps at most n sanitized items.
func sanitizeList(items []string, n, maxLen int) []string {
	out := make([]string, 0, n)
	for _, it := range items {
		if len(out) == n {
			break
		}
		if strings.TrimSpace(it) == "" {
			continue
		}
		out = append(out, SanitizeText(it, maxLen))
	}
	return out
}
