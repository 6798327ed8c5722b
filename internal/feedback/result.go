package feedback

// Relevance verdicts.
const (
	VerdictOnTopic          = "on_topic"
	VerdictPartiallyOnTopic = "partially_on_topic"
	VerdictOffTopic         = "off_topic"
)

// PromptRelevance grades how well the writing answers the prompt (0-100).
type PromptRelevance struct {
	Score    int    `json:"score"`
	Verdict  string `json:"verdict"`
	Note     string `json:"note"`
	Evidence string `json:"evidence"`
}

// Meta carries the request echo and validity flags of an assessment.
type Meta struct {
	YearLevel         int                `json:"year_level"`
	TextType          TextType           `json:"text_type"`
	ValidResponse     bool               `json:"valid_response"`
	PromptRelevance   PromptRelevance    `json:"prompt_relevance"`
	Message           string             `json:"message,omitempty"`
	ErrorDetail       string             `json:"error_detail,omitempty"`
	WordCountFeedback *WordCountFeedback `json:"word_count_feedback,omitempty"`
}

// Overall is the headline result.
type Overall struct {
	TotalScore     int      `json:"total_score"`
	MaxScore       int      `json:"max_score"`
	Band           string   `json:"band"`
	OneLineSummary string   `json:"one_line_summary"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
}

// Criterion is one marked criterion. Score and Max are nil when the
// criterion does not apply to the text type.
type Criterion struct {
	Name          string `json:"name"`
	Score         *int   `json:"score"`
	Max           *int   `json:"max"`
	Suggestion    string `json:"suggestion"`
	EvidenceQuote string `json:"evidence_quote"`
}

// ReviewSection is a titled list of feedback items. Items are strings or
// flat objects such as {"original": ..., "improved": ...}.
type ReviewSection struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []interface{} `json:"items"`
}

// Result is the complete writing assessment returned to clients.
type Result struct {
	Meta           Meta            `json:"meta"`
	Overall        Overall         `json:"overall"`
	ReviewSections []ReviewSection `json:"review_sections"`
	Criteria       []Criterion     `json:"criteria"`
}

// NewResult returns a result with every key present and nothing scored.
func NewResult(year int, textType TextType) *Result {
	return &Result{
		Meta: Meta{
			YearLevel: year,
			TextType:  textType,
			PromptRelevance: PromptRelevance{
				Verdict: VerdictOffTopic,
			},
		},
		Overall: Overall{
			MaxScore:   MaxTotal(textType),
			Band:       BandBelow,
			Strengths:  []string{},
			Weaknesses: []string{},
		},
		ReviewSections: EnsureReviewSections(nil),
		Criteria:       []Criterion{},
	}
}

// RawAssessment is the JSON document the language model is asked to produce.
type RawAssessment struct {
	Meta struct {
		PromptRelevance *RawRelevance `json:"prompt_relevance"`
	} `json:"meta"`
	Overall struct {
		Band           string   `json:"band"`
		OneLineSummary string   `json:"one_line_summary"`
		Summary        string   `json:"summary"`
		Strengths      []string `json:"strengths"`
		Weaknesses     []string `json:"weaknesses"`
	} `json:"overall"`
	ReviewSections []ReviewSection `json:"review_sections"`
	Criteria       []RawCriterion  `json:"criteria"`
}

// RawRelevance accepts fractional scores from the model.
type RawRelevance struct {
	Score    float64 `json:"score"`
	Verdict  string  `json:"verdict"`
	Note     string  `json:"note"`
	Evidence string  `json:"evidence"`
}

// RawCriterion is a criterion as reported by the model, before clamping.
type RawCriterion struct {
	Name          string   `json:"name"`
	Score         *float64 `json:"score"`
	Max           *float64 `json:"max"`
	Suggestion    string   `json:"suggestion"`
	EvidenceQuote string   `json:"evidence_quote"`
}
