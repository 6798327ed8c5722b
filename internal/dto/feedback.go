package dto

import (
	"encoding/json"

	"naplan-prep/internal/feedback"
)

// WritingFeedbackRequest submits one piece of writing for marking.
// @Description Request body for writing feedback
type WritingFeedbackRequest struct {
	YearLevel     int    `json:"year_level" validate:"yearlevel"`
	WritingPrompt string `json:"writing_prompt" validate:"max=2000"`
	Writing       string `json:"writing" validate:"max=20000"`
	// TextType is Narrative or Persuasive; it is guessed when empty.
	TextType string `json:"text_type" validate:"omitempty,oneof=Narrative Persuasive narrative persuasive"`
}

// SubjectFeedbackRequest submits one finished subject quiz result for coaching.
// @Description Request body for subject feedback. Counts accept numbers, numeric strings or {"$numberDecimal": "..."}.
type SubjectFeedbackRequest struct {
	QuizName string `json:"quiz_name" validate:"notblank,max=200"`
	// YearLevel is taken from the quiz name when omitted.
	YearLevel int                 `json:"year_level" validate:"omitempty,yearlevel"`
	Score     feedback.ScoreInput `json:"score"`
	// TopicBreakdown maps a topic name to its counts, e.g. {"scored": 3, "total": 5}.
	TopicBreakdown map[string]json.RawMessage `json:"topic_breakdown" swaggertype:"object" validate:"max=100"`
	// Duration is in seconds, or milliseconds when above 100000.
	Duration feedback.Number `json:"duration" swaggertype:"number"`
}

// ToSubjectRequest converts the body into a service request.
func (r SubjectFeedbackRequest) ToSubjectRequest() feedback.SubjectRequest {
	return feedback.SubjectRequest{
		QuizName:  r.QuizName,
		YearLevel: r.YearLevel,
		Score:     r.Score,
		Topics:    feedback.TopicsFromJSON(r.TopicBreakdown),
		Duration:  r.Duration,
	}
}
