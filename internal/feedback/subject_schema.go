package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// CoachItem is one insight with its reason and a concrete action.
type CoachItem struct {
	Insight string `json:"insight"`
	Reason  string `json:"reason"`
	Action  string `json:"action"`
}

// RawSubjectFeedback is the JSON document the model is asked to produce for a
// subject quiz. Every field is optional; CoerceSubjectFeedback fills the gaps.
type RawSubjectFeedback struct {
	OverallFeedback string      `json:"overall_feedback"`
	Coach           []CoachItem `json:"coach"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	GrowthAreas     []string    `json:"growth_areas"`
	StudyTips       []string    `json:"study_tips"`
	CTA             string      `json:"cta"`
	Encouragement   string      `json:"encouragement"`
}

const subjectSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "overall_feedback": {"type": "string"},
    "coach": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "insight": {"type": "string"},
          "reason": {"type": "string"},
          "action": {"type": "string"}
        }
      }
    },
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "growth_areas": {"type": "array", "items": {"type": "string"}},
    "study_tips": {"type": "array", "items": {"type": "string"}},
    "cta": {"type": "string"},
    "encouragement": {"type": "string"}
  }
}`

var subjectSchema = mustSchema(subjectSchemaJSON)

// DecodeSubjectFeedback validates doc against the subject feedback schema and decodes it.
func DecodeSubjectFeedback(doc []byte) (*RawSubjectFeedback, error) {
	res, err := subjectSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to validate subject feedback: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("subject feedback does not match schema: %s", strings.Join(msgs, "; "))
	}

	var raw RawSubjectFeedback
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode subject feedback: %w", err)
	}
	return &raw, nil
}
