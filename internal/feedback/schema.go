package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// assessmentSchemaJSON describes the shape the model must return. Fields the
// service recomputes (totals, maxima, year) are not required.
const assessmentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overall", "criteria"],
  "properties": {
    "meta": {
      "type": "object",
      "properties": {
        "prompt_relevance": {
          "type": "object",
          "properties": {
            "score": {"type": "number"},
            "verdict": {"type": "string"},
            "note": {"type": "string"},
            "evidence": {"type": "string"}
          }
        }
      }
    },
    "overall": {
      "type": "object",
      "properties": {
        "band": {"type": "string"},
        "one_line_summary": {"type": "string"},
        "summary": {"type": "string"},
        "strengths": {"type": "array", "items": {"type": "string"}},
        "weaknesses": {"type": "array", "items": {"type": "string"}}
      }
    },
    "review_sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "items": {"type": "array"}
        }
      }
    },
    "criteria": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "score": {"type": ["number", "null"]},
          "max": {"type": ["number", "null"]},
          "suggestion": {"type": "string"},
          "evidence_quote": {"type": "string"}
        }
      }
    }
  }
}`

var assessmentSchema = mustSchema(assessmentSchemaJSON)

func mustSchema(doc string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("feedback: invalid assessment schema: %v", err))
	}
	return s
}

// DecodeAssessment validates doc against the assessment schema and decodes it.
func DecodeAssessment(doc []byte) (*RawAssessment, error) {
	res, err := assessmentSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to validate assessment: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("assessment does not match schema: %s", strings.Join(msgs, "; "))
	}

	var raw RawAssessment
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode assessment: %w", err)
	}
	return &raw, nil
}
