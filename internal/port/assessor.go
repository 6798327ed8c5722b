package port

import (
	"context"

	"naplan-prep/internal/feedback"
)

// WritingAssessor asks a language model to mark one piece of writing and
// returns its schema-checked reply.
type WritingAssessor interface {
	Assess(ctx context.Context, req feedback.Request, textType feedback.TextType) (*feedback.RawAssessment, error)
}

// SubjectCoach asks a language model for coaching feedback on an analysed
// subject quiz result and returns its schema-checked reply.
type SubjectCoach interface {
	Coach(ctx context.Context, analysis feedback.PerformanceAnalysis, subject string) (*feedback.RawSubjectFeedback, error)
}
