package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var coachedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func newTestSubjectEvaluator(coach *MockSubjectCoach) *subjectEvaluator {
	e := NewSubjectEvaluator(coach, "gemini-2.0-flash", zap.NewNop()).(*subjectEvaluator)
	e.now = func() time.Time { return coachedAt }
	return e
}

func countsTopic(name string, scored, total float64) feedback.TopicInput {
	return feedback.TopicInput{Name: name, Fields: map[string]feedback.Number{
		"scored": feedback.Num(scored),
		"total":  feedback.Num(total),
	}}
}

func numeracyRequest() feedback.SubjectRequest {
	return feedback.SubjectRequest{
		QuizName: "Year 5 Numeracy Set 2 Medium",
		Score:    feedback.ScoreInput{Points: feedback.Num(14), Available: feedback.Num(20)},
		Topics: []feedback.TopicInput{
			countsTopic("Algebra", 9, 10),
			countsTopic("Fractions", 5, 10),
		},
		Duration: feedback.Num(600),
	}
}

func TestSubjectEvaluator_Coached(t *testing.T) {
	coach := new(MockSubjectCoach)
	coach.On("Coach", mock.Anything, mock.MatchedBy(func(a feedback.PerformanceAnalysis) bool {
		return a.YearLevel == 5 && a.Accuracy == 70 && a.Pace == feedback.PaceSteady
	}), feedback.LabelNumeracy).
		Return(&feedback.RawSubjectFeedback{OverallFeedback: "Good effort in 10 minutes."}, nil).Once()

	res, err := newTestSubjectEvaluator(coach).Evaluate(context.Background(), numeracyRequest())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, feedback.SubjectStatusDone, res.Meta.Status)
	assert.Equal(t, feedback.LabelNumeracy, res.Meta.Subject)
	assert.Equal(t, "gemini-2.0-flash", res.Meta.Model)
	assert.Equal(t, coachedAt, res.Meta.GeneratedAt)
	assert.Equal(t, 5, res.Meta.YearLevel)
	assert.Equal(t, "Good effort in 10 minutes.", res.Feedback.OverallFeedback)
	assert.Equal(t, "Fractions: low accuracy", res.Feedback.Weaknesses[0])
	coach.AssertExpectations(t)
}

func TestSubjectEvaluator_RequestYearWins(t *testing.T) {
	coach := new(MockSubjectCoach)
	coach.On("Coach", mock.Anything, mock.MatchedBy(func(a feedback.PerformanceAnalysis) bool {
		return a.YearLevel == 7
	}), feedback.LabelNumeracy).Return(&feedback.RawSubjectFeedback{}, nil).Once()

	req := numeracyRequest()
	req.YearLevel = 7
	res, err := newTestSubjectEvaluator(coach).Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Analysis.YearLevel)
	coach.AssertExpectations(t)
}

func TestSubjectEvaluator_NoAttemptSkipsModel(t *testing.T) {
	coach := new(MockSubjectCoach)

	req := feedback.SubjectRequest{
		QuizName: "Year 3 Reading",
		Topics:   []feedback.TopicInput{countsTopic("Inference", 0, 0)},
		Score:    feedback.ScoreInput{Percentage: feedback.Num(0)},
	}
	res, err := newTestSubjectEvaluator(coach).Evaluate(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, feedback.SubjectStatusPending, res.Meta.Status)
	assert.Equal(t, 3, res.Analysis.YearLevel)
	coach.AssertNotCalled(t, "Coach", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubjectEvaluator_ModelFailure(t *testing.T) {
	coach := new(MockSubjectCoach)
	coach.On("Coach", mock.Anything, mock.Anything, feedback.LabelNumeracy).
		Return(nil, domain.NewLLMServiceError(errors.New("quota exceeded"))).Once()

	res, err := newTestSubjectEvaluator(coach).Evaluate(context.Background(), numeracyRequest())
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, feedback.SubjectStatusFailed, res.Meta.Status)
	assert.Contains(t, res.Meta.ErrorDetail, "quota exceeded")
	assert.Len(t, res.Feedback.Weaknesses, 3)
	assert.Equal(t, 70.0, res.Analysis.Accuracy)
}

func TestSubjectEvaluator_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   func() feedback.SubjectRequest
		field string
	}{
		{"writing quiz", func() feedback.SubjectRequest {
			r := numeracyRequest()
			r.QuizName = "Year 5 Writing Persuasive"
			return r
		}, "quiz_name"},
		{"unsupported year", func() feedback.SubjectRequest {
			r := numeracyRequest()
			r.YearLevel = 4
			return r
		}, "year_level"},
		{"no topics", func() feedback.SubjectRequest {
			r := numeracyRequest()
			r.Topics = nil
			return r
		}, "topic_breakdown"},
		{"no percentage", func() feedback.SubjectRequest {
			r := numeracyRequest()
			r.Score = feedback.ScoreInput{}
			r.Topics = []feedback.TopicInput{countsTopic("Algebra", 0, 0)}
			return r
		}, "score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coach := new(MockSubjectCoach)

			_, err := newTestSubjectEvaluator(coach).Evaluate(context.Background(), tt.req())

			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field)
			coach.AssertNotCalled(t, "Coach", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
