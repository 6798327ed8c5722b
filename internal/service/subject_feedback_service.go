package service

import (
	"context"
	"errors"
	"time"

	"naplan-prep/internal/catalog"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"
	"naplan-prep/internal/metrics"
	"naplan-prep/internal/port"

	"go.uber.org/zap"
)

const outcomeNoAttempt = "no_attempt"

// SubjectEvaluator coaches on a finished Reading, Numeracy or Language
// Conventions quiz result.
type SubjectEvaluator interface {
	Evaluate(ctx context.Context, req feedback.SubjectRequest) (*feedback.SubjectResult, error)
}

type subjectEvaluator struct {
	coach     port.SubjectCoach
	modelName string
	logger    *zap.Logger
	now       func() time.Time
}

// NewSubjectEvaluator creates a new instance of subjectEvaluator. modelName is
// reported in the result metadata.
func NewSubjectEvaluator(coach port.SubjectCoach, modelName string, logger *zap.Logger) SubjectEvaluator {
	return &subjectEvaluator{
		coach:     coach,
		modelName: modelName,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Evaluate implements SubjectEvaluator. Writing quizzes, invalid year levels
// and results without usable topic counts are validation errors; model
// failures come back as an unsuccessful result.
func (e *subjectEvaluator) Evaluate(ctx context.Context, req feedback.SubjectRequest) (*feedback.SubjectResult, error) {
	parsed := catalog.ParseQuizName("", req.QuizName)
	subject := feedback.SubjectLabel(parsed)
	if subject == feedback.LabelWriting {
		return nil, domain.ValidationErrors{domain.ValidationError{
			Field:   "quiz_name",
			Code:    domain.CodeInvalidFormat,
			Message: "writing quizzes are marked through /feedback/writing",
			Value:   req.QuizName,
		}}
	}

	year := req.YearLevel
	if year == 0 && parsed.YearLevel != nil {
		year = *parsed.YearLevel
	}
	if year != 0 && !domain.IsValidYearLevel(year) {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("year_level", year)}
	}

	data, err := feedback.NormalizeStudentData(req.Score, req.Topics)
	if err != nil {
		field := "score"
		if errors.Is(err, feedback.ErrNoTopics) {
			field = "topic_breakdown"
		}
		return nil, domain.ValidationErrors{domain.ValidationError{
			Field:   field,
			Code:    domain.CodeMissingField,
			Message: err.Error(),
		}}
	}

	meta := feedback.SubjectMeta{
		Model:       e.modelName,
		GeneratedAt: e.now(),
		Subject:     subject,
		QuizName:    req.QuizName,
		YearLevel:   year,
	}

	if feedback.IsNoAttempt(data.Topics) {
		metrics.SubjectFeedbackEvaluations.WithLabelValues(subject, outcomeNoAttempt).Inc()
		return feedback.PlaceholderResult(meta), nil
	}

	analysis := feedback.AnalyzePerformance(*data, req.Duration, year)
	raw, err := e.coach.Coach(ctx, analysis, subject)
	if err != nil {
		e.logger.Warn("Subject coaching failed",
			zap.String("subject", subject),
			zap.Int("year_level", year),
			zap.Error(err))
		metrics.SubjectFeedbackEvaluations.WithLabelValues(subject, outcomeFailed).Inc()
		return feedback.FailedSubjectResult(analysis, meta, err), nil
	}

	res := feedback.NewSubjectResult(analysis, feedback.CoerceSubjectFeedback(raw, analysis), meta)
	e.logger.Info("Subject result coached",
		zap.String("subject", subject),
		zap.Int("year_level", year),
		zap.Float64("accuracy", analysis.Accuracy),
		zap.String("pace", analysis.Pace))
	metrics.SubjectFeedbackEvaluations.WithLabelValues(subject, outcomeAssessed).Inc()
	return res, nil
}
