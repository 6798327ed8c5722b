package service

import (
	"context"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"
	"naplan-prep/internal/metrics"
	"naplan-prep/internal/port"

	"go.uber.org/zap"
)

const (
	outcomeBlank    = "blank"
	outcomeTooShort = "too_short"
	outcomeFailed   = "failed"
	outcomeAssessed = "assessed"
)

// WritingEvaluator marks student writing against the NAPLAN criteria.
type WritingEvaluator interface {
	Evaluate(ctx context.Context, req feedback.Request) (*feedback.Result, error)
}

type writingEvaluator struct {
	assessor port.WritingAssessor
	logger   *zap.Logger
}

// NewWritingEvaluator creates a new instance of writingEvaluator.
func NewWritingEvaluator(assessor port.WritingAssessor, logger *zap.Logger) WritingEvaluator {
	return &writingEvaluator{assessor: assessor, logger: logger}
}

// Evaluate implements WritingEvaluator. Only an invalid year level is
// returned as an error; model failures come back as an invalid result.
func (e *writingEvaluator) Evaluate(ctx context.Context, req feedback.Request) (*feedback.Result, error) {
	if !domain.IsValidYearLevel(req.YearLevel) {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("year_level", req.YearLevel)}
	}
	textType := req.ResolveTextType()

	if feedback.IsBlank(req.Writing) {
		metrics.FeedbackEvaluations.WithLabelValues(outcomeBlank).Inc()
		return feedback.BlankResult(req.YearLevel, textType), nil
	}

	words := feedback.CountWords(req.Writing)
	if words < feedback.MinAIWords {
		metrics.FeedbackEvaluations.WithLabelValues(outcomeTooShort).Inc()
		return feedback.TooShortResult(req.YearLevel, textType, words), nil
	}
	wordFeedback := feedback.NewWordCountFeedback(req.YearLevel, words)

	raw, err := e.assessor.Assess(ctx, req, textType)
	if err != nil {
		e.logger.Warn("Writing assessment failed",
			zap.Int("year_level", req.YearLevel),
			zap.String("text_type", string(textType)),
			zap.Int("words", words),
			zap.Error(err))
		metrics.FeedbackEvaluations.WithLabelValues(outcomeFailed).Inc()
		return feedback.FailedResult(req.YearLevel, textType, wordFeedback, err), nil
	}

	res := feedback.Assemble(raw, req.YearLevel, textType, wordFeedback)
	e.logger.Info("Writing assessed",
		zap.Int("year_level", req.YearLevel),
		zap.String("text_type", string(textType)),
		zap.Int("total", res.Overall.TotalScore),
		zap.String("band", res.Overall.Band))
	metrics.FeedbackEvaluations.WithLabelValues(outcomeAssessed).Inc()
	return res, nil
}
