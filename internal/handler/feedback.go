package handler

import (
	"naplan-prep/internal/dto"
	"naplan-prep/internal/feedback"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FeedbackHandler handles writing and subject feedback requests
type FeedbackHandler struct {
	evaluator service.WritingEvaluator
	subjects  service.SubjectEvaluator
}

// NewFeedbackHandler creates a new FeedbackHandler instance
func NewFeedbackHandler(evaluator service.WritingEvaluator, subjects service.SubjectEvaluator) *FeedbackHandler {
	return &FeedbackHandler{evaluator: evaluator, subjects: subjects}
}

// EvaluateWriting godoc
// @Summary Mark a piece of writing
// @Description Scores writing against the NAPLAN criteria. Model failures return 200 with valid_response=false.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.WritingFeedbackRequest true "Writing"
// @Success 200 {object} feedback.Result
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /feedback/writing [post]
func (h *FeedbackHandler) EvaluateWriting(c *fiber.Ctx) error {
	var req dto.WritingFeedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var textType feedback.TextType
	if req.TextType != "" {
		textType = feedback.ParseTextType(req.TextType)
	}
	res, err := h.evaluator.Evaluate(c.UserContext(), feedback.Request{
		YearLevel:     req.YearLevel,
		WritingPrompt: req.WritingPrompt,
		Writing:       req.Writing,
		TextType:      textType,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// EvaluateSubject godoc
// @Summary Coach on a subject quiz result
// @Description Analyses a Reading, Numeracy or Language Conventions result and returns coaching feedback. Model failures return 200 with success=false.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubjectFeedbackRequest true "Quiz result"
// @Success 200 {object} feedback.SubjectResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /feedback/subject [post]
func (h *FeedbackHandler) EvaluateSubject(c *fiber.Ctx) error {
	var req dto.SubjectFeedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	res, err := h.subjects.Evaluate(c.UserContext(), req.ToSubjectRequest())
	if err != nil {
		return err
	}
	return c.JSON(res)
}
