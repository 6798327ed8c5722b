package handler

import (
	"naplan-prep/internal/dto"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles checkout and entitlement requests
type PurchaseHandler struct {
	service service.ProvisioningService
}

// NewPurchaseHandler creates a new PurchaseHandler instance
func NewPurchaseHandler(service service.ProvisioningService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// CreatePurchase godoc
// @Summary Create a purchase
// @Description Starts a pending checkout of one bundle for one or more children
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.CreatePurchaseRequest true "Checkout details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req dto.CreatePurchaseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	p, err := h.service.CreatePurchase(c.UserContext(), service.CreatePurchaseInput{
		ParentID:     req.ParentID,
		BundleID:     req.BundleID,
		ChildIDs:     req.ChildIDs,
		IncludeLower: req.IncludeLower,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseResponse(p))
}

// MarkPaid godoc
// @Summary Confirm payment
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param request body dto.MarkPaidRequest true "Payment reference"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id}/paid [post]
func (h *PurchaseHandler) MarkPaid(c *fiber.Ctx) error {
	var req dto.MarkPaidRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	p, err := h.service.MarkPaid(c.UserContext(), c.Params("id"), req.PaymentRef)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPurchaseResponse(p))
}

// Provision godoc
// @Summary Provision a paid purchase
// @Description Grants the bundle quizzes to every child of the purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id}/provision [post]
func (h *PurchaseHandler) Provision(c *fiber.Ctx) error {
	p, err := h.service.Provision(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPurchaseResponse(p))
}

// MarkFailed godoc
// @Summary Mark a purchase as failed
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param request body dto.MarkFailedRequest true "Failure reason"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id}/failed [post]
func (h *PurchaseHandler) MarkFailed(c *fiber.Ctx) error {
	var req dto.MarkFailedRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	p, err := h.service.MarkFailed(c.UserContext(), c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPurchaseResponse(p))
}

// ChildQuizzes godoc
// @Summary Quizzes a child may take
// @Tags children
// @Produce json
// @Param childId path string true "Child ID"
// @Success 200 {object} dto.ChildQuizzesResponse
// @Router /children/{childId}/quizzes [get]
func (h *PurchaseHandler) ChildQuizzes(c *fiber.Ctx) error {
	childID := c.Params("childId")
	ids, err := h.service.ChildQuizIDs(c.UserContext(), childID)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(dto.ChildQuizzesResponse{ChildID: childID, QuizIDs: ids})
}
