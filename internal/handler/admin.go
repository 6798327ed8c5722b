package handler

import (
	"naplan-prep/internal/domain"
	"naplan-prep/internal/dto"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles operator requests for catalog syncs.
type AdminHandler struct {
	sync    domain.SyncService
	catalog service.CatalogService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(sync domain.SyncService, catalog service.CatalogService) *AdminHandler {
	return &AdminHandler{sync: sync, catalog: catalog}
}

// RunSync godoc
// @Summary Run a catalog sync
// @Description Fetches every quiz source, rebuilds tiers and bundles and returns the run summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SyncRunResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /admin/sync [post]
func (h *AdminHandler) RunSync(c *fiber.Ctx) error {
	subject, _ := c.Locals(middleware.SubjectKey).(string)
	logger.Get().Info("Catalog sync requested", zap.String("subject", subject))

	run, err := h.sync.Run(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSyncRunResponse(run))
}

// LatestSync godoc
// @Summary Latest sync summary
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SyncRunResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/sync/latest [get]
func (h *AdminHandler) LatestSync(c *fiber.Ctx) error {
	run, err := h.catalog.LatestSyncRun(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSyncRunResponse(run))
}

// Unparseable godoc
// @Summary Unparseable quizzes
// @Description Lists quizzes whose names lacked a year level or subject in the latest sync
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UnparseableResponse
// @Router /admin/sync/unparseable [get]
func (h *AdminHandler) Unparseable(c *fiber.Ctx) error {
	quizzes, err := h.catalog.LatestUnparseable(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.UnparseableResponse{Quizzes: quizzes, Count: len(quizzes)})
}

// ParseQuizzes godoc
// @Summary Preview quiz name parsing
// @Description Runs the name parser and tier rules on ad-hoc names without touching the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ParseQuizzesRequest true "Quiz names"
// @Success 200 {object} dto.ParseQuizzesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/quizzes/parse [post]
func (h *AdminHandler) ParseQuizzes(c *fiber.Ctx) error {
	var req dto.ParseQuizzesRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	previews := h.catalog.PreviewParse(req.Names)
	results := make([]dto.ParsePreviewResponse, len(previews))
	for i, pv := range previews {
		results[i] = dto.NewParsePreviewResponse(pv.Name, pv.Parsed, pv.Tierable, pv.Missing, pv.Tier)
	}
	return c.JSON(dto.ParseQuizzesResponse{Results: results})
}
