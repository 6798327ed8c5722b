package handler

import (
	"naplan-prep/internal/dto"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles bundle catalog HTTP requests
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBundles godoc
// @Summary List active bundles
// @Description Returns active bundles ordered by year level then tier
// @Tags bundles
// @Produce json
// @Param year query int false "Year level (3, 5, 7 or 9)"
// @Success 200 {object} dto.BundleListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /bundles [get]
func (h *CatalogHandler) ListBundles(c *fiber.Ctx) error {
	year, _ := c.Locals(middleware.ValidatedYearKey).(int)

	bundles, err := h.service.ListBundles(c.UserContext(), year)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBundleListResponse(bundles))
}

// GetBundle godoc
// @Summary Get a bundle
// @Description Returns one active bundle with its quiz ids
// @Tags bundles
// @Produce json
// @Param bundleId path string true "Bundle ID, e.g. year3_a"
// @Success 200 {object} dto.BundleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /bundles/{bundleId} [get]
func (h *CatalogHandler) GetBundle(c *fiber.Ctx) error {
	bundle, err := h.service.GetBundle(c.UserContext(), c.Params("bundleId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBundleResponse(bundle))
}
