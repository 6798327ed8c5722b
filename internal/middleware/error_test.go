package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"bundle not found", domain.NewBundleNotFoundError("year3_z"), fiber.StatusNotFound, "BUNDLE_NOT_FOUND"},
		{"purchase not found", domain.NewPurchaseNotFoundError("01P"), fiber.StatusNotFound, "PURCHASE_NOT_FOUND"},
		{"invalid state", domain.NewInvalidStateError(domain.PurchasePending, domain.PurchaseProvisioned), fiber.StatusConflict, "INVALID_STATE"},
		{"sync in progress", domain.ErrSyncInProgress, fiber.StatusConflict, "SYNC_IN_PROGRESS"},
		{"bundle inactive", domain.NewBundleInactiveError("year3_a"), fiber.StatusUnprocessableEntity, "BUNDLE_INACTIVE"},
		{"source unavailable", domain.NewSourceUnavailableError("flexiquiz", errors.New("503")), fiber.StatusBadGateway, "SOURCE_UNAVAILABLE"},
		{"invalid input", domain.NewInvalidInputError("bad"), fiber.StatusBadRequest, "INVALID_INPUT"},
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("bundle_id")}, fiber.StatusBadRequest, "VALIDATION_ERROR"},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"fiber not found", fiber.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"deadline", fmt.Errorf("load bundles: %w", context.DeadlineExceeded), fiber.StatusGatewayTimeout, "TIMEOUT"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedCode, body["code"])
		})
	}
}

func TestErrorHandler_DetailsFromContext(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewBundleNotFoundError("year5_c") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "year5_c", body.Details["bundle_id"])
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusServiceUnavailable, middleware.StatusFor(domain.CodeLLMServiceError))
	assert.Equal(t, fiber.StatusUnprocessableEntity, middleware.StatusFor(domain.CodePricingMissing))
	assert.Equal(t, fiber.StatusForbidden, middleware.StatusFor(domain.CodeForbidden))
	assert.Equal(t, fiber.StatusInternalServerError, middleware.StatusFor(domain.ErrorCode("SOMETHING_ELSE")))
}
