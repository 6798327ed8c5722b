package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routesSecret = "routes-secret"

func adminToken(t *testing.T) string {
	t.Helper()
	claims := middleware.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routesSecret))
	require.NoError(t, err)
	return signed
}

func TestRegister_PurchaseTransitionsRequireAdmin(t *testing.T) {
	app, svcs := setupAppWithAuth(middleware.AdminOnly(routesSecret, "admin"))
	svcs.provisioning.MarkPaidFunc = func(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error) {
		return &domain.Purchase{ID: purchaseID, Status: domain.PurchasePaid, PaymentRef: paymentRef}, nil
	}
	svcs.provisioning.ProvisionFunc = func(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
		return &domain.Purchase{ID: purchaseID, Status: domain.PurchaseProvisioned}, nil
	}
	svcs.provisioning.MarkFailedFunc = func(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error) {
		return &domain.Purchase{ID: purchaseID, Status: domain.PurchaseFailed, FailureReason: reason}, nil
	}

	routes := []struct {
		path string
		body string
	}{
		{"/api/purchases/01P/paid", `{"payment_ref":"pi_1"}`},
		{"/api/purchases/01P/provision", ``},
		{"/api/purchases/01P/failed", `{"reason":"card declined"}`},
	}

	for _, rt := range routes {
		t.Run(rt.path, func(t *testing.T) {
			status, _ := postJSON(t, app, rt.path, rt.body)
			assert.Equal(t, fiber.StatusUnauthorized, status)

			req := httptest.NewRequest("POST", rt.path, strings.NewReader(rt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middleware.AuthorizationHeader, middleware.BearerSchema+adminToken(t))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func TestRegister_PublicPurchaseRoutes(t *testing.T) {
	app, svcs := setupAppWithAuth(middleware.AdminOnly(routesSecret, "admin"))
	svcs.provisioning.CreatePurchaseFunc = func(ctx context.Context, in service.CreatePurchaseInput) (*domain.Purchase, error) {
		return &domain.Purchase{ID: "01P", ParentID: in.ParentID, BundleID: in.BundleID, ChildIDs: in.ChildIDs, Status: domain.PurchasePending}, nil
	}
	svcs.provisioning.ChildQuizIDsFunc = func(ctx context.Context, childID string) ([]string, error) {
		return []string{"q1"}, nil
	}

	status, _ := postJSON(t, app, "/api/purchases", `{"parent_id":"parent-1","bundle_id":"year3_1","child_ids":["kid-1"]}`)
	assert.Equal(t, fiber.StatusCreated, status)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/children/kid-1/quizzes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
