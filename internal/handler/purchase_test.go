package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/dto"
	"naplan-prep/internal/middleware"
	"naplan-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func TestCreatePurchase(t *testing.T) {
	app, svcs := setupApp()
	svcs.provisioning.CreatePurchaseFunc = func(ctx context.Context, in service.CreatePurchaseInput) (*domain.Purchase, error) {
		assert.Equal(t, "parent-1", in.ParentID)
		assert.Equal(t, []string{"kid-1", "kid-2"}, in.ChildIDs)
		assert.True(t, in.IncludeLower)
		return &domain.Purchase{
			ID:           "01PURCHASE",
			ParentID:     in.ParentID,
			BundleID:     in.BundleID,
			ChildIDs:     in.ChildIDs,
			IncludeLower: in.IncludeLower,
			AmountCents:  15800,
			Status:       domain.PurchasePending,
		}, nil
	}

	status, raw := postJSON(t, app, "/api/purchases",
		`{"parent_id":"parent-1","bundle_id":"year3_b","child_ids":["kid-1","kid-2"],"include_lower":true}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var body dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "01PURCHASE", body.ID)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, int64(15800), body.AmountCents)
}

func TestCreatePurchase_Validation(t *testing.T) {
	app, _ := setupApp()

	status, raw := postJSON(t, app, "/api/purchases", `{"parent_id":"","bundle_id":"year3_b","child_ids":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Len(t, body.Errors, 2)

	status, _ = postJSON(t, app, "/api/purchases", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreatePurchase_InactiveBundle(t *testing.T) {
	app, svcs := setupApp()
	svcs.provisioning.CreatePurchaseFunc = func(ctx context.Context, in service.CreatePurchaseInput) (*domain.Purchase, error) {
		return nil, domain.NewBundleInactiveError(in.BundleID)
	}

	status, _ := postJSON(t, app, "/api/purchases", `{"parent_id":"p","bundle_id":"year3_c","child_ids":["kid-1"]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestPurchaseTransitions(t *testing.T) {
	app, svcs := setupApp()
	svcs.provisioning.MarkPaidFunc = func(ctx context.Context, purchaseID, paymentRef string) (*domain.Purchase, error) {
		assert.Equal(t, "pi_1", paymentRef)
		return &domain.Purchase{ID: purchaseID, Status: domain.PurchasePaid, PaymentRef: paymentRef}, nil
	}
	svcs.provisioning.ProvisionFunc = func(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
		return nil, domain.NewInvalidStateError(domain.PurchasePending, domain.PurchaseProvisioned)
	}
	svcs.provisioning.MarkFailedFunc = func(ctx context.Context, purchaseID, reason string) (*domain.Purchase, error) {
		return &domain.Purchase{ID: purchaseID, Status: domain.PurchaseFailed, FailureReason: reason}, nil
	}

	status, raw := postJSON(t, app, "/api/purchases/01P/paid", `{"payment_ref":"pi_1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	var paid dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &paid))
	assert.Equal(t, "paid", paid.Status)

	status, _ = postJSON(t, app, "/api/purchases/01P/paid", `{"payment_ref":" "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/api/purchases/01P/provision", ``)
	assert.Equal(t, fiber.StatusConflict, status)

	status, raw = postJSON(t, app, "/api/purchases/01P/failed", `{"reason":"card declined"}`)
	assert.Equal(t, fiber.StatusOK, status)
	var failed dto.PurchaseResponse
	require.NoError(t, json.Unmarshal(raw, &failed))
	assert.Equal(t, "card declined", failed.FailureReason)
}

func TestChildQuizzes(t *testing.T) {
	app, svcs := setupApp()
	svcs.provisioning.ChildQuizIDsFunc = func(ctx context.Context, childID string) ([]string, error) {
		if childID == "kid-1" {
			return []string{"q1", "q2"}, nil
		}
		return nil, nil
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/children/kid-1/quizzes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.ChildQuizzesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"q1", "q2"}, body.QuizIDs)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/children/kid-9/quizzes", nil))
	require.NoError(t, err)
	var empty dto.ChildQuizzesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.Equal(t, []string{}, empty.QuizIDs)
}
