package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"naplan-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := middleware.AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func newAdminApp(secret string) *fiber.App {
	app := fiber.New()
	app.Post("/admin", middleware.AdminOnly(secret, "admin"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.SubjectKey).(string))
	})
	return app
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		authHeader     func(t *testing.T) string
		expectedStatus int
	}{
		{
			name:   "valid admin token",
			secret: testSecret,
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "admin", time.Hour)
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "missing header",
			secret:         testSecret,
			authHeader:     func(t *testing.T) string { return "" },
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			secret:         testSecret,
			authHeader:     func(t *testing.T) string { return "Basic abc" },
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "wrong signature",
			secret: testSecret,
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), "admin", time.Hour)
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "expired token",
			secret: testSecret,
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "admin", -time.Minute)
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "unexpected algorithm",
			secret: testSecret,
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), "admin", time.Hour)
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:   "non admin role",
			secret: testSecret,
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "parent", time.Hour)
			},
			expectedStatus: fiber.StatusForbidden,
		},
		{
			name:   "auth not configured",
			secret: "",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "admin", time.Hour)
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAdminApp(tt.secret)
			req := httptest.NewRequest("POST", "/admin", nil)
			if h := tt.authHeader(t); h != "" {
				req.Header.Set(middleware.AuthorizationHeader, h)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
