package middleware

import (
	"errors"
	"strings"

	"naplan-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SubjectKey          = "subject" // Key for storing the token subject in fiber.Ctx locals
)

// AdminClaims are the claims of an operator token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminOnly protects operator routes. It requires an HS256 bearer token signed
// with secret whose role claim equals role, and stores the subject in locals.
func AdminOnly(secret, role string) fiber.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *fiber.Ctx) error {
		if secret == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "ADMIN_AUTH_DISABLED", "Admin authentication is not configured")
		}

		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, fiber.StatusUnauthorized, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "EMPTY_TOKEN", "Token is empty")
		}

		claims := &AdminClaims{}
		_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil {
			logger.Get().Debug("Admin token rejected", zap.Error(err))
			code := "INVALID_TOKEN"
			if errors.Is(err, jwt.ErrTokenExpired) {
				code = "TOKEN_EXPIRED"
			}
			return unauthorized(c, fiber.StatusUnauthorized, code, "Invalid or expired token")
		}

		if claims.Role != role {
			logger.Get().Warn("Admin route called without admin role",
				zap.String("subject", claims.Subject),
				zap.String("role", claims.Role),
				zap.String("path", c.Path()))
			return unauthorized(c, fiber.StatusForbidden, "FORBIDDEN", "Admin role required")
		}

		c.Locals(SubjectKey, claims.Subject)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}
