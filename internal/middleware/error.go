package middleware

import (
	"context"
	"errors"
	"net/http"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every rejected field of a request.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

const codeTimeout = "TIMEOUT"

var domainStatus = map[domain.ErrorCode]int{
	domain.CodeNotFound:          http.StatusNotFound,
	domain.CodeBundleNotFound:    http.StatusNotFound,
	domain.CodePurchaseNotFound:  http.StatusNotFound,
	domain.CodeInvalidInput:      http.StatusBadRequest,
	domain.CodeValidation:        http.StatusBadRequest,
	domain.CodeMissingField:      http.StatusBadRequest,
	domain.CodeInvalidFormat:     http.StatusBadRequest,
	domain.CodeOutOfRange:        http.StatusBadRequest,
	domain.CodeUnauthorized:      http.StatusUnauthorized,
	domain.CodeForbidden:         http.StatusForbidden,
	domain.CodeInvalidState:      http.StatusConflict,
	domain.CodeSyncInProgress:    http.StatusConflict,
	domain.CodeBundleInactive:    http.StatusUnprocessableEntity,
	domain.CodePricingMissing:    http.StatusUnprocessableEntity,
	domain.CodeSourceUnavailable: http.StatusBadGateway,
	domain.CodeLLMServiceError:   http.StatusServiceUnavailable,
}

// StatusFor returns the HTTP status for a domain error code.
func StatusFor(code domain.ErrorCode) int {
	if status, ok := domainStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is the Fiber error handler for the API. Handlers return
// errors and this turns them into JSON bodies.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request rejected by validation", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := StatusFor(domainErr.Code)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", fields...)
			} else {
				log.Warn("Request failed", fields...)
			}

			resp := ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  status,
			}
			if len(domainErr.Context) > 0 {
				resp.Details = domainErr.Context
			}
			return c.Status(status).JSON(resp)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := "HTTP_ERROR"
			if fiberErr.Code == http.StatusNotFound {
				code = string(domain.CodeNotFound)
			}
			log.Warn("Request failed in routing", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    code,
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("Request timed out", zap.Error(err))
			return c.Status(http.StatusGatewayTimeout).JSON(ErrorResponse{
				Code:    codeTimeout,
				Message: "Request timed out",
				Status:  http.StatusGatewayTimeout,
			})
		}

		log.Error("Unhandled error", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}
