package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stableflow/reserve-engine/internal/domain"
	"github.com/stableflow/reserve-engine/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodePrecondition     ErrorCode = "precondition_failed"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUnavailable   ErrorCode = "unavailable"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps an engine error onto an HTTP status
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		respondWithError(c, http.StatusBadRequest, errCodeBadRequest, "Invalid amount", err.Error())
	case errors.Is(err, domain.ErrInsufficientFreeBalance),
		errors.Is(err, domain.ErrInsufficientAllowance),
		errors.Is(err, domain.ErrInsufficientSupply):
		respondWithError(c, http.StatusUnprocessableEntity, errCodePrecondition, "Insufficient funds", err.Error())
	case errors.Is(err, domain.ErrOnlyOwnerAccess):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Owner access required", err.Error())
	case errors.Is(err, domain.ErrIntervalNotElapsed),
		errors.Is(err, domain.ErrPrecondition):
		respondWithError(c, http.StatusUnprocessableEntity, errCodePrecondition, "Operation precondition failed", err.Error())
	case errors.Is(err, domain.ErrPriceUnavailable):
		respondWithError(c, http.StatusServiceUnavailable, errCodeUnavailable, "Oracle price unavailable", err.Error())
	default:
		respondInternalError(c, err, "Operation failed")
	}
}
