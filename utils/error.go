package utils

import (
	"errors"
	"net/http"

	"pillowstat/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// APIError is the body written for service failures.
type APIError struct {
	Error               string                      `json:"error"`
	Field               string                      `json:"field,omitempty"`
	ConflictingBookings []models.ConflictingBooking `json:"conflictingBookings,omitempty"`
	BlockedDates        []models.Date               `json:"blockedDates,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a service error onto its HTTP status and body.
// Internal errors are logged at Error and their detail is not exposed.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	if logger == nil {
		logger = GetLogger()
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternal("Internal server error", err)
	}

	status := HTTPStatus(appErr.Kind)
	if appErr.Kind == KindInternal {
		logger.Error("request failed", zap.Error(err))
		c.JSON(status, APIError{Error: "Internal server error"})
		return
	}

	logger.Warn("request rejected",
		zap.String("kind", string(appErr.Kind)),
		zap.String("field", appErr.Field),
		zap.String("reason", appErr.Message))
	c.JSON(status, APIError{
		Error:               appErr.Message,
		Field:               appErr.Field,
		ConflictingBookings: appErr.Conflicts,
		BlockedDates:        appErr.BlockedDates,
	})
}
