package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// ErrUnauthorized means no credential was supplied.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means a credential was supplied but is insufficient.
	ErrForbidden  = errors.New("forbidden access")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrBadRequest = errors.New("bad request")
	// ErrUpstream wraps storage and other dependency failures.
	ErrUpstream = errors.New("upstream failure")
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusFor maps an error from the service layers to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Unauthorized access"
	case http.StatusForbidden:
		return "Forbidden access"
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return http.StatusText(status)
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.FullPath()))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// AbortWithError logs err and aborts the request with the status StatusFor assigns to it.
// Internal details are only echoed back for client errors other than 401 and 403.
func AbortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	logger := GetLogger().With(zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))

	resp := ErrorResponse{Message: messageFor(status)}
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed")
	case status == http.StatusUnauthorized:
		logger.Warn("request rejected")
		resp.Details = "Authorization header required"
	case status == http.StatusForbidden:
		// Token parser errors and identities stay in the log.
		logger.Warn("request rejected")
		resp.Details = "You do not have access to this resource"
	default:
		logger.Warn("request rejected")
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
