package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/delight/backend/internal/logger"
	"github.com/pageza/delight/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// ErrorHandler writes the JSON response for the last error a handler
// attached with c.Error. Panics are recovered and reported as 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic while handling request",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, body := errorResponse(c.Errors.Last())
		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Error(c.Errors.Last().Err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.AbortWithStatusJSON(status, body)
	}
}

func errorResponse(ginErr *gin.Error) (int, ErrorResponse) {
	err := ginErr.Err

	var verr service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "not found"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Error: err.Error()}
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}
