package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/delight/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error, errType gin.ErrorType) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(err).SetType(errType)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		errType    gin.ErrorType
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error",
			err:        fmt.Errorf("create: %w", service.ValidationError{Field: "name", Message: "ingredient with this name already exists"}),
			errType:    gin.ErrorTypePrivate,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"ingredient with this name already exists","field":"name"}`,
		},
		{
			name:       "not found",
			err:        service.ErrNotFound,
			errType:    gin.ErrorTypePrivate,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			errType:    gin.ErrorTypePrivate,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid credentials"}`,
		},
		{
			name:       "bind error",
			err:        errors.New("invalid character 'x' looking for beginning of value"),
			errType:    gin.ErrorTypeBind,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid character 'x' looking for beginning of value"}`,
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection refused"),
			errType:    gin.ErrorTypePrivate,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err, tt.errType)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "already handled"})
		_ = c.Error(errors.New("ignored"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"already handled"}`, w.Body.String())
}
