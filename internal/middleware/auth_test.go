package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/delight/backend/internal/types"
)

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*types.TokenClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAuthMiddleware(t *testing.T) {
	staffID := uuid.New()
	validator := new(mockValidator)
	validator.On("ValidateToken", "good-token").Return(&types.TokenClaims{UserID: staffID, Username: "manager"}, nil)
	validator.On("ValidateToken", "bad-token").Return(nil, errors.New("token is expired"))

	router := gin.New()
	router.GET("/", AuthMiddleware(validator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"staff_id": c.MustGet(StaffIDKey),
			"username": c.GetString(UsernameKey),
		})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), staffID.String())
				assert.Contains(t, w.Body.String(), "manager")
			}
		})
	}

	validator.AssertExpectations(t)
}
