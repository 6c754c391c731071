package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/internal/middleware"
	"github.com/pageza/delight/backend/internal/testhelpers"
)

const testJWTSecret = "api-test-secret-key-for-staff-000000"

type testAPI struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDatabase(t)
	svc := NewServices(db, testJWTSecret)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, db, svc, nil)

	ctx := context.Background()
	_, err := svc.Auth.CreateStaffUser(ctx, "manager", "correct-horse")
	require.NoError(t, err)
	token, _, err := svc.Auth.Login(ctx, "manager", "correct-horse")
	require.NoError(t, err)

	return &testAPI{t: t, db: db, router: router, token: token}
}

func (a *testAPI) request(method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// do sends an authenticated request
func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	return a.request(method, path, body, true)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type idResponse struct {
	ID string `json:"id"`
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func (a *testAPI) create(path string, body interface{}) string {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idResponse](a.t, w).ID
}
