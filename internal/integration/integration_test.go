package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/delight/backend/config"
	"github.com/pageza/delight/backend/internal/router"
	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/testhelpers"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) call(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (c *client) mustCreate(path string, body interface{}) string {
	c.t.Helper()
	code, out := c.call(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, code, out)
	return out["id"].(string)
}

// TestInventoryFlow runs the bakery example end to end against PostgreSQL
// with the SQL migrations applied.
func TestInventoryFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupPostgresDatabase(t)
	redisClient := testhelpers.SetupRedis(t)

	cfg := &config.Config{
		Environment:    config.Test,
		JWTSecret:      "integration-secret-key-000000000000",
		WriteRateLimit: 100,
	}
	r := router.Setup(cfg, db, redisClient)

	username := fmt.Sprintf("staff-%s", uuid.NewString()[:8])
	_, err := service.NewAuthService(db, cfg.JWTSecret).CreateStaffUser(context.Background(), username, "correct-horse")
	require.NoError(t, err)

	c := &client{t: t, router: r}
	code, login := c.call(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, code, login)
	c.token = login["token"].(string)

	flour := c.mustCreate("/api/v1/ingredients", map[string]interface{}{
		"name": "Flour", "stock_quantity": "10.00", "unit_price": "1.50", "unit": "kilogram",
	})
	bread := c.mustCreate("/api/v1/menu-items", map[string]interface{}{"name": "Bread", "price": "4.00"})

	pair := map[string]interface{}{
		"menu_item_id": bread, "ingredient_id": flour, "quantity": "2.00", "unit": "grams",
	}
	c.mustCreate("/api/v1/recipe-requirements", pair)
	code, out := c.call(http.MethodPost, "/api/v1/recipe-requirements", pair)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ingredient_id", out["field"])

	before := time.Now().Add(-time.Second)
	code, purchase := c.call(http.MethodPost, "/api/v1/purchases", map[string]interface{}{"menu_item_id": bread, "quantity": 3})
	require.Equal(t, http.StatusCreated, code, purchase)
	assert.EqualValues(t, 3, purchase["quantity"])
	purchasedAt, err := time.Parse(time.RFC3339Nano, purchase["purchased_at"].(string))
	require.NoError(t, err)
	assert.True(t, purchasedAt.After(before))

	code, updated := c.call(http.MethodPatch, "/api/v1/purchases/"+purchase["id"].(string), map[string]interface{}{"quantity": 1})
	require.Equal(t, http.StatusOK, code, updated)
	updatedAt, err := time.Parse(time.RFC3339Nano, updated["purchased_at"].(string))
	require.NoError(t, err)
	assert.True(t, updatedAt.Equal(purchasedAt), "purchase time is fixed at creation")

	code, admin := c.call(http.MethodGet, "/admin/purchases", nil)
	require.Equal(t, http.StatusOK, code)
	entries := admin["entries"].([]interface{})
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].(map[string]interface{})["display"], "1 x Bread on ")

	code, _ = c.call(http.MethodDelete, "/admin/menu-items/"+bread, nil)
	require.Equal(t, http.StatusNoContent, code)

	_, requirements := c.call(http.MethodGet, "/api/v1/recipe-requirements", nil)
	assert.Empty(t, requirements["recipe_requirements"])
	_, purchases := c.call(http.MethodGet, "/api/v1/purchases", nil)
	assert.Empty(t, purchases["purchases"])
	code, _ = c.call(http.MethodGet, "/api/v1/ingredients/"+flour, nil)
	assert.Equal(t, http.StatusOK, code)
}
