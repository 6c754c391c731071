package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/delight/backend/internal/service"
)

// parseID reads the :id path parameter. A malformed id cannot name an
// existing record, so it is reported as not found.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

// uuidQuery reads an optional UUID query parameter
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = c.Error(service.ValidationError{Field: name, Message: "must be a valid UUID"})
		return nil, false
	}
	return &id, true
}

// intQuery reads an optional non-negative integer query parameter
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		_ = c.Error(service.ValidationError{Field: name, Message: "must be a non-negative integer"})
		return 0, false
	}
	return n, true
}
