package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/delight/backend/internal/service"
)

// Handler serves a Site over HTTP
type Handler struct {
	site *Site
}

// NewHandler creates a new Handler instance
func NewHandler(site *Site) *Handler {
	return &Handler{site: site}
}

// RegisterRoutes mounts the admin pages on rg. Callers are expected to have
// put staff authentication in front of rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/:model", h.List)
	rg.GET("/:model/:id", h.Get)
	rg.DELETE("/:model/:id", h.Delete)
}

// Index lists the registered models
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.site.Models()})
}

// List lists the records of one model
func (h *Handler) List(c *gin.Context) {
	entries, err := h.site.List(c.Request.Context(), c.Param("model"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": c.Param("model"), "entries": entries})
}

// Get shows one record
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.site.Get(c.Request.Context(), c.Param("model"), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete removes one record
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.site.Delete(c.Request.Context(), c.Param("model"), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(service.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
