package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
)

type MenuItemHandler struct {
	menuItems service.IMenuItemService
}

func NewMenuItemHandler(menuItems service.IMenuItemService) *MenuItemHandler {
	return &MenuItemHandler{menuItems: menuItems}
}

func (h *MenuItemHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	items := router.Group("/menu-items")
	{
		items.GET("", h.ListMenuItems)
		items.GET("/:id", h.GetMenuItem)
		items.POST("", append(write, h.CreateMenuItem)...)
		items.PATCH("/:id", append(write, h.UpdateMenuItem)...)
		items.DELETE("/:id", append(write, h.DeleteMenuItem)...)
	}
}

// ListMenuItems lists the menu, or the item named by ?name=
func (h *MenuItemHandler) ListMenuItems(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		item, err := h.menuItems.GetMenuItemByName(c.Request.Context(), name)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu_items": []*models.MenuItem{item}})
		return
	}

	items, err := h.menuItems.ListMenuItems(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

func (h *MenuItemHandler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.menuItems.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuItemHandler) CreateMenuItem(c *gin.Context) {
	var req types.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.menuItems.CreateMenuItem(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuItemHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req types.UpdateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.menuItems.UpdateMenuItem(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem deletes a menu item together with its recipe requirements
// and purchases
func (h *MenuItemHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.menuItems.DeleteMenuItem(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
