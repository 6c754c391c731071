package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
)

type RequirementHandler struct {
	requirements service.IRequirementService
}

func NewRequirementHandler(requirements service.IRequirementService) *RequirementHandler {
	return &RequirementHandler{requirements: requirements}
}

func (h *RequirementHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	requirements := router.Group("/recipe-requirements")
	{
		requirements.GET("", h.ListRequirements)
		requirements.GET("/:id", h.GetRequirement)
		requirements.POST("", append(write, h.CreateRequirement)...)
		requirements.PATCH("/:id", append(write, h.UpdateRequirement)...)
		requirements.DELETE("/:id", append(write, h.DeleteRequirement)...)
	}
}

// ListRequirements accepts ?menu_item_id= and ?ingredient_id= filters
func (h *RequirementHandler) ListRequirements(c *gin.Context) {
	var filter types.RequirementFilter
	var ok bool
	if filter.MenuItemID, ok = uuidQuery(c, "menu_item_id"); !ok {
		return
	}
	if filter.IngredientID, ok = uuidQuery(c, "ingredient_id"); !ok {
		return
	}

	requirements, err := h.requirements.ListRequirements(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_requirements": requirements})
}

func (h *RequirementHandler) GetRequirement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	requirement, err := h.requirements.GetRequirement(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, requirement)
}

func (h *RequirementHandler) CreateRequirement(c *gin.Context) {
	var req types.CreateRequirementRequest
	if !bindJSON(c, &req) {
		return
	}
	requirement, err := h.requirements.CreateRequirement(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, requirement)
}

func (h *RequirementHandler) UpdateRequirement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req types.UpdateRequirementRequest
	if !bindJSON(c, &req) {
		return
	}
	requirement, err := h.requirements.UpdateRequirement(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, requirement)
}

func (h *RequirementHandler) DeleteRequirement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.requirements.DeleteRequirement(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
