package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
)

type IngredientHandler struct {
	ingredients service.IIngredientService
}

func NewIngredientHandler(ingredients service.IIngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// RegisterRoutes mounts the ingredient routes. write runs in front of every
// handler that changes data.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.POST("", append(write, h.CreateIngredient)...)
		ingredients.PATCH("/:id", append(write, h.UpdateIngredient)...)
		ingredients.DELETE("/:id", append(write, h.DeleteIngredient)...)
	}
}

// ListIngredients lists all ingredients, or the one named by ?name=
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		ingredient, err := h.ingredients.GetIngredientByName(c.Request.Context(), name)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ingredients": []*models.Ingredient{ingredient}})
		return
	}

	ingredients, err := h.ingredients.ListIngredients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.GetIngredient(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req types.CreateIngredientRequest
	if !bindJSON(c, &req) {
		return
	}
	ingredient, err := h.ingredients.CreateIngredient(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req types.UpdateIngredientRequest
	if !bindJSON(c, &req) {
		return
	}
	ingredient, err := h.ingredients.UpdateIngredient(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ingredients.DeleteIngredient(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
