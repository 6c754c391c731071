package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
)

const maxPurchasePage = 500

type PurchaseHandler struct {
	purchases service.IPurchaseService
}

func NewPurchaseHandler(purchases service.IPurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	purchases := router.Group("/purchases")
	{
		purchases.GET("", h.ListPurchases)
		purchases.GET("/:id", h.GetPurchase)
		purchases.POST("", append(write, h.CreatePurchase)...)
		purchases.PATCH("/:id", append(write, h.UpdatePurchase)...)
		purchases.DELETE("/:id", append(write, h.DeletePurchase)...)
	}
}

// ListPurchases lists purchases newest first. Accepts ?menu_item_id=,
// ?limit= and ?offset=.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	var filter types.PurchaseFilter
	var ok bool
	if filter.MenuItemID, ok = uuidQuery(c, "menu_item_id"); !ok {
		return
	}
	if filter.Limit, ok = intQuery(c, "limit"); !ok {
		return
	}
	if filter.Offset, ok = intQuery(c, "offset"); !ok {
		return
	}
	if filter.Limit == 0 || filter.Limit > maxPurchasePage {
		filter.Limit = maxPurchasePage
	}

	purchases, err := h.purchases.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	purchase, err := h.purchases.GetPurchase(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req types.CreatePurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase, err := h.purchases.CreatePurchase(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

// UpdatePurchase corrects the quantity. The purchase time cannot be changed.
func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req types.UpdatePurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase, err := h.purchases.UpdatePurchase(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.purchases.DeletePurchase(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
