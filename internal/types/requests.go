package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIngredientRequest represents the request body for creating an ingredient
type CreateIngredientRequest struct {
	Name          string           `json:"name" binding:"required"`
	StockQuantity *decimal.Decimal `json:"stock_quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Unit          string           `json:"unit"`
	CustomUnit    string           `json:"custom_unit"`
}

// UpdateIngredientRequest represents the request body for updating an ingredient.
// Nil fields are left unchanged.
type UpdateIngredientRequest struct {
	Name          *string          `json:"name"`
	StockQuantity *decimal.Decimal `json:"stock_quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Unit          *string          `json:"unit"`
	CustomUnit    *string          `json:"custom_unit"`
}

// CreateMenuItemRequest represents the request body for creating a menu item
type CreateMenuItemRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price"`
}

// UpdateMenuItemRequest represents the request body for updating a menu item
type UpdateMenuItemRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// CreateRequirementRequest represents the request body for adding an
// ingredient to a menu item's recipe
type CreateRequirementRequest struct {
	MenuItemID   uuid.UUID        `json:"menu_item_id"`
	IngredientID uuid.UUID        `json:"ingredient_id"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string           `json:"unit"`
	CustomUnit   string           `json:"custom_unit"`
}

// UpdateRequirementRequest represents the request body for updating a recipe requirement
type UpdateRequirementRequest struct {
	Quantity   *decimal.Decimal `json:"quantity"`
	Unit       *string          `json:"unit"`
	CustomUnit *string          `json:"custom_unit"`
}

// CreatePurchaseRequest represents the request body for logging a purchase.
// A missing quantity means one.
type CreatePurchaseRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   *int      `json:"quantity"`
}

// UpdatePurchaseRequest represents the request body for correcting a purchase
type UpdatePurchaseRequest struct {
	Quantity *int `json:"quantity"`
}

// RequirementFilter narrows a recipe requirement listing
type RequirementFilter struct {
	MenuItemID   *uuid.UUID
	IngredientID *uuid.UUID
}

// PurchaseFilter narrows a purchase listing
type PurchaseFilter struct {
	MenuItemID *uuid.UUID
	Limit      int
	Offset     int
}

// LoginRequest represents the staff login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
