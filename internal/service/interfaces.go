package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
)

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	CreateIngredient(ctx context.Context, req *types.CreateIngredientRequest) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
}

// IMenuItemService defines the interface for menu item operations
type IMenuItemService interface {
	CreateMenuItem(ctx context.Context, req *types.CreateMenuItemRequest) (*models.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	GetMenuItemByName(ctx context.Context, name string) (*models.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, req *types.UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
}

// IRequirementService defines the interface for recipe requirement operations
type IRequirementService interface {
	CreateRequirement(ctx context.Context, req *types.CreateRequirementRequest) (*models.RecipeRequirement, error)
	GetRequirement(ctx context.Context, id uuid.UUID) (*models.RecipeRequirement, error)
	ListRequirements(ctx context.Context, filter types.RequirementFilter) ([]*models.RecipeRequirement, error)
	UpdateRequirement(ctx context.Context, id uuid.UUID, req *types.UpdateRequirementRequest) (*models.RecipeRequirement, error)
	DeleteRequirement(ctx context.Context, id uuid.UUID) error
}

// IPurchaseService defines the interface for purchase log operations
type IPurchaseService interface {
	CreatePurchase(ctx context.Context, req *types.CreatePurchaseRequest) (*models.Purchase, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*models.Purchase, error)
	ListPurchases(ctx context.Context, filter types.PurchaseFilter) ([]*models.Purchase, error)
	UpdatePurchase(ctx context.Context, id uuid.UUID, req *types.UpdatePurchaseRequest) (*models.Purchase, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) error
}

// IAuthService defines the interface for staff authentication
type IAuthService interface {
	CreateStaffUser(ctx context.Context, username, password string) (*models.StaffUser, error)
	Login(ctx context.Context, username, password string) (string, *models.StaffUser, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

var (
	_ IIngredientService  = (*IngredientService)(nil)
	_ IMenuItemService    = (*MenuItemService)(nil)
	_ IRequirementService = (*RequirementService)(nil)
	_ IPurchaseService    = (*PurchaseService)(nil)
	_ IAuthService        = (*AuthService)(nil)
)
