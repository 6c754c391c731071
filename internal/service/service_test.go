package service_test

import (
	"context"
	"testing"

	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/testhelpers"
	"github.com/pageza/delight/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type services struct {
	db           *gorm.DB
	ingredients  *service.IngredientService
	menuItems    *service.MenuItemService
	requirements *service.RequirementService
	purchases    *service.PurchaseService
}

func setupServices(t *testing.T) *services {
	db := testhelpers.SetupSQLiteDatabase(t)
	return &services{
		db:           db,
		ingredients:  service.NewIngredientService(db),
		menuItems:    service.NewMenuItemService(db),
		requirements: service.NewRequirementService(db),
		purchases:    service.NewPurchaseService(db),
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func mustIngredient(t *testing.T, s *services, name, stock, price string) *models.Ingredient {
	t.Helper()
	ingredient, err := s.ingredients.CreateIngredient(context.Background(), &types.CreateIngredientRequest{
		Name:          name,
		StockQuantity: dec(stock),
		UnitPrice:     dec(price),
	})
	require.NoError(t, err)
	return ingredient
}

func mustMenuItem(t *testing.T, s *services, name, price string) *models.MenuItem {
	t.Helper()
	item, err := s.menuItems.CreateMenuItem(context.Background(), &types.CreateMenuItemRequest{
		Name:  name,
		Price: dec(price),
	})
	require.NoError(t, err)
	return item
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var verr service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, field, verr.Field, verr.Message)
}
