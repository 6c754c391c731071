package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItem(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	bread := mustMenuItem(t, s, "Bread", "4.00")
	assert.Equal(t, "Bread - $4.00", bread.String())

	_, err := s.menuItems.CreateMenuItem(ctx, &types.CreateMenuItemRequest{Name: "Bread", Price: dec("5.00")})
	requireValidationError(t, err, "name")

	_, err = s.menuItems.CreateMenuItem(ctx, &types.CreateMenuItemRequest{Name: "Soup", Price: dec("100.00")})
	requireValidationError(t, err, "price")

	_, err = s.menuItems.CreateMenuItem(ctx, &types.CreateMenuItemRequest{Name: "Soup", Price: dec("-1")})
	requireValidationError(t, err, "price")

	soup, err := s.menuItems.CreateMenuItem(ctx, &types.CreateMenuItemRequest{Name: "Soup"})
	require.NoError(t, err)
	assert.True(t, soup.Price.IsZero())

	found, err := s.menuItems.GetMenuItemByName(ctx, "Soup")
	require.NoError(t, err)
	assert.Equal(t, soup.ID, found.ID)
}

func TestUpdateMenuItem(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	bread := mustMenuItem(t, s, "Bread", "4.00")
	mustMenuItem(t, s, "Cake", "6.50")

	updated, err := s.menuItems.UpdateMenuItem(ctx, bread.ID, &types.UpdateMenuItemRequest{
		Name:  strPtr("Rye Bread"),
		Price: dec("4.25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rye Bread - $4.25", updated.String())

	_, err = s.menuItems.UpdateMenuItem(ctx, bread.ID, &types.UpdateMenuItemRequest{Name: strPtr("Cake")})
	requireValidationError(t, err, "name")

	_, err = s.menuItems.UpdateMenuItem(ctx, uuid.New(), &types.UpdateMenuItemRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteMenuItemCascades(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	flour := mustIngredient(t, s, "Flour", "10.00", "1.50")
	bread := mustMenuItem(t, s, "Bread", "4.00")
	cake := mustMenuItem(t, s, "Cake", "6.50")

	_, err := s.requirements.CreateRequirement(ctx, &types.CreateRequirementRequest{
		MenuItemID: bread.ID, IngredientID: flour.ID, Quantity: dec("2.00"), Unit: "grams",
	})
	require.NoError(t, err)
	cakeReq, err := s.requirements.CreateRequirement(ctx, &types.CreateRequirementRequest{
		MenuItemID: cake.ID, IngredientID: flour.ID, Quantity: dec("3.00"), Unit: "cup",
	})
	require.NoError(t, err)
	_, err = s.purchases.CreatePurchase(ctx, &types.CreatePurchaseRequest{MenuItemID: bread.ID, Quantity: intPtr(2)})
	require.NoError(t, err)
	cakePurchase, err := s.purchases.CreatePurchase(ctx, &types.CreatePurchaseRequest{MenuItemID: cake.ID})
	require.NoError(t, err)

	require.NoError(t, s.menuItems.DeleteMenuItem(ctx, bread.ID))

	requirements, err := s.requirements.ListRequirements(ctx, types.RequirementFilter{})
	require.NoError(t, err)
	require.Len(t, requirements, 1)
	assert.Equal(t, cakeReq.ID, requirements[0].ID)

	purchases, err := s.purchases.ListPurchases(ctx, types.PurchaseFilter{})
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, cakePurchase.ID, purchases[0].ID)

	_, err = s.ingredients.GetIngredient(ctx, flour.ID)
	assert.NoError(t, err, "ingredients are not removed with the menu item")

	assert.ErrorIs(t, s.menuItems.DeleteMenuItem(ctx, bread.ID), service.ErrNotFound)
}
