package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockIngredientService is a mock implementation of the IIngredientService interface
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) CreateIngredient(ctx context.Context, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientService) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientService) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ingredient), args.Error(1)
}

func (m *MockIngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPurchaseService is a mock implementation of the IPurchaseService interface
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, req *types.CreatePurchaseRequest) (*models.Purchase, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseService) ListPurchases(ctx context.Context, filter types.PurchaseFilter) ([]*models.Purchase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *MockPurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, req *types.UpdatePurchaseRequest) (*models.Purchase, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
