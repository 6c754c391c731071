package mocks

import (
	"context"

	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the IAuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CreateStaffUser(ctx context.Context, username, password string) (*models.StaffUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffUser), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *models.StaffUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.StaffUser), args.Error(2)
}

func (m *MockAuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
