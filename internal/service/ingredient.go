package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errDuplicateIngredient = invalid("name", "ingredient with this name already exists")

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// CreateIngredient creates a new ingredient. Stock and price default to zero.
func (s *IngredientService) CreateIngredient(ctx context.Context, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	name, err := cleanName("name", req.Name, models.IngredientNameMaxLength)
	if err != nil {
		return nil, err
	}
	ingredient := &models.Ingredient{
		Name:          name,
		StockQuantity: decimal.Zero,
		UnitPrice:     decimal.Zero,
	}
	if req.StockQuantity != nil {
		ingredient.StockQuantity = *req.StockQuantity
	}
	if req.UnitPrice != nil {
		ingredient.UnitPrice = *req.UnitPrice
	}
	unit, err := parseUnit(req.Unit, req.CustomUnit)
	if err != nil {
		return nil, err
	}
	ingredient.SetMeasure(unit)

	if err := s.validate(ctx, ingredient); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(ingredient).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", translateError(err, errDuplicateIngredient))
	}
	return ingredient, nil
}

// GetIngredient retrieves an ingredient by ID
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &ingredient, nil
}

// GetIngredientByName retrieves an ingredient by its exact name
func (s *IngredientService) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "name = ?", name).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &ingredient, nil
}

// ListIngredients lists all ingredients ordered by name
func (s *IngredientService) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	if err := s.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// UpdateIngredient applies the non-nil fields of req
func (s *IngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if ingredient.Name, err = cleanName("name", *req.Name, models.IngredientNameMaxLength); err != nil {
			return nil, err
		}
	}
	if req.StockQuantity != nil {
		ingredient.StockQuantity = *req.StockQuantity
	}
	if req.UnitPrice != nil {
		ingredient.UnitPrice = *req.UnitPrice
	}
	if req.Unit != nil || req.CustomUnit != nil {
		unit, err := mergeUnit(ingredient.Measure(), req.Unit, req.CustomUnit)
		if err != nil {
			return nil, err
		}
		ingredient.SetMeasure(unit)
	}

	if err := s.validate(ctx, ingredient); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(ingredient).Error; err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", translateError(err, errDuplicateIngredient))
	}
	return ingredient, nil
}

// DeleteIngredient deletes an ingredient. The database removes the recipe
// requirements that reference it.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ingredient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *IngredientService) validate(ctx context.Context, ingredient *models.Ingredient) error {
	if err := checkDecimal("stock_quantity", ingredient.StockQuantity, models.StockQuantitySpec); err != nil {
		return err
	}
	if ingredient.StockQuantity.IsNegative() {
		return invalid("stock_quantity", "ensure this value is greater than or equal to 0")
	}
	if err := checkDecimal("unit_price", ingredient.UnitPrice, models.UnitPriceSpec); err != nil {
		return err
	}
	if ingredient.UnitPrice.IsNegative() {
		return invalid("unit_price", "ensure this value is greater than or equal to 0")
	}

	var count int64
	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("name = ?", ingredient.Name)
	if ingredient.ID != uuid.Nil {
		query = query.Where("id <> ?", ingredient.ID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check ingredient name: %w", err)
	}
	if count > 0 {
		return errDuplicateIngredient
	}
	return nil
}
