package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errDuplicateRequirement = invalid("ingredient_id", "recipe requirement with this menu item and ingredient already exists")

// RequirementService handles recipe requirement operations
type RequirementService struct {
	db *gorm.DB
}

// NewRequirementService creates a new RequirementService instance
func NewRequirementService(db *gorm.DB) *RequirementService {
	return &RequirementService{db: db}
}

// CreateRequirement records that a menu item needs req.Quantity of an ingredient
func (s *RequirementService) CreateRequirement(ctx context.Context, req *types.CreateRequirementRequest) (*models.RecipeRequirement, error) {
	if req.Quantity == nil {
		return nil, invalid("quantity", "this field is required")
	}
	unit, err := parseUnit(req.Unit, req.CustomUnit)
	if err != nil {
		return nil, err
	}
	requirement := &models.RecipeRequirement{
		MenuItemID:   req.MenuItemID,
		IngredientID: req.IngredientID,
		Quantity:     *req.Quantity,
	}
	requirement.SetMeasure(unit)

	if err := s.checkQuantity(requirement); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, requirement); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.RecipeRequirement{}).
		Where("menu_item_id = ? AND ingredient_id = ?", requirement.MenuItemID, requirement.IngredientID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check recipe requirement: %w", err)
	}
	if count > 0 {
		return nil, errDuplicateRequirement
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(requirement).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe requirement: %w", translateError(err, errDuplicateRequirement))
	}
	return s.GetRequirement(ctx, requirement.ID)
}

// GetRequirement retrieves a recipe requirement with its menu item and ingredient
func (s *RequirementService) GetRequirement(ctx context.Context, id uuid.UUID) (*models.RecipeRequirement, error) {
	var requirement models.RecipeRequirement
	if err := s.db.WithContext(ctx).Preload("MenuItem").Preload("Ingredient").
		First(&requirement, "id = ?", id).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &requirement, nil
}

// ListRequirements lists recipe requirements, optionally for one menu item or
// one ingredient
func (s *RequirementService) ListRequirements(ctx context.Context, filter types.RequirementFilter) ([]*models.RecipeRequirement, error) {
	query := s.db.WithContext(ctx).Preload("MenuItem").Preload("Ingredient")
	if filter.MenuItemID != nil {
		query = query.Where("menu_item_id = ?", *filter.MenuItemID)
	}
	if filter.IngredientID != nil {
		query = query.Where("ingredient_id = ?", *filter.IngredientID)
	}

	var requirements []*models.RecipeRequirement
	if err := query.Order("created_at").Find(&requirements).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipe requirements: %w", err)
	}
	return requirements, nil
}

// UpdateRequirement changes the quantity or unit. The menu item and
// ingredient of a requirement are fixed.
func (s *RequirementService) UpdateRequirement(ctx context.Context, id uuid.UUID, req *types.UpdateRequirementRequest) (*models.RecipeRequirement, error) {
	requirement, err := s.GetRequirement(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		requirement.Quantity = *req.Quantity
	}
	if req.Unit != nil || req.CustomUnit != nil {
		unit, err := mergeUnit(requirement.Measure(), req.Unit, req.CustomUnit)
		if err != nil {
			return nil, err
		}
		requirement.SetMeasure(unit)
	}
	if err := s.checkQuantity(requirement); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(requirement).Error; err != nil {
		return nil, fmt.Errorf("failed to update recipe requirement: %w", translateError(err, errDuplicateRequirement))
	}
	return requirement, nil
}

// DeleteRequirement deletes a recipe requirement
func (s *RequirementService) DeleteRequirement(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.RecipeRequirement{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe requirement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RequirementService) checkQuantity(requirement *models.RecipeRequirement) error {
	if err := checkDecimal("quantity", requirement.Quantity, models.RequirementQuantitySpec); err != nil {
		return err
	}
	if !requirement.Quantity.IsPositive() {
		return invalid("quantity", "ensure this value is greater than 0")
	}
	return nil
}

func (s *RequirementService) checkReferences(ctx context.Context, requirement *models.RecipeRequirement) error {
	if requirement.MenuItemID == uuid.Nil {
		return invalid("menu_item_id", "this field is required")
	}
	if requirement.IngredientID == uuid.Nil {
		return invalid("ingredient_id", "this field is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", requirement.MenuItemID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check menu item: %w", err)
	}
	if count == 0 {
		return invalid("menu_item_id", "menu item %s does not exist", requirement.MenuItemID)
	}
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", requirement.IngredientID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check ingredient: %w", err)
	}
	if count == 0 {
		return invalid("ingredient_id", "ingredient %s does not exist", requirement.IngredientID)
	}
	return nil
}
