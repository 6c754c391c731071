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

var errDuplicateMenuItem = invalid("name", "menu item with this name already exists")

// MenuItemService handles menu item operations
type MenuItemService struct {
	db *gorm.DB
}

// NewMenuItemService creates a new MenuItemService instance
func NewMenuItemService(db *gorm.DB) *MenuItemService {
	return &MenuItemService{db: db}
}

// CreateMenuItem creates a new menu item
func (s *MenuItemService) CreateMenuItem(ctx context.Context, req *types.CreateMenuItemRequest) (*models.MenuItem, error) {
	name, err := cleanName("name", req.Name, models.MenuItemNameMaxLength)
	if err != nil {
		return nil, err
	}
	item := &models.MenuItem{Name: name, Price: decimal.Zero}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", translateError(err, errDuplicateMenuItem))
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuItemService) GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &item, nil
}

// GetMenuItemByName retrieves a menu item by its exact name
func (s *MenuItemService) GetMenuItemByName(ctx context.Context, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "name = ?", name).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &item, nil
}

// ListMenuItems lists all menu items ordered by name
func (s *MenuItemService) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// UpdateMenuItem applies the non-nil fields of req
func (s *MenuItemService) UpdateMenuItem(ctx context.Context, id uuid.UUID, req *types.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if item.Name, err = cleanName("name", *req.Name, models.MenuItemNameMaxLength); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := s.validate(ctx, item); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", translateError(err, errDuplicateMenuItem))
	}
	return item, nil
}

// DeleteMenuItem deletes a menu item. The database removes its recipe
// requirements and purchases.
func (s *MenuItemService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuItemService) validate(ctx context.Context, item *models.MenuItem) error {
	if err := checkDecimal("price", item.Price, models.MenuItemPriceSpec); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return invalid("price", "ensure this value is greater than or equal to 0")
	}

	var count int64
	query := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("name = ?", item.Name)
	if item.ID != uuid.Nil {
		query = query.Where("id <> ?", item.ID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check menu item name: %w", err)
	}
	if count > 0 {
		return errDuplicateMenuItem
	}
	return nil
}
