package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseService logs menu item purchases. It does not touch ingredient stock.
type PurchaseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPurchaseService creates a new PurchaseService instance stamping
// purchases with the wall clock
func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return NewPurchaseServiceWithClock(db, time.Now)
}

// NewPurchaseServiceWithClock creates a PurchaseService with a custom clock
func NewPurchaseServiceWithClock(db *gorm.DB, now func() time.Time) *PurchaseService {
	return &PurchaseService{db: db, now: now}
}

// CreatePurchase logs a purchase. The timestamp is taken from the service
// clock and never changes afterwards.
func (s *PurchaseService) CreatePurchase(ctx context.Context, req *types.CreatePurchaseRequest) (*models.Purchase, error) {
	purchase := &models.Purchase{
		MenuItemID: req.MenuItemID,
		Quantity:   1,
	}
	if req.Quantity != nil {
		purchase.Quantity = *req.Quantity
	}
	if err := checkPurchaseQuantity(purchase.Quantity); err != nil {
		return nil, err
	}

	if purchase.MenuItemID == uuid.Nil {
		return nil, invalid("menu_item_id", "this field is required")
	}
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", purchase.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("menu_item_id", "menu item %s does not exist", purchase.MenuItemID)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	// PostgreSQL keeps microseconds
	purchase.PurchasedAt = s.now().UTC().Truncate(time.Microsecond)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", translateError(err, nil))
	}
	purchase.MenuItem = &item
	return purchase, nil
}

// GetPurchase retrieves a purchase with its menu item
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := s.db.WithContext(ctx).Preload("MenuItem").First(&purchase, "id = ?", id).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &purchase, nil
}

// ListPurchases lists purchases newest first
func (s *PurchaseService) ListPurchases(ctx context.Context, filter types.PurchaseFilter) ([]*models.Purchase, error) {
	query := s.db.WithContext(ctx).Preload("MenuItem")
	if filter.MenuItemID != nil {
		query = query.Where("menu_item_id = ?", *filter.MenuItemID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var purchases []*models.Purchase
	if err := query.Order("purchased_at DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// UpdatePurchase corrects the quantity of a logged purchase
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, req *types.UpdatePurchaseRequest) (*models.Purchase, error) {
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity == nil {
		return purchase, nil
	}
	if err := checkPurchaseQuantity(*req.Quantity); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(purchase).Update("quantity", *req.Quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}
	return s.GetPurchase(ctx, id)
}

// DeletePurchase deletes a purchase
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Purchase{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func checkPurchaseQuantity(quantity int) error {
	if quantity < 1 {
		return invalid("quantity", "ensure this value is greater than or equal to 1")
	}
	return nil
}
