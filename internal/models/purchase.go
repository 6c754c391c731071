package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseTimeLayout is the layout used when a purchase is displayed.
const PurchaseTimeLayout = "2006-01-02 15:04:05"

// Purchase logs a sale of a menu item. PurchasedAt is written on insert only;
// updates never touch it.
type Purchase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MenuItemID  uuid.UUID `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	MenuItem    *MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menu_item,omitempty"`
	PurchasedAt time.Time `gorm:"not null;autoCreateTime;<-:create" json:"purchased_at"`
	Quantity    int       `gorm:"not null;default:1;check:chk_purchases_quantity,quantity >= 1" json:"quantity"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p Purchase) PrimaryKey() uuid.UUID {
	return p.ID
}

// String renders e.g. "3 x Bread on 2025-03-20 18:23:00".
func (p Purchase) String() string {
	menuItem := p.MenuItemID.String()
	if p.MenuItem != nil {
		menuItem = p.MenuItem.Name
	}
	return fmt.Sprintf("%d x %s on %s", p.Quantity, menuItem, p.PurchasedAt.Format(PurchaseTimeLayout))
}
