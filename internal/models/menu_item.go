package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MenuItemNameMaxLength = 80

// MenuItem represents a dish offered on the restaurant menu.
type MenuItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Name      string          `gorm:"size:80;not null;uniqueIndex" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(4,2);not null;default:0;check:chk_menu_items_price,price >= 0" json:"price"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m MenuItem) PrimaryKey() uuid.UUID {
	return m.ID
}

// String renders the item the way it is listed on the menu, e.g. "Bread - $4.00".
func (m MenuItem) String() string {
	return fmt.Sprintf("%s - $%s", m.Name, m.Price.StringFixed(2))
}
