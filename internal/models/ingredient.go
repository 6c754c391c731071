package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const IngredientNameMaxLength = 50

// Ingredient represents an ingredient held in the restaurant inventory.
type Ingredient struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Name          string          `gorm:"size:50;not null;uniqueIndex" json:"name"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0;check:chk_ingredients_stock_quantity,stock_quantity >= 0" json:"stock_quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0;check:chk_ingredients_unit_price,unit_price >= 0" json:"unit_price"`
	Unit          UnitChoice      `gorm:"type:varchar(10);check:chk_ingredients_unit,unit IS NULL OR unit IN ('grams', 'pounds', 'cup', 'kilogram', 'tablespoon', 'teaspoon', 'millimeter', 'ounces', 'other')" json:"unit,omitempty"`
	CustomUnit    *string         `gorm:"size:50" json:"custom_unit,omitempty"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Measure returns the unit the stock quantity is counted in.
func (i Ingredient) Measure() Unit {
	return unitFromColumns(i.Unit, i.CustomUnit)
}

func (i *Ingredient) SetMeasure(u Unit) {
	i.Unit, i.CustomUnit = u.columns()
}

func (i Ingredient) PrimaryKey() uuid.UUID {
	return i.ID
}

func (i Ingredient) String() string {
	return i.Name
}
