package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeRequirement records how much of an ingredient one serving of a menu
// item needs. A menu item lists each ingredient at most once.
type RecipeRequirement struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_requirement_pair,priority:1" json:"menu_item_id"`
	MenuItem     *MenuItem       `gorm:"constraint:OnDelete:CASCADE" json:"menu_item,omitempty"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_requirement_pair,priority:2;index" json:"ingredient_id"`
	Ingredient   *Ingredient     `gorm:"constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
	Quantity     decimal.Decimal `gorm:"type:decimal(6,2);not null;check:chk_recipe_requirements_quantity,quantity > 0" json:"quantity"`
	Unit         UnitChoice      `gorm:"type:varchar(10);check:chk_recipe_requirements_unit,unit IS NULL OR unit IN ('grams', 'pounds', 'cup', 'kilogram', 'tablespoon', 'teaspoon', 'millimeter', 'ounces', 'other')" json:"unit,omitempty"`
	CustomUnit   *string         `gorm:"size:50" json:"custom_unit,omitempty"`
}

func (RecipeRequirement) TableName() string {
	return "recipe_requirements"
}

func (r *RecipeRequirement) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r RecipeRequirement) Measure() Unit {
	return unitFromColumns(r.Unit, r.CustomUnit)
}

func (r *RecipeRequirement) SetMeasure(u Unit) {
	r.Unit, r.CustomUnit = u.columns()
}

func (r RecipeRequirement) PrimaryKey() uuid.UUID {
	return r.ID
}

// String renders "<menu item>: <ingredient>". Both relations must be loaded
// for names to appear; otherwise their ids are used.
func (r RecipeRequirement) String() string {
	menuItem := r.MenuItemID.String()
	if r.MenuItem != nil {
		menuItem = r.MenuItem.Name
	}
	ingredient := r.IngredientID.String()
	if r.Ingredient != nil {
		ingredient = r.Ingredient.String()
	}
	return fmt.Sprintf("%s: %s", menuItem, ingredient)
}
