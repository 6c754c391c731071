package admin

import (
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/internal/models"
)

// NewInventorySite returns a site with the four inventory models registered
func NewInventorySite(db *gorm.DB) *Site {
	site := NewSite(db)
	Register[models.Ingredient](site, "ingredients", Options{
		VerboseName: "Ingredients",
		Order:       "name",
	})
	Register[models.MenuItem](site, "menu-items", Options{
		VerboseName: "Menu items",
		Order:       "name",
	})
	Register[models.RecipeRequirement](site, "recipe-requirements", Options{
		VerboseName: "Recipe requirements",
		Order:       "created_at",
		Preload:     []string{"MenuItem", "Ingredient"},
	})
	Register[models.Purchase](site, "purchases", Options{
		VerboseName: "Purchases",
		Order:       "purchased_at DESC",
		Preload:     []string{"MenuItem"},
	})
	return site
}
