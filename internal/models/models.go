package models

// All returns every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&StaffUser{},
		&Ingredient{},
		&MenuItem{},
		&RecipeRequirement{},
		&Purchase{},
	}
}
