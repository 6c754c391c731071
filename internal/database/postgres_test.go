package database_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/internal/database"
	"github.com/pageza/delight/backend/internal/models"
	"github.com/pageza/delight/backend/internal/testhelpers"
)

func seed(t *testing.T, db *gorm.DB) (*models.Ingredient, *models.MenuItem) {
	t.Helper()
	flour := &models.Ingredient{
		Name:          "Flour",
		StockQuantity: decimal.RequireFromString("10.00"),
		UnitPrice:     decimal.RequireFromString("1.50"),
		Unit:          models.UnitKilogram,
	}
	require.NoError(t, db.Create(flour).Error)
	bread := &models.MenuItem{Name: "Bread", Price: decimal.RequireFromString("4.00")}
	require.NoError(t, db.Create(bread).Error)
	return flour, bread
}

func TestPostgresMigrations(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	var versions []string
	require.NoError(t, db.Table("schema_migrations").Order("version").Pluck("version", &versions).Error)
	assert.Equal(t, []string{"0001", "0002", "0003"}, versions)

	// a second run applies nothing
	require.NoError(t, database.RunMigrations(db, testhelpers.MigrationsDir()))
}

func TestPostgresConstraints(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	flour, bread := seed(t, db)

	t.Run("widened unit choices", func(t *testing.T) {
		for _, unit := range models.UnitChoices {
			err := db.Model(flour).Update("unit", unit).Error
			assert.NoError(t, err, "unit %s", unit)
		}
		assert.NoError(t, db.Model(flour).Update("unit", nil).Error)
		assert.Error(t, db.Model(flour).Update("unit", "pieces").Error)
	})

	t.Run("unique names", func(t *testing.T) {
		err := db.Create(&models.Ingredient{Name: "Flour"}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
		err = db.Create(&models.MenuItem{Name: "Bread"}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("non-negative stock", func(t *testing.T) {
		assert.Error(t, db.Model(flour).Update("stock_quantity", decimal.NewFromInt(-1)).Error)
	})

	t.Run("unique requirement pair", func(t *testing.T) {
		req := func() *models.RecipeRequirement {
			return &models.RecipeRequirement{
				MenuItemID:   bread.ID,
				IngredientID: flour.ID,
				Quantity:     decimal.RequireFromString("2.00"),
				Unit:         models.UnitGrams,
			}
		}
		require.NoError(t, db.Create(req()).Error)
		assert.ErrorIs(t, db.Create(req()).Error, gorm.ErrDuplicatedKey)
	})

	t.Run("positive requirement quantity", func(t *testing.T) {
		other := &models.Ingredient{Name: "Salt"}
		require.NoError(t, db.Create(other).Error)
		err := db.Create(&models.RecipeRequirement{
			MenuItemID:   bread.ID,
			IngredientID: other.ID,
			Quantity:     decimal.Zero,
		}).Error
		assert.Error(t, err)
	})
}

func TestPostgresCascades(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	flour, bread := seed(t, db)

	require.NoError(t, db.Create(&models.RecipeRequirement{
		MenuItemID:   bread.ID,
		IngredientID: flour.ID,
		Quantity:     decimal.RequireFromString("2.00"),
	}).Error)
	purchase := &models.Purchase{MenuItemID: bread.ID, Quantity: 3, PurchasedAt: time.Now().UTC()}
	require.NoError(t, db.Create(purchase).Error)

	require.NoError(t, db.Delete(&models.MenuItem{}, "id = ?", bread.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.RecipeRequirement{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Purchase{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

type unitRow struct {
	Unit       *string
	CustomUnit *string
}

func unitOf(t *testing.T, db *gorm.DB, table, id string) unitRow {
	t.Helper()
	var row unitRow
	require.NoError(t, db.Table(table).Select("unit, custom_unit").Where("id = ?", id).Scan(&row).Error)
	return row
}

func TestPostgresUnitChoicesMigration(t *testing.T) {
	db := testhelpers.SetupEmptyPostgresDatabase(t)
	migrations, err := database.LoadMigrations(testhelpers.MigrationsDir())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(migrations), 2)
	initial, widen := migrations[0], migrations[1]
	require.Equal(t, "0002", widen.Version)

	exec := func(sql string, err error) {
		t.Helper()
		require.NoError(t, err)
		require.NoError(t, db.Exec(sql).Error)
	}
	exec(initial.UpSQL())

	nuts, bread, cup := uuid.NewString(), uuid.NewString(), uuid.NewString()
	require.NoError(t, db.Exec("INSERT INTO ingredients (id, name, unit) VALUES (?, 'Nuts', 'pieces')", nuts).Error)
	require.NoError(t, db.Exec("INSERT INTO menu_items (id, name) VALUES (?, 'Nut bread')", bread).Error)
	requirement := uuid.NewString()
	require.NoError(t, db.Exec("INSERT INTO recipe_requirements (id, menu_item_id, ingredient_id, quantity, unit) VALUES (?, ?, ?, 3, 'pieces')",
		requirement, bread, nuts).Error)
	assert.Error(t, db.Exec("INSERT INTO ingredients (id, name, unit) VALUES (?, 'Milk', 'cup')", cup).Error)

	exec(widen.UpSQL())

	for table, id := range map[string]string{"ingredients": nuts, "recipe_requirements": requirement} {
		row := unitOf(t, db, table, id)
		require.NotNil(t, row.Unit, table)
		require.NotNil(t, row.CustomUnit, table)
		assert.Equal(t, "other", *row.Unit, table)
		assert.Equal(t, "pieces", *row.CustomUnit, table)
	}
	require.NoError(t, db.Exec("INSERT INTO ingredients (id, name, unit) VALUES (?, 'Milk', 'cup')", cup).Error)
	assert.Error(t, db.Exec("UPDATE ingredients SET unit = 'pieces' WHERE id = ?", nuts).Error)

	exec(widen.DownSQL())

	for table, id := range map[string]string{"ingredients": nuts, "recipe_requirements": requirement} {
		row := unitOf(t, db, table, id)
		require.NotNil(t, row.Unit, table)
		assert.Equal(t, "pieces", *row.Unit, table)
		assert.Nil(t, row.CustomUnit, table)
	}
	assert.Nil(t, unitOf(t, db, "ingredients", cup).Unit)
	assert.Error(t, db.Exec("UPDATE ingredients SET unit = 'cup' WHERE id = ?", cup).Error)
}
