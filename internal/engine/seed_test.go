package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

func TestSeedDefaultCatalog(t *testing.T) {

	t.Run("creates seedable menus and skips the rest with reasons", func(t *testing.T) {
		gdb := setupTestDB(t)
		papas := seedIngredient(t, gdb, "papas", 10)
		seedIngredient(t, gdb, "pepsi", 3)

		report, err := engine.SeedDefaultCatalog(gdb)

		assert.NoError(t, err)
		assert.Contains(t, report.Created, "Papas fritas")
		assert.Contains(t, report.Created, "Pepsi")
		assert.Len(t, report.Created, 2)

		// Every other default menu lacks at least one ingredient.
		skippedNames := make([]string, 0, len(report.Skipped))
		for _, skipped := range report.Skipped {
			skippedNames = append(skippedNames, skipped.Name)
			assert.NotEmpty(t, skipped.Reasons)
		}
		assert.Contains(t, skippedNames, "Completo")
		assert.Contains(t, skippedNames, "Hamburguesa")

		// Seeding consumes stock like an order would: papas 10 - 5.
		assert.Equal(t, 5.0, currentStock(t, gdb, papas.ID))

		var menu models.Menu
		err = gdb.Preload("Recipe").Where("name = ?", "Papas fritas").First(&menu).Error
		assert.NoError(t, err)
		assert.Equal(t, 500.0, menu.Price)
		assert.Len(t, menu.Recipe, 1)
		assert.Equal(t, 5.0, menu.Recipe[0].Quantity)
	})

	t.Run("reports short stock distinctly from missing ingredients", func(t *testing.T) {
		gdb := setupTestDB(t)
		seedIngredient(t, gdb, "papas", 2) // needs 5

		report, err := engine.SeedDefaultCatalog(gdb)

		assert.NoError(t, err)
		assert.Empty(t, report.Created)

		var papasReasons []string
		for _, skipped := range report.Skipped {
			if skipped.Name == "Papas fritas" {
				papasReasons = skipped.Reasons
			}
		}
		assert.Len(t, papasReasons, 1)
		assert.Contains(t, papasReasons[0], "not enough stock")
	})

	t.Run("second run creates nothing and spends nothing", func(t *testing.T) {
		gdb := setupTestDB(t)
		papas := seedIngredient(t, gdb, "papas", 10)

		_, err := engine.SeedDefaultCatalog(gdb)
		assert.NoError(t, err)
		assert.Equal(t, 5.0, currentStock(t, gdb, papas.ID))

		report, err := engine.SeedDefaultCatalog(gdb)
		assert.NoError(t, err)
		assert.Empty(t, report.Created)
		assert.Equal(t, 5.0, currentStock(t, gdb, papas.ID))

		var count int64
		err = gdb.Model(&models.Menu{}).Where("name = ?", "Papas fritas").Count(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
