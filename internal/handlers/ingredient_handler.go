package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

type IngredientRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
	Stock float64 `json:"stock" binding:"required,gt=0"`
}

func CreateIngredient(c *gin.Context) {
	var req IngredientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient name must not be empty"})
		return
	}

	var existing models.Ingredient
	if err := db.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an ingredient with that name already exists"})
		return
	}

	ingredient := models.Ingredient{
		Name:  name,
		Unit:  strings.TrimSpace(req.Unit),
		Stock: req.Stock,
	}

	if err := db.DB.Create(&ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func ListIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := db.DB.Order("id asc").Find(&ingredients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func UpdateIngredient(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ingredient models.Ingredient
	if err := db.DB.First(&ingredient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}

	ingredient.Name = strings.ToLower(strings.TrimSpace(req.Name))
	ingredient.Unit = strings.TrimSpace(req.Unit)
	ingredient.Stock = req.Stock

	if err := db.DB.Save(&ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient removes the ingredient and any recipe lines referencing
// it in the same transaction, so menus never keep dangling entries.
func DeleteIngredient(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var ingredient models.Ingredient
	if err := db.DB.First(&ingredient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.RecipeLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}

// ImportIngredientsCSV merges a (name,unit,quantity) CSV into the inventory.
// The first row is a header, malformed rows are dropped, duplicate names in
// the file are summed, and quantities add onto existing stock. The unit from
// the file wins when an ingredient already exists.
func ImportIngredientsCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open uploaded file"})
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not parse CSV: " + err.Error()})
		return
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	type csvEntry struct {
		Unit     string
		Quantity float64
	}
	merged := make(map[string]csvEntry)
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		if len(row) != 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(row[0]))
		unit := strings.ToLower(strings.TrimSpace(row[1]))
		qty, convErr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if convErr != nil {
			qty = 0
		}

		entry, seen := merged[name]
		if !seen {
			order = append(order, name)
			entry.Unit = unit
		}
		entry.Quantity += qty
		merged[name] = entry
	}

	created, updated := 0, 0

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		for _, name := range order {
			entry := merged[name]
			if entry.Quantity <= 0 {
				continue
			}

			var ingredient models.Ingredient
			findErr := tx.Where("name = ?", name).First(&ingredient).Error
			switch {
			case findErr == nil:
				ingredient.Stock += entry.Quantity
				if entry.Unit != "" && ingredient.Unit != entry.Unit {
					ingredient.Unit = entry.Unit
				}
				if err := tx.Save(&ingredient).Error; err != nil {
					return err
				}
				updated++
			default:
				ingredient = models.Ingredient{Name: name, Unit: entry.Unit, Stock: entry.Quantity}
				if err := tx.Create(&ingredient).Error; err != nil {
					return err
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created, "updated": updated})
}

// CleanupOrphanRecipeLines removes recipe lines whose ingredient no longer
// exists (data predating the delete-time cascade). Returns the removed count.
func CleanupOrphanRecipeLines(c *gin.Context) {
	res := db.DB.
		Where("ingredient_id NOT IN (?)", db.DB.Model(&models.Ingredient{}).Select("id")).
		Delete(&models.RecipeLine{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": res.RowsAffected})
}
