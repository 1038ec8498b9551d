package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/documents"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

type MenuRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price" binding:"required,gt=0"`
	Recipe      map[uint]float64 `json:"recipe" binding:"required"`
}

func CreateMenu(c *gin.Context) {
	var req MenuRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu name must not be empty"})
		return
	}
	for ingredientID, qty := range req.Recipe {
		if qty <= 0 {
			errorMessage := fmt.Sprintf("recipe quantity for ingredient %d must be positive", ingredientID)
			c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage})
			return
		}
	}

	var existing models.Menu
	if err := db.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a menu with that name already exists"})
		return
	}

	ingredientIDs := make([]uint, 0, len(req.Recipe))
	for id := range req.Recipe {
		ingredientIDs = append(ingredientIDs, id)
	}
	if len(ingredientIDs) > 0 {
		var count int64
		if err := db.DB.Model(&models.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if count != int64(len(ingredientIDs)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "some recipe ingredients do not exist"})
			return
		}
	}

	menu := models.Menu{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&menu).Error; err != nil {
			return err
		}
		for ingredientID, qty := range req.Recipe {
			line := models.RecipeLine{
				MenuID:       menu.ID,
				IngredientID: ingredientID,
				Quantity:     qty,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Preload("Recipe.Ingredient").First(&menu, menu.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve menu with recipe"})
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// ListMenus is the light listing used by the purchase flow: no recipes.
func ListMenus(c *gin.Context) {
	var menus []models.Menu
	if err := db.DB.Order("name").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, menus)
}

func GetMenu(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var menu models.Menu
	if err := db.DB.Preload("Recipe.Ingredient").First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	c.JSON(http.StatusOK, menu)
}

// UpdateMenu replaces the menu's fields and its whole recipe. Lines with a
// non-positive quantity are dropped rather than rejected.
func UpdateMenu(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := db.DB.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	menu.Name = strings.TrimSpace(req.Name)
	menu.Description = strings.TrimSpace(req.Description)
	menu.Price = req.Price

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&menu).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.RecipeLine{}).Error; err != nil {
			return err
		}
		for ingredientID, qty := range req.Recipe {
			if qty <= 0 {
				continue
			}
			line := models.RecipeLine{
				MenuID:       menu.ID,
				IngredientID: ingredientID,
				Quantity:     qty,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Preload("Recipe.Ingredient").First(&menu, menu.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve menu with recipe"})
		return
	}

	c.JSON(http.StatusOK, menu)
}

// DeleteMenu refuses to remove a menu referenced by any order line.
func DeleteMenu(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var menu models.Menu
	if err := db.DB.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	var refCount int64
	if err := db.DB.Model(&models.OrderLine{}).Where("menu_id = ?", id).Count(&refCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if refCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete a menu that has orders"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&models.RecipeLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&menu).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
}

func SeedDefaultMenus(c *gin.Context) {
	report, err := engine.SeedDefaultCatalog(db.DB)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// MenuCardPDF renders the printable carta with every menu and its price.
func MenuCardPDF(c *gin.Context) {
	var menus []models.Menu
	if err := db.DB.Order("name").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(menus) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menus to print"})
		return
	}

	entries := make([]documents.MenuEntry, 0, len(menus))
	for _, menu := range menus {
		entries = append(entries, documents.MenuEntry{Name: menu.Name, Price: menu.Price})
	}

	pdf, err := documents.RenderMenuCard(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="carta.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
