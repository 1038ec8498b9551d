package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/charts"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

// SalesByDateChart plots the summed order totals per day as a PNG.
func SalesByDateChart(c *gin.Context) {
	var rows []struct {
		Day   string
		Total float64
	}
	err := db.DB.
		Model(&models.Order{}).
		Select("DATE(placed_at) as day, SUM(total) as total").
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sales data available"})
		return
	}

	points := make([]charts.DailySales, 0, len(rows))
	for _, row := range rows {
		day, parseErr := time.Parse("2006-01-02", row.Day)
		if parseErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected date value: " + row.Day})
			return
		}
		points = append(points, charts.DailySales{Day: day, Total: row.Total})
	}

	png, err := charts.SalesByDate(points)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// TopMenusChart plots the best-selling menus by summed line quantity.
func TopMenusChart(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if _, err := fmt.Sscan(raw, &limit); err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}

	var rows []struct {
		Name     string
		Quantity float64
	}
	err := db.DB.
		Model(&models.OrderLine{}).
		Select("menus.name as name, SUM(order_lines.quantity) as quantity").
		Joins("JOIN menus ON menus.id = order_lines.menu_id").
		Group("menus.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no order data available"})
		return
	}

	values := make([]charts.NamedValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, charts.NamedValue{Name: row.Name, Value: row.Quantity})
	}

	png, err := charts.Bars("Menús más vendidos", values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// IngredientUsageChart plots how much of each ingredient all placed orders
// have consumed, via recipe quantity × order line quantity.
func IngredientUsageChart(c *gin.Context) {
	var rows []struct {
		Name     string
		Quantity float64
	}
	err := db.DB.
		Model(&models.OrderLine{}).
		Select("ingredients.name as name, SUM(recipe_lines.quantity * order_lines.quantity) as quantity").
		Joins("JOIN recipe_lines ON recipe_lines.menu_id = order_lines.menu_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_lines.ingredient_id").
		Group("ingredients.name").
		Order("quantity DESC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no ingredient usage data available"})
		return
	}

	values := make([]charts.NamedValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, charts.NamedValue{Name: row.Name, Value: row.Quantity})
	}

	png, err := charts.Bars("Uso de ingredientes", values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
