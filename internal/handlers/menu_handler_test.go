package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

func TestCreateMenu(t *testing.T) {

	t.Run("creates a menu with its recipe", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		createIngredient(t, testDB, "pan", 10)
		createIngredient(t, testDB, "vienesa", 10)

		payload := map[string]interface{}{
			"name":        "Completo",
			"description": "Completo italiano",
			"price":       1800,
			"recipe": map[string]float64{
				"1": 1,
				"2": 1,
			},
		}
		recorder := performRequest(router, "POST", "/api/menus", payload, "")

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var menu models.Menu
		decodeBody(t, recorder, &menu)
		assert.Equal(t, "Completo", menu.Name)
		assert.Len(t, menu.Recipe, 2)

		var lineCount int64
		testDB.Model(&models.RecipeLine{}).Where("menu_id = ?", menu.ID).Count(&lineCount)
		assert.Equal(t, int64(2), lineCount)
	})

	t.Run("rejects a duplicate name case-insensitively", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		pan := createIngredient(t, testDB, "pan", 10)
		createMenu(t, testDB, "Completo", 1800, map[uint]float64{pan.ID: 1})

		payload := map[string]interface{}{
			"name":   "completo",
			"price":  2000,
			"recipe": map[string]float64{"1": 1},
		}
		recorder := performRequest(router, "POST", "/api/menus", payload, "")

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("rejects unknown recipe ingredients", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		payload := map[string]interface{}{
			"name":   "Completo",
			"price":  1800,
			"recipe": map[string]float64{"99": 1},
		}
		recorder := performRequest(router, "POST", "/api/menus", payload, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "do not exist")
	})

	t.Run("rejects non-positive recipe quantities", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		createIngredient(t, testDB, "pan", 10)

		payload := map[string]interface{}{
			"name":   "Completo",
			"price":  1800,
			"recipe": map[string]float64{"1": -2},
		}
		recorder := performRequest(router, "POST", "/api/menus", payload, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("allows an empty recipe", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		payload := map[string]interface{}{
			"name":   "Pepsi",
			"price":  1100,
			"recipe": map[string]float64{},
		}
		recorder := performRequest(router, "POST", "/api/menus", payload, "")

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

func TestGetMenu(t *testing.T) {

	t.Run("returns the menu with its recipe and ingredients", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		pan := createIngredient(t, testDB, "pan", 10)
		createMenu(t, testDB, "Completo", 1800, map[uint]float64{pan.ID: 2})

		recorder := performRequest(router, "GET", "/api/menus/1", nil, "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var menu models.Menu
		decodeBody(t, recorder, &menu)
		assert.Equal(t, "Completo", menu.Name)
		assert.Len(t, menu.Recipe, 1)
		assert.NotNil(t, menu.Recipe[0].Ingredient)
		assert.Equal(t, "pan", menu.Recipe[0].Ingredient.Name)
	})

	t.Run("unknown menu returns 404", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		recorder := performRequest(router, "GET", "/api/menus/8", nil, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestUpdateMenu(t *testing.T) {
	router, testDB := setupTestRouter(t)
	pan := createIngredient(t, testDB, "pan", 10)
	tomate := createIngredient(t, testDB, "tomate", 5)
	createMenu(t, testDB, "Completo", 1800, map[uint]float64{pan.ID: 2})

	payload := map[string]interface{}{
		"name":  "Completo Italiano",
		"price": 2200,
		"recipe": map[string]float64{
			"2": 0.5,
		},
	}
	recorder := performRequest(router, "PUT", "/api/menus/1", payload, "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var menu models.Menu
	decodeBody(t, recorder, &menu)
	assert.Equal(t, "Completo Italiano", menu.Name)
	assert.Equal(t, 2200.0, menu.Price)
	assert.Len(t, menu.Recipe, 1)
	assert.Equal(t, tomate.ID, menu.Recipe[0].IngredientID)

	var lineCount int64
	testDB.Model(&models.RecipeLine{}).Where("menu_id = ?", menu.ID).Count(&lineCount)
	assert.Equal(t, int64(1), lineCount)
}

func TestDeleteMenu(t *testing.T) {

	t.Run("deletes the menu and its recipe lines", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		pan := createIngredient(t, testDB, "pan", 10)
		createMenu(t, testDB, "Completo", 1800, map[uint]float64{pan.ID: 2})

		recorder := performRequest(router, "DELETE", "/api/menus/1", nil, "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var menuCount, lineCount int64
		testDB.Model(&models.Menu{}).Count(&menuCount)
		testDB.Model(&models.RecipeLine{}).Count(&lineCount)
		assert.Equal(t, int64(0), menuCount)
		assert.Equal(t, int64(0), lineCount)
	})

	t.Run("refuses to delete a menu that has orders", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		customer := createCustomer(t, testDB, "Ana", "ana@example.com")
		menu := createMenu(t, testDB, "Completo", 1800, nil)

		order := models.Order{CustomerID: customer.ID, Total: 1800}
		assert.NoError(t, testDB.Create(&order).Error)
		line := models.OrderLine{OrderID: order.ID, MenuID: menu.ID, Quantity: 1, UnitPrice: 1800}
		assert.NoError(t, testDB.Create(&line).Error)

		recorder := performRequest(router, "DELETE", "/api/menus/1", nil, "")

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var menuCount int64
		testDB.Model(&models.Menu{}).Count(&menuCount)
		assert.Equal(t, int64(1), menuCount)
	})
}

func TestSeedDefaultMenus(t *testing.T) {
	router, testDB := setupTestRouter(t)
	createIngredient(t, testDB, "papas", 10)

	recorder := performRequest(router, "POST", "/api/menus/seed-defaults", nil, "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var report struct {
		Created []string `json:"created"`
		Skipped []struct {
			Name    string   `json:"name"`
			Reasons []string `json:"reasons"`
		} `json:"skipped"`
	}
	decodeBody(t, recorder, &report)
	assert.Contains(t, report.Created, "Papas fritas")
	assert.NotEmpty(t, report.Skipped)
}

func TestMenuCardPDF(t *testing.T) {

	t.Run("returns a PDF when menus exist", func(t *testing.T) {
		router, testDB := setupTestRouter(t)
		createMenu(t, testDB, "Completo", 1800, nil)
		createMenu(t, testDB, "Pepsi", 1100, nil)

		recorder := performRequest(router, "GET", "/api/menus/card", nil, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "carta.pdf")
		assert.True(t, bytesHavePrefix(recorder.Body.Bytes(), "%PDF"))
	})

	t.Run("no menus returns 404", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		recorder := performRequest(router, "GET", "/api/menus/card", nil, "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func bytesHavePrefix(data []byte, prefix string) bool {
	return len(data) >= len(prefix) && string(data[:len(prefix)]) == prefix
}
