package handlers_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/handlers"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

func init() {
	gob.Register(engine.Cart{})
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}

	err = testDB.AutoMigrate(
		&models.Customer{},
		&models.Ingredient{},
		&models.Menu{},
		&models.RecipeLine{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	originalDB := db.DB
	db.SetTestDB(testDB)

	r := gin.New()
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte("test-secret-key"))
	r.Use(sessions.Sessions("crunchsess", store))

	api := r.Group("/api")
	{
		api.POST("/customers", handlers.CreateCustomer)
		api.GET("/customers", handlers.ListCustomers)
		api.PUT("/customers/:id", handlers.UpdateCustomer)
		api.DELETE("/customers/:id", handlers.DeleteCustomer)
		api.GET("/customers/:id/orders", handlers.ListOrdersByCustomer)

		api.POST("/ingredients", handlers.CreateIngredient)
		api.GET("/ingredients", handlers.ListIngredients)
		api.PUT("/ingredients/:id", handlers.UpdateIngredient)
		api.DELETE("/ingredients/:id", handlers.DeleteIngredient)
		api.POST("/ingredients/import", handlers.ImportIngredientsCSV)
		api.POST("/ingredients/cleanup-orphan-recipes", handlers.CleanupOrphanRecipeLines)

		api.POST("/menus", handlers.CreateMenu)
		api.GET("/menus", handlers.ListMenus)
		api.GET("/menus/card", handlers.MenuCardPDF)
		api.POST("/menus/seed-defaults", handlers.SeedDefaultMenus)
		api.GET("/menus/:id", handlers.GetMenu)
		api.PUT("/menus/:id", handlers.UpdateMenu)
		api.DELETE("/menus/:id", handlers.DeleteMenu)

		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/items", handlers.AddCartItem)
		api.DELETE("/cart/items/:menuID", handlers.RemoveCartItem)
		api.DELETE("/cart", handlers.ClearCart)
		api.POST("/cart/checkout", handlers.Checkout)

		api.POST("/orders", handlers.PlaceOrder)
		api.GET("/orders", handlers.ListOrders)
		api.DELETE("/orders/:id", handlers.DeleteOrder)
		api.GET("/orders/:id/receipt", handlers.OrderReceiptPDF)

		api.GET("/reports/sales-by-date", handlers.SalesByDateChart)
		api.GET("/reports/top-menus", handlers.TopMenusChart)
		api.GET("/reports/ingredient-usage", handlers.IngredientUsageChart)
	}

	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	return r, testDB
}

// performRequest sends a JSON request; sessionCookie carries the cart between
// calls (pass the value returned by a previous response's Set-Cookie).
func performRequest(router *gin.Engine, method, path string, body interface{}, sessionCookie string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func createIngredient(t *testing.T, testDB *gorm.DB, name string, stock float64) models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, Unit: "unidad", Stock: stock}
	if err := testDB.Create(&ingredient).Error; err != nil {
		t.Fatalf("failed to seed ingredient: %v", err)
	}
	return ingredient
}

func createCustomer(t *testing.T, testDB *gorm.DB, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Email: email}
	if err := testDB.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func createMenu(t *testing.T, testDB *gorm.DB, name string, price float64, recipe map[uint]float64) models.Menu {
	t.Helper()
	menu := models.Menu{Name: name, Price: price}
	if err := testDB.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	for ingredientID, qty := range recipe {
		line := models.RecipeLine{MenuID: menu.ID, IngredientID: ingredientID, Quantity: qty}
		if err := testDB.Create(&line).Error; err != nil {
			t.Fatalf("failed to seed recipe line: %v", err)
		}
	}
	return menu
}
