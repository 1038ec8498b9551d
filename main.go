package main

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	config "github.com/arriagadabarbara756-spec/Restaurante-proyecto3/configs"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/handlers"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db.Init()

	// The session cookie carries the in-progress cart.
	gob.Register(engine.Cart{})

	srvCfg := config.LoadServerConfig()

	r := gin.Default()

	store := cookie.NewStore([]byte(srvCfg.SessionSecret))
	r.Use(sessions.Sessions("crunchsess", store))
	r.Use(requestID())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

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

	if err := r.Run(srvCfg.Addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}
