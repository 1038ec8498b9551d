package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

// The in-progress cart lives in the session cookie, never in the database.
const cartSessionKey = "cart"

func cartFromSession(sess sessions.Session) engine.Cart {
	if stored, ok := sess.Get(cartSessionKey).(engine.Cart); ok {
		cart := make(engine.Cart, len(stored))
		for menuID, qty := range stored {
			cart[menuID] = qty
		}
		return cart
	}
	return engine.Cart{}
}

func saveCart(c *gin.Context, sess sessions.Session, cart engine.Cart) bool {
	sess.Set(cartSessionKey, cart)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return false
	}
	return true
}

type AddCartItemRequest struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// AddCartItem admits a menu into the cart only up to the stock-bounded cap,
// so the user hears about shortages before trying to place the order.
func AddCartItem(c *gin.Context) {
	var req AddCartItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := sessions.Default(c)
	cart := cartFromSession(sess)

	addable, err := engine.MaxAddable(db.DB, req.MenuID, cart)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if req.Quantity > addable {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "not enough stock to add that many units",
			"max_addable": addable,
		})
		return
	}

	cart[req.MenuID] += req.Quantity
	if !saveCart(c, sess, cart) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "added to cart", "cart": cart})
}

type cartLine struct {
	MenuID    uint    `json:"menu_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

func GetCart(c *gin.Context) {
	sess := sessions.Default(c)
	cart := cartFromSession(sess)

	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []cartLine{}, "total": 0})
		return
	}

	ids := make([]uint, 0, len(cart))
	for menuID := range cart {
		ids = append(ids, menuID)
	}

	var menus []models.Menu
	if err := db.DB.Where("id IN ?", ids).Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lines := make([]cartLine, 0, len(menus))
	var total float64
	for _, menu := range menus {
		qty := cart[menu.ID]
		subtotal := menu.Price * float64(qty)
		total += subtotal
		lines = append(lines, cartLine{
			MenuID:    menu.ID,
			Name:      menu.Name,
			Quantity:  qty,
			UnitPrice: menu.Price,
			Subtotal:  subtotal,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].MenuID < lines[j].MenuID })

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

func RemoveCartItem(c *gin.Context) {
	menuID, ok := uintParam(c, "menuID")
	if !ok {
		return
	}

	sess := sessions.Default(c)
	cart := cartFromSession(sess)
	delete(cart, menuID)

	if !saveCart(c, sess, cart) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from cart", "cart": cart})
}

func ClearCart(c *gin.Context) {
	sess := sessions.Default(c)
	if !saveCart(c, sess, engine.Cart{}) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

type CheckoutRequest struct {
	CustomerID  uint       `json:"customer_id" binding:"required"`
	Description string     `json:"description"`
	PlacedAt    *time.Time `json:"placed_at"`
}

// Checkout places the session cart as an order and clears it on success.
func Checkout(c *gin.Context) {
	var req CheckoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var placedAt time.Time
	if req.PlacedAt != nil {
		if req.PlacedAt.After(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order date cannot be in the future"})
			return
		}
		placedAt = *req.PlacedAt
	}

	sess := sessions.Default(c)
	cart := cartFromSession(sess)

	order, err := engine.PlaceOrder(db.DB, req.CustomerID, cart, req.Description, placedAt)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if !saveCart(c, sess, engine.Cart{}) {
		return
	}

	notifyOrderPlaced(order)

	c.JSON(http.StatusCreated, gin.H{"message": "order created successfully", "order": order})
}
