package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/documents"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/engine"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/notifier"
)

type PlaceOrderRequest struct {
	CustomerID  uint         `json:"customer_id" binding:"required"`
	Items       map[uint]int `json:"items" binding:"required"`
	Description string       `json:"description"`
	PlacedAt    *time.Time   `json:"placed_at"`
}

// PlaceOrder is the direct engine surface: a customer, a menu→quantity cart
// and an optional timestamp. Order dates may not lie in the future; that
// guard belongs here, the engine accepts any instant.
func PlaceOrder(c *gin.Context) {

	var req PlaceOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
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

	order, err := engine.PlaceOrder(db.DB, req.CustomerID, engine.Cart(req.Items), req.Description, placedAt)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	notifyOrderPlaced(order)

	c.JSON(http.StatusCreated, gin.H{"message": "order created successfully", "order": order})
}

// notifyOrderPlaced fires the confirmation email and SMS without blocking
// the response; both are best-effort.
func notifyOrderPlaced(order *models.Order) {

	go func(order models.Order) {
		if order.Customer.Email == "" {
			return
		}
		if err := notifier.SendOrderEmail(order.Customer.Email, order.Customer.Name, order.ID, order.Total); err != nil {
			zap.L().Warn("failed to send order email",
				zap.Uint("order_id", order.ID),
				zap.String("email", order.Customer.Email),
				zap.Error(err))
		}
	}(*order)

	go func(order models.Order) {
		if order.Customer.Phone == "" {
			return
		}
		if err := notifier.SendOrderSMS(order.Customer.Phone, order.ID, order.Total); err != nil {
			zap.L().Warn("failed to send order SMS",
				zap.Uint("order_id", order.ID),
				zap.String("phone", order.Customer.Phone),
				zap.Error(err))
		}
	}(*order)
}

func ListOrders(c *gin.Context) {
	var orders []models.Order
	err := db.DB.
		Preload("Customer").
		Preload("Items.Menu").
		Order("placed_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func ListOrdersByCustomer(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var orders []models.Order
	err := db.DB.
		Preload("Customer").
		Preload("Items.Menu").
		Where("customer_id = ?", id).
		Order("placed_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// DeleteOrder removes the order record and its lines. Consumed stock is NOT
// restored: a deleted order corrects the books, it does not return food.
func DeleteOrder(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// OrderReceiptPDF renders the boleta for one order. The 19% IVA shown on the
// document is presentation only; the stored total never includes it.
func OrderReceiptPDF(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := db.DB.Preload("Items.Menu").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	items := make([]documents.ReceiptItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, documents.ReceiptItem{
			Name:      line.Menu.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.UnitPrice * float64(line.Quantity),
		})
	}

	pdf, err := documents.RenderReceipt(items, order.PlacedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="boleta_`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
