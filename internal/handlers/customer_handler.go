package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/db"
	"github.com/arriagadabarbara756-spec/Restaurante-proyecto3/internal/models"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

func CreateCustomer(c *gin.Context) {
	var req CustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.TrimSpace(req.Email)

	var existing models.Customer
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email is already registered"})
		return
	}

	customer := models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: req.Phone,
	}

	if err := db.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func ListCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := db.DB.Order("name").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func UpdateCustomer(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	email := strings.TrimSpace(req.Email)

	var other models.Customer
	if err := db.DB.Where("email = ? AND id <> ?", email, id).First(&other).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email is already registered to another customer"})
		return
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Email = email
	customer.Phone = req.Phone

	if err := db.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer refuses to remove a customer that owns orders.
func DeleteCustomer(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	var orderCount int64
	if err := db.DB.Model(&models.Order{}).Where("customer_id = ?", id).Count(&orderCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if orderCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete a customer with orders"})
		return
	}

	if err := db.DB.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
