package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// OrderItem is one line item in a placed order
type OrderItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

// PlaceOrderRequest represents the order placement body
type PlaceOrderRequest struct {
	Items         []OrderItem `json:"items" binding:"required"`
	Address       string      `json:"address" binding:"required"`
	PaymentMethod string      `json:"payment_method"`
}

// PlaceOrder creates an order. Prices come from the catalog at placement
// time, using the caller's segment pricing.
func PlaceOrder(c *gin.Context) {
	utils.LogInfo("PlaceOrder called")
	user := c.MustGet("user").(models.User)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Place order failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "Order must contain at least one item", nil)
		return
	}

	segment := models.SegmentConsumer
	if user.AccountType == models.AccountTypeB2B {
		segment = models.SegmentBusiness
	}

	now := time.Now()
	var amount float64
	itemsCount := 0
	for i := range req.Items {
		item := &req.Items[i]
		if item.Quantity < 1 {
			utils.BadRequest(c, "Invalid quantity", "Quantity must be at least 1")
			return
		}

		var product models.Product
		if err := config.DB.Where("id = ?", item.ProductID).First(&product).Error; err != nil {
			utils.LogError("Place order failed - Product not found: %s", item.ProductID)
			utils.NotFound(c, "Product not found: "+item.ProductID)
			return
		}
		if product.Status != models.ProductStatusPublished {
			utils.BadRequest(c, "Product not available", product.Name)
			return
		}
		if product.Stock < item.Quantity {
			utils.BadRequest(c, "Insufficient stock", product.Name)
			return
		}

		current, _, _ := utils.PricingForSegment(&product, segment, now)
		item.Name = product.Name
		item.Price = current
		amount += current * float64(item.Quantity)
		itemsCount += item.Quantity
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		utils.LogError("Place order failed - Could not serialize items: %v", err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	order := models.Order{
		ID:            "ord_" + uuid.New().String()[:8],
		Customer:      user.FullName,
		Email:         user.Email,
		Phone:         user.PhoneNumber,
		Amount:        utils.Round2(amount),
		Items:         string(itemsJSON),
		ItemsCount:    itemsCount,
		Type:          segment,
		Status:        models.OrderStatusProcessing,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address,
		Date:          now,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}
	for _, item := range req.Items {
		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to decrement stock for product %s: %v", item.ProductID, err)
			utils.InternalServerError(c, "Failed to place order", nil)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}

	utils.LogInfo("Order %s placed by %s, amount %.2f", order.ID, user.Email, order.Amount)
	utils.Created(c, "Order placed successfully", gin.H{"order": order})
}

// GetOrdersByUser lists orders for an email address. Users may only see
// their own orders.
func GetOrdersByUser(c *gin.Context) {
	utils.LogInfo("GetOrdersByUser called")
	user := c.MustGet("user").(models.User)
	email := c.Param("email")

	if email != user.Email {
		utils.LogError("User %s attempted to read orders for %s", user.Email, email)
		utils.Forbidden(c, "You can only view your own orders")
		return
	}

	var orders []models.Order
	if err := config.DB.Where("email = ?", email).Order("date DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to load orders for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to load orders", nil)
		return
	}

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}
