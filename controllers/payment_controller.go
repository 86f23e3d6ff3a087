package controllers

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// CreatePaymentOrderRequest represents a standalone payment order body
type CreatePaymentOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// CreatePaymentOrder creates a Razorpay order for an arbitrary amount
func CreatePaymentOrder(c *gin.Context) {
	utils.LogInfo("CreatePaymentOrder called")

	var req CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create payment order failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Amount <= 0 {
		utils.BadRequest(c, "Amount must be greater than 0", nil)
		return
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	rzOrder, err := client.Order.Create(map[string]interface{}{
		"amount":          int(utils.Round2(req.Amount) * 100),
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order: %v", err)
		utils.InternalServerError(c, "Failed to create payment order", err.Error())
		return
	}

	utils.LogInfo("Razorpay order created: %v", rzOrder["id"])
	utils.Success(c, "Payment order created", gin.H{
		"razorpay_order_id": rzOrder["id"],
		"amount":            rzOrder["amount"],
		"currency":          rzOrder["currency"],
		"key":               os.Getenv("RAZORPAY_KEY"),
	})
}

// CreatePaymentForOrder creates a Razorpay order for an existing order and
// links it for later verification
func CreatePaymentForOrder(c *gin.Context) {
	utils.LogInfo("CreatePaymentForOrder called")
	user := c.MustGet("user").(models.User)
	orderID := c.Param("order_id")

	var order models.Order
	if err := config.DB.Where("id = ? AND email = ?", orderID, user.Email).First(&order).Error; err != nil {
		utils.LogError("Payment init failed - Order %s not found for %s", orderID, user.Email)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.BadRequest(c, "Order is already paid", nil)
		return
	}

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	rzOrder, err := client.Order.Create(map[string]interface{}{
		"amount":          int(order.Amount * 100),
		"currency":        "INR",
		"receipt":         "order_rcptid_" + order.ID,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to create payment order", err.Error())
		return
	}

	razorpayOrderID := fmt.Sprintf("%v", rzOrder["id"])
	if err := config.DB.Model(&order).Updates(map[string]interface{}{
		"payment_method":    "RAZORPAY",
		"razorpay_order_id": razorpayOrderID,
	}).Error; err != nil {
		utils.LogError("Failed to link Razorpay order for %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Razorpay order %s created for order %s", razorpayOrderID, orderID)
	utils.Success(c, "Payment initiated successfully", gin.H{
		"order_id":          order.ID,
		"razorpay_order_id": razorpayOrderID,
		"amount":            fmt.Sprintf("%.2f", order.Amount),
		"key":               os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyPaymentRequest represents the payment verification body
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment checks the gateway signature and marks the linked order paid
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Payment verification failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, os.Getenv("RAZORPAY_SECRET")) {
		utils.LogError("Payment verification failed - Signature mismatch for %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}

	var order models.Order
	if err := config.DB.Where("razorpay_order_id = ?", req.RazorpayOrderID).First(&order).Error; err != nil {
		utils.LogError("Payment verification failed - No order for Razorpay order %s", req.RazorpayOrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Updates(map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"payment_method": "RAZORPAY",
	}).Error; err != nil {
		utils.LogError("Failed to mark order %s paid: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Payment verified for order %s", order.ID)
	utils.Success(c, "Payment verified successfully", gin.H{
		"order_id":       order.ID,
		"payment_status": models.PaymentStatusPaid,
	})
}

// GetPaymentStatus returns the payment state of an order
func GetPaymentStatus(c *gin.Context) {
	utils.LogInfo("GetPaymentStatus called")
	user := c.MustGet("user").(models.User)
	orderID := c.Param("order_id")

	var order models.Order
	if err := config.DB.Where("id = ? AND email = ?", orderID, user.Email).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Payment status retrieved", gin.H{
		"order_id":          order.ID,
		"payment_status":    order.PaymentStatus,
		"payment_method":    order.PaymentMethod,
		"razorpay_order_id": order.RazorpayOrderID,
		"amount":            order.Amount,
	})
}
