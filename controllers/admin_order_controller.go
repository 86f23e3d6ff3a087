package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// AdminListOrders lists all orders with optional status and segment filters
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if segment := c.Query("type"); segment != "" {
		query = query.Where("type = ?", segment)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to load orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Order("date DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to load orders: %v", err)
		utils.InternalServerError(c, "Failed to load orders", nil)
		return
	}

	utils.SendPaginatedResponse(c, gin.H{"orders": orders}, pagination)
}

// UpdateOrderStatusRequest represents the order status update body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its fulfillment states
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	valid := map[string]bool{
		models.OrderStatusProcessing: true,
		models.OrderStatusShipped:    true,
		models.OrderStatusDelivered:  true,
		models.OrderStatusCancelled:  true,
	}
	if !valid[req.Status] {
		utils.BadRequest(c, "Invalid status", "Status must be Processing, Shipped, Delivered or Cancelled")
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update order %s status: %v", orderID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %s status updated to %s", orderID, req.Status)
	utils.Success(c, "Order status updated", gin.H{"order": order})
}

// AdminListReturns lists return requests, oldest pending first
func AdminListReturns(c *gin.Context) {
	utils.LogInfo("AdminListReturns called")

	query := config.DB.Model(&models.Return{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var returns []models.Return
	if err := query.Order("created_at ASC").Find(&returns).Error; err != nil {
		utils.LogError("Failed to load returns: %v", err)
		utils.InternalServerError(c, "Failed to load returns", nil)
		return
	}

	utils.Success(c, "Returns retrieved successfully", gin.H{"returns": returns})
}

// ReviewReturnRequest represents the return decision body
type ReviewReturnRequest struct {
	Approve bool `json:"approve"`
}

// ReviewReturn approves or rejects a pending return request
func ReviewReturn(c *gin.Context) {
	utils.LogInfo("ReviewReturn called")
	returnID := c.Param("id")

	var req ReviewReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var ret models.Return
	if err := config.DB.Where("id = ?", returnID).First(&ret).Error; err != nil {
		utils.NotFound(c, "Return request not found")
		return
	}
	if ret.Status != models.ReturnStatusPending {
		utils.BadRequest(c, "Return request already reviewed", nil)
		return
	}

	status := models.ReturnStatusRejected
	if req.Approve {
		status = models.ReturnStatusApproved
	}
	if err := config.DB.Model(&ret).Update("status", status).Error; err != nil {
		utils.LogError("Failed to update return %s: %v", returnID, err)
		utils.InternalServerError(c, "Failed to update return", nil)
		return
	}

	utils.LogInfo("Return %s %s", returnID, status)
	utils.Success(c, "Return request updated", gin.H{"return": ret})
}
