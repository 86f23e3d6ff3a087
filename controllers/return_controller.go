package controllers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// CreateReturn files a return request for a delivered order. Supporting
// images come in as multipart uploads.
func CreateReturn(c *gin.Context) {
	utils.LogInfo("CreateReturn called")
	user := c.MustGet("user").(models.User)

	orderID := c.PostForm("order_id")
	productID := c.PostForm("product_id")
	reason := c.PostForm("reason")
	description := c.PostForm("description")

	if orderID == "" || reason == "" {
		utils.BadRequest(c, "Missing required fields", "order_id and reason are required")
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND email = ?", orderID, user.Email).First(&order).Error; err != nil {
		utils.LogError("Return request failed - Order %s not found for %s", orderID, user.Email)
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status != models.OrderStatusDelivered {
		utils.LogError("Return request rejected - Order %s not delivered (status %s)", orderID, order.Status)
		utils.BadRequest(c, "Only delivered orders can be returned", nil)
		return
	}

	var existing models.Return
	if err := config.DB.Where("order_id = ? AND user_email = ?", orderID, user.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "A return request already exists for this order", nil)
		return
	}

	var imagePaths []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			path, err := utils.SaveUploadedFile(file, "uploads/returns")
			if err != nil {
				utils.LogError("Return image upload failed: %v", err)
				utils.BadRequest(c, "Invalid image", err.Error())
				return
			}
			imagePaths = append(imagePaths, path)
		}
	}

	imagesJSON, _ := json.Marshal(imagePaths)
	ret := models.Return{
		OrderID:     orderID,
		UserEmail:   user.Email,
		ProductID:   productID,
		Reason:      reason,
		Description: utils.SanitizeString(description),
		Images:      string(imagesJSON),
		Status:      models.ReturnStatusPending,
	}
	if err := config.DB.Create(&ret).Error; err != nil {
		utils.LogError("Failed to create return for order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to create return request", nil)
		return
	}

	utils.LogInfo("Return request %d created for order %s", ret.ID, orderID)
	utils.Created(c, "Return request submitted", gin.H{"return": ret})
}

// GetUserReturns lists the authenticated user's return requests
func GetUserReturns(c *gin.Context) {
	utils.LogInfo("GetUserReturns called")
	user := c.MustGet("user").(models.User)

	var returns []models.Return
	if err := config.DB.Where("user_email = ?", user.Email).Order("created_at DESC").Find(&returns).Error; err != nil {
		utils.LogError("Failed to load returns for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to load returns", nil)
		return
	}

	utils.Success(c, "Returns retrieved successfully", gin.H{"returns": returns})
}

// GetReturnsByOrder lists return requests for one of the user's orders
func GetReturnsByOrder(c *gin.Context) {
	utils.LogInfo("GetReturnsByOrder called")
	user := c.MustGet("user").(models.User)
	orderID := c.Param("order_id")

	var returns []models.Return
	if err := config.DB.Where("order_id = ? AND user_email = ?", orderID, user.Email).Find(&returns).Error; err != nil {
		utils.LogError("Failed to load returns for order %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to load returns", nil)
		return
	}

	utils.Success(c, "Returns retrieved successfully", gin.H{"returns": returns})
}
