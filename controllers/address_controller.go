package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// AddressRequest represents the address create/update body
type AddressRequest struct {
	Label        string `json:"label"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
}

// GetAddresses lists the user's saved addresses
func GetAddresses(c *gin.Context) {
	utils.LogInfo("GetAddresses called")
	user := c.MustGet("user").(models.User)

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", user.ID).Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to load addresses for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load addresses", nil)
		return
	}

	utils.Success(c, "Addresses retrieved successfully", gin.H{"addresses": addresses})
}

// CreateAddress saves a new address
func CreateAddress(c *gin.Context) {
	utils.LogInfo("CreateAddress called")
	user := c.MustGet("user").(models.User)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create address failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if errs := utils.ValidateAddressFields(req.AddressLine1, req.AddressLine2, req.City, req.State, req.Country, req.Pincode); len(errs) > 0 {
		utils.LogError("Create address failed - Validation errors for user %s", user.ID)
		utils.BadRequest(c, "Invalid address", gin.H{"errors": errs})
		return
	}

	addr := models.Address{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Label:        req.Label,
		FullName:     req.FullName,
		Phone:        utils.NormalizePhone(req.Phone),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Country:      req.Country,
		IsDefault:    req.IsDefault,
	}
	if addr.Country == "" {
		addr.Country = "India"
	}

	// First address becomes the default
	var count int64
	config.DB.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count)
	if count == 0 {
		addr.IsDefault = true
	}

	tx := config.DB.Begin()
	if addr.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear default address for user %s: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to save address", nil)
			return
		}
	}
	if err := tx.Create(&addr).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create address for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit address for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}

	utils.LogInfo("Address created for user %s", user.ID)
	utils.Created(c, "Address saved successfully", gin.H{"address": addr})
}

// UpdateAddress updates an existing address
func UpdateAddress(c *gin.Context) {
	utils.LogInfo("UpdateAddress called")
	user := c.MustGet("user").(models.User)
	addressID := c.Param("id")

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Update address failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if errs := utils.ValidateAddressFields(req.AddressLine1, req.AddressLine2, req.City, req.State, req.Country, req.Pincode); len(errs) > 0 {
		utils.LogError("Update address failed - Validation errors for user %s", user.ID)
		utils.BadRequest(c, "Invalid address", gin.H{"errors": errs})
		return
	}

	var addr models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&addr).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	tx := config.DB.Begin()
	if req.IsDefault && !addr.IsDefault {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear default address for user %s: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update address", nil)
			return
		}
	}

	if err := tx.Model(&addr).Updates(map[string]interface{}{
		"label":         req.Label,
		"full_name":     req.FullName,
		"phone":         utils.NormalizePhone(req.Phone),
		"address_line1": req.AddressLine1,
		"address_line2": req.AddressLine2,
		"city":          req.City,
		"state":         req.State,
		"pincode":       req.Pincode,
		"is_default":    req.IsDefault || addr.IsDefault,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update address %s: %v", addressID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit address update %s: %v", addressID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	utils.LogInfo("Address %s updated for user %s", addressID, user.ID)
	utils.Success(c, "Address updated successfully", gin.H{"address": addr})
}

// DeleteAddress removes an address. If the default is removed, the most
// recent remaining address becomes the default.
func DeleteAddress(c *gin.Context) {
	utils.LogInfo("DeleteAddress called")
	user := c.MustGet("user").(models.User)
	addressID := c.Param("id")

	var addr models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&addr).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	if err := config.DB.Delete(&addr).Error; err != nil {
		utils.LogError("Failed to delete address %s: %v", addressID, err)
		utils.InternalServerError(c, "Failed to delete address", nil)
		return
	}

	if addr.IsDefault {
		var next models.Address
		if err := config.DB.Where("user_id = ?", user.ID).Order("created_at DESC").First(&next).Error; err == nil {
			if err := config.DB.Model(&next).Update("is_default", true).Error; err != nil {
				utils.LogError("Failed to promote new default address for user %s: %v", user.ID, err)
			}
		}
	}

	utils.LogInfo("Address %s deleted for user %s", addressID, user.ID)
	utils.Success(c, "Address deleted successfully", nil)
}
