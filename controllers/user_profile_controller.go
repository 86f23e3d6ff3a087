package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// GetMe returns the authenticated user's profile
func GetMe(c *gin.Context) {
	utils.LogInfo("GetMe called")
	user := c.MustGet("user").(models.User)

	profile := gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"phone_number": user.PhoneNumber,
		"account_type": user.AccountType,
		"created_at":   user.CreatedAt,
	}

	if user.AccountType == models.AccountTypeB2B {
		var app models.B2BApplication
		if err := config.DB.Where("user_id = ?", user.ID).First(&app).Error; err == nil {
			profile["business"] = gin.H{
				"business_name": app.BusinessName,
				"gstin":         app.GSTIN,
				"status":        app.Status,
			}
		}
	}

	utils.Success(c, "Profile retrieved successfully", gin.H{"user": profile})
}

// UpdateMeRequest represents the profile update body
type UpdateMeRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UpdateMe updates the authenticated user's profile
func UpdateMe(c *gin.Context) {
	utils.LogInfo("UpdateMe called")
	user := c.MustGet("user").(models.User)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Update profile failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != "" {
		if valid, msg := utils.ValidateName(req.FullName); !valid {
			utils.BadRequest(c, "Invalid name", msg)
			return
		}
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone_number"] = utils.NormalizePhone(req.Phone)
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update profile for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.LogInfo("Profile updated for user %s", user.ID)
	utils.Success(c, "Profile updated successfully", gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"full_name":    user.FullName,
			"phone_number": user.PhoneNumber,
		},
	})
}

// DeleteMe soft-deletes the authenticated user's account
func DeleteMe(c *gin.Context) {
	utils.LogInfo("DeleteMe called")
	user := c.MustGet("user").(models.User)

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.LogError("Failed to delete account for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}

	utils.LogInfo("Account deleted for user %s", user.ID)
	utils.Success(c, "Account deleted successfully", nil)
}
