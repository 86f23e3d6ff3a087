package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// AdminForgotPasswordRequest represents the employee reset initiation body
type AdminForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AdminForgotPassword emails a reset OTP to an employee. The OTP is
// persisted on the employee row so any instance can complete the reset.
func AdminForgotPassword(c *gin.Context) {
	utils.LogInfo("AdminForgotPassword called")

	var req AdminForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin forgot password failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		utils.LogError("Admin forgot password - Employee not found: %s", req.Email)
		// Same response either way so the endpoint can't be used to probe emails
		utils.Success(c, "If the email is registered, a reset code has been sent", nil)
		return
	}

	otp := utils.GenerateOTP()
	expires := time.Now().Add(10 * time.Minute)
	if err := config.DB.Model(&employee).Updates(map[string]interface{}{
		"reset_otp":         otp,
		"reset_otp_expires": expires,
	}).Error; err != nil {
		utils.LogError("Failed to store reset OTP for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send reset code", nil)
		return
	}

	if err := utils.SendResetOTPEmail(employee.Email, otp); err != nil {
		utils.LogError("Failed to email reset OTP to %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send reset code", nil)
		return
	}

	utils.LogInfo("Reset OTP sent to employee %s", req.Email)
	utils.Success(c, "If the email is registered, a reset code has been sent", nil)
}

// AdminResetPasswordOTPRequest represents the OTP reset completion body
type AdminResetPasswordOTPRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OTP             string `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// AdminResetPasswordOTP completes an employee password reset using the
// emailed OTP
func AdminResetPasswordOTP(c *gin.Context) {
	utils.LogInfo("AdminResetPasswordOTP called")

	var req AdminResetPasswordOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin OTP reset failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if valid, msg := utils.ValidateConfirmPassword(req.NewPassword, req.ConfirmPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var employee models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}

	if employee.ResetOTP == "" || employee.ResetOTP != req.OTP {
		utils.LogError("Admin OTP reset failed - Invalid OTP for %s", req.Email)
		utils.BadRequest(c, "Invalid OTP", "The code is incorrect")
		return
	}
	if employee.ResetOTPExpires == nil || time.Now().After(*employee.ResetOTPExpires) {
		utils.LogError("Admin OTP reset failed - Expired OTP for %s", req.Email)
		utils.BadRequest(c, "OTP expired", "Please request a new reset code")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Admin OTP reset - Could not hash password: %v", err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	if err := config.DB.Model(&employee).Updates(map[string]interface{}{
		"password":          hash,
		"reset_otp":         "",
		"reset_otp_expires": nil,
	}).Error; err != nil {
		utils.LogError("Failed to reset password for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	utils.LogInfo("Employee password reset completed: %s", req.Email)
	utils.Success(c, "Password reset successfully", nil)
}

// AdminDirectResetRequest represents an admin-initiated reset body
type AdminDirectResetRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AdminDirectReset lets an admin set another employee's password directly
func AdminDirectReset(c *gin.Context) {
	utils.LogInfo("AdminDirectReset called")

	var req AdminDirectResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin direct reset failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var employee models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Admin direct reset - Could not hash password: %v", err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	if err := config.DB.Model(&employee).Update("password", hash).Error; err != nil {
		utils.LogError("Failed to reset password for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	utils.LogInfo("Password reset for employee %s by admin", req.Email)
	utils.Success(c, "Password reset successfully", nil)
}
