package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// SendVerificationRequest represents the phone verification request body
type SendVerificationRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// SendVerification sends a phone verification OTP
func SendVerification(c *gin.Context) {
	utils.LogInfo("SendVerification called")

	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Send verification failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	phone := utils.NormalizePhone(req.Phone)
	otp := utils.GenerateOTP()

	if err := otpStore.Put(c.Request.Context(), phone, utils.OTPEntry{OTP: otp}, otpTTL); err != nil {
		utils.LogError("Failed to store OTP for %s: %v", phone, err)
		utils.InternalServerError(c, "Failed to send verification code", nil)
		return
	}

	if err := utils.SendVerificationSMS(phone, otp); err != nil {
		utils.LogError("Failed to send verification SMS to %s: %v", phone, err)
		utils.InternalServerError(c, "Failed to send verification code", nil)
		return
	}

	utils.LogInfo("Verification OTP sent to %s", phone)
	utils.Success(c, "Verification code sent", gin.H{"phone": phone})
}

// VerifyOTPRequest represents the OTP verification request body
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyOTP checks a phone verification OTP and marks the phone verified
func VerifyOTP(c *gin.Context) {
	utils.LogInfo("VerifyOTP called")

	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("OTP verification failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	phone := utils.NormalizePhone(req.Phone)
	entry, found, err := otpStore.Get(c.Request.Context(), phone)
	if err != nil {
		utils.LogError("OTP lookup failed for %s: %v", phone, err)
		utils.InternalServerError(c, "Verification failed", nil)
		return
	}
	if !found {
		utils.LogError("OTP verification failed - No pending OTP for %s", phone)
		utils.BadRequest(c, "OTP expired", "No verification code found. Please request a new one.")
		return
	}
	if entry.OTP != req.OTP {
		utils.LogError("OTP verification failed - Invalid OTP for %s", phone)
		utils.BadRequest(c, "Invalid OTP", "The code you entered is incorrect")
		return
	}

	entry.Verified = true
	if err := otpStore.Put(c.Request.Context(), phone, entry, otpTTL); err != nil {
		utils.LogError("Failed to mark OTP verified for %s: %v", phone, err)
		utils.InternalServerError(c, "Verification failed", nil)
		return
	}

	utils.LogInfo("Phone verified: %s", phone)
	utils.Success(c, "Phone verified successfully", gin.H{"phone": phone, "verified": true})
}

// ForgotPasswordRequest represents the password reset initiation body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// RequestPasswordReset sends a reset OTP when email and phone match an account
func RequestPasswordReset(c *gin.Context) {
	utils.LogInfo("RequestPasswordReset called")

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset request failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	phone := utils.NormalizePhone(req.Phone)

	var user models.User
	if err := config.DB.Where("email = ? AND phone_number = ?", req.Email, phone).First(&user).Error; err != nil {
		utils.LogError("Password reset request failed - No account for %s / %s", req.Email, phone)
		utils.NotFound(c, "No account found with this email and phone")
		return
	}

	otp := utils.GenerateOTP()
	if err := otpStore.Put(c.Request.Context(), "reset_"+phone, utils.OTPEntry{OTP: otp}, otpTTL); err != nil {
		utils.LogError("Failed to store reset OTP for %s: %v", phone, err)
		utils.InternalServerError(c, "Failed to send reset code", nil)
		return
	}

	if err := utils.SendPasswordResetSMS(phone, otp); err != nil {
		utils.LogError("Failed to send reset SMS to %s: %v", phone, err)
		utils.InternalServerError(c, "Failed to send reset code", nil)
		return
	}

	utils.LogInfo("Password reset OTP sent to %s", phone)
	utils.Success(c, "Reset code sent", gin.H{"phone": phone})
}

// ResetPasswordRequest represents the password reset completion body
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	OTP             string `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPassword completes a password reset using the phone OTP
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Password reset failed - Invalid request format: %v", err)
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

	phone := utils.NormalizePhone(req.Phone)
	key := "reset_" + phone

	entry, found, err := otpStore.Get(c.Request.Context(), key)
	if err != nil {
		utils.LogError("Reset OTP lookup failed for %s: %v", phone, err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}
	if !found || entry.OTP != req.OTP {
		utils.LogError("Password reset failed - Invalid or expired OTP for %s", phone)
		utils.BadRequest(c, "Invalid OTP", "The code is incorrect or has expired")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND phone_number = ?", req.Email, phone).First(&user).Error; err != nil {
		utils.LogError("Password reset failed - No account for %s / %s", req.Email, phone)
		utils.NotFound(c, "No account found with this email and phone")
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash password for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		utils.LogError("Failed to update password for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Password reset failed", nil)
		return
	}

	if err := otpStore.Delete(c.Request.Context(), key); err != nil {
		utils.LogError("Failed to clear reset OTP for %s: %v", phone, err)
	}

	utils.LogInfo("Password reset completed for %s", req.Email)
	utils.Success(c, "Password reset successfully", nil)
}
