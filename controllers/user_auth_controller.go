package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// Signup creates a consumer account
func Signup(c *gin.Context) {
	utils.LogInfo("Signup called")

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Signup failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if valid, msg := utils.ValidateName(req.FullName); !valid {
		utils.BadRequest(c, "Invalid name", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Signup failed - Email already registered: %s", req.Email)
		utils.Conflict(c, "An account with this email already exists", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Signup failed - Could not hash password: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  utils.NormalizePhone(req.Phone),
		AccountType:  models.AccountTypeB2C,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Signup failed - Could not create user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Signup succeeded but token generation failed for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User signed up: %s", req.Email)
	utils.Created(c, "Account created successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a customer. Business accounts cannot log in until
// their application is approved.
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid email or password", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - User not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.LogError("Login failed - Invalid password for: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if user.AccountType == models.AccountTypeB2B {
		var app models.B2BApplication
		if err := config.DB.Where("user_id = ?", user.ID).First(&app).Error; err != nil || app.Status != models.B2BStatusApproved {
			utils.LogError("Login blocked - B2B account not approved: %s", req.Email)
			utils.Forbidden(c, "Your business account is pending approval")
			return
		}
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Login failed - Token generation error for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User logged in: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"full_name":    user.FullName,
			"account_type": user.AccountType,
		},
	})
}

// RegisterB2CRequest represents the consumer registration body
type RegisterB2CRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`

	Address *struct {
		Label        string `json:"label"`
		AddressLine1 string `json:"address_line1"`
		AddressLine2 string `json:"address_line2"`
		City         string `json:"city"`
		State        string `json:"state"`
		Pincode      string `json:"pincode"`
	} `json:"address"`
}

// RegisterB2C creates a consumer account for a verified phone number
func RegisterB2C(c *gin.Context) {
	utils.LogInfo("RegisterB2C called")

	var req RegisterB2CRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("B2C registration failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	phone := utils.NormalizePhone(req.Phone)
	entry, found, err := otpStore.Get(c.Request.Context(), phone)
	if err != nil {
		utils.LogError("B2C registration - OTP lookup failed for %s: %v", phone, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}
	if !found || !entry.Verified {
		utils.LogError("B2C registration failed - Phone not verified: %s", phone)
		utils.BadRequest(c, "Phone not verified", "Please verify your phone number first")
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "An account with this email already exists", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("B2C registration - Could not hash password: %v", err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	meta, _ := json.Marshal(gin.H{"phone_verified": true, "registered_at": time.Now().UTC()})
	user := models.User{
		ID:              uuid.New().String(),
		Email:           req.Email,
		PasswordHash:    hash,
		FullName:        req.FullName,
		PhoneNumber:     phone,
		AccountType:     models.AccountTypeB2C,
		RawUserMetaData: string(meta),
	}

	tx := config.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.LogError("B2C registration - Could not create user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	if req.Address != nil && req.Address.AddressLine1 != "" {
		addr := models.Address{
			ID:           uuid.New().String(),
			UserID:       user.ID,
			Label:        req.Address.Label,
			FullName:     req.FullName,
			Phone:        phone,
			AddressLine1: req.Address.AddressLine1,
			AddressLine2: req.Address.AddressLine2,
			City:         req.Address.City,
			State:        req.Address.State,
			Pincode:      req.Address.Pincode,
			IsDefault:    true,
		}
		if err := tx.Create(&addr).Error; err != nil {
			tx.Rollback()
			utils.LogError("B2C registration - Could not save address for %s: %v", req.Email, err)
			utils.InternalServerError(c, "Registration failed", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("B2C registration - Commit failed for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	if err := otpStore.Delete(c.Request.Context(), phone); err != nil {
		utils.LogError("Failed to clear verification entry for %s: %v", phone, err)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("B2C registration - Token generation failed for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("B2C registration completed: %s", req.Email)
	utils.Created(c, "Registration completed successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

// RegisterB2B creates a business account with its application documents.
// The account stays locked until an admin approves the application.
func RegisterB2B(c *gin.Context) {
	utils.LogInfo("RegisterB2B called")

	email := c.PostForm("email")
	password := c.PostForm("password")
	fullName := c.PostForm("full_name")
	phone := utils.NormalizePhone(c.PostForm("phone"))
	businessName := c.PostForm("business_name")
	gstin := c.PostForm("gstin")
	pan := c.PostForm("pan")
	businessType := c.PostForm("business_type")

	if email == "" || password == "" || businessName == "" {
		utils.BadRequest(c, "Missing required fields", "email, password and business_name are required")
		return
	}
	if valid, msg := utils.ValidateEmail(email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.Conflict(c, "An account with this email already exists", nil)
		return
	}

	var gstPath, licencePath string
	if file, err := c.FormFile("gst_certificate"); err == nil {
		gstPath, err = utils.SaveUploadedDocument(file, "uploads/b2b")
		if err != nil {
			utils.LogError("B2B registration - GST certificate upload failed: %v", err)
			utils.BadRequest(c, "Invalid GST certificate", err.Error())
			return
		}
	}
	if file, err := c.FormFile("business_licence"); err == nil {
		licencePath, err = utils.SaveUploadedDocument(file, "uploads/b2b")
		if err != nil {
			utils.LogError("B2B registration - Licence upload failed: %v", err)
			utils.BadRequest(c, "Invalid business licence", err.Error())
			return
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.LogError("B2B registration - Could not hash password: %v", err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		PhoneNumber:  phone,
		AccountType:  models.AccountTypeB2B,
	}
	app := models.B2BApplication{
		UserID:         user.ID,
		BusinessName:   businessName,
		GSTIN:          gstin,
		PAN:            pan,
		BusinessType:   businessType,
		GSTCertificate: gstPath,
		LicenceDoc:     licencePath,
		Status:         models.B2BStatusPending,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		utils.LogError("B2B registration - Could not create user %s: %v", email, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}
	if err := tx.Create(&app).Error; err != nil {
		tx.Rollback()
		utils.LogError("B2B registration - Could not create application for %s: %v", email, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("B2B registration - Commit failed for %s: %v", email, err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	utils.LogInfo("B2B registration submitted: %s (%s)", email, businessName)
	utils.Created(c, "Application submitted. You will be notified once approved.", gin.H{
		"user_id": user.ID,
		"status":  app.Status,
	})
}
