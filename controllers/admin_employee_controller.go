package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// ListEmployees lists all employees
func ListEmployees(c *gin.Context) {
	utils.LogInfo("ListEmployees called")

	var employees []models.Employee
	if err := config.DB.Order("created_at DESC").Find(&employees).Error; err != nil {
		utils.LogError("Failed to load employees: %v", err)
		utils.InternalServerError(c, "Failed to load employees", nil)
		return
	}

	utils.Success(c, "Employees retrieved successfully", gin.H{"employees": employees})
}

// CreateEmployeeRequest represents the employee creation body
type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Permissions string `json:"permissions"`
}

// CreateEmployee adds a new employee account
func CreateEmployee(c *gin.Context) {
	utils.LogInfo("CreateEmployee called")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create employee failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleStaff
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
		utils.BadRequest(c, "Invalid role", "Role must be admin or staff")
		return
	}

	var existing models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "An employee with this email already exists", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Create employee failed - Could not hash password: %v", err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	employee := models.Employee{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hash,
		Role:        req.Role,
		Status:      "active",
		Phone:       utils.NormalizePhone(req.Phone),
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Permissions: req.Permissions,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.LogError("Failed to create employee %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	utils.LogInfo("Employee created: %s (%s)", req.Email, req.Role)
	utils.Created(c, "Employee created successfully", gin.H{"employee": employee})
}

// ListUsers lists customer accounts with pagination
func ListUsers(c *gin.Context) {
	utils.LogInfo("ListUsers called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := config.DB.Model(&models.User{})
	if accountType := c.Query("account_type"); accountType != "" {
		query = query.Where("account_type = ?", accountType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to load users", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		utils.LogError("Failed to load users: %v", err)
		utils.InternalServerError(c, "Failed to load users", nil)
		return
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", gin.H{"users": users}, total, page, perPage)
}

// DeleteUser soft-deletes a customer account
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")
	userID := c.Param("id")

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.LogError("Failed to delete user %s: %v", userID, err)
		utils.InternalServerError(c, "Failed to delete user", nil)
		return
	}

	utils.LogInfo("User %s deleted", userID)
	utils.Success(c, "User deleted successfully", nil)
}

// ListB2BApplications lists business applications, pending first
func ListB2BApplications(c *gin.Context) {
	utils.LogInfo("ListB2BApplications called")

	query := config.DB.Model(&models.B2BApplication{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []models.B2BApplication
	if err := query.Order("status DESC, created_at ASC").Find(&apps).Error; err != nil {
		utils.LogError("Failed to load B2B applications: %v", err)
		utils.InternalServerError(c, "Failed to load applications", nil)
		return
	}

	utils.Success(c, "Applications retrieved successfully", gin.H{"applications": apps})
}

// ReviewB2BApplicationRequest represents the approval decision body
type ReviewB2BApplicationRequest struct {
	Approve bool `json:"approve"`
}

// ReviewB2BApplication approves or rejects a business application.
// Approval unlocks login for the account and notifies it by email.
func ReviewB2BApplication(c *gin.Context) {
	utils.LogInfo("ReviewB2BApplication called")
	appID := c.Param("id")

	var req ReviewB2BApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("B2B review failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var app models.B2BApplication
	if err := config.DB.Where("id = ?", appID).First(&app).Error; err != nil {
		utils.NotFound(c, "Application not found")
		return
	}

	status := models.B2BStatusRejected
	if req.Approve {
		status = models.B2BStatusApproved
	}
	if err := config.DB.Model(&app).Update("status", status).Error; err != nil {
		utils.LogError("Failed to update B2B application %s: %v", appID, err)
		utils.InternalServerError(c, "Failed to update application", nil)
		return
	}

	if req.Approve {
		var user models.User
		if err := config.DB.Where("id = ?", app.UserID).First(&user).Error; err == nil {
			if err := utils.SendB2BApprovalEmail(user.Email, app.BusinessName); err != nil {
				utils.LogError("Failed to send approval email to %s: %v", user.Email, err)
			}
		}
	}

	utils.LogInfo("B2B application %s %s", appID, status)
	utils.Success(c, "Application updated", gin.H{"application": app})
}
