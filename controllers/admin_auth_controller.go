package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// AdminLoginRequest represents the employee login body
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates an employee
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin login failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid email or password", err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		utils.LogError("Admin login failed - Employee not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, employee.Password) {
		utils.LogError("Admin login failed - Invalid password for: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if employee.Status != "active" {
		utils.LogError("Admin login blocked - Inactive account: %s", req.Email)
		utils.Forbidden(c, "Account is inactive")
		return
	}

	now := time.Now()
	if err := config.DB.Model(&employee).Update("last_login", now).Error; err != nil {
		utils.LogError("Failed to update last login for %s: %v", req.Email, err)
	}

	token, err := utils.GenerateEmployeeToken(&employee)
	if err != nil {
		utils.LogError("Admin login failed - Token generation error for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Employee logged in: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"employee": gin.H{
			"id":    employee.ID,
			"name":  employee.Name,
			"email": employee.Email,
			"role":  employee.Role,
		},
	})
}

// AdminMe returns the authenticated employee's profile
func AdminMe(c *gin.Context) {
	utils.LogInfo("AdminMe called")
	employee := c.MustGet("employee").(models.Employee)

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"employee": gin.H{
			"id":          employee.ID,
			"name":        employee.Name,
			"email":       employee.Email,
			"role":        employee.Role,
			"status":      employee.Status,
			"phone":       employee.Phone,
			"permissions": employee.Permissions,
			"last_login":  employee.LastLogin,
		},
	})
}
