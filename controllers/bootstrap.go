package controllers

import (
	"os"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// EnsureDefaultAdmin creates the initial admin employee when the table is
// empty, so a fresh deployment can be logged into.
func EnsureDefaultAdmin() error {
	var count int64
	if err := config.DB.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@zestmart.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Employee{
		Name:     "Administrator",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Status:   "active",
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Created default admin account: %s", email)
	return nil
}
