package controllers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// GoogleLogin redirects to Google's consent page
func GoogleLogin(c *gin.Context) {
	utils.LogInfo("GoogleLogin called")

	state := uuid.New().String()
	if err := utils.SetOAuthState(c, state); err != nil {
		utils.LogError("Google login failed - Could not persist state: %v", err)
		utils.InternalServerError(c, "Failed to start Google login", nil)
		return
	}

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(302, url)
}

// GoogleCallback handles the OAuth2 callback and signs the user in,
// creating the account on first login
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	state := utils.PopOAuthState(c)
	if state == "" || state != c.Query("state") {
		utils.LogError("Google callback failed - State mismatch")
		utils.BadRequest(c, "Invalid OAuth state", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "Authorization code missing", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogError("Google callback failed - Code exchange error: %v", err)
		utils.InternalServerError(c, "Failed to exchange authorization code", nil)
		return
	}

	client := config.GoogleOAuthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError("Google callback failed - Userinfo request error: %v", err)
		utils.InternalServerError(c, "Failed to fetch user info", nil)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.LogError("Google callback failed - Userinfo read error: %v", err)
		utils.InternalServerError(c, "Failed to read user info", nil)
		return
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &info); err != nil || info.Email == "" {
		utils.LogError("Google callback failed - Invalid userinfo payload: %v", err)
		utils.InternalServerError(c, "Invalid user info", nil)
		return
	}

	var user models.User
	err = config.DB.Where("email = ?", info.Email).First(&user).Error
	if err != nil {
		user = models.User{
			ID:          uuid.New().String(),
			Email:       info.Email,
			FullName:    info.Name,
			GoogleID:    info.ID,
			AccountType: models.AccountTypeB2C,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Google callback failed - Could not create user %s: %v", info.Email, err)
			utils.InternalServerError(c, "Failed to create account", nil)
			return
		}
		utils.LogInfo("Created account via Google login: %s", info.Email)
	} else if user.GoogleID == "" {
		if err := config.DB.Model(&user).Update("google_id", info.ID).Error; err != nil {
			utils.LogError("Failed to link Google ID for %s: %v", info.Email, err)
		}
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Google callback failed - Token generation error for %s: %v", info.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User logged in via Google: %s", info.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": jwtToken,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}
