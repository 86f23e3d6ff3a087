package routes

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/utils"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware must be registered before the routes or Gin skips it.
func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-session-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("zestmart", store))

	initUserRoutes(router)
	initAdminRoutes(router)

	return router
}
