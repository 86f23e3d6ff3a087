package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/controllers"
	"github.com/rahulnm/zestmart/middleware"
)

// initUserRoutes registers the customer-facing API
func initUserRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/send-verification", controllers.SendVerification)
		auth.POST("/verify-otp", controllers.VerifyOTP)
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/register/b2c", controllers.RegisterB2C)
		auth.POST("/register/b2b", controllers.RegisterB2B)
		auth.POST("/forgot-password/request", controllers.RequestPasswordReset)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	products := router.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/search", controllers.SearchProducts)
		products.GET("/:id", controllers.GetProduct)
		products.GET("/:id/reviews", controllers.GetReviews)
		products.POST("/:id/review", middleware.AuthMiddleware(), controllers.CreateReview)
	}

	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", controllers.GetMe)
		users.PUT("/me", controllers.UpdateMe)
		users.DELETE("/me", controllers.DeleteMe)

		users.GET("/addresses", controllers.GetAddresses)
		users.POST("/addresses", controllers.CreateAddress)
		users.PUT("/addresses/:id", controllers.UpdateAddress)
		users.DELETE("/addresses/:id", controllers.DeleteAddress)
	}

	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("/place", controllers.PlaceOrder)
		orders.GET("/user/:email", controllers.GetOrdersByUser)
	}

	returns := router.Group("/returns")
	returns.Use(middleware.AuthMiddleware())
	{
		returns.POST("/create", controllers.CreateReturn)
		returns.GET("/user", controllers.GetUserReturns)
		returns.GET("/order/:order_id", controllers.GetReturnsByOrder)
	}

	payment := router.Group("/payment")
	{
		payment.POST("/create-order", middleware.AuthMiddleware(), controllers.CreatePaymentOrder)
		payment.POST("/create-for-order/:order_id", middleware.AuthMiddleware(), controllers.CreatePaymentForOrder)
		payment.POST("/verify", controllers.VerifyPayment)
		payment.GET("/order-status/:order_id", middleware.AuthMiddleware(), controllers.GetPaymentStatus)
	}
}
