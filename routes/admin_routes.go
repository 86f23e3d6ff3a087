package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/controllers"
	"github.com/rahulnm/zestmart/middleware"
)

// initAdminRoutes registers the employee-facing API
func initAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")

	admin.POST("/login", controllers.AdminLogin)
	admin.POST("/forgot-password", controllers.AdminForgotPassword)
	admin.POST("/reset-password-otp", controllers.AdminResetPasswordOTP)

	authed := admin.Group("")
	authed.Use(middleware.AdminAuthMiddleware())
	{
		authed.GET("/me", controllers.AdminMe)

		authed.GET("/products", controllers.AdminListProducts)
		authed.POST("/products", controllers.CreateProduct)
		authed.PUT("/products/:id", controllers.UpdateProduct)
		authed.DELETE("/products/:id", controllers.DeleteProduct)
		authed.POST("/products/bulk-import", controllers.BulkImportProducts)

		authed.GET("/orders", controllers.AdminListOrders)
		authed.PUT("/orders/:id/status", controllers.UpdateOrderStatus)

		authed.GET("/returns", controllers.AdminListReturns)
		authed.PUT("/returns/:id/review", controllers.ReviewReturn)

		authed.GET("/sales-report", controllers.GetSalesReport)
		authed.GET("/sales-report/excel", controllers.DownloadSalesReportExcel)
		authed.GET("/sales-report/pdf", controllers.DownloadSalesReportPDF)
	}

	adminOnly := admin.Group("")
	adminOnly.Use(middleware.AdminAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		adminOnly.GET("/users", controllers.ListUsers)
		adminOnly.DELETE("/users/:id", controllers.DeleteUser)

		adminOnly.GET("/employees", controllers.ListEmployees)
		adminOnly.POST("/employees", controllers.CreateEmployee)
		adminOnly.POST("/reset-password", controllers.AdminDirectReset)

		adminOnly.GET("/b2b-applications", controllers.ListB2BApplications)
		adminOnly.PUT("/b2b-applications/:id/review", controllers.ReviewB2BApplication)
	}
}
