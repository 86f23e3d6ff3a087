package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// CreateReviewRequest represents the review submission body
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview adds a review to a product. One review per user per product.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")
	user := c.MustGet("user").(models.User)
	productID := c.Param("id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create review failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := utils.ValidateRating(req.Rating); err != nil {
		utils.BadRequest(c, "Invalid rating", err.Error())
		return
	}
	if req.Comment != "" {
		if err := utils.ValidateStringLength(req.Comment, 2, 1000); err != nil {
			utils.BadRequest(c, "Invalid comment", err.Error())
			return
		}
	}

	var product models.Product
	if err := config.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var existing models.Review
	if err := config.DB.Where("product_id = ? AND user_id = ?", productID, user.ID).First(&existing).Error; err == nil {
		utils.LogError("Duplicate review attempt by user %s on product %s", user.ID, productID)
		utils.Conflict(c, "You have already reviewed this product", nil)
		return
	}

	review := models.Review{
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.FullName,
		Rating:    req.Rating,
		Comment:   utils.SanitizeString(req.Comment),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review for product %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to save review", nil)
		return
	}

	utils.LogInfo("Review created by user %s on product %s", user.ID, productID)
	utils.Created(c, "Review submitted successfully", gin.H{"review": review})
}

// GetReviews lists a product's reviews, newest first
func GetReviews(c *gin.Context) {
	utils.LogInfo("GetReviews called")
	productID := c.Param("id")

	var reviews []models.Review
	if err := config.DB.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.LogError("Failed to load reviews for product %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to load reviews", nil)
		return
	}

	var avg float64
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		avg = utils.Round2(float64(total) / float64(len(reviews)))
	}

	utils.Success(c, "Reviews retrieved successfully", gin.H{
		"reviews":      reviews,
		"rating":       avg,
		"review_count": len(reviews),
	})
}
