package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// ProductRequest represents the product create/update body. Offer dates
// arrive as strings and are validated at evaluation time.
type ProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Stock          int     `json:"stock"`
	Image          string  `json:"image"`
	CompareAtPrice float64 `json:"compare_at_price"`

	B2CPrice       float64 `json:"b2c_price"`
	B2CDiscount    float64 `json:"b2c_discount"`
	B2CActiveOffer float64 `json:"b2c_active_offer"`
	B2COfferStart  *string `json:"b2c_offer_start_date"`
	B2COfferEnd    *string `json:"b2c_offer_end_date"`

	B2BPrice       float64 `json:"b2b_price"`
	B2BDiscount    float64 `json:"b2b_discount"`
	B2BActiveOffer float64 `json:"b2b_active_offer"`
	B2BOfferStart  *string `json:"b2b_offer_start_date"`
	B2BOfferEnd    *string `json:"b2b_offer_end_date"`

	Attributes []models.ProductAttribute `json:"attributes"`
	Variants   []models.ProductVariant   `json:"variants"`
}

func validateProductRequest(req *ProductRequest) (bool, string) {
	if err := utils.ValidatePrice(req.B2CPrice); err != nil {
		return false, "b2c_price: " + err.Error()
	}
	if req.B2BPrice < 0 {
		return false, "b2b_price cannot be negative"
	}
	if err := utils.ValidateStock(req.Stock); err != nil {
		return false, err.Error()
	}
	if req.Status != "" && req.Status != models.ProductStatusDraft &&
		req.Status != models.ProductStatusPublished && req.Status != models.ProductStatusArchived {
		return false, "status must be Draft, Published or Archived"
	}
	for _, pct := range []float64{req.B2CDiscount, req.B2BDiscount, req.B2CActiveOffer, req.B2BActiveOffer} {
		if pct < 0 || pct > 100 {
			return false, "discount percentages must be between 0 and 100"
		}
	}
	return true, ""
}

// rebindAttributes reattaches replacement attribute rows to their product
// so stale IDs from the request body never collide on insert
func rebindAttributes(productID string, attrs []models.ProductAttribute) []models.ProductAttribute {
	for i := range attrs {
		attrs[i].ID = 0
		attrs[i].ProductID = productID
	}
	return attrs
}

// rebindVariants reattaches replacement variant rows to their product
func rebindVariants(productID string, variants []models.ProductVariant) []models.ProductVariant {
	for i := range variants {
		variants[i].ID = 0
		variants[i].ProductID = productID
	}
	return variants
}

// CreateProduct adds a product. Offer prices are derived immediately so
// the catalog never serves a stale zero.
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create product failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if valid, msg := validateProductRequest(&req); !valid {
		utils.BadRequest(c, "Invalid product", msg)
		return
	}

	if req.Status == "" {
		req.Status = models.ProductStatusDraft
	}

	product := models.Product{
		ID:             "prod_" + uuid.New().String()[:8],
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Status:         req.Status,
		Stock:          req.Stock,
		Image:          req.Image,
		CompareAtPrice: req.CompareAtPrice,
		B2CPrice:       req.B2CPrice,
		B2CDiscount:    req.B2CDiscount,
		B2CActiveOffer: req.B2CActiveOffer,
		B2COfferStart:  req.B2COfferStart,
		B2COfferEnd:    req.B2COfferEnd,
		B2BPrice:       req.B2BPrice,
		B2BDiscount:    req.B2BDiscount,
		B2BActiveOffer: req.B2BActiveOffer,
		B2BOfferStart:  req.B2BOfferStart,
		B2BOfferEnd:    req.B2BOfferEnd,
		Attributes:     req.Attributes,
		Variants:       req.Variants,
	}
	utils.RefreshProductOffers(&product, time.Now())

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product %s: %v", req.Name, err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.LogInfo("Product created: %s (%s)", product.Name, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct updates a product and recomputes its offer pricing
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")
	productID := c.Param("id")

	var product models.Product
	if err := config.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Update product failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if valid, msg := validateProductRequest(&req); !valid {
		utils.BadRequest(c, "Invalid product", msg)
		return
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Description = req.Description
	if req.Status != "" {
		product.Status = req.Status
	}
	product.Stock = req.Stock
	product.Image = req.Image
	product.CompareAtPrice = req.CompareAtPrice
	product.B2CPrice = req.B2CPrice
	product.B2CDiscount = req.B2CDiscount
	product.B2CActiveOffer = req.B2CActiveOffer
	product.B2COfferStart = req.B2COfferStart
	product.B2COfferEnd = req.B2COfferEnd
	product.B2BPrice = req.B2BPrice
	product.B2BDiscount = req.B2BDiscount
	product.B2BActiveOffer = req.B2BActiveOffer
	product.B2BOfferStart = req.B2BOfferStart
	product.B2BOfferEnd = req.B2BOfferEnd
	utils.RefreshProductOffers(&product, time.Now())

	tx := config.DB.Begin()
	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}
	if req.Attributes != nil {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductAttribute{}).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update attributes", nil)
			return
		}
		attrs := rebindAttributes(productID, req.Attributes)
		if len(attrs) > 0 {
			if err := tx.Create(&attrs).Error; err != nil {
				tx.Rollback()
				utils.InternalServerError(c, "Failed to update attributes", nil)
				return
			}
		}
	}
	if req.Variants != nil {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error; err != nil {
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update variants", nil)
			return
		}
		variants := rebindVariants(productID, req.Variants)
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				tx.Rollback()
				utils.InternalServerError(c, "Failed to update variants", nil)
				return
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product update %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.LogInfo("Product updated: %s", productID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct removes a product and its children
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")
	productID := c.Param("id")

	var product models.Product
	if err := config.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductAttribute{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error; err != nil {
		tx.Rollback()
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete product %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product delete %s: %v", productID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	if strings.HasPrefix(product.Image, "uploads/") {
		if err := utils.DeleteFile(product.Image); err != nil {
			utils.LogError("Failed to remove image for product %s: %v", productID, err)
		}
	}

	utils.LogInfo("Product deleted: %s", productID)
	utils.Success(c, "Product deleted successfully", nil)
}

// AdminListProducts lists products of any status for the admin catalog
func AdminListProducts(c *gin.Context) {
	utils.LogInfo("AdminListProducts called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := config.DB.Model(&models.Product{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Offset((page - 1) * perPage).Limit(perPage).Find(&products).Error; err != nil {
		utils.LogError("Failed to load admin products: %v", err)
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": products}, total, page, perPage)
}
