package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// segmentForRequest resolves the pricing segment for a catalog request.
// Business pricing requires a valid token belonging to a B2B account;
// everyone else sees consumer pricing.
func segmentForRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.SegmentConsumer
	}
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	userID, err := utils.ValidateToken(tokenString)
	if err != nil {
		return models.SegmentConsumer
	}
	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.SegmentConsumer
	}
	if user.AccountType == models.AccountTypeB2B {
		return models.SegmentBusiness
	}
	return models.SegmentConsumer
}

type reviewStats struct {
	ProductID string
	AvgRating float64
	Count     int64
}

func loadReviewStats(productIDs []string) map[string]reviewStats {
	stats := make(map[string]reviewStats)
	if len(productIDs) == 0 {
		return stats
	}
	var rows []reviewStats
	err := config.DB.Model(&models.Review{}).
		Select("product_id, AVG(rating) as avg_rating, COUNT(*) as count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		utils.LogError("Failed to load review stats: %v", err)
		return stats
	}
	for _, r := range rows {
		stats[r.ProductID] = r
	}
	return stats
}

// annotateProduct refreshes the product's offers, persisting any clear,
// and builds the response view with segment pricing and review stats.
// A persistence failure is logged and does not block the response.
func annotateProduct(p *models.Product, segment string, stats map[string]reviewStats, now time.Time) gin.H {
	if utils.RefreshProductOffers(p, now) {
		if err := config.DB.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"b2c_active_offer":     p.B2CActiveOffer,
			"b2c_offer_price":      p.B2COfferPrice,
			"b2c_offer_start_date": p.B2COfferStart,
			"b2c_offer_end_date":   p.B2COfferEnd,
			"b2b_active_offer":     p.B2BActiveOffer,
			"b2b_offer_price":      p.B2BOfferPrice,
			"b2b_offer_start_date": p.B2BOfferStart,
			"b2b_offer_end_date":   p.B2BOfferEnd,
		}).Error; err != nil {
			utils.LogError("Failed to persist offer refresh for product %s: %v", p.ID, err)
		}
	}

	current, original, discountPct := utils.PricingForSegment(p, segment, now)

	view := gin.H{
		"id":                  p.ID,
		"name":                p.Name,
		"category":            p.Category,
		"description":         p.Description,
		"status":              p.Status,
		"stock":               p.Stock,
		"image":               p.Image,
		"price":               current,
		"original_price":      original,
		"discount_percentage": discountPct,
		"compare_at_price":    p.CompareAtPrice,
		"segment":             segment,
	}

	if s, ok := stats[p.ID]; ok {
		view["rating"] = utils.Round2(s.AvgRating)
		view["review_count"] = s.Count
	} else {
		view["rating"] = 0.0
		view["review_count"] = 0
	}

	return view
}

// GetProducts lists published products with filters and segment pricing
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	segment := segmentForRequest(c)
	priceColumn := "b2c_price"
	if segment == models.SegmentBusiness {
		priceColumn = "b2b_price"
	}

	query := config.DB.Model(&models.Product{}).Where("status = ?", models.ProductStatusPublished)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where(priceColumn+" >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where(priceColumn+" <= ?", v)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Offset((page - 1) * perPage).Limit(perPage).Find(&products).Error; err != nil {
		utils.LogError("Failed to load products: %v", err)
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}

	ids := make([]string, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	stats := loadReviewStats(ids)

	now := time.Now()
	views := make([]gin.H, 0, len(products))
	for i := range products {
		views = append(views, annotateProduct(&products[i], segment, stats, now))
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": views}, total, page, perPage)
}

// GetProduct returns one product with attributes, variants and reviews
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")
	productID := c.Param("id")

	var product models.Product
	if err := config.DB.Preload("Attributes").Preload("Variants").Where("id = ?", productID).First(&product).Error; err != nil {
		utils.LogError("Product not found: %s", productID)
		utils.NotFound(c, "Product not found")
		return
	}

	segment := segmentForRequest(c)
	stats := loadReviewStats([]string{product.ID})
	view := annotateProduct(&product, segment, stats, time.Now())
	view["attributes"] = product.Attributes
	view["variants"] = product.Variants

	utils.Success(c, "Product retrieved successfully", gin.H{"product": view})
}

// SearchProducts searches name, category and description. Name matches
// rank ahead of matches found only in other fields.
func SearchProducts(c *gin.Context) {
	utils.LogInfo("SearchProducts called")

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.BadRequest(c, "Search query required", "Provide a q parameter")
		return
	}

	pattern := "%" + q + "%"
	var products []models.Product
	err := config.DB.Where("status = ?", models.ProductStatusPublished).
		Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Limit(50).
		Find(&products).Error
	if err != nil {
		utils.LogError("Product search failed for %q: %v", q, err)
		utils.InternalServerError(c, "Search failed", nil)
		return
	}

	lowered := strings.ToLower(q)
	sort.SliceStable(products, func(i, j int) bool {
		iName := strings.Contains(strings.ToLower(products[i].Name), lowered)
		jName := strings.Contains(strings.ToLower(products[j].Name), lowered)
		return iName && !jName
	})

	ids := make([]string, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	stats := loadReviewStats(ids)

	segment := segmentForRequest(c)
	now := time.Now()
	views := make([]gin.H, 0, len(products))
	for i := range products {
		views = append(views, annotateProduct(&products[i], segment, stats, now))
	}

	utils.Success(c, "Search results", gin.H{"products": views, "query": q})
}
