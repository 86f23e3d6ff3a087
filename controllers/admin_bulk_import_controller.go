package controllers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

// bulkColumnAliases maps the header names seen in merchant spreadsheets to
// canonical fields. Headers are matched case-insensitively with spaces
// collapsed to underscores.
var bulkColumnAliases = map[string]string{
	"name":            "name",
	"product_name":    "name",
	"title":           "name",
	"category":        "category",
	"product_type":    "category",
	"description":     "description",
	"status":          "status",
	"stock":           "stock",
	"quantity":        "stock",
	"qty":             "stock",
	"image":           "image",
	"image_url":       "image",
	"b2c_price":       "b2c_price",
	"selling_price":   "b2c_price",
	"price":           "b2c_price",
	"retail_price":    "b2c_price",
	"b2b_price":       "b2b_price",
	"wholesale_price": "b2b_price",
	"b2c_discount":    "b2c_discount",
	"discount":        "b2c_discount",
	"b2b_discount":    "b2b_discount",
	"mrp":             "compare_at_price",
	"compare_at":      "compare_at_price",
}

// MapBulkHeader resolves a header row to canonical field -> column index.
// Unknown columns are ignored.
func MapBulkHeader(headers []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if canonical, ok := bulkColumnAliases[key]; ok {
			if _, taken := cols[canonical]; !taken {
				cols[canonical] = i
			}
		}
	}
	return cols
}

func cellAt(cells []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// parseBulkFloat coerces spreadsheet numerics. Currency symbols, commas
// and NaN-ish markers are tolerated; anything unreadable comes back 0.
func parseBulkFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	lowered := strings.ToLower(raw)
	if lowered == "nan" || lowered == "n/a" || lowered == "-" || lowered == "null" {
		return 0
	}
	raw = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// ProductFromRow builds a product from one spreadsheet row. A row without
// a name or with a non-positive consumer price is rejected.
func ProductFromRow(cells []string, cols map[string]int) (*models.Product, error) {
	name := cellAt(cells, cols, "name")
	if name == "" {
		return nil, fmt.Errorf("missing product name")
	}

	b2cPrice := parseBulkFloat(cellAt(cells, cols, "b2c_price"))
	if b2cPrice <= 0 {
		return nil, fmt.Errorf("invalid price for %q", name)
	}

	status := cellAt(cells, cols, "status")
	switch strings.ToLower(status) {
	case "published", "active", "live":
		status = models.ProductStatusPublished
	case "archived":
		status = models.ProductStatusArchived
	default:
		status = models.ProductStatusDraft
	}

	stock := int(parseBulkFloat(cellAt(cells, cols, "stock")))
	if stock < 0 {
		stock = 0
	}

	b2bPrice := parseBulkFloat(cellAt(cells, cols, "b2b_price"))
	if b2bPrice <= 0 {
		b2bPrice = b2cPrice
	}

	b2cDiscount := parseBulkFloat(cellAt(cells, cols, "b2c_discount"))
	b2bDiscount := parseBulkFloat(cellAt(cells, cols, "b2b_discount"))
	if b2cDiscount < 0 || b2cDiscount > 100 || b2bDiscount < 0 || b2bDiscount > 100 {
		return nil, fmt.Errorf("discount out of range for %q", name)
	}

	return &models.Product{
		ID:             "prod_" + uuid.New().String()[:8],
		Name:           name,
		Category:       utils.Title(cellAt(cells, cols, "category")),
		Description:    cellAt(cells, cols, "description"),
		Status:         status,
		Stock:          stock,
		Image:          cellAt(cells, cols, "image"),
		CompareAtPrice: parseBulkFloat(cellAt(cells, cols, "compare_at_price")),
		B2CPrice:       b2cPrice,
		B2CDiscount:    b2cDiscount,
		B2BPrice:       b2bPrice,
		B2BDiscount:    b2bDiscount,
	}, nil
}

// BulkImportProducts imports products from an Excel upload. Each row is
// handled independently; bad rows are reported but never abort the file.
func BulkImportProducts(c *gin.Context) {
	utils.LogInfo("BulkImportProducts called")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No file uploaded", "Attach an .xlsx file under the 'file' field")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.LogError("Bulk import - Failed to open upload: %v", err)
		utils.InternalServerError(c, "Failed to read file", nil)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.LogError("Bulk import - Failed to read upload: %v", err)
		utils.InternalServerError(c, "Failed to read file", nil)
		return
	}

	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		utils.LogError("Bulk import - Invalid workbook: %v", err)
		utils.BadRequest(c, "Invalid Excel file", err.Error())
		return
	}
	if len(wb.Sheets) == 0 || len(wb.Sheets[0].Rows) < 2 {
		utils.BadRequest(c, "Workbook has no data rows", nil)
		return
	}

	sheet := wb.Sheets[0]
	headers := make([]string, 0, len(sheet.Rows[0].Cells))
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, cell.String())
	}
	cols := MapBulkHeader(headers)
	if _, ok := cols["name"]; !ok {
		utils.BadRequest(c, "Missing name column", "The sheet must have a name/product_name/title column")
		return
	}

	now := time.Now()
	imported := 0
	var rowErrors []gin.H
	for i, row := range sheet.Rows[1:] {
		rowNum := i + 2
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.String())
		}
		if len(cells) == 0 {
			continue
		}

		product, err := ProductFromRow(cells, cols)
		if err != nil {
			rowErrors = append(rowErrors, gin.H{"row": rowNum, "error": err.Error()})
			continue
		}

		utils.RefreshProductOffers(product, now)
		if err := config.DB.Create(product).Error; err != nil {
			utils.LogError("Bulk import - Row %d insert failed: %v", rowNum, err)
			rowErrors = append(rowErrors, gin.H{"row": rowNum, "error": "database insert failed"})
			continue
		}
		imported++
	}

	utils.LogInfo("Bulk import finished: %d imported, %d failed", imported, len(rowErrors))
	utils.Success(c, "Import completed", gin.H{
		"imported": imported,
		"failed":   len(rowErrors),
		"errors":   rowErrors,
	})
}
