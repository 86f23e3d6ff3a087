package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

type salesSummary struct {
	TotalOrders     int
	TotalRevenue    float64
	TotalItems      int
	TotalCustomers  int
	B2BRevenue      float64
	B2CRevenue      float64
	AverageOrderVal float64
}

func reportWindow(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		return now.AddDate(0, 0, -30).Truncate(24 * time.Hour), now.Add(24 * time.Hour), true
	}
	return time.Time{}, time.Time{}, false
}

func summarizeOrders(orders []models.Order) salesSummary {
	var s salesSummary
	customerSet := make(map[string]bool)
	for _, order := range orders {
		s.TotalOrders++
		s.TotalRevenue += order.Amount
		s.TotalItems += order.ItemsCount
		customerSet[order.Email] = true
		if order.Type == models.SegmentBusiness {
			s.B2BRevenue += order.Amount
		} else {
			s.B2CRevenue += order.Amount
		}
	}
	s.TotalCustomers = len(customerSet)
	if s.TotalOrders > 0 {
		s.AverageOrderVal = utils.Round2(s.TotalRevenue / float64(s.TotalOrders))
	}
	s.TotalRevenue = utils.Round2(s.TotalRevenue)
	s.B2BRevenue = utils.Round2(s.B2BRevenue)
	s.B2CRevenue = utils.Round2(s.B2CRevenue)
	return s
}

func loadReportOrders(c *gin.Context) ([]models.Order, string, time.Time, time.Time, bool) {
	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return nil, period, startDate, endDate, false
	}

	var orders []models.Order
	err := config.DB.Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		utils.LogError("Failed to fetch orders for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return nil, period, startDate, endDate, false
	}
	return orders, period, startDate, endDate, true
}

// GetSalesReport returns the order summary as JSON
func GetSalesReport(c *gin.Context) {
	utils.LogInfo("GetSalesReport called")

	orders, period, startDate, endDate, ok := loadReportOrders(c)
	if !ok {
		return
	}
	summary := summarizeOrders(orders)

	utils.Success(c, "Sales report generated", gin.H{
		"period": period,
		"from":   startDate.Format("2006-01-02"),
		"to":     endDate.Format("2006-01-02"),
		"summary": gin.H{
			"total_orders":    summary.TotalOrders,
			"total_revenue":   summary.TotalRevenue,
			"total_items":     summary.TotalItems,
			"total_customers": summary.TotalCustomers,
			"b2c_revenue":     summary.B2CRevenue,
			"b2b_revenue":     summary.B2BRevenue,
			"avg_order_value": summary.AverageOrderVal,
		},
		"orders": orders,
	})
}

// DownloadSalesReportExcel streams the sales report as an Excel workbook
func DownloadSalesReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportExcel called")

	orders, period, startDate, endDate, ok := loadReportOrders(c)
	if !ok {
		return
	}
	summary := summarizeOrders(orders)
	utils.LogDebug("Retrieved %d orders for Excel report", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("ZESTMART - Sales Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow()

	headers := []string{"Order ID", "Customer", "Email", "Date", "Items", "Amount", "Segment", "Payment", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.ID)
		row.AddCell().SetString(order.Customer)
		row.AddCell().SetString(order.Email)
		row.AddCell().SetString(order.Date.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(order.ItemsCount)
		row.AddCell().SetFloat(order.Amount)
		row.AddCell().SetString(order.Type)
		row.AddCell().SetString(order.PaymentStatus)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"B2C Revenue", fmt.Sprintf("%.2f", summary.B2CRevenue)},
		{"B2B Revenue", fmt.Sprintf("%.2f", summary.B2BRevenue)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Generated Excel report for period %s", period)
}

// DownloadSalesReportPDF streams the sales report as a PDF
func DownloadSalesReportPDF(c *gin.Context) {
	utils.LogInfo("DownloadSalesReportPDF called")

	orders, period, startDate, endDate, ok := loadReportOrders(c)
	if !ok {
		return
	}
	summary := summarizeOrders(orders)
	utils.LogDebug("Retrieved %d orders for PDF report", len(orders))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "ZESTMART - Sales Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Period: "+strings.ToUpper(period)+" | "+startDate.Format("2006-01-02")+" to "+endDate.Format("2006-01-02"))
	pdf.Ln(12)

	headers := []string{"Order ID", "Customer", "Email", "Date", "Items", "Amount", "Segment", "Payment", "Status"}
	colWidths := []float64{28, 40, 55, 32, 15, 25, 22, 25, 28}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, order := range orders {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, order.ID, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, order.Customer, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, order.Email, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, order.Date.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, fmt.Sprintf("%d", order.ItemsCount), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%.2f", order.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, order.Type, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, order.PaymentStatus, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, order.Status, "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	summaryLines := [][2]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"B2C Revenue", fmt.Sprintf("%.2f", summary.B2CRevenue)},
		{"B2B Revenue", fmt.Sprintf("%.2f", summary.B2BRevenue)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, line := range summaryLines {
		pdf.CellFormat(50, 8, line[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, line[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sales_report_%s.pdf", period))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Generated PDF report for period %s", period)
}
