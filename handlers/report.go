package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// DailySalesReport streams a CSV of all completed and served order lines
// for one day (today unless ?date=YYYY-MM-DD is given). One row per order
// line; an empty day yields a header-only file.
func (h *Handler) DailySalesReport(c *gin.Context) {
	day := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse(reportDateLayout, d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date. Expected format: " + reportDateLayout})
			return
		}
		day = parsed
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var orders []models.Order
	err := h.DB.Preload("Lines").
		Where("order_time >= ? AND order_time < ?", start, end).
		Where("status IN ?", []models.OrderStatus{models.StatusCompleted, models.StatusServed}).
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Customer Name", "Item", "Quantity", "Price", "Subtotal", "Order Time"})
	for _, order := range orders {
		orderTime := order.OrderTime.Format("2006-01-02 15:04:05")
		for _, line := range order.Lines {
			w.Write([]string{
				order.CustomerName,
				line.Name,
				strconv.Itoa(line.Quantity),
				strconv.FormatFloat(line.Price, 'f', 2, 64),
				strconv.FormatFloat(line.Subtotal, 'f', 2, 64),
				orderTime,
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="daily_sales_report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
