package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMenu returns the full menu (public)
func (h *Handler) ListMenu(c *gin.Context) {
	var items []models.MenuItem
	query := h.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// OrderQuantity accepts a JSON string or number. It never fails the
// request on malformed input; whatever arrived is parsed later and lines
// that do not hold a positive integer are dropped, not rejected.
type OrderQuantity string

func (q *OrderQuantity) UnmarshalJSON(data []byte) error {
	*q = OrderQuantity(strings.Trim(string(data), `"`))
	return nil
}

type OrderLineRequest struct {
	ItemID   uint          `json:"item_id" binding:"required"`
	Quantity OrderQuantity `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Items        []OrderLineRequest `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order with status Pending.
// Name and price are snapshotted per line at submission time.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lines []models.OrderLine
	var total float64

	for _, reqItem := range req.Items {
		qty, err := strconv.Atoi(strings.TrimSpace(string(reqItem.Quantity)))
		if err != nil || qty <= 0 {
			continue
		}

		var menuItem models.MenuItem
		if err := h.DB.First(&menuItem, reqItem.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up menu item"})
			return
		}

		subtotal := menuItem.Price * float64(qty)
		total += subtotal
		lines = append(lines, models.OrderLine{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   qty,
			Subtotal:   subtotal,
		})
	}

	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No order placed: no valid items selected"})
		return
	}

	order := models.Order{
		OrderNumber:  uuid.NewString(),
		CustomerName: req.CustomerName,
		Lines:        lines,
		TotalPrice:   total,
		Status:       models.StatusPending,
		OrderTime:    time.Now(),
	}

	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order placed successfully",
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_price":  order.TotalPrice,
		"status":       order.Status,
	})
}
