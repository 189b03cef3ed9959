package handlers

import (
	"net/http"
	"strconv"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListOrders returns every order, newest first (staff dashboard)
func (h *Handler) ListOrders(c *gin.Context) {
	var orders []models.Order
	query := h.DB.Preload("Lines")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("order_time desc").Find(&orders)

	// Group counts by status for the dashboard header
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// ListTables returns every table regardless of availability (staff dashboard)
func (h *Handler) ListTables(c *gin.Context) {
	var tables []models.Table
	h.DB.Order("table_number").Find(&tables)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(tables),
		"tables": tables,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus applies a staff state transition to an order
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := h.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: Pending, Served, Completed, or Cancelled"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	// Guarded write: only applies if the status is still what we validated
	// against, so two concurrent staff updates cannot both land.
	res := h.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", req.Status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order status changed concurrently, re-read and retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(order.Status),
		"current_status":  string(req.Status),
	})
}

type UpdateTableRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// UpdateTableAvailability sets a table's availability flag either way
func (h *Handler) UpdateTableAvailability(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.DB.Model(&models.Table{}).
		Where("table_number = ?", tableNumber).
		Update("available", *req.Available)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update table"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Table updated",
		"table_number": tableNumber,
		"available":    *req.Available,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusCompleted), string(models.StatusCancelled)},
		"description":     "Dine-in Order Lifecycle State Machine",
	})
}
