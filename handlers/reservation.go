package handlers

import (
	"net/http"
	"time"

	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

// reservationTimeLayout matches the datetime-local form input, e.g. "2025-08-12T19:00"
const reservationTimeLayout = "2006-01-02T15:04"

// ListAvailableTables returns tables that can still be reserved (public)
func (h *Handler) ListAvailableTables(c *gin.Context) {
	var tables []models.Table
	h.DB.Where("available = ?", true).Order("table_number").Find(&tables)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(tables),
		"tables": tables,
	})
}

type ReserveRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	TableNumber     int    `json:"table_number" binding:"required"`
	ReservationTime string `json:"reservation_time" binding:"required"`
}

// Reserve books a table and records the reservation. The availability flip
// is a single conditional update, so two concurrent requests for the same
// table cannot both win.
func (h *Handler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservedAt, err := time.Parse(reservationTimeLayout, req.ReservationTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation time. Expected format: " + reservationTimeLayout,
		})
		return
	}

	res := h.DB.Model(&models.Table{}).
		Where("table_number = ? AND available = ?", req.TableNumber, true).
		Update("available", false)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve table"})
		return
	}
	if res.RowsAffected == 0 {
		var table models.Table
		if err := h.DB.Where("table_number = ?", req.TableNumber).First(&table).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Table is already reserved"})
		return
	}

	reservation := models.Reservation{
		CustomerName:    req.CustomerName,
		TableNumber:     req.TableNumber,
		ReservationTime: reservedAt,
	}
	if err := h.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Table reserved successfully",
		"reservation": reservation,
	})
}
