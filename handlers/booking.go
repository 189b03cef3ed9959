package handlers

import (
	"net/http"
	"time"

	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

const (
	slotDateLayout = "2006-01-02"
	slotTimeLayout = "15:04"
)

type CreateSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// CreateSlot opens a bookable slot for the calling business
func (h *Handler) CreateSlot(c *gin.Context) {
	businessID := middleware.GetUserID(c)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startsAt, err := time.Parse(slotDateLayout+" "+slotTimeLayout, req.Date+" "+req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot date/time. Expected " + slotDateLayout + " and " + slotTimeLayout,
		})
		return
	}

	slot := models.AvailableSlot{
		BusinessID: businessID,
		StartsAt:   startsAt,
	}
	if err := h.DB.Create(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Slot created", "slot": slot})
}

// ListMySlots returns all slots owned by the calling business
func (h *Handler) ListMySlots(c *gin.Context) {
	businessID := middleware.GetUserID(c)
	var slots []models.AvailableSlot
	h.DB.Where("business_id = ?", businessID).Order("starts_at").Find(&slots)
	c.JSON(http.StatusOK, gin.H{"count": len(slots), "slots": slots})
}

// ListBusinessSlots returns a business's open slots (customer view)
func (h *Handler) ListBusinessSlots(c *gin.Context) {
	businessID := c.Param("id")

	var business models.User
	if err := h.DB.Where("id = ? AND role = ?", businessID, models.RoleBusiness).
		First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	var slots []models.AvailableSlot
	h.DB.Where("business_id = ? AND is_booked = ?", business.ID, false).
		Order("starts_at").Find(&slots)
	c.JSON(http.StatusOK, gin.H{
		"business": business.Name,
		"count":    len(slots),
		"slots":    slots,
	})
}

// BookSlot books an open slot for the calling user. The is_booked flip is a
// single conditional update, same as table reservations, so a slot can only
// be taken once.
func (h *Handler) BookSlot(c *gin.Context) {
	userID := middleware.GetUserID(c)
	slotID := c.Param("id")

	var slot models.AvailableSlot
	if err := h.DB.First(&slot, slotID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		return
	}

	res := h.DB.Model(&models.AvailableSlot{}).
		Where("id = ? AND is_booked = ?", slot.ID, false).
		Update("is_booked", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book slot"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Slot is already booked"})
		return
	}

	appointment := models.Appointment{
		UserID:     userID,
		BusinessID: slot.BusinessID,
		SlotID:     slot.ID,
		StartsAt:   slot.StartsAt,
		Status:     models.AppointmentBooked,
	}
	if err := h.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Slot booked successfully",
		"appointment": appointment,
	})
}

// ListMyAppointments returns the calling user's appointments
func (h *Handler) ListMyAppointments(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var appointments []models.Appointment
	h.DB.Preload("Business").Where("user_id = ?", userID).
		Order("starts_at").Find(&appointments)
	c.JSON(http.StatusOK, gin.H{"count": len(appointments), "appointments": appointments})
}

// ListBusinessAppointments returns appointments booked with the calling business
func (h *Handler) ListBusinessAppointments(c *gin.Context) {
	businessID := middleware.GetUserID(c)
	var appointments []models.Appointment
	h.DB.Preload("User").Where("business_id = ?", businessID).
		Order("starts_at").Find(&appointments)
	c.JSON(http.StatusOK, gin.H{"count": len(appointments), "appointments": appointments})
}

// CancelAppointment cancels the calling user's appointment and reopens the slot
func (h *Handler) CancelAppointment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, appointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if appointment.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This appointment does not belong to you"})
		return
	}
	if appointment.Status != models.AppointmentBooked {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Appointment is already cancelled"})
		return
	}

	if err := h.DB.Model(&appointment).
		Update("status", models.AppointmentCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}
	if err := h.DB.Model(&models.AvailableSlot{}).
		Where("id = ?", appointment.SlotID).
		Update("is_booked", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reopen slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Appointment cancelled",
		"appointment_id": appointment.ID,
	})
}
