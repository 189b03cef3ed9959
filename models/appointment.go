package models

import "time"

// AppointmentStatus is a closed set; arbitrary strings are rejected.
type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "Booked"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// AvailableSlot is a business-owned date/time slot customers can book.
type AvailableSlot struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BusinessID uint      `json:"business_id" gorm:"not null;index"`
	Business   User      `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	StartsAt   time.Time `json:"starts_at" gorm:"not null"`
	IsBooked   bool      `json:"is_booked" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Appointment links a user to a business slot.
type Appointment struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	UserID     uint              `json:"user_id" gorm:"not null;index"`
	User       User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BusinessID uint              `json:"business_id" gorm:"not null;index"`
	Business   User              `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	SlotID     uint              `json:"slot_id" gorm:"not null;index"`
	Slot       AvailableSlot     `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	StartsAt   time.Time         `json:"starts_at" gorm:"not null"`
	Status     AppointmentStatus `json:"status" gorm:"not null;default:'Booked'"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
