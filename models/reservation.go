package models

import "time"

// Reservation records who booked which table and for when. TableNumber is
// a plain reference, not an enforced foreign key; a reservation is never
// mutated after creation.
type Reservation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerName    string    `json:"customer_name" gorm:"not null"`
	TableNumber     int       `json:"table_number" gorm:"not null;index"`
	ReservationTime time.Time `json:"reservation_time" gorm:"not null"` // user-supplied
	CreatedAt       time.Time `json:"created_at"`                       // server-set
}
