package models

import "time"

type Table struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TableNumber int       `json:"table_number" gorm:"uniqueIndex;not null"`
	Seats       int       `json:"seats" gorm:"not null"`
	Available   bool      `json:"available" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
