package models

import "time"

// OrderStatus represents all possible states of a dine-in order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusServed    OrderStatus = "Served"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is a member of the closed status set.
// Free-text statuses are rejected at the handler boundary.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusServed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OrderNumber  string      `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerName string      `json:"customer_name" gorm:"not null"`
	Lines        []OrderLine `json:"order_details" gorm:"foreignKey:OrderID"`
	TotalPrice   float64     `json:"total_price"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'Pending';index"`
	OrderTime    time.Time   `json:"order_time" gorm:"not null;index"` // set once at creation
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderLine snapshots name and price at order time, so later menu edits
// never change what a past order cost.
type OrderLine struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null;index"`
	MenuItemID uint    `json:"item_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`  // snapshot
	Price      float64 `json:"price" gorm:"not null"` // snapshot
	Quantity   int     `json:"quantity" gorm:"not null"`
	Subtotal   float64 `json:"subtotal" gorm:"not null"`
}
