package config

import (
	"log"

	"restaurant-reservation-api/models"

	"gorm.io/gorm"
)

// SeedData inserts the starter menu and floor plan on first startup.
// Each collection is only seeded when it is empty, so running it again
// is a no-op.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		menu := []models.MenuItem{
			{Name: "Margherita Pizza", Category: "Pizza", Price: 8.99},
			{Name: "Pepperoni Pizza", Category: "Pizza", Price: 9.99},
			{Name: "Caesar Salad", Category: "Salad", Price: 6.99},
			{Name: "Lemonade", Category: "Drink", Price: 2.99},
			{Name: "Spaghetti Bolognese", Category: "Pasta", Price: 10.99},
		}
		if err := db.Create(&menu).Error; err != nil {
			return err
		}
		log.Println("seeded menu with", len(menu), "items")
	}

	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		tables := make([]models.Table, 0, 10)
		for i := 1; i <= 10; i++ {
			tables = append(tables, models.Table{TableNumber: i, Seats: 4, Available: true})
		}
		if err := db.Create(&tables).Error; err != nil {
			return err
		}
		log.Println("seeded", len(tables), "tables")
	}
	return nil
}
