package config

import (
	"restaurant-reservation-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the database and migrates the schema. The handle is owned
// by the caller and passed down to the handlers, so tests can swap in an
// in-memory database.
func OpenDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderLine{},
		&models.Reservation{},
		&models.User{},
		&models.AvailableSlot{},
		&models.Appointment{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
