package handlers

import (
	"restaurant-reservation-api/config"

	"gorm.io/gorm"
)

// Handler carries the database handle and config into the route handlers.
// Nothing here is process-global, so tests construct their own Handler
// around an in-memory database.
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{DB: db, Cfg: cfg}
}
