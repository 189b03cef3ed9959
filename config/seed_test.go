package config

import (
	"testing"

	"restaurant-reservation-api/models"
)

func TestSeedDataIsIdempotent(t *testing.T) {
	db, err := OpenDB("file:seedtest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := SeedData(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var menuCount, tableCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	db.Model(&models.Table{}).Count(&tableCount)
	if menuCount != 5 {
		t.Errorf("menu items = %d, want 5", menuCount)
	}
	if tableCount != 10 {
		t.Errorf("tables = %d, want 10", tableCount)
	}
}

func TestSeedDataSkipsExistingData(t *testing.T) {
	db, err := OpenDB("file:seedtest2?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	// Pre-existing data must never be topped up
	if err := db.Create(&models.MenuItem{Name: "House Special", Category: "Pizza", Price: 12.50}).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	if err := SeedData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var menuCount, tableCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	db.Model(&models.Table{}).Count(&tableCount)
	if menuCount != 1 {
		t.Errorf("menu items = %d, want only the pre-existing 1", menuCount)
	}
	if tableCount != 10 {
		t.Errorf("tables = %d, want 10 (tables collection was empty)", tableCount)
	}
}
