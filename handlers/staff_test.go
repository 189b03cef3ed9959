package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// placeTestOrder creates an order through the API and returns its ID.
func placeTestOrder(t *testing.T, r *gin.Engine, db *gorm.DB, customer string) uint {
	t.Helper()
	var item models.MenuItem
	if err := db.Where("name = ?", "Margherita Pizza").First(&item).Error; err != nil {
		t.Fatalf("find menu item: %v", err)
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_name": customer,
		"items":         []map[string]interface{}{{"item_id": item.ID, "quantity": "1"}},
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	return uint(body["order_id"].(float64))
}

func TestListOrdersNewestFirst(t *testing.T) {
	r, db := setupTest(t)

	older := placeTestOrder(t, r, db, "Early Bird")
	newer := placeTestOrder(t, r, db, "Night Owl")
	db.Model(&models.Order{}).Where("id = ?", older).
		Update("order_time", time.Now().Add(-2*time.Hour))

	w := doJSON(t, r, http.MethodGet, "/api/staff/orders", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	orders := body["orders"].([]interface{})
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	first := orders[0].(map[string]interface{})
	if uint(first["id"].(float64)) != newer {
		t.Errorf("first order id = %v, want newest %d", first["id"], newer)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	r, db := setupTest(t)
	orderID := placeTestOrder(t, r, db, "Alice")
	path := fmt.Sprintf("/api/staff/orders/%d/status", orderID)

	t.Run("PendingToServed", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, map[string]string{"status": "Served"}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		var order models.Order
		db.First(&order, orderID)
		if order.Status != models.StatusServed {
			t.Errorf("order status = %s, want Served", order.Status)
		}
	})

	t.Run("ServedToCompleted", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, map[string]string{"status": "Completed"}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, map[string]string{"status": "Pending"}, "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", w.Code)
		}
		var order models.Order
		db.First(&order, orderID)
		if order.Status != models.StatusCompleted {
			t.Errorf("order status = %s, want Completed (unchanged)", order.Status)
		}
	})

	t.Run("FreeTextStatusRejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, path, map[string]string{"status": "Eaten"}, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/staff/orders/9999/status", map[string]string{"status": "Served"}, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestUpdateTableAvailability(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPut, "/api/staff/tables/4/availability",
		map[string]bool{"available": false}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var table models.Table
	db.Where("table_number = ?", 4).First(&table)
	if table.Available {
		t.Error("table 4 still available")
	}

	// And back again
	w = doJSON(t, r, http.MethodPut, "/api/staff/tables/4/availability",
		map[string]bool{"available": true}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	db.Where("table_number = ?", 4).First(&table)
	if !table.Available {
		t.Error("table 4 not re-opened")
	}

	w = doJSON(t, r, http.MethodPut, "/api/staff/tables/42/availability",
		map[string]bool{"available": true}, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown table: status = %d, want 404", w.Code)
	}
}
