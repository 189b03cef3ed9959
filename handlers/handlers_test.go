package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupTest builds a router over a fresh in-memory database, seeded the
// same way the server seeds at startup. Each test gets its own named
// memory database so parallel tests cannot see each other's data.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.OpenDB("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.SeedData(db); err != nil {
		t.Fatalf("seed test db: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: []byte("test-secret"),
		JWTTTL:    time.Hour,
	}
	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

// doJSON sends a JSON request through the router and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body or fails the test.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
