package stubgateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStub(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewServer(db)
}

func request(r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		buf, _ := json.Marshal(payload)
		body = bytes.NewBuffer(buf)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStubMenuCRUD(t *testing.T) {
	r := setupStub(t)

	// Create with a null category.
	w := request(r, "POST", "/api/menu", map[string]interface{}{
		"name":        "Lumpia",
		"category":    nil,
		"price":       180,
		"description": "fried",
		"group":       "Appetizer",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created MenuRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.Category)

	// List returns a raw array, category stays null.
	w = request(r, "GET", "/api/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var records []MenuRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
	assert.Nil(t, records[0].Category)

	// Update is a full replace.
	w = request(r, "PUT", "/api/menu/1", map[string]interface{}{
		"name":        "Lumpia",
		"category":    "Best Seller",
		"price":       200,
		"description": "fried",
		"group":       "Appetizer",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated MenuRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 200, updated.Price)
	if assert.NotNil(t, updated.Category) {
		assert.Equal(t, "Best Seller", *updated.Category)
	}

	// Delete, then the id is gone.
	w = request(r, "DELETE", "/api/menu/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(r, "DELETE", "/api/menu/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStubMenuValidation(t *testing.T) {
	r := setupStub(t)

	w := request(r, "POST", "/api/menu", map[string]interface{}{
		"name":  "Freebie",
		"price": 0,
		"group": "Dessert",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "price must be a positive number", resp["message"])

	// The literal "None" is a client bug, not a category.
	w = request(r, "POST", "/api/menu", map[string]interface{}{
		"name":     "Adobo",
		"category": "None",
		"price":    280,
		"group":    "Main Course",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStubUpdateNotFound(t *testing.T) {
	r := setupStub(t)

	w := request(r, "PUT", "/api/menu/42", map[string]interface{}{
		"name":  "Ghost Dish",
		"price": 100,
		"group": "Dessert",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "menu item not found", resp["message"])
}

func TestStubAnnouncements(t *testing.T) {
	r := setupStub(t)

	w := request(r, "POST", "/api/announcements", map[string]string{
		"title":   "Fiesta weekend",
		"type":    "event",
		"content": "Live music on Saturday.",
		"date":    "2026-09-05",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(r, "POST", "/api/announcements", map[string]string{
		"title": "Missing fields",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(r, "GET", "/api/announcements", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var records []AnnouncementRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}
