package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

func init() {
	utils.InitLogger()
}

// newTestServer responds to every request with the given status and body.
func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
}

func TestListMenuDecodesNullCategory(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`[{"id":1,"name":"Lumpia","category":null,"price":180,"description":"fried","group":"Appetizer"},
		  {"id":2,"name":"Adobo","category":"Best Seller","price":280,"description":null,"group":"Main Course"}]`)
	defer srv.Close()

	records, err := NewClient(srv.URL).ListMenu(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Nil(t, records[0].Category)
	if assert.NotNil(t, records[1].Category) {
		assert.Equal(t, "Best Seller", *records[1].Category)
	}
	assert.Nil(t, records[1].Description)
}

func TestCreateMenuItemSendsNullForNoCategory(t *testing.T) {
	var captured map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/menu", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":7,"name":"Lumpia","category":null,"price":180,"description":"fried","group":"Appetizer"}`)
	}))
	defer srv.Close()

	record, err := NewClient(srv.URL).CreateMenuItem(context.Background(), MenuFields{
		Name:     "Lumpia",
		Category: nil,
		Price:    180,
		Group:    "Appetizer",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), record.ID)

	// The category key must be present and be a JSON null, not "None".
	raw, ok := captured["category"]
	assert.True(t, ok)
	assert.Equal(t, "null", string(raw))
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, `{"message":"menu item not found"}`)
	defer srv.Close()

	_, err := NewClient(srv.URL).UpdateMenuItem(context.Background(), 42, MenuFields{Name: "Ghost"})

	var notFound *NotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "menu item not found", notFound.Message)
	}
}

func TestCreateMenuItemRejected(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"message":"price must be a positive number"}`)
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateMenuItem(context.Background(), MenuFields{Name: "Adobo"})

	var rejected *RejectedError
	if assert.ErrorAs(t, err, &rejected) {
		assert.Equal(t, "price must be a positive number", rejected.Message)
	}
}

func TestServerErrorIsTransport(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, ``)
	defer srv.Close()

	_, err := NewClient(srv.URL).ListMenu(context.Background())

	var transport *TransportError
	if assert.ErrorAs(t, err, &transport) {
		assert.Equal(t, "An error occurred", transport.Message, "missing message body falls back to the generic string")
	}
}

func TestConnectionFailureIsTransport(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `[]`)
	srv.Close() // nothing listening anymore

	_, err := NewClient(srv.URL).ListMenu(context.Background())

	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestDeleteMenuItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/menu/3", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).DeleteMenuItem(context.Background(), 3))
}
