package gateway

import (
	"context"
	"fmt"
	"net/http"
)

const menuPath = "/api/menu"

// MenuRecord is the wire shape of a menu item. Category and Description are
// pointers because the upstream uses null for "no category" and for an
// omitted description; the display normalization lives in the models package
// and is applied by the catalog service, not here.
type MenuRecord struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Price       int     `json:"price"`
	Description *string `json:"description"`
	Group       string  `json:"group"`
}

// MenuFields is the payload for create and update. Update is a full replace
// of the five mutable fields.
type MenuFields struct {
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Price       int     `json:"price"`
	Description *string `json:"description"`
	Group       string  `json:"group"`
}

// ListMenu fetches the whole catalog.
func (c *Client) ListMenu(ctx context.Context) ([]MenuRecord, error) {
	var records []MenuRecord
	if err := c.do(ctx, http.MethodGet, menuPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateMenuItem creates an item; the upstream assigns the id.
func (c *Client) CreateMenuItem(ctx context.Context, fields MenuFields) (MenuRecord, error) {
	var record MenuRecord
	if err := c.do(ctx, http.MethodPost, menuPath, fields, &record); err != nil {
		return MenuRecord{}, err
	}
	return record, nil
}

// UpdateMenuItem replaces the mutable fields of an existing item.
func (c *Client) UpdateMenuItem(ctx context.Context, id uint, fields MenuFields) (MenuRecord, error) {
	var record MenuRecord
	path := fmt.Sprintf("%s/%d", menuPath, id)
	if err := c.do(ctx, http.MethodPut, path, fields, &record); err != nil {
		return MenuRecord{}, err
	}
	return record, nil
}

// DeleteMenuItem removes an item. No body is expected on success.
func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	path := fmt.Sprintf("%s/%d", menuPath, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
