package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// FetchStats loads the dashboard header aggregates.
func (c *Client) FetchStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

// RecentOrders lists the most recent orders, without line items.
func (c *Client) RecentOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/dashboard/recent-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders lists every order, without line items.
func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/dashboard/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderItems lists the line items of one order.
func (c *Client) OrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	path := fmt.Sprintf("/dashboard/order-items/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Customers lists every customer.
func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.do(ctx, http.MethodGet, "/dashboard/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer replaces a customer's contact fields.
func (c *Client) UpdateCustomer(ctx context.Context, id uint, customer models.Customer) (models.Customer, error) {
	var updated models.Customer
	path := fmt.Sprintf("/dashboard/customers/%d", id)
	if err := c.do(ctx, http.MethodPut, path, customer, &updated); err != nil {
		return models.Customer{}, err
	}
	return updated, nil
}
