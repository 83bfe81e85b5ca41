package gateway

import (
	"context"
	"net/http"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// RevenueTrend loads the monthly revenue chart data.
func (c *Client) RevenueTrend(ctx context.Context) ([]models.RevenuePoint, error) {
	var points []models.RevenuePoint
	if err := c.do(ctx, http.MethodGet, "/analytics/revenue-trend", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// SalesByGroup loads the sales-per-group chart data.
func (c *Client) SalesByGroup(ctx context.Context) ([]models.GroupSales, error) {
	var sales []models.GroupSales
	if err := c.do(ctx, http.MethodGet, "/analytics/sales-by-category", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// TopItems loads the most-ordered items list.
func (c *Client) TopItems(ctx context.Context) ([]models.TopItem, error) {
	var items []models.TopItem
	if err := c.do(ctx, http.MethodGet, "/analytics/top-items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// KeyMetrics loads the analytics summary figures.
func (c *Client) KeyMetrics(ctx context.Context) (models.KeyMetrics, error) {
	var metrics models.KeyMetrics
	if err := c.do(ctx, http.MethodGet, "/analytics/key-metrics", nil, &metrics); err != nil {
		return models.KeyMetrics{}, err
	}
	return metrics, nil
}
