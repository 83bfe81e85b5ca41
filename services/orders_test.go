package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

type fakeOrdersGateway struct {
	orders   []models.Order
	items    map[uint][]models.OrderItem
	itemsErr map[uint]error
}

func (f *fakeOrdersGateway) RecentOrders(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeOrdersGateway) AllOrders(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeOrdersGateway) OrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	if err, ok := f.itemsErr[orderID]; ok {
		return nil, err
	}
	return f.items[orderID], nil
}

func TestRecentWithItemsJoinsEveryRow(t *testing.T) {
	older := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	gw := &fakeOrdersGateway{
		orders: []models.Order{
			{ID: 1, CustomerName: "Maria", Status: models.OrderCompleted, TotalAmount: 460, CreatedAt: older},
			{ID: 2, CustomerName: "Jose", Status: models.OrderPending, TotalAmount: 180, CreatedAt: newer},
		},
		items: map[uint][]models.OrderItem{
			1: {{FoodName: "Adobo", Quantity: 1, Price: 280}, {FoodName: "Lumpia", Quantity: 1, Price: 180}},
			2: {{FoodName: "Lumpia", Quantity: 1, Price: 180}},
		},
	}

	orders, err := NewOrdersService(gw).RecentWithItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	// Newest first, and every row carries its items.
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, uint(1), orders[1].ID)
	assert.Len(t, orders[1].Items, 2)
}

func TestRecentWithItemsFailsWholeLoadOnAnyItemFailure(t *testing.T) {
	gw := &fakeOrdersGateway{
		orders: []models.Order{
			{ID: 1, CustomerName: "Maria"},
			{ID: 2, CustomerName: "Jose"},
		},
		items: map[uint][]models.OrderItem{
			1: {{FoodName: "Adobo", Quantity: 1, Price: 280}},
		},
		itemsErr: map[uint]error{
			2: errors.New("timeout"),
		},
	}

	orders, err := NewOrdersService(gw).RecentWithItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, orders, "no partial result on a failed join")
}
