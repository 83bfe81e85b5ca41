package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// OrdersGateway is the upstream contract for the orders views.
type OrdersGateway interface {
	RecentOrders(ctx context.Context) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	OrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error)
}

// OrdersService assembles orders with their line items. The upstream does
// not embed items in the order listing, so each row needs its own fetch.
type OrdersService struct {
	gw OrdersGateway
}

func NewOrdersService(gw OrdersGateway) *OrdersService {
	return &OrdersService{gw: gw}
}

// RecentWithItems loads the recent orders and their line items. The item
// fetches run concurrently and are joined: if any one fails, the whole load
// fails and nothing partial is returned. Orders come back newest first.
func (s *OrdersService) RecentWithItems(ctx context.Context) ([]models.Order, error) {
	orders, err := s.gw.RecentOrders(ctx)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range orders {
		i := i
		g.Go(func() error {
			items, err := s.gw.OrderItems(ctx, orders[i].ID)
			if err != nil {
				return err
			}
			orders[i].Items = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(a, b int) bool {
		return orders[a].CreatedAt.After(orders[b].CreatedAt)
	})
	return orders, nil
}

// All loads every order, without line items.
func (s *OrdersService) All(ctx context.Context) ([]models.Order, error) {
	return s.gw.AllOrders(ctx)
}
