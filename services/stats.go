package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// StatsGateway is the upstream contract for the read-only aggregates.
type StatsGateway interface {
	FetchStats(ctx context.Context) (models.Stats, error)
	RevenueTrend(ctx context.Context) ([]models.RevenuePoint, error)
	SalesByGroup(ctx context.Context) ([]models.GroupSales, error)
	TopItems(ctx context.Context) ([]models.TopItem, error)
	KeyMetrics(ctx context.Context) (models.KeyMetrics, error)
}

// StatsService reads the server-side aggregates through a short TTL cache,
// so the dashboard's polling screens do not hammer the upstream for numbers
// that change slowly anyway. Pure pass-through otherwise: the figures are
// aggregated upstream and displayed as-is.
type StatsService struct {
	gw  StatsGateway
	ttl *gocache.Cache
}

func NewStatsService(gw StatsGateway, ttl time.Duration) *StatsService {
	return &StatsService{
		gw:  gw,
		ttl: gocache.New(ttl, 2*ttl),
	}
}

func (s *StatsService) Stats(ctx context.Context) (models.Stats, error) {
	if v, ok := s.ttl.Get("stats"); ok {
		return v.(models.Stats), nil
	}
	stats, err := s.gw.FetchStats(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	s.ttl.SetDefault("stats", stats)
	return stats, nil
}

func (s *StatsService) RevenueTrend(ctx context.Context) ([]models.RevenuePoint, error) {
	if v, ok := s.ttl.Get("revenue-trend"); ok {
		return v.([]models.RevenuePoint), nil
	}
	points, err := s.gw.RevenueTrend(ctx)
	if err != nil {
		return nil, err
	}
	s.ttl.SetDefault("revenue-trend", points)
	return points, nil
}

func (s *StatsService) SalesByGroup(ctx context.Context) ([]models.GroupSales, error) {
	if v, ok := s.ttl.Get("sales-by-group"); ok {
		return v.([]models.GroupSales), nil
	}
	sales, err := s.gw.SalesByGroup(ctx)
	if err != nil {
		return nil, err
	}
	s.ttl.SetDefault("sales-by-group", sales)
	return sales, nil
}

func (s *StatsService) TopItems(ctx context.Context) ([]models.TopItem, error) {
	if v, ok := s.ttl.Get("top-items"); ok {
		return v.([]models.TopItem), nil
	}
	items, err := s.gw.TopItems(ctx)
	if err != nil {
		return nil, err
	}
	s.ttl.SetDefault("top-items", items)
	return items, nil
}

func (s *StatsService) KeyMetrics(ctx context.Context) (models.KeyMetrics, error) {
	if v, ok := s.ttl.Get("key-metrics"); ok {
		return v.(models.KeyMetrics), nil
	}
	metrics, err := s.gw.KeyMetrics(ctx)
	if err != nil {
		return models.KeyMetrics{}, err
	}
	s.ttl.SetDefault("key-metrics", metrics)
	return metrics, nil
}
