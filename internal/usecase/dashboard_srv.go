package usecase

import (
	"context"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

type DashboardStats struct {
	TopSellers   []entity.TopSeller
	TotalRevenue float64
	ProductCount int
}

// DashboardService aggregates the three report fetches. Each one is
// independent: a failure blanks that section and the rest still shows.
type DashboardService interface {
	Stats(ctx context.Context) *DashboardStats
}

type dashboardService struct {
	api *backend.Backend
	log *zap.Logger
}

func NewDashboardService(api *backend.Backend, log *zap.Logger) DashboardService {
	return &dashboardService{
		api: api,
		log: log,
	}
}

func (s *dashboardService) Stats(ctx context.Context) *DashboardStats {
	stats := &DashboardStats{}

	sellers, err := s.api.Order.TopSelling(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch top sellers", zap.Error(err))
	} else {
		stats.TopSellers = sellers
	}

	revenue, err := s.api.Order.TotalRevenue(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch total revenue", zap.Error(err))
	} else {
		stats.TotalRevenue = revenue
	}

	count, err := s.api.Product.Count(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch product count", zap.Error(err))
	} else {
		stats.ProductCount = count
	}

	return stats
}
