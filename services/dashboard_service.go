package services

import (
	"context"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"
)

type DashboardService struct {
	dashboardRepo *repositories.DashboardRepository
	orderStore    repositories.OrderStore
	settingsSvc   *SettingsService
}

func NewDashboardService(dashboardRepo *repositories.DashboardRepository, orderStore repositories.OrderStore, settingsSvc *SettingsService) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		orderStore:    orderStore,
		settingsSvc:   settingsSvc,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	totals, err := s.dashboardRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.dashboardRepo.LowStock(ctx, s.settingsSvc.LowStockThreshold(ctx))
	if err != nil {
		return nil, err
	}

	recent, _, err := s.orderStore.ListOrders(ctx, models.OrderFilter{
		SortBy:  "created_at",
		SortDir: "desc",
		Limit:   5,
	})
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(-1, 0, 0)
	monthly, err := s.dashboardRepo.MonthlySales(ctx, since)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Totals:       *totals,
		LowStock:     lowStock,
		RecentOrders: recent,
		MonthlySales: monthly,
	}, nil
}
