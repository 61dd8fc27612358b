package services

import (
	"context"
	"strconv"

	"jewelry-shop/models"
	"jewelry-shop/repositories"
)

// SettingLowStockThreshold controls the dashboard low-stock listing.
const SettingLowStockThreshold = "low_stock_threshold"

const defaultLowStockThreshold = 5

type SettingsService struct {
	settingsRepo repositories.SettingsStore
}

func NewSettingsService(settingsRepo repositories.SettingsStore) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetAll(ctx context.Context) ([]models.Setting, error) {
	return s.settingsRepo.GetAll(ctx)
}

func (s *SettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	return s.settingsRepo.Get(ctx, key)
}

func (s *SettingsService) Upsert(ctx context.Context, key, value string) (*models.Setting, error) {
	return s.settingsRepo.Upsert(ctx, key, value)
}

// LowStockThreshold reads the configured threshold, falling back to the
// default when unset or unparsable.
func (s *SettingsService) LowStockThreshold(ctx context.Context) int {
	setting, err := s.settingsRepo.Get(ctx, SettingLowStockThreshold)
	if err != nil {
		return defaultLowStockThreshold
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil || n < 0 {
		return defaultLowStockThreshold
	}
	return n
}
