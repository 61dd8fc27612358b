package services

import (
	"context"
	"testing"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsStore struct {
	settings map[string]models.Setting
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{settings: map[string]models.Setting{}}
}

func (f *fakeSettingsStore) GetAll(_ context.Context) ([]models.Setting, error) {
	out := []models.Setting{}
	for _, s := range f.settings {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSettingsStore) Get(_ context.Context, key string) (*models.Setting, error) {
	s, ok := f.settings[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSettingsStore) Upsert(_ context.Context, key, value string) (*models.Setting, error) {
	s := models.Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	f.settings[key] = s
	return &s, nil
}

var _ repositories.SettingsStore = (*fakeSettingsStore)(nil)

func TestLowStockThreshold_DefaultWhenUnset(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	assert.Equal(t, defaultLowStockThreshold, svc.LowStockThreshold(context.Background()))
}

func TestLowStockThreshold_UsesStoredValue(t *testing.T) {
	store := newFakeSettingsStore()
	store.settings[SettingLowStockThreshold] = models.Setting{
		Key:   SettingLowStockThreshold,
		Value: "12",
	}
	svc := NewSettingsService(store)

	assert.Equal(t, 12, svc.LowStockThreshold(context.Background()))
}

func TestLowStockThreshold_FallbackOnBadValue(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store)

	for _, value := range []string{"a dozen", "-3", ""} {
		store.settings[SettingLowStockThreshold] = models.Setting{
			Key:   SettingLowStockThreshold,
			Value: value,
		}
		assert.Equal(t, defaultLowStockThreshold, svc.LowStockThreshold(context.Background()),
			"value %q should fall back to the default", value)
	}
}

func TestSettings_UpsertThenGet(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	saved, err := svc.Upsert(context.Background(), "store_currency", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", saved.Value)

	got, err := svc.Get(context.Background(), "store_currency")
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Value)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettings_GetMissingKey(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	_, err := svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, models.ErrNotFound)
}
