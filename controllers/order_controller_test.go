package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is a minimal in-memory repositories.OrderStore for handler tests.
// It does not emulate rollback; transactional behavior is covered by the
// service tests.
type memStore struct {
	orders map[string]models.Order
	items  map[string][]models.OrderItem
	stock  map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		orders: map[string]models.Order{},
		items:  map[string][]models.OrderItem{},
		stock:  map[string]int{"ring-1": 5},
	}
}

func (m *memStore) InTx(_ context.Context, fn func(repositories.OrderStore) error) error {
	return fn(m)
}

func (m *memStore) ListOrders(_ context.Context, _ models.OrderFilter) ([]models.Order, int, error) {
	out := []models.Order{}
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (m *memStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	o.Items = m.items[id]
	o.User = &models.UserSummary{ID: o.UserID, Email: "ada@example.com"}
	return &o, nil
}

func (m *memStore) InsertOrder(_ context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(m.orders)+1)
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memStore) UpdateOrderFields(_ context.Context, id string, upd models.OrderUpdate) error {
	o, ok := m.orders[id]
	if !ok {
		return models.ErrNotFound
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	m.orders[id] = o
	return nil
}

func (m *memStore) InsertOrderItem(_ context.Context, item *models.OrderItem) error {
	m.items[item.OrderID] = append(m.items[item.OrderID], *item)
	return nil
}

func (m *memStore) DeleteOrderItems(_ context.Context, orderID string) error {
	delete(m.items, orderID)
	return nil
}

func (m *memStore) AdjustInventory(_ context.Context, productID string, stockDelta, _ int) error {
	s, ok := m.stock[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, models.ErrNotFound)
	}
	if s+stockDelta < 0 {
		return fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
	}
	m.stock[productID] = s + stockDelta
	return nil
}

func (m *memStore) RecordUserPurchase(_ context.Context, _ string, _ decimal.Decimal, _ time.Time) error {
	return nil
}

var _ repositories.OrderStore = (*memStore)(nil)

func newTestRouter() (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	svc := services.NewOrderService(store, zap.NewNop())
	ctrl := NewOrderController(svc, nil, zap.NewNop())

	r := gin.New()
	r.GET("/admin/orders", ctrl.GetAllOrders)
	r.GET("/admin/orders/:id", ctrl.GetOrderByID)
	r.POST("/admin/orders", ctrl.CreateOrder)
	r.PATCH("/admin/orders/:id", ctrl.UpdateOrder)
	r.PATCH("/admin/orders/:id/status", ctrl.UpdateOrderStatus)
	return r, store
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{
	"user_id": "user-1",
	"payment_method": "card",
	"subtotal": "10.00",
	"total": "10.00",
	"items": [{"product_id": "ring-1", "quantity": 1, "unit_price": "10.00"}]
}`

func TestCreateOrder_Created(t *testing.T) {
	r, store := newTestRouter()

	w := doJSON(r, http.MethodPost, "/admin/orders", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"order_number":"ORD-`)
	assert.Equal(t, 4, store.stock["ring-1"])
}

func TestCreateOrder_MissingItemsRejected(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodPost, "/admin/orders",
		`{"user_id": "user-1", "payment_method": "card", "subtotal": "10.00", "total": "10.00", "items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	r, _ := newTestRouter()

	body := strings.Replace(createBody, `"quantity": 1`, `"quantity": 6`, 1)
	w := doJSON(r, http.MethodPost, "/admin/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient stock")
}

func TestGetOrder_NotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodGet, "/admin/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders_InvalidStatusFilter(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(r, http.MethodGet, "/admin/orders?status=BOGUS", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus_OK(t *testing.T) {
	r, _ := newTestRouter()

	created := doJSON(r, http.MethodPost, "/admin/orders", createBody)
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(r, http.MethodPatch, "/admin/orders/order-1/status", `{"status": "SHIPPED"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"SHIPPED"`)
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	r, _ := newTestRouter()

	created := doJSON(r, http.MethodPost, "/admin/orders", createBody)
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(r, http.MethodPatch, "/admin/orders/order-1/status", `{"status": "TELEPORTED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
