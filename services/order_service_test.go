package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProduct carries the inventory slice of a product that the workflow
// touches.
type fakeProduct struct {
	Name  string
	SKU   string
	Stock int
	Sold  int
}

type fakeUser struct {
	Email        string
	FullName     string
	Role         string
	TotalSpent   decimal.Decimal
	LastPurchase *time.Time
}

// fakeStore is an in-memory repositories.OrderStore. InTx snapshots all
// state and restores it when the callback fails, mirroring the rollback
// guarantee of the real transaction-bound store.
type fakeStore struct {
	orders   map[string]models.Order
	items    map[string][]models.OrderItem
	products map[string]fakeProduct
	users    map[string]fakeUser

	failInsertItem bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   map[string]models.Order{},
		items:    map[string][]models.OrderItem{},
		products: map[string]fakeProduct{},
		users:    map[string]fakeUser{},
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	s := newFakeStore()
	for k, v := range f.orders {
		s.orders[k] = v
	}
	for k, v := range f.items {
		s.items[k] = append([]models.OrderItem{}, v...)
	}
	for k, v := range f.products {
		s.products[k] = v
	}
	for k, v := range f.users {
		s.users[k] = v
	}
	return s
}

func (f *fakeStore) InTx(_ context.Context, fn func(repositories.OrderStore) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.orders, f.items, f.products, f.users = snap.orders, snap.items, snap.products, snap.users
		return err
	}
	return nil
}

func (f *fakeStore) ListOrders(_ context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	out := []models.Order{}
	for id := range f.orders {
		o, _ := f.populate(id)
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, len(out), nil
}

func (f *fakeStore) populate(id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	o.Items = append([]models.OrderItem{}, f.items[id]...)
	if u, ok := f.users[o.UserID]; ok {
		o.User = &models.UserSummary{ID: o.UserID, Email: u.Email, FullName: u.FullName, Role: u.Role}
	}
	return &o, nil
}

func (f *fakeStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	return f.populate(id)
}

func (f *fakeStore) InsertOrder(_ context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeStore) UpdateOrderFields(_ context.Context, id string, upd models.OrderUpdate) error {
	o, ok := f.orders[id]
	if !ok {
		return models.ErrNotFound
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.PaymentMethod != nil {
		o.PaymentMethod = *upd.PaymentMethod
	}
	if upd.PaymentStatus != nil {
		o.PaymentStatus = *upd.PaymentStatus
	}
	if upd.Subtotal != nil {
		o.Subtotal = *upd.Subtotal
	}
	if upd.DiscountTotal != nil {
		o.DiscountTotal = *upd.DiscountTotal
	}
	if upd.ShippingTotal != nil {
		o.ShippingTotal = *upd.ShippingTotal
	}
	if upd.TaxTotal != nil {
		o.TaxTotal = *upd.TaxTotal
	}
	if upd.Total != nil {
		o.Total = *upd.Total
	}
	if upd.Notes != nil {
		o.Notes = upd.Notes
	}
	if upd.TrackingNumber != nil {
		o.TrackingNumber = upd.TrackingNumber
	}
	if upd.TrackingCarrier != nil {
		o.TrackingCarrier = upd.TrackingCarrier
	}
	if upd.EstimatedDelivery != nil {
		o.EstimatedDelivery = upd.EstimatedDelivery
	}
	if upd.CompletedAt != nil {
		o.CompletedAt = upd.CompletedAt
	}
	if upd.CanceledAt != nil {
		o.CanceledAt = upd.CanceledAt
	}
	if upd.RefundedAt != nil {
		o.RefundedAt = upd.RefundedAt
	}
	o.UpdatedAt = time.Now().UTC()
	f.orders[id] = o
	return nil
}

func (f *fakeStore) InsertOrderItem(_ context.Context, item *models.OrderItem) error {
	if f.failInsertItem {
		return errors.New("simulated insert failure")
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(f.items[item.OrderID])+1)
	}
	if p, ok := f.products[item.ProductID]; ok {
		item.ProductName = p.Name
		item.ProductSKU = p.SKU
	}
	f.items[item.OrderID] = append(f.items[item.OrderID], *item)
	return nil
}

func (f *fakeStore) DeleteOrderItems(_ context.Context, orderID string) error {
	delete(f.items, orderID)
	return nil
}

func (f *fakeStore) AdjustInventory(_ context.Context, productID string, stockDelta, soldDelta int) error {
	p, ok := f.products[productID]
	if !ok {
		return fmt.Errorf("product %s: %w", productID, models.ErrNotFound)
	}
	if p.Stock+stockDelta < 0 {
		return fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
	}
	p.Stock += stockDelta
	p.Sold += soldDelta
	f.products[productID] = p
	return nil
}

func (f *fakeStore) RecordUserPurchase(_ context.Context, userID string, amount decimal.Decimal, at time.Time) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	u.TotalSpent = u.TotalSpent.Add(amount)
	u.LastPurchase = &at
	f.users[userID] = u
	return nil
}

var _ repositories.OrderStore = (*fakeStore)(nil)

func newTestService() (*OrderService, *fakeStore) {
	store := newFakeStore()
	store.users["user-1"] = fakeUser{Email: "ada@example.com", FullName: "Ada Byron", Role: models.RoleCustomer}
	store.products["ring-1"] = fakeProduct{Name: "Solitaire Ring", SKU: "RING-001", Stock: 10}
	store.products["chain-1"] = fakeProduct{Name: "Curb Chain", SKU: "CHAIN-001", Stock: 10}
	return NewOrderService(store, zap.NewNop()), store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func twoItemRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		UserID:        "user-1",
		PaymentMethod: "card",
		Subtotal:      dec("25.00"),
		TaxTotal:      dec("2.00"),
		ShippingTotal: dec("3.00"),
		Total:         dec("30.00"),
		Items: []models.OrderItemInput{
			{ProductID: "ring-1", Quantity: 2, UnitPrice: dec("10.00")},
			{ProductID: "chain-1", Quantity: 1, UnitPrice: dec("5.00")},
		},
	}
}

func TestCreateOrder_AdjustsInventoryAndSpend(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Total.Equal(dec("20.00")), "got %s", order.Items[0].Total)
	assert.True(t, order.Items[1].Total.Equal(dec("5.00")), "got %s", order.Items[1].Total)

	assert.Equal(t, 8, store.products["ring-1"].Stock)
	assert.Equal(t, 2, store.products["ring-1"].Sold)
	assert.Equal(t, 9, store.products["chain-1"].Stock)
	assert.Equal(t, 1, store.products["chain-1"].Sold)

	u := store.users["user-1"]
	assert.True(t, u.TotalSpent.Equal(dec("30.00")), "got %s", u.TotalSpent)
	require.NotNil(t, u.LastPurchase)
}

func TestCreateOrder_OrderNumberFormat(t *testing.T) {
	svc, _ := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{13}-[0-9A-F]{8}$`), order.OrderNumber)
}

func TestCreateOrder_TotalsConsistency(t *testing.T) {
	// The caller supplies the breakdown; the workflow stores it verbatim.
	// This pins down the expectation total = subtotal - discount + shipping + tax.
	svc, _ := newTestService()

	req := twoItemRequest()
	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	want := order.Subtotal.Sub(order.DiscountTotal).Add(order.ShippingTotal).Add(order.TaxTotal)
	assert.True(t, order.Total.Equal(want), "total %s != computed %s", order.Total, want)
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	svc, _ := newTestService()

	req := twoItemRequest()
	created, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	fetched, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.OrderNumber, fetched.OrderNumber)
	assert.Equal(t, req.UserID, fetched.UserID)
	assert.True(t, fetched.Total.Equal(req.Total))
	require.Len(t, fetched.Items, len(req.Items))
	for i, in := range req.Items {
		assert.Equal(t, in.ProductID, fetched.Items[i].ProductID)
		assert.Equal(t, in.Quantity, fetched.Items[i].Quantity)
		assert.True(t, fetched.Items[i].UnitPrice.Equal(in.UnitPrice))
	}
}

func TestCreateOrder_UnknownProductRollsBack(t *testing.T) {
	svc, store := newTestService()

	req := twoItemRequest()
	req.Items[1].ProductID = "missing"

	_, err := svc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, models.ErrNotFound)

	// nothing from the unit of work survives
	assert.Empty(t, store.orders)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
	assert.Equal(t, 0, store.products["ring-1"].Sold)
	assert.True(t, store.users["user-1"].TotalSpent.IsZero())
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	svc, store := newTestService()

	req := twoItemRequest()
	req.Items[0].Quantity = 11

	_, err := svc.CreateOrder(context.Background(), req)
	require.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Empty(t, store.orders)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
}

func TestCreateOrder_MidwayFailureLeavesNoPartialState(t *testing.T) {
	svc, store := newTestService()
	store.failInsertItem = true

	_, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.Error(t, err)
	assert.Empty(t, store.orders)
	assert.Empty(t, store.items)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
}

func TestUpdateOrderStatus_CancelRestocks(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusCanceled})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCanceled, updated.Status)
	require.NotNil(t, updated.CanceledAt)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
	assert.Equal(t, 0, store.products["ring-1"].Sold)
	assert.Equal(t, 10, store.products["chain-1"].Stock)
	assert.Equal(t, 0, store.products["chain-1"].Sold)
}

func TestUpdateOrderStatus_CancelIsIdempotent(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	first, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusCanceled})
	require.NoError(t, err)

	second, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusCanceled})
	require.NoError(t, err)

	// no double restock, no re-stamp
	assert.Equal(t, 10, store.products["ring-1"].Stock)
	assert.Equal(t, 0, store.products["ring-1"].Sold)
	assert.Equal(t, first.CanceledAt, second.CanceledAt)
}

func TestUpdateOrderStatus_DeliveredStampsOnce(t *testing.T) {
	svc, _ := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	first, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	second, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, first.CompletedAt, second.CompletedAt)
}

func TestUpdateOrderStatus_PlainTransitionHasNoSideEffects(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	tracking := "1Z999"
	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID,
		models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped, TrackingNumber: &tracking})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	assert.Nil(t, updated.CompletedAt)
	assert.Nil(t, updated.CanceledAt)
	require.NotNil(t, updated.TrackingNumber)
	assert.Equal(t, tracking, *updated.TrackingNumber)
	assert.Equal(t, 8, store.products["ring-1"].Stock)
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateOrderStatus(context.Background(), "missing",
		models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateOrder_ReplacesItems(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	newItems := []models.OrderItemInput{
		{ProductID: "chain-1", Quantity: 3, UnitPrice: dec("5.00"), Discount: dec("1.00")},
	}
	updated, err := svc.UpdateOrder(context.Background(), order.ID,
		models.UpdateOrderRequest{Items: &newItems})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.True(t, updated.Items[0].Total.Equal(dec("12.00")), "got %s", updated.Items[0].Total)

	// old effect reversed, new applied
	assert.Equal(t, 10, store.products["ring-1"].Stock)
	assert.Equal(t, 0, store.products["ring-1"].Sold)
	assert.Equal(t, 7, store.products["chain-1"].Stock)
	assert.Equal(t, 3, store.products["chain-1"].Sold)
}

func TestUpdateOrder_EmptySliceClearsItems(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	empty := []models.OrderItemInput{}
	updated, err := svc.UpdateOrder(context.Background(), order.ID,
		models.UpdateOrderRequest{Items: &empty})
	require.NoError(t, err)

	assert.Empty(t, updated.Items)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
	assert.Equal(t, 10, store.products["chain-1"].Stock)
}

func TestUpdateOrder_NilItemsKeepsItems(t *testing.T) {
	svc, store := newTestService()

	order, err := svc.CreateOrder(context.Background(), twoItemRequest())
	require.NoError(t, err)

	notes := "gift wrap"
	updated, err := svc.UpdateOrder(context.Background(), order.ID,
		models.UpdateOrderRequest{Notes: &notes})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, 8, store.products["ring-1"].Stock)
}

func TestUpdateOrder_NotFoundHasNoSideEffects(t *testing.T) {
	svc, store := newTestService()

	items := []models.OrderItemInput{{ProductID: "ring-1", Quantity: 1, UnitPrice: dec("10.00")}}
	_, err := svc.UpdateOrder(context.Background(), "missing", models.UpdateOrderRequest{Items: &items})
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 10, store.products["ring-1"].Stock)
}
