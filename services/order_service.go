package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"
	"jewelry-shop/utils"

	"go.uber.org/zap"
)

// OrderService is the order workflow engine. It enforces that order state,
// product inventory and customer spend always move together inside one
// transaction, and that status transitions trigger the right side effects.
type OrderService struct {
	store repositories.OrderStore
	log   *zap.Logger
}

func NewOrderService(store repositories.OrderStore, log *zap.Logger) *OrderService {
	return &OrderService{store: store, log: log}
}

// statusTransition keys the side-effect table by the (from, to) pair. The
// table is permissive: any pair not present is a plain field update, which
// lets staff correct mis-set statuses by hand.
type statusTransition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

type statusEffect func(ctx context.Context, tx repositories.OrderStore, order *models.Order, upd *models.OrderUpdate, now time.Time) error

var transitionEffects = map[statusTransition]statusEffect{}

func init() {
	for _, from := range models.OrderStatuses {
		if from != models.OrderStatusDelivered {
			transitionEffects[statusTransition{from, models.OrderStatusDelivered}] = markDelivered
		}
		if from != models.OrderStatusCanceled {
			transitionEffects[statusTransition{from, models.OrderStatusCanceled}] = cancelAndRestock
		}
	}
}

func markDelivered(_ context.Context, _ repositories.OrderStore, _ *models.Order, upd *models.OrderUpdate, now time.Time) error {
	upd.CompletedAt = &now
	return nil
}

// cancelAndRestock reverses every line item's inventory effect together with
// the status write. Entering CANCELED from CANCELED never reaches here, so
// a repeated cancellation cannot restock twice.
func cancelAndRestock(ctx context.Context, tx repositories.OrderStore, order *models.Order, upd *models.OrderUpdate, now time.Time) error {
	upd.CanceledAt = &now
	for _, item := range order.Items {
		if err := tx.AdjustInventory(ctx, item.ProductID, item.Quantity, -item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	orders, total, err := s.store.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// CreateOrder inserts the order, its items, the inventory decrements and the
// customer spend update as one atomic unit of work. Any failure rolls the
// whole unit back.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	status := models.OrderStatusPending
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, *req.Status)
		}
		status = *req.Status
	}
	paymentStatus := models.PaymentStatusPending
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, *req.PaymentStatus)
		}
		paymentStatus = *req.PaymentStatus
	}

	order := &models.Order{
		OrderNumber:       utils.GenerateOrderNumber(),
		UserID:            req.UserID,
		Status:            status,
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     paymentStatus,
		Subtotal:          req.Subtotal,
		DiscountTotal:     req.DiscountTotal,
		ShippingTotal:     req.ShippingTotal,
		TaxTotal:          req.TaxTotal,
		Total:             req.Total,
		Notes:             req.Notes,
		BillingAddressID:  req.BillingAddressID,
		ShippingAddressID: req.ShippingAddressID,
		CreatedBy:         req.CreatedBy,
	}

	err := s.store.InTx(ctx, func(tx repositories.OrderStore) error {
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := insertItems(ctx, tx, order.ID, req.Items); err != nil {
			return err
		}
		return tx.RecordUserPurchase(ctx, req.UserID, req.Total, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(req.Items)))

	return s.store.GetOrder(ctx, order.ID)
}

// insertItems writes the line items and applies their inventory effect:
// each unit added decrements stock and increments sold_count.
func insertItems(ctx context.Context, tx repositories.OrderStore, orderID string, items []models.OrderItemInput) error {
	for _, in := range items {
		item := &models.OrderItem{
			OrderID:   orderID,
			ProductID: in.ProductID,
			VariantID: in.VariantID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Discount:  in.Discount,
			Notes:     in.Notes,
		}
		item.Total = item.LineTotal()
		if err := tx.InsertOrderItem(ctx, item); err != nil {
			return err
		}
		if err := tx.AdjustInventory(ctx, in.ProductID, -in.Quantity, in.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// UpdateOrder patches scalar fields and, when req.Items is non-nil, replaces
// the item set wholesale: old items are deleted and their inventory effect
// reversed before the new items are inserted and applied. A non-nil empty
// slice clears the items.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, req models.UpdateOrderRequest) (*models.Order, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, *req.Status)
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, *req.PaymentStatus)
	}

	err := s.store.InTx(ctx, func(tx repositories.OrderStore) error {
		order, err := tx.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		upd := models.OrderUpdate{
			Status:            req.Status,
			PaymentMethod:     req.PaymentMethod,
			PaymentStatus:     req.PaymentStatus,
			Subtotal:          req.Subtotal,
			DiscountTotal:     req.DiscountTotal,
			ShippingTotal:     req.ShippingTotal,
			TaxTotal:          req.TaxTotal,
			Total:             req.Total,
			Notes:             req.Notes,
			BillingAddressID:  req.BillingAddressID,
			ShippingAddressID: req.ShippingAddressID,
		}

		if req.Items != nil {
			for _, item := range order.Items {
				if err := tx.AdjustInventory(ctx, item.ProductID, item.Quantity, -item.Quantity); err != nil {
					return err
				}
			}
			if err := tx.DeleteOrderItems(ctx, id); err != nil {
				return err
			}
			if err := insertItems(ctx, tx, id, *req.Items); err != nil {
				return err
			}
		}

		return tx.UpdateOrderFields(ctx, id, upd)
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetOrder(ctx, id)
}

// UpdateOrderStatus applies the (from, to) transition table. Transitions not
// in the table are plain field updates; the guarded entries stamp terminal
// timestamps and, for cancellation, restock atomically with the status write.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, req.Status)
	}

	err := s.store.InTx(ctx, func(tx repositories.OrderStore) error {
		order, err := tx.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		upd := models.OrderUpdate{
			Status:            &req.Status,
			Notes:             req.Notes,
			TrackingNumber:    req.TrackingNumber,
			TrackingCarrier:   req.TrackingCarrier,
			EstimatedDelivery: req.EstimatedDelivery,
		}

		if effect, ok := transitionEffects[statusTransition{order.Status, req.Status}]; ok {
			if err := effect(ctx, tx, order, &upd, now); err != nil {
				return err
			}
		}

		return tx.UpdateOrderFields(ctx, id, upd)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", string(req.Status)))

	return s.store.GetOrder(ctx, id)
}
