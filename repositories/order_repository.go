package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jewelry-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OrderStore is the persistence gateway consumed by the order workflow.
// InTx hands the callback a store bound to a single transaction; every
// write made through it commits or rolls back as one unit.
type OrderStore interface {
	InTx(ctx context.Context, fn func(OrderStore) error) error
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	InsertOrder(ctx context.Context, order *models.Order) error
	UpdateOrderFields(ctx context.Context, id string, upd models.OrderUpdate) error
	InsertOrderItem(ctx context.Context, item *models.OrderItem) error
	DeleteOrderItems(ctx context.Context, orderID string) error
	AdjustInventory(ctx context.Context, productID string, stockDelta, soldDelta int) error
	RecordUserPurchase(ctx context.Context, userID string, amount decimal.Decimal, at time.Time) error
}

type OrderRepository struct {
	db   DB
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: pool, pool: pool}
}

// InTx runs fn against a transaction-bound copy of the repository. A nil
// pool means the repository is already transaction-bound, so fn reuses it.
func (r *OrderRepository) InTx(ctx context.Context, fn func(OrderStore) error) error {
	if r.pool == nil {
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&OrderRepository{db: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var orderSortColumns = map[string]string{
	"created_at":   "o.created_at",
	"total":        "o.total",
	"order_number": "o.order_number",
	"status":       "o.status",
}

const orderColumns = `
	o.id, o.order_number, o.user_id, o.status, o.payment_method, o.payment_status,
	o.subtotal, o.discount_total, o.shipping_total, o.tax_total, o.total,
	o.notes, o.tracking_number, o.tracking_carrier, o.estimated_delivery,
	o.billing_address_id, o.shipping_address_id, o.created_by,
	o.completed_at, o.canceled_at, o.refunded_at, o.created_at, o.updated_at,
	u.id, u.email, u.full_name, u.role`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var u models.UserSummary
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentMethod, &o.PaymentStatus,
		&o.Subtotal, &o.DiscountTotal, &o.ShippingTotal, &o.TaxTotal, &o.Total,
		&o.Notes, &o.TrackingNumber, &o.TrackingCarrier, &o.EstimatedDelivery,
		&o.BillingAddressID, &o.ShippingAddressID, &o.CreatedBy,
		&o.CompletedAt, &o.CanceledAt, &o.RefundedAt, &o.CreatedAt, &o.UpdatedAt,
		&u.ID, &u.Email, &u.FullName, &u.Role,
	)
	if err != nil {
		return nil, err
	}
	o.User = &u
	return &o, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(o.order_number ILIKE $%d OR u.full_name ILIKE $%d OR u.email ILIKE $%d)",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.CreatedFrom != nil {
		where = append(where, fmt.Sprintf("o.created_at >= $%d", argIndex))
		args = append(args, *filter.CreatedFrom)
		argIndex++
	}
	if filter.CreatedTo != nil {
		where = append(where, fmt.Sprintf("o.created_at <= $%d", argIndex))
		args = append(args, *filter.CreatedTo)
		argIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM orders o JOIN users u ON o.user_id = u.id" + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	sortCol, ok := orderSortColumns[filter.SortBy]
	if !ok {
		sortCol = "o.created_at"
	}
	sortDir := "DESC"
	if strings.EqualFold(filter.SortDir, "asc") {
		sortDir = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM orders o JOIN users u ON o.user_id = u.id%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		orderColumns, whereClause, sortCol, sortDir, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		if err := r.loadRelations(ctx, &orders[i]); err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders o JOIN users u ON o.user_id = u.id WHERE o.id = $1"

	o, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadRelations(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) loadRelations(ctx context.Context, o *models.Order) error {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.variant_id, p.name, p.sku,
		       oi.quantity, oi.unit_price, oi.discount, oi.total, oi.notes
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at`, o.ID)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.VariantID,
			&it.ProductName, &it.ProductSKU, &it.Quantity,
			&it.UnitPrice, &it.Discount, &it.Total, &it.Notes); err != nil {
			return err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	o.Items = items

	if o.BillingAddressID != nil {
		if o.BillingAddress, err = r.getAddress(ctx, *o.BillingAddressID); err != nil {
			return err
		}
	}
	if o.ShippingAddressID != nil {
		if o.ShippingAddress, err = r.getAddress(ctx, *o.ShippingAddressID); err != nil {
			return err
		}
	}

	if o.CreatedBy != nil {
		var c models.UserSummary
		err := r.db.QueryRow(ctx,
			"SELECT id, email, full_name, role FROM users WHERE id = $1", *o.CreatedBy).
			Scan(&c.ID, &c.Email, &c.FullName, &c.Role)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if err == nil {
			o.Creator = &c
		}
	}
	return nil
}

func (r *OrderRepository) getAddress(ctx context.Context, id string) (*models.Address, error) {
	var a models.Address
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, label, line1, line2, city, state, postal_code, country, created_at, updated_at
		FROM addresses WHERE id = $1`, id).
		Scan(&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2, &a.City, &a.State,
			&a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *OrderRepository) InsertOrder(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, status, payment_method, payment_status,
			subtotal, discount_total, shipping_total, tax_total, total,
			notes, billing_address_id, shipping_address_id, created_by,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		order.ID, order.OrderNumber, order.UserID, order.Status, order.PaymentMethod,
		order.PaymentStatus, order.Subtotal, order.DiscountTotal, order.ShippingTotal,
		order.TaxTotal, order.Total, order.Notes, order.BillingAddressID,
		order.ShippingAddressID, order.CreatedBy, now, now)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateOrderFields(ctx context.Context, id string, upd models.OrderUpdate) error {
	set := []string{}
	args := []interface{}{}
	argIndex := 1

	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, argIndex))
		args = append(args, val)
		argIndex++
	}

	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.PaymentMethod != nil {
		add("payment_method", *upd.PaymentMethod)
	}
	if upd.PaymentStatus != nil {
		add("payment_status", *upd.PaymentStatus)
	}
	if upd.Subtotal != nil {
		add("subtotal", *upd.Subtotal)
	}
	if upd.DiscountTotal != nil {
		add("discount_total", *upd.DiscountTotal)
	}
	if upd.ShippingTotal != nil {
		add("shipping_total", *upd.ShippingTotal)
	}
	if upd.TaxTotal != nil {
		add("tax_total", *upd.TaxTotal)
	}
	if upd.Total != nil {
		add("total", *upd.Total)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.TrackingNumber != nil {
		add("tracking_number", *upd.TrackingNumber)
	}
	if upd.TrackingCarrier != nil {
		add("tracking_carrier", *upd.TrackingCarrier)
	}
	if upd.EstimatedDelivery != nil {
		add("estimated_delivery", *upd.EstimatedDelivery)
	}
	if upd.BillingAddressID != nil {
		add("billing_address_id", *upd.BillingAddressID)
	}
	if upd.ShippingAddressID != nil {
		add("shipping_address_id", *upd.ShippingAddressID)
	}
	if upd.CompletedAt != nil {
		add("completed_at", *upd.CompletedAt)
	}
	if upd.CanceledAt != nil {
		add("canceled_at", *upd.CanceledAt)
	}
	if upd.RefundedAt != nil {
		add("refunded_at", *upd.RefundedAt)
	}

	set = append(set, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now().UTC())
	argIndex++

	args = append(args, id)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(set, ", "), argIndex)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) InsertOrderItem(ctx context.Context, item *models.OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO order_items (id, order_id, product_id, variant_id, quantity, unit_price, discount, total, notes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		item.ID, item.OrderID, item.ProductID, item.VariantID, item.Quantity,
		item.UnitPrice, item.Discount, item.Total, item.Notes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

func (r *OrderRepository) DeleteOrderItems(ctx context.Context, orderID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// AdjustInventory applies relative deltas to a product's counters and keeps
// the derived stock status in step. A negative stock delta only matches rows
// with enough stock, so overselling fails inside the owning transaction
// instead of racing a read-modify-write in application code.
func (r *OrderRepository) AdjustInventory(ctx context.Context, productID string, stockDelta, soldDelta int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET stock = stock + $1,
		    sold_count = sold_count + $2,
		    status = CASE WHEN stock + $1 > 0 THEN 'in_stock' ELSE 'out_of_stock' END,
		    updated_at = now()
		WHERE id = $3 AND stock + $1 >= 0`,
		stockDelta, soldDelta, productID)
	if err != nil {
		return fmt.Errorf("adjust inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", productID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("product %s: %w", productID, models.ErrNotFound)
		}
		return fmt.Errorf("product %s: %w", productID, models.ErrInsufficientStock)
	}
	return nil
}

func (r *OrderRepository) RecordUserPurchase(ctx context.Context, userID string, amount decimal.Decimal, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET total_spent = total_spent + $1, last_purchase = $2, updated_at = now()
		WHERE id = $3`,
		amount, at, userID)
	if err != nil {
		return fmt.Errorf("record user purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	return nil
}
