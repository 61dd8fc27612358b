package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            string          `json:"user_id"`
	User              *UserSummary    `json:"user,omitempty"`
	Status            OrderStatus     `json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DiscountTotal     decimal.Decimal `json:"discount_total"`
	ShippingTotal     decimal.Decimal `json:"shipping_total"`
	TaxTotal          decimal.Decimal `json:"tax_total"`
	Total             decimal.Decimal `json:"total"`
	Notes             *string         `json:"notes,omitempty"`
	TrackingNumber    *string         `json:"tracking_number,omitempty"`
	TrackingCarrier   *string         `json:"tracking_carrier,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	BillingAddressID  *string         `json:"billing_address_id,omitempty"`
	ShippingAddressID *string         `json:"shipping_address_id,omitempty"`
	BillingAddress    *Address        `json:"billing_address,omitempty"`
	ShippingAddress   *Address        `json:"shipping_address,omitempty"`
	CreatedBy         *string         `json:"created_by,omitempty"`
	Creator           *UserSummary    `json:"creator,omitempty"`
	Items             []OrderItem     `json:"items,omitempty"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	CanceledAt        *time.Time      `json:"canceled_at,omitempty"`
	RefundedAt        *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   string          `json:"product_id"`
	VariantID   *string         `json:"variant_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Notes       *string         `json:"notes,omitempty"`
}

// LineTotal computes (unit price - discount) * quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Sub(i.Discount).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderFilter is the typed query filter for order listings. Zero/nil fields
// apply no constraint on that dimension.
type OrderFilter struct {
	Search      string
	Status      *OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortDir     string
	Limit       int
	Offset      int
}

// OrderUpdate is the typed partial update for an order row. Only non-nil
// fields are written.
type OrderUpdate struct {
	Status            *OrderStatus
	PaymentMethod     *string
	PaymentStatus     *PaymentStatus
	Subtotal          *decimal.Decimal
	DiscountTotal     *decimal.Decimal
	ShippingTotal     *decimal.Decimal
	TaxTotal          *decimal.Decimal
	Total             *decimal.Decimal
	Notes             *string
	TrackingNumber    *string
	TrackingCarrier   *string
	EstimatedDelivery *time.Time
	BillingAddressID  *string
	ShippingAddressID *string
	CompletedAt       *time.Time
	CanceledAt        *time.Time
	RefundedAt        *time.Time
}
