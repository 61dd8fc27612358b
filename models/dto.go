package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=3"`
	Phone    *string `json:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=customer staff admin"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=customer staff admin"`
	IsActive *bool   `json:"is_active"`
}

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateCollectionRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

type CreateProductRequest struct {
	CollectionID *string         `json:"collection_id"`
	Name         string          `json:"name" binding:"required"`
	SKU          string          `json:"sku" binding:"required"`
	Description  string          `json:"description"`
	Material     string          `json:"material" binding:"required"`
	Gemstone     string          `json:"gemstone"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Stock        int             `json:"stock" binding:"gte=0"`
	ImageURL     string          `json:"image_url"`
}

type UpdateProductRequest struct {
	CollectionID *string          `json:"collection_id"`
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Description  *string          `json:"description"`
	Material     *string          `json:"material"`
	Gemstone     *string          `json:"gemstone"`
	Price        *decimal.Decimal `json:"price"`
	Stock        *int             `json:"stock" binding:"omitempty,gte=0"`
	ImageURL     *string          `json:"image_url"`
	IsActive     *bool            `json:"is_active"`
}

type OrderItemInput struct {
	ProductID string          `json:"product_id" binding:"required"`
	VariantID *string         `json:"variant_id"`
	Quantity  int             `json:"quantity" binding:"required,gte=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Discount  decimal.Decimal `json:"discount"`
	Notes     *string         `json:"notes"`
}

type CreateOrderRequest struct {
	UserID            string           `json:"user_id" binding:"required"`
	Status            *OrderStatus     `json:"status"`
	PaymentMethod     string           `json:"payment_method" binding:"required"`
	PaymentStatus     *PaymentStatus   `json:"payment_status"`
	Subtotal          decimal.Decimal  `json:"subtotal" binding:"required"`
	DiscountTotal     decimal.Decimal  `json:"discount_total"`
	ShippingTotal     decimal.Decimal  `json:"shipping_total"`
	TaxTotal          decimal.Decimal  `json:"tax_total"`
	Total             decimal.Decimal  `json:"total" binding:"required"`
	Notes             *string          `json:"notes"`
	BillingAddressID  *string          `json:"billing_address_id"`
	ShippingAddressID *string          `json:"shipping_address_id"`
	Items             []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	CreatedBy         *string          `json:"created_by"`
}

// UpdateOrderRequest patches an order. Items is a tagged replacement: nil
// leaves the item set alone, a non-nil slice replaces it wholesale, and an
// explicit empty slice clears it.
type UpdateOrderRequest struct {
	Status            *OrderStatus      `json:"status"`
	PaymentMethod     *string           `json:"payment_method"`
	PaymentStatus     *PaymentStatus    `json:"payment_status"`
	Subtotal          *decimal.Decimal  `json:"subtotal"`
	DiscountTotal     *decimal.Decimal  `json:"discount_total"`
	ShippingTotal     *decimal.Decimal  `json:"shipping_total"`
	TaxTotal          *decimal.Decimal  `json:"tax_total"`
	Total             *decimal.Decimal  `json:"total"`
	Notes             *string           `json:"notes"`
	BillingAddressID  *string           `json:"billing_address_id"`
	ShippingAddressID *string           `json:"shipping_address_id"`
	Items             *[]OrderItemInput `json:"items" binding:"omitempty,dive"`
}

type UpdateOrderStatusRequest struct {
	Status            OrderStatus `json:"status" binding:"required"`
	Notes             *string     `json:"notes"`
	TrackingNumber    *string     `json:"tracking_number"`
	TrackingCarrier   *string     `json:"tracking_carrier"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery"`
}

type CreateTicketRequest struct {
	Subject  string          `json:"subject" binding:"required"`
	Body     string          `json:"body" binding:"required"`
	Priority *TicketPriority `json:"priority"`
}

type UpdateTicketRequest struct {
	Status     *TicketStatus   `json:"status"`
	Priority   *TicketPriority `json:"priority"`
	AssignedTo *string         `json:"assigned_to"`
}

type ReplyTicketRequest struct {
	Body string `json:"body" binding:"required"`
}

type UpsertSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}
