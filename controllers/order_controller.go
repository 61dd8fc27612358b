package controllers

import (
	"net/http"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	orderService *services.OrderService
	emailService *models.EmailService
	log          *zap.Logger
}

func NewOrderController(orderService *services.OrderService, emailService *models.EmailService, log *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, emailService: emailService, log: log}
}

func parseOrderFilter(c *gin.Context) (models.OrderFilter, error) {
	filter := models.OrderFilter{
		Search:  c.Query("search"),
		SortBy:  c.DefaultQuery("sort_by", "created_at"),
		SortDir: c.DefaultQuery("sort_dir", "desc"),
	}

	if raw := c.Query("status"); raw != "" && raw != "All" {
		status := models.OrderStatus(raw)
		if !status.Valid() {
			return filter, models.ErrInvalidStatus
		}
		filter.Status = &status
	}
	if raw := c.Query("created_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.CreatedFrom = &t
	}
	if raw := c.Query("created_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.CreatedTo = &t
	}
	return filter, nil
}

// @Summary List orders
// @Description List orders with filtering, sorting and pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by order number, customer name or email"
// @Param status query string false "Filter by order status"
// @Param created_from query string false "Created at lower bound (RFC3339)"
// @Param created_to query string false "Created at upper bound (RFC3339)"
// @Param sort_by query string false "Sort column (created_at, total, status, order_number)"
// @Param sort_dir query string false "Sort direction (asc, desc)"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	filter, err := parseOrderFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid filter", "error": err.Error()})
		return
	}

	resp, err := ctrl.orderService.ListOrders(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve orders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get order by ID
// @Description Get one order with items, customer and addresses (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Create order
// @Description Create an order with line items; decrements stock and updates customer spend atomically (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	if req.CreatedBy == nil {
		if staffID := c.GetString("user_id"); staffID != "" {
			req.CreatedBy = &staffID
		}
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	// confirmation mail is best effort; the order is already committed
	if ctrl.emailService != nil && order.User != nil {
		if err := ctrl.emailService.SendOrderConfirmationEmail(order.User.Email, order.OrderNumber, order.Total); err != nil {
			ctrl.log.Warn("order confirmation email failed",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// @Summary Update order
// @Description Patch order fields; a non-null items array replaces the line items and re-applies inventory (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body models.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [patch]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// @Summary Update order status
// @Description Change order status; delivery stamps completion, cancellation restocks items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}
