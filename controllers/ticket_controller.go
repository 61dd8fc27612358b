package controllers

import (
	"net/http"

	"jewelry-shop/models"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
)

type TicketController struct {
	ticketService *services.TicketService
}

func NewTicketController(ticketService *services.TicketService) *TicketController {
	return &TicketController{ticketService: ticketService}
}

// @Summary List tickets
// @Description List support tickets; staff see all, customers only their own
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by ticket status"
// @Success 200 {object} models.PaginationResponse
// @Router /tickets [get]
func (ctrl *TicketController) GetAllTickets(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	// customers are scoped to their own tickets
	userID := ""
	if role := c.GetString("user_role"); role == models.RoleCustomer {
		userID = c.GetString("user_id")
	}

	var status *models.TicketStatus
	if raw := c.Query("status"); raw != "" {
		s := models.TicketStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ticket status"})
			return
		}
		status = &s
	}

	resp, err := ctrl.ticketService.GetAllTickets(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve tickets")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get ticket by ID
// @Description Get a ticket with its reply thread
// @Tags Tickets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id} [get]
func (ctrl *TicketController) GetTicketByID(c *gin.Context) {
	ticket, replies, err := ctrl.ticketService.GetTicketByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve ticket")
		return
	}

	if role := c.GetString("user_role"); role == models.RoleCustomer && ticket.UserID != c.GetString("user_id") {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ticket retrieved successfully",
		Data: gin.H{
			"ticket":  ticket,
			"replies": replies,
		},
	})
}

// @Summary Create ticket
// @Description Open a support ticket for the authenticated user
// @Tags Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ticket body models.CreateTicketRequest true "Ticket data"
// @Success 201 {object} models.Response
// @Router /tickets [post]
func (ctrl *TicketController) CreateTicket(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	ticket, err := ctrl.ticketService.CreateTicket(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Ticket created successfully",
		Data:    ticket,
	})
}

// @Summary Update ticket
// @Description Update ticket status, priority or assignee (Admin)
// @Tags Admin - Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body models.UpdateTicketRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tickets/{id} [patch]
func (ctrl *TicketController) UpdateTicket(c *gin.Context) {
	var req models.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	ticket, err := ctrl.ticketService.UpdateTicket(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ticket updated successfully",
		Data:    ticket,
	})
}

// @Summary Reply to ticket
// @Description Post a reply; the customer is notified by email (Admin)
// @Tags Admin - Tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param reply body models.ReplyTicketRequest true "Reply body"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tickets/{id}/replies [post]
func (ctrl *TicketController) ReplyToTicket(c *gin.Context) {
	var req models.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	reply, err := ctrl.ticketService.ReplyToTicket(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, err, "Failed to reply to ticket")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Reply posted successfully",
		Data:    reply,
	})
}
