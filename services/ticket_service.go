package services

import (
	"context"
	"math"
	"time"

	"jewelry-shop/models"
	"jewelry-shop/repositories"

	"go.uber.org/zap"
)

type TicketService struct {
	ticketRepo repositories.TicketStore
	emailSvc   *models.EmailService
	log        *zap.Logger
}

// NewTicketService accepts a nil emailSvc; replies then skip the customer
// notification.
func NewTicketService(ticketRepo repositories.TicketStore, emailSvc *models.EmailService, log *zap.Logger) *TicketService {
	return &TicketService{ticketRepo: ticketRepo, emailSvc: emailSvc, log: log}
}

func (s *TicketService) GetAllTickets(ctx context.Context, userID string, status *models.TicketStatus, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tickets, total, err := s.ticketRepo.FindAll(ctx, userID, status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Tickets retrieved successfully",
		Data:    tickets,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *TicketService) GetTicketByID(ctx context.Context, id string) (*models.Ticket, []models.TicketReply, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	replies, err := s.ticketRepo.ListReplies(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return ticket, replies, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, userID string, req models.CreateTicketRequest) (*models.Ticket, error) {
	priority := models.PriorityNormal
	if req.Priority != nil && req.Priority.Valid() {
		priority = *req.Priority
	}

	ticket := &models.Ticket{
		UserID:   userID,
		Subject:  req.Subject,
		Body:     req.Body,
		Status:   models.TicketOpen,
		Priority: priority,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id string, req models.UpdateTicketRequest) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, models.ErrInvalidStatus
		}
		// closing stamps closed_at once; reopening clears it
		if *req.Status == models.TicketClosed && ticket.Status != models.TicketClosed {
			now := time.Now().UTC()
			ticket.ClosedAt = &now
		}
		if *req.Status != models.TicketClosed {
			ticket.ClosedAt = nil
		}
		ticket.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, models.ErrInvalidStatus
		}
		ticket.Priority = *req.Priority
	}
	if req.AssignedTo != nil {
		ticket.AssignedTo = req.AssignedTo
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ReplyToTicket stores the reply and notifies the customer by email. A mail
// failure is logged, not returned: the reply is already persisted.
func (s *TicketService) ReplyToTicket(ctx context.Context, id, authorID string, req models.ReplyTicketRequest) (*models.TicketReply, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reply := &models.TicketReply{
		TicketID: id,
		AuthorID: authorID,
		Body:     req.Body,
	}
	if err := s.ticketRepo.AddReply(ctx, reply); err != nil {
		return nil, err
	}

	if s.emailSvc != nil && ticket.User != nil {
		if err := s.emailSvc.SendTicketReplyEmail(ticket.User.Email, ticket.Subject, req.Body); err != nil {
			s.log.Warn("ticket reply email failed",
				zap.String("ticket_id", id),
				zap.Error(err))
		}
	}
	return reply, nil
}
