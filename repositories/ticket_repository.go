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
)

// TicketStore is the ticket persistence surface consumed by the ticket
// service.
type TicketStore interface {
	Create(ctx context.Context, t *models.Ticket) error
	FindAll(ctx context.Context, userID string, status *models.TicketStatus, limit, offset int) ([]models.Ticket, int, error)
	FindByID(ctx context.Context, id string) (*models.Ticket, error)
	Update(ctx context.Context, t *models.Ticket) error
	AddReply(ctx context.Context, reply *models.TicketReply) error
	ListReplies(ctx context.Context, ticketID string) ([]models.TicketReply, error)
}

type TicketRepository struct {
	db DB
}

var _ TicketStore = (*TicketRepository)(nil)

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db: pool}
}

const ticketColumns = `t.id, t.user_id, t.subject, t.body, t.status, t.priority, t.assigned_to,
	t.closed_at, t.created_at, t.updated_at, u.id, u.email, u.full_name, u.role`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	t := &models.Ticket{}
	u := &models.UserSummary{}
	err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Body, &t.Status, &t.Priority,
		&t.AssignedTo, &t.ClosedAt, &t.CreatedAt, &t.UpdatedAt,
		&u.ID, &u.Email, &u.FullName, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	t.User = u
	return t, nil
}

func (r *TicketRepository) Create(ctx context.Context, t *models.Ticket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO tickets (id, user_id, subject, body, status, priority, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		t.ID, t.UserID, t.Subject, t.Body, t.Status, t.Priority, now, now)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindAll(ctx context.Context, userID string, status *models.TicketStatus, limit, offset int) ([]models.Ticket, int, error) {
	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if userID != "" {
		where = append(where, fmt.Sprintf("t.user_id = $%d", argIndex))
		args = append(args, userID)
		argIndex++
	}
	if status != nil {
		where = append(where, fmt.Sprintf("t.status = $%d", argIndex))
		args = append(args, *status)
		argIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM tickets t" + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tickets t JOIN users u ON t.user_id = u.id%s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d",
		ticketColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, total, rows.Err()
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	return scanTicket(r.db.QueryRow(ctx,
		"SELECT "+ticketColumns+" FROM tickets t JOIN users u ON t.user_id = u.id WHERE t.id = $1", id))
}

func (r *TicketRepository) Update(ctx context.Context, t *models.Ticket) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tickets SET status = $1, priority = $2, assigned_to = $3, closed_at = $4, updated_at = $5
		WHERE id = $6`,
		t.Status, t.Priority, t.AssignedTo, t.ClosedAt, time.Now().UTC(), t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *TicketRepository) AddReply(ctx context.Context, reply *models.TicketReply) error {
	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}
	reply.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx, `
		INSERT INTO ticket_replies (id, ticket_id, author_id, body, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		reply.ID, reply.TicketID, reply.AuthorID, reply.Body, reply.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ticket reply: %w", err)
	}
	return nil
}

func (r *TicketRepository) ListReplies(ctx context.Context, ticketID string) ([]models.TicketReply, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ticket_id, author_id, body, created_at
		FROM ticket_replies WHERE ticket_id = $1 ORDER BY created_at`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []models.TicketReply{}
	for rows.Next() {
		var rep models.TicketReply
		if err := rows.Scan(&rep.ID, &rep.TicketID, &rep.AuthorID, &rep.Body, &rep.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, rep)
	}
	return replies, rows.Err()
}
