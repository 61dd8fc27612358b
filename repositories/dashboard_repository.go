package repositories

import (
	"context"
	"fmt"
	"time"

	"jewelry-shop/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository runs the aggregate queries behind the admin dashboard.
type DashboardRepository struct {
	db DB
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: pool}
}

// Totals counts revenue over non-canceled orders only.
func (r *DashboardRepository) Totals(ctx context.Context) (*models.DashboardTotals, error) {
	t := &models.DashboardTotals{}

	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM orders WHERE status <> 'CANCELED'`).
		Scan(&t.Revenue, &t.OrderCount)
	if err != nil {
		return nil, fmt.Errorf("order totals: %w", err)
	}

	err = r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE role = 'customer' AND is_active = true").
		Scan(&t.CustomerCount)
	if err != nil {
		return nil, fmt.Errorf("customer count: %w", err)
	}

	err = r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM orders WHERE status = 'PENDING'").
		Scan(&t.PendingOrders)
	if err != nil {
		return nil, fmt.Errorf("pending orders: %w", err)
	}

	err = r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM tickets WHERE status IN ('OPEN', 'IN_PROGRESS')").
		Scan(&t.OpenTickets)
	if err != nil {
		return nil, fmt.Errorf("open tickets: %w", err)
	}

	return t, nil
}

func (r *DashboardRepository) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE is_active = true AND stock <= $1 ORDER BY stock, name",
		threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// MonthlySales returns one row per month over the trailing year, oldest first.
func (r *DashboardRepository) MonthlySales(ctx context.Context, since time.Time) ([]models.MonthlySales, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE status <> 'CANCELED' AND created_at >= $1
		GROUP BY 1
		ORDER BY 1`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.MonthlySales{}
	for rows.Next() {
		var m models.MonthlySales
		if err := rows.Scan(&m.Month, &m.Orders, &m.Revenue); err != nil {
			return nil, err
		}
		sales = append(sales, m)
	}
	return sales, rows.Err()
}
