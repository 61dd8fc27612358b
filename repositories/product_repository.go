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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: pool}
}

const productColumns = `id, collection_id, name, sku, description, material, gemstone, price, stock,
	sold_count, status, image_url, cloudinary_id, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.CollectionID, &p.Name, &p.SKU, &p.Description, &p.Material,
		&p.Gemstone, &p.Price, &p.Stock, &p.SoldCount, &p.Status, &p.ImageURL,
		&p.CloudinaryID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Status = models.StatusForStock(p.Stock)
	p.IsActive = true

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, collection_id, name, sku, description, material, gemstone,
			price, stock, sold_count, status, image_url, cloudinary_id, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,0,$10,$11,$12,true,$13,$14)`,
		p.ID, p.CollectionID, p.Name, p.SKU, p.Description, p.Material, p.Gemstone,
		p.Price, p.Stock, p.Status, p.ImageURL, p.CloudinaryID, now, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateRecord
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	where := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.CollectionID != "" {
		where = append(where, fmt.Sprintf("collection_id = $%d", argIndex))
		args = append(args, filter.CollectionID)
		argIndex++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		productColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return scanProduct(r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id))
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	p.Status = models.StatusForStock(p.Stock)
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET collection_id = $1, name = $2, sku = $3, description = $4,
			material = $5, gemstone = $6, price = $7, stock = $8, status = $9,
			image_url = $10, cloudinary_id = $11, is_active = $12, updated_at = $13
		WHERE id = $14`,
		p.CollectionID, p.Name, p.SKU, p.Description, p.Material, p.Gemstone,
		p.Price, p.Stock, p.Status, p.ImageURL, p.CloudinaryID, p.IsActive,
		time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
