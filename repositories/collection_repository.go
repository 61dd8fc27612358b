package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jewelry-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollectionRepository struct {
	db DB
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: pool}
}

const collectionColumns = `id, name, slug, description, image_url, is_active, created_at, updated_at`

func scanCollection(row pgx.Row) (*models.Collection, error) {
	c := &models.Collection{}
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CollectionRepository) Create(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.IsActive = true

	_, err := r.db.Exec(ctx, `
		INSERT INTO collections (id, name, slug, description, image_url, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,true,$6,$7)`,
		c.ID, c.Name, c.Slug, c.Description, c.ImageURL, now, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateRecord
		}
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

func (r *CollectionRepository) FindAll(ctx context.Context) ([]models.Collection, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE is_active = true ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}
	return collections, rows.Err()
}

func (r *CollectionRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	return scanCollection(r.db.QueryRow(ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE id = $1", id))
}

func (r *CollectionRepository) Update(ctx context.Context, c *models.Collection) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE collections SET name = $1, slug = $2, description = $3, image_url = $4,
			is_active = $5, updated_at = $6
		WHERE id = $7`,
		c.Name, c.Slug, c.Description, c.ImageURL, c.IsActive, time.Now().UTC(), c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE collections SET is_active = false, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
