package repository

import (
	"context"
	"errors"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DestinationRepository interface {
	Create(ctx context.Context, dest *entity.Destination) error
	FindByID(ctx context.Context, id int64) (*entity.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Destination, error)
	FindAll(ctx context.Context) ([]*entity.Destination, error)
	Update(ctx context.Context, dest *entity.Destination) error
	Delete(ctx context.Context, id int64) error
}

type destinationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDestinationRepository(db database.PgxIface, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "destination")),
	}
}

const destinationColumns = `id, slug, name, country, summary, description, image_url, created_at, updated_at`

func scanDestination(row pgx.Row) (*entity.Destination, error) {
	var dest entity.Destination
	err := row.Scan(
		&dest.ID,
		&dest.Slug,
		&dest.Name,
		&dest.Country,
		&dest.Summary,
		&dest.Description,
		&dest.ImageURL,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) Create(ctx context.Context, dest *entity.Destination) error {
	query := `
		INSERT INTO destinations (slug, name, country, summary, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		dest.Slug,
		dest.Name,
		dest.Country,
		dest.Summary,
		dest.Description,
		dest.ImageURL,
	).Scan(&dest.ID, &dest.CreatedAt, &dest.UpdatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("destination slug %s: %w", dest.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create destination", zap.Error(err), zap.String("slug", dest.Slug))
		return fmt.Errorf("create destination %s: %w", dest.Slug, err)
	}

	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id int64) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	dest, err := scanDestination(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination by ID", zap.Error(err), zap.Int64("destination_id", id))
		return nil, fmt.Errorf("find destination by ID %d: %w", id, err)
	}

	return dest, nil
}

func (r *destinationRepository) FindBySlug(ctx context.Context, slug string) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE slug = $1`

	dest, err := scanDestination(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find destination by slug %s: %w", slug, err)
	}

	return dest, nil
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY country, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find destinations", zap.Error(err))
		return nil, fmt.Errorf("find destinations: %w", err)
	}
	defer rows.Close()

	destinations := []*entity.Destination{}
	for rows.Next() {
		dest, err := scanDestination(rows)
		if err != nil {
			r.log.Error("Failed to scan destination row", zap.Error(err))
			return nil, fmt.Errorf("scan destination row: %w", err)
		}
		destinations = append(destinations, dest)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate destination rows: %w", err)
	}

	return destinations, nil
}

func (r *destinationRepository) Update(ctx context.Context, dest *entity.Destination) error {
	query := `
		UPDATE destinations
		SET slug = $2, name = $3, country = $4, summary = $5, description = $6,
		    image_url = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		dest.ID,
		dest.Slug,
		dest.Name,
		dest.Country,
		dest.Summary,
		dest.Description,
		dest.ImageURL,
	).Scan(&dest.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("destination %d: %w", dest.ID, ErrNoRows)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("destination slug %s: %w", dest.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to update destination", zap.Error(err), zap.Int64("destination_id", dest.ID))
		return fmt.Errorf("update destination %d: %w", dest.ID, err)
	}

	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete destination", zap.Error(err), zap.Int64("destination_id", id))
		return fmt.Errorf("delete destination %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("destination %d: %w", id, ErrNoRows)
	}

	r.log.Info("Destination deleted", zap.Int64("destination_id", id))
	return nil
}
