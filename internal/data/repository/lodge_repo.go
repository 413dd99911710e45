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

type LodgeRepository interface {
	Create(ctx context.Context, lodge *entity.Lodge) error
	FindByID(ctx context.Context, id int64) (*entity.Lodge, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Lodge, error)
	FindAll(ctx context.Context) ([]*entity.Lodge, error)
	Update(ctx context.Context, lodge *entity.Lodge) error
	Delete(ctx context.Context, id int64) error
}

type lodgeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLodgeRepository(db database.PgxIface, log *zap.Logger) LodgeRepository {
	return &lodgeRepository{
		db:  db,
		log: log.With(zap.String("repository", "lodge")),
	}
}

const lodgeColumns = `id, slug, name, location, description, image_url, destination_id, created_at, updated_at`

func scanLodge(row pgx.Row) (*entity.Lodge, error) {
	var lodge entity.Lodge
	err := row.Scan(
		&lodge.ID,
		&lodge.Slug,
		&lodge.Name,
		&lodge.Location,
		&lodge.Description,
		&lodge.ImageURL,
		&lodge.DestinationID,
		&lodge.CreatedAt,
		&lodge.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lodge, nil
}

func (r *lodgeRepository) Create(ctx context.Context, lodge *entity.Lodge) error {
	query := `
		INSERT INTO lodges (slug, name, location, description, image_url, destination_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		lodge.Slug,
		lodge.Name,
		lodge.Location,
		lodge.Description,
		lodge.ImageURL,
		lodge.DestinationID,
	).Scan(&lodge.ID, &lodge.CreatedAt, &lodge.UpdatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("lodge slug %s: %w", lodge.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create lodge", zap.Error(err), zap.String("slug", lodge.Slug))
		return fmt.Errorf("create lodge %s: %w", lodge.Slug, err)
	}

	return nil
}

func (r *lodgeRepository) FindByID(ctx context.Context, id int64) (*entity.Lodge, error) {
	query := `SELECT ` + lodgeColumns + ` FROM lodges WHERE id = $1`

	lodge, err := scanLodge(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lodge by ID", zap.Error(err), zap.Int64("lodge_id", id))
		return nil, fmt.Errorf("find lodge by ID %d: %w", id, err)
	}

	return lodge, nil
}

func (r *lodgeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Lodge, error) {
	query := `SELECT ` + lodgeColumns + ` FROM lodges WHERE slug = $1`

	lodge, err := scanLodge(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lodge by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find lodge by slug %s: %w", slug, err)
	}

	return lodge, nil
}

func (r *lodgeRepository) FindAll(ctx context.Context) ([]*entity.Lodge, error) {
	query := `SELECT ` + lodgeColumns + ` FROM lodges ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find lodges", zap.Error(err))
		return nil, fmt.Errorf("find lodges: %w", err)
	}
	defer rows.Close()

	lodges := []*entity.Lodge{}
	for rows.Next() {
		lodge, err := scanLodge(rows)
		if err != nil {
			r.log.Error("Failed to scan lodge row", zap.Error(err))
			return nil, fmt.Errorf("scan lodge row: %w", err)
		}
		lodges = append(lodges, lodge)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate lodge rows: %w", err)
	}

	return lodges, nil
}

func (r *lodgeRepository) Update(ctx context.Context, lodge *entity.Lodge) error {
	query := `
		UPDATE lodges
		SET slug = $2, name = $3, location = $4, description = $5, image_url = $6,
		    destination_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		lodge.ID,
		lodge.Slug,
		lodge.Name,
		lodge.Location,
		lodge.Description,
		lodge.ImageURL,
		lodge.DestinationID,
	).Scan(&lodge.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lodge %d: %w", lodge.ID, ErrNoRows)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("lodge slug %s: %w", lodge.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to update lodge", zap.Error(err), zap.Int64("lodge_id", lodge.ID))
		return fmt.Errorf("update lodge %d: %w", lodge.ID, err)
	}

	return nil
}

func (r *lodgeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM lodges WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete lodge", zap.Error(err), zap.Int64("lodge_id", id))
		return fmt.Errorf("delete lodge %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lodge %d: %w", id, ErrNoRows)
	}

	r.log.Info("Lodge deleted", zap.Int64("lodge_id", id))
	return nil
}
