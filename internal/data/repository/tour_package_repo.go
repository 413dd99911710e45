package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourPackageRepository interface {
	Create(ctx context.Context, pkg *entity.TourPackage) error
	FindByID(ctx context.Context, id int64) (*entity.TourPackage, error)
	FindBySlug(ctx context.Context, slug string) (*entity.TourPackage, error)
	FindAll(ctx context.Context, filter entity.TourPackageFilter) ([]*entity.TourPackage, error)
	IDBySlug(ctx context.Context, slug string) (*int64, error)
	Update(ctx context.Context, pkg *entity.TourPackage) error
	Delete(ctx context.Context, id int64) error
}

type tourPackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourPackageRepository(db database.PgxIface, log *zap.Logger) TourPackageRepository {
	return &tourPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour_package")),
	}
}

const tourPackageColumns = `
	p.id, p.slug, p.title, p.summary, p.description, p.duration_days, p.price_from,
	p.currency, p.image_url, p.destination_id, p.featured, p.published, p.created_at, p.updated_at`

func scanTourPackage(row pgx.Row) (*entity.TourPackage, error) {
	var pkg entity.TourPackage
	err := row.Scan(
		&pkg.ID,
		&pkg.Slug,
		&pkg.Title,
		&pkg.Summary,
		&pkg.Description,
		&pkg.DurationDays,
		&pkg.PriceFrom,
		&pkg.Currency,
		&pkg.ImageURL,
		&pkg.DestinationID,
		&pkg.Featured,
		&pkg.Published,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *tourPackageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		INSERT INTO tour_packages (slug, title, summary, description, duration_days, price_from,
		                           currency, image_url, destination_id, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		pkg.Slug,
		pkg.Title,
		pkg.Summary,
		pkg.Description,
		pkg.DurationDays,
		pkg.PriceFrom,
		pkg.Currency,
		pkg.ImageURL,
		pkg.DestinationID,
		pkg.Featured,
		pkg.Published,
	).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("tour package slug %s: %w", pkg.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create tour package",
			zap.Error(err),
			zap.String("slug", pkg.Slug),
		)
		return fmt.Errorf("create tour package %s: %w", pkg.Slug, err)
	}

	return nil
}

func (r *tourPackageRepository) FindByID(ctx context.Context, id int64) (*entity.TourPackage, error) {
	query := `SELECT ` + tourPackageColumns + ` FROM tour_packages p WHERE p.id = $1`

	pkg, err := scanTourPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour package by ID", zap.Error(err), zap.Int64("package_id", id))
		return nil, fmt.Errorf("find tour package by ID %d: %w", id, err)
	}

	return pkg, nil
}

// FindBySlug only sees published packages.
func (r *tourPackageRepository) FindBySlug(ctx context.Context, slug string) (*entity.TourPackage, error) {
	query := `SELECT ` + tourPackageColumns + ` FROM tour_packages p WHERE p.slug = $1 AND p.published`

	pkg, err := scanTourPackage(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour package by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find tour package by slug %s: %w", slug, err)
	}

	return pkg, nil
}

func (r *tourPackageRepository) FindAll(ctx context.Context, filter entity.TourPackageFilter) ([]*entity.TourPackage, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + tourPackageColumns + `
		FROM tour_packages p
		LEFT JOIN destinations d ON d.id = p.destination_id
		WHERE TRUE`)

	args := []any{}
	argCount := 1

	if !filter.IncludeDrafts {
		queryBuilder.WriteString(" AND p.published")
	}
	if filter.FeaturedOnly {
		queryBuilder.WriteString(" AND p.featured")
	}
	if filter.DestinationSlug != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND d.slug = $%d", argCount))
		args = append(args, filter.DestinationSlug)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY p.featured DESC, p.title")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find tour packages",
			zap.Error(err),
			zap.Bool("featured_only", filter.FeaturedOnly),
			zap.String("destination", filter.DestinationSlug),
		)
		return nil, fmt.Errorf("find tour packages: %w", err)
	}
	defer rows.Close()

	packages := []*entity.TourPackage{}
	for rows.Next() {
		pkg, err := scanTourPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan tour package row", zap.Error(err))
			return nil, fmt.Errorf("scan tour package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate tour package rows: %w", err)
	}

	return packages, nil
}

func (r *tourPackageRepository) IDBySlug(ctx context.Context, slug string) (*int64, error) {
	query := `SELECT id FROM tour_packages WHERE slug = $1`

	var id int64
	err := r.db.QueryRow(ctx, query, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to resolve tour package slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("resolve tour package slug %s: %w", slug, err)
	}

	return &id, nil
}

func (r *tourPackageRepository) Update(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		UPDATE tour_packages
		SET slug = $2, title = $3, summary = $4, description = $5, duration_days = $6,
		    price_from = $7, currency = $8, image_url = $9, destination_id = $10,
		    featured = $11, published = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		pkg.ID,
		pkg.Slug,
		pkg.Title,
		pkg.Summary,
		pkg.Description,
		pkg.DurationDays,
		pkg.PriceFrom,
		pkg.Currency,
		pkg.ImageURL,
		pkg.DestinationID,
		pkg.Featured,
		pkg.Published,
	).Scan(&pkg.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("tour package %d: %w", pkg.ID, ErrNoRows)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("tour package slug %s: %w", pkg.Slug, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to update tour package", zap.Error(err), zap.Int64("package_id", pkg.ID))
		return fmt.Errorf("update tour package %d: %w", pkg.ID, err)
	}

	return nil
}

func (r *tourPackageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tour_packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour package", zap.Error(err), zap.Int64("package_id", id))
		return fmt.Errorf("delete tour package %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour package %d: %w", id, ErrNoRows)
	}

	r.log.Info("Tour package deleted", zap.Int64("package_id", id))
	return nil
}
