package repository

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItineraryRepository interface {
	FindByPackageID(ctx context.Context, packageID int64) ([]*entity.ItineraryDay, error)
	FindByPackageSlug(ctx context.Context, slug string) ([]*entity.ItineraryDay, error)
	ReplaceForPackage(ctx context.Context, packageID int64, days []*entity.ItineraryDay) error
}

type itineraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItineraryRepository(db database.PgxIface, log *zap.Logger) ItineraryRepository {
	return &itineraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "itinerary")),
	}
}

func (r *itineraryRepository) FindByPackageID(ctx context.Context, packageID int64) ([]*entity.ItineraryDay, error) {
	query := `
		SELECT i.id, i.tour_package_id, i.day_number, i.title, i.description, i.lodge_id, i.meals
		FROM itinerary_days i
		WHERE i.tour_package_id = $1
		ORDER BY i.day_number
	`

	days, err := r.queryDays(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find itinerary", zap.Error(err), zap.Int64("package_id", packageID))
		return nil, fmt.Errorf("find itinerary for package %d: %w", packageID, err)
	}
	return days, nil
}

// FindByPackageSlug only returns days of published packages.
func (r *itineraryRepository) FindByPackageSlug(ctx context.Context, slug string) ([]*entity.ItineraryDay, error) {
	query := `
		SELECT i.id, i.tour_package_id, i.day_number, i.title, i.description, i.lodge_id, i.meals
		FROM itinerary_days i
		JOIN tour_packages p ON p.id = i.tour_package_id
		WHERE p.slug = $1 AND p.published
		ORDER BY i.day_number
	`

	days, err := r.queryDays(ctx, query, slug)
	if err != nil {
		r.log.Error("Failed to find itinerary", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find itinerary for package %s: %w", slug, err)
	}
	return days, nil
}

func (r *itineraryRepository) queryDays(ctx context.Context, query string, args ...any) ([]*entity.ItineraryDay, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []*entity.ItineraryDay{}
	for rows.Next() {
		var day entity.ItineraryDay
		err := rows.Scan(
			&day.ID,
			&day.TourPackageID,
			&day.DayNumber,
			&day.Title,
			&day.Description,
			&day.LodgeID,
			&day.Meals,
		)
		if err != nil {
			return nil, fmt.Errorf("scan itinerary row: %w", err)
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate itinerary rows: %w", err)
	}
	return days, nil
}

// ReplaceForPackage swaps the whole itinerary of a package in one transaction.
func (r *itineraryRepository) ReplaceForPackage(ctx context.Context, packageID int64, days []*entity.ItineraryDay) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM itinerary_days WHERE tour_package_id = $1`, packageID); err != nil {
			r.log.Error("Failed to clear itinerary", zap.Error(err), zap.Int64("package_id", packageID))
			return fmt.Errorf("clear itinerary for package %d: %w", packageID, err)
		}

		insert := `
			INSERT INTO itinerary_days (tour_package_id, day_number, title, description, lodge_id, meals)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		for _, day := range days {
			day.TourPackageID = packageID
			err := tx.QueryRow(ctx, insert,
				packageID,
				day.DayNumber,
				day.Title,
				day.Description,
				day.LodgeID,
				day.Meals,
			).Scan(&day.ID)
			if err != nil {
				r.log.Error("Failed to insert itinerary day",
					zap.Error(err),
					zap.Int64("package_id", packageID),
					zap.Int("day_number", day.DayNumber),
				)
				return fmt.Errorf("insert itinerary day %d for package %d: %w", day.DayNumber, packageID, err)
			}
		}
		return nil
	})
}
