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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error)
	Update(ctx context.Context, id int64, update entity.BookingUpdate) (*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingSelect = `
	SELECT b.id, b.tour_package_id, b.full_name, b.email, b.phone, b.whatsapp, b.travel_date,
	       b.number_of_travelers, b.customization_data, b.special_requests, b.status,
	       b.admin_notes, b.completed_at, b.created_at,
	       p.id, p.slug, p.title
	FROM bookings b
	LEFT JOIN tour_packages p ON p.id = b.tour_package_id
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking       entity.Booking
		customization []byte
		pkgID         *int64
		pkgSlug       *string
		pkgTitle      *string
	)
	err := row.Scan(
		&booking.ID,
		&booking.TourPackageID,
		&booking.FullName,
		&booking.Email,
		&booking.Phone,
		&booking.WhatsApp,
		&booking.TravelDate,
		&booking.NumberOfTravelers,
		&customization,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.AdminNotes,
		&booking.CompletedAt,
		&booking.CreatedAt,
		&pkgID,
		&pkgSlug,
		&pkgTitle,
	)
	if err != nil {
		return nil, err
	}

	if len(customization) > 0 {
		booking.CustomizationData = customization
	}
	if pkgID != nil {
		booking.TourPackage = &entity.TourPackageRef{ID: *pkgID}
		if pkgSlug != nil {
			booking.TourPackage.Slug = *pkgSlug
		}
		if pkgTitle != nil {
			booking.TourPackage.Title = *pkgTitle
		}
	}
	return &booking, nil
}

// Create stores a new pending booking and fills in its id, status and
// creation time.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (tour_package_id, full_name, email, phone, whatsapp, travel_date,
		                      number_of_travelers, customization_data, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING id, status, created_at
	`

	var customization any
	if len(booking.CustomizationData) > 0 {
		customization = string(booking.CustomizationData)
	}

	err := r.db.QueryRow(ctx, query,
		booking.TourPackageID,
		booking.FullName,
		booking.Email,
		booking.Phone,
		booking.WhatsApp,
		booking.TravelDate,
		booking.NumberOfTravelers,
		customization,
		booking.SpecialRequests,
	).Scan(&booking.ID, &booking.Status, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking for %s: %w", booking.Email, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := bookingSelect + ` WHERE b.id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	query := bookingSelect + `
		WHERE ($1 = '' OR b.status = $1)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, filter.Status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("status", filter.Status),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.Status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err), zap.String("status", filter.Status))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// Update applies the non-nil fields and returns the stored booking, or nil
// when id does not exist. Moving to completed stamps completed_at every time.
func (r *bookingRepository) Update(ctx context.Context, id int64, update entity.BookingUpdate) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = COALESCE($2::text, status),
		    admin_notes = COALESCE($3::text, admin_notes),
		    completed_at = CASE WHEN $2::text = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $1
	`

	var status *string
	if update.Status != nil {
		s := string(*update.Status)
		status = &s
	}

	result, err := r.db.Exec(ctx, query, id, status, update.AdminNotes)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, id)
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNoRows)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}
