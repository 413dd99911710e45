package repository

import (
	"errors"

	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNoRows is wrapped by updates and deletes that matched nothing.
	ErrNoRows = errors.New("not found")
	// ErrDuplicate is wrapped when a unique column (slug, email) collides.
	ErrDuplicate = errors.New("already exists")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type Repository struct {
	TourPackage    TourPackageRepository
	Itinerary      ItineraryRepository
	Lodge          LodgeRepository
	Destination    DestinationRepository
	Hero           HeroRepository
	Booking        BookingRepository
	ContactMessage ContactMessageRepository
	User           UserRepository
}

// NewRepository builds the Postgres repositories. It returns nil when db is
// nil: callers only reach repositories after the database check passes.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	if db == nil {
		return nil
	}
	return &Repository{
		TourPackage:    NewTourPackageRepository(db, log),
		Itinerary:      NewItineraryRepository(db, log),
		Lodge:          NewLodgeRepository(db, log),
		Destination:    NewDestinationRepository(db, log),
		Hero:           NewHeroRepository(db, log),
		Booking:        NewBookingRepository(db, log),
		ContactMessage: NewContactMessageRepository(db, log),
		User:           NewUserRepository(db, log),
	}
}
