package entity

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID                int64           `db:"id"`
	TourPackageID     *int64          `db:"tour_package_id"`
	FullName          string          `db:"full_name"`
	Email             string          `db:"email"`
	Phone             string          `db:"phone"`
	WhatsApp          *string         `db:"whatsapp"`
	TravelDate        *time.Time      `db:"travel_date"`
	NumberOfTravelers int             `db:"number_of_travelers"`
	CustomizationData json.RawMessage `db:"customization_data"`
	SpecialRequests   *string         `db:"special_requests"`
	Status            BookingStatus   `db:"status"`
	AdminNotes        *string         `db:"admin_notes"`
	CompletedAt       *time.Time      `db:"completed_at"`
	CreatedAt         time.Time       `db:"created_at"`

	// Joined from tour_packages; nil when there is no package or no catalog.
	TourPackage *TourPackageRef `db:"-"`
}

// BookingUpdate carries the admin-editable fields; nil means unchanged.
type BookingUpdate struct {
	Status     *BookingStatus
	AdminNotes *string
}

type BookingFilter struct {
	Status string
}
