package request

import (
	"encoding/json"
	"strings"

	"safari-booking/pkg/utils"
)

type CreateBookingRequest struct {
	FullName          string          `json:"full_name" validate:"required"`
	Email             string          `json:"email" validate:"required"`
	Phone             string          `json:"phone" validate:"required"`
	WhatsApp          *string         `json:"whatsapp,omitempty" validate:"omitempty,max=40"`
	TravelDate        *string         `json:"travel_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NumberOfTravelers int             `json:"number_of_travelers" validate:"min=1,max=100"`
	TourPackageID     *int64          `json:"tour_package_id,omitempty"`
	PackageSlug       *string         `json:"package_slug,omitempty"`
	CustomizationData json.RawMessage `json:"customization_data,omitempty"`
	SpecialRequests   *string         `json:"special_requests,omitempty" validate:"omitempty,max=2000"`
}

// Normalize trims free-text fields so "required" means non-empty after trimming.
func (r *CreateBookingRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.WhatsApp = utils.TrimPtr(r.WhatsApp)
	r.TravelDate = utils.TrimPtr(r.TravelDate)
	r.PackageSlug = utils.TrimPtr(r.PackageSlug)
	r.SpecialRequests = utils.TrimPtr(r.SpecialRequests)
	if string(r.CustomizationData) == "null" {
		r.CustomizationData = nil
	}
}

// HasPackageReference reports whether the visitor named a package at all.
func (r *CreateBookingRequest) HasPackageReference() bool {
	return r.TourPackageID != nil || r.PackageSlug != nil
}

type UpdateBookingRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=4000"`
}
