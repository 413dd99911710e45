package response

import (
	"encoding/json"

	"safari-booking/internal/data/entity"
)

type TourPackageRefResponse struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type BookingResponse struct {
	ID                int64                   `json:"id"`
	TourPackageID     *int64                  `json:"tour_package_id"`
	TourPackage       *TourPackageRefResponse `json:"tour_package"`
	FullName          string                  `json:"full_name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	WhatsApp          *string                 `json:"whatsapp"`
	TravelDate        *string                 `json:"travel_date"`
	NumberOfTravelers int                     `json:"number_of_travelers"`
	CustomizationData json.RawMessage         `json:"customization_data"`
	SpecialRequests   *string                 `json:"special_requests"`
	Status            entity.BookingStatus    `json:"status"`
	AdminNotes        *string                 `json:"admin_notes"`
	CompletedAt       *string                 `json:"completed_at"`
	CreatedAt         string                  `json:"created_at"`
}

type BookingCreatedResponse struct {
	Status    string `json:"status"`
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                b.ID,
		TourPackageID:     b.TourPackageID,
		FullName:          b.FullName,
		Email:             b.Email,
		Phone:             b.Phone,
		WhatsApp:          b.WhatsApp,
		TravelDate:        datePtr(b.TravelDate),
		NumberOfTravelers: b.NumberOfTravelers,
		SpecialRequests:   b.SpecialRequests,
		Status:            b.Status,
		AdminNotes:        b.AdminNotes,
		CompletedAt:       timestampPtr(b.CompletedAt),
		CreatedAt:         Timestamp(b.CreatedAt),
	}
	if len(b.CustomizationData) > 0 {
		resp.CustomizationData = b.CustomizationData
	}
	if b.TourPackage != nil {
		resp.TourPackage = &TourPackageRefResponse{
			ID:    b.TourPackage.ID,
			Slug:  b.TourPackage.Slug,
			Title: b.TourPackage.Title,
		}
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
