package adaptor

import (
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/database"

	"go.uber.org/zap"
)

type Handler struct {
	Content      *ContentHandler
	Booking      *BookingHandler
	Contact      *ContactHandler
	AdminContent *AdminContentHandler
	Auth         *AuthHandler
	Health       *HealthHandler
}

// NewHandler builds every handler. db may be nil when no database is
// configured.
func NewHandler(service *usecase.Service, resolver *resolve.Resolver, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Content:      NewContentHandler(service.Content, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Contact:      NewContactHandler(service.Contact, log),
		AdminContent: NewAdminContentHandler(service.AdminContent, log),
		Auth:         NewAuthHandler(service.Auth, log),
		Health:       NewHealthHandler(resolver, db, log),
	}
}
