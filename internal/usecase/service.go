package usecase

import (
	"safari-booking/internal/data/fallback"
	"safari-booking/internal/data/memory"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/notify"
	"safari-booking/pkg/metrics"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

// Dependencies are the process-wide collaborators shared by all services.
// Repo is nil when no database is configured.
type Dependencies struct {
	Repo     *repository.Repository
	Store    *memory.Store
	Fallback *fallback.Set
	Resolver *resolve.Resolver
	Notifier notify.Notifier
	Metrics  *metrics.Metrics
	Config   *utils.Config
}

type Service struct {
	Content      ContentService
	Booking      BookingService
	Contact      ContactService
	AdminContent AdminContentService
	Auth         AuthService
}

func NewService(deps Dependencies, log *zap.Logger) *Service {
	return &Service{
		Content:      NewContentService(deps, log),
		Booking:      NewBookingService(deps, log),
		Contact:      NewContactService(deps, log),
		AdminContent: NewAdminContentService(deps, log),
		Auth:         NewAuthService(deps, log),
	}
}
