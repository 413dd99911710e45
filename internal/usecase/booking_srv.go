package usecase

import (
	"context"
	"time"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/memory"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"
	"safari-booking/internal/notify"
	"safari-booking/pkg/metrics"

	"go.uber.org/zap"
)

const bookingCreatedMessage = "Thank you! Your booking request has been received. We will be in touch shortly."

type BookingService interface {
	Submit(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	List(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Get(ctx context.Context, id int64) (*response.BookingResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	Complete(ctx context.Context, id int64) (*response.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type bookingService struct {
	repo     *repository.Repository
	store    *memory.Store
	resolver *resolve.Resolver
	notifier notify.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewBookingService(deps Dependencies, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     deps.Repo,
		store:    deps.Store,
		resolver: deps.Resolver,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Submit(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// 1. Validate input
	req.Normalize()
	if err := validate(req); err != nil {
		return nil, err
	}

	var travelDate *time.Time
	if req.TravelDate != nil {
		// Already checked by the datetime rule.
		d, _ := time.Parse("2006-01-02", *req.TravelDate)
		travelDate = &d
	}

	// 2. Resolve the package reference
	packageID, err := s.resolvePackageID(ctx, req)
	if err != nil {
		return nil, err
	}
	if packageID == nil && req.HasPackageReference() {
		field := "package_slug"
		if req.TourPackageID != nil {
			field = "tour_package_id"
		}
		return nil, invalidField(field, "package could not be found")
	}

	// 3. Persist
	booking := &entity.Booking{
		TourPackageID:     packageID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		WhatsApp:          req.WhatsApp,
		TravelDate:        travelDate,
		NumberOfTravelers: req.NumberOfTravelers,
		CustomizationData: req.CustomizationData,
		SpecialRequests:   req.SpecialRequests,
	}

	stored, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.Booking, error) {
			if err := s.repo.Booking.Create(ctx, booking); err != nil {
				return nil, err
			}
			return booking, nil
		},
		resolve.Memory(func() *entity.Booking {
			return s.store.CreateBooking(booking)
		}),
	)
	if err != nil {
		s.log.Error("Failed to store booking", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.metrics.IncSubmission("booking", s.resolver.Backend())
	s.log.Info("Booking received",
		zap.Int64("booking_id", stored.ID),
		zap.String("backend", s.resolver.Backend()),
	)

	// 4. Notify; delivery problems never fail the submission
	if err := s.notifier.BookingReceived(ctx, stored); err != nil {
		s.log.Warn("Failed to send booking notification", zap.Error(err), zap.Int64("booking_id", stored.ID))
	}

	return &response.BookingCreatedResponse{
		Status:    "created",
		BookingID: stored.ID,
		Message:   bookingCreatedMessage,
	}, nil
}

// resolvePackageID uses tour_package_id as given, otherwise looks the slug
// up. The memory backend has no catalog, so a slug never resolves there.
func (s *bookingService) resolvePackageID(ctx context.Context, req *request.CreateBookingRequest) (*int64, error) {
	if req.TourPackageID != nil {
		return req.TourPackageID, nil
	}
	if req.PackageSlug == nil {
		return nil, nil
	}

	slug := *req.PackageSlug
	return resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*int64, error) {
			return s.repo.TourPackage.IDBySlug(ctx, slug)
		},
		resolve.Memory(func() *int64 {
			return s.store.TourPackageIDBySlug(slug)
		}),
	)
}

func (s *bookingService) List(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	filter := entity.BookingFilter{Status: status}
	if err := validate(&bookingStatusQuery{Status: status}); err != nil {
		return nil, err
	}

	type pageResult struct {
		rows  []*entity.Booking
		total int64
	}

	result, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (pageResult, error) {
			rows, err := s.repo.Booking.FindAll(ctx, filter, page.Limit(), page.Offset())
			if err != nil {
				return pageResult{}, err
			}
			total, err := s.repo.Booking.CountAll(ctx, filter)
			if err != nil {
				return pageResult{}, err
			}
			return pageResult{rows: rows, total: total}, nil
		},
		resolve.Memory(func() pageResult {
			rows, total := s.store.ListBookings(filter, page.Limit(), page.Offset())
			return pageResult{rows: rows, total: total}
		}),
	)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(result.rows), page.Page, page.Limit(), result.total), nil
}

type bookingStatusQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (s *bookingService) Get(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.Booking, error) {
			return s.repo.Booking.FindByID(ctx, id)
		},
		resolve.Memory(func() *entity.Booking {
			return s.store.GetBooking(id)
		}),
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Update(ctx context.Context, id int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Status == nil && req.AdminNotes == nil {
		return nil, invalidField("status", "status or admin_notes is required")
	}

	update := entity.BookingUpdate{AdminNotes: req.AdminNotes}
	if req.Status != nil {
		status := entity.BookingStatus(*req.Status)
		update.Status = &status
	}
	return s.apply(ctx, id, update)
}

func (s *bookingService) Complete(ctx context.Context, id int64) (*response.BookingResponse, error) {
	completed := entity.BookingStatusCompleted
	return s.apply(ctx, id, entity.BookingUpdate{Status: &completed})
}

func (s *bookingService) apply(ctx context.Context, id int64, update entity.BookingUpdate) (*response.BookingResponse, error) {
	booking, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.Booking, error) {
			return s.repo.Booking.Update(ctx, id, update)
		},
		resolve.Memory(func() *entity.Booking {
			return s.store.UpdateBooking(id, update)
		}),
	)
	if err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.Int64("booking_id", id))
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	s.log.Info("Booking updated", zap.Int64("booking_id", id), zap.String("status", string(booking.Status)))
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Delete is database-only: in-memory bookings are never removed.
func (s *bookingService) Delete(ctx context.Context, id int64) error {
	_, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.Booking.Delete(ctx, id)
		},
		nil,
	)
	return translateRepoError(err)
}
