package usecase

import (
	"context"

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

const contactAcceptedMessage = "Thanks for reaching out! We will reply as soon as possible."

type ContactService interface {
	Submit(ctx context.Context, req *request.CreateContactRequest) (*response.ContactAcceptedResponse, error)
	List(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactMessageResponse], error)
	Get(ctx context.Context, id int64) (*response.ContactMessageResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *request.UpdateContactStatusRequest) (*response.ContactMessageResponse, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	repo     *repository.Repository
	store    *memory.Store
	resolver *resolve.Resolver
	notifier notify.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewContactService(deps Dependencies, log *zap.Logger) ContactService {
	return &contactService{
		repo:     deps.Repo,
		store:    deps.Store,
		resolver: deps.Resolver,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		log:      log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, req *request.CreateContactRequest) (*response.ContactAcceptedResponse, error) {
	req.Normalize()
	if err := validate(req); err != nil {
		return nil, err
	}

	msg := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	stored, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.ContactMessage, error) {
			if err := s.repo.ContactMessage.Create(ctx, msg); err != nil {
				return nil, err
			}
			return msg, nil
		},
		resolve.Memory(func() *entity.ContactMessage {
			return s.store.CreateContactMessage(msg)
		}),
	)
	if err != nil {
		s.log.Error("Failed to store contact message", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.metrics.IncSubmission("contact", s.resolver.Backend())
	s.log.Info("Contact message received", zap.Int64("contact_id", stored.ID))

	if err := s.notifier.ContactReceived(ctx, stored); err != nil {
		s.log.Warn("Failed to send contact notification", zap.Error(err), zap.Int64("contact_id", stored.ID))
	}

	return &response.ContactAcceptedResponse{
		Status:    "accepted",
		ContactID: stored.ID,
		Message:   contactAcceptedMessage,
	}, nil
}

type contactStatusQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=new in_progress closed"`
}

func (s *contactService) List(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactMessageResponse], error) {
	if err := validate(&contactStatusQuery{Status: status}); err != nil {
		return nil, err
	}
	filter := entity.ContactFilter{Status: status}

	type pageResult struct {
		rows  []*entity.ContactMessage
		total int64
	}

	result, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (pageResult, error) {
			rows, err := s.repo.ContactMessage.FindAll(ctx, filter, page.Limit(), page.Offset())
			if err != nil {
				return pageResult{}, err
			}
			total, err := s.repo.ContactMessage.CountAll(ctx, filter)
			if err != nil {
				return pageResult{}, err
			}
			return pageResult{rows: rows, total: total}, nil
		},
		resolve.Memory(func() pageResult {
			rows, total := s.store.ListContactMessages(filter, page.Limit(), page.Offset())
			return pageResult{rows: rows, total: total}
		}),
	)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(response.ContactMessagesToResponse(result.rows), page.Page, page.Limit(), result.total), nil
}

func (s *contactService) Get(ctx context.Context, id int64) (*response.ContactMessageResponse, error) {
	msg, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.ContactMessage, error) {
			return s.repo.ContactMessage.FindByID(ctx, id)
		},
		resolve.Memory(func() *entity.ContactMessage {
			return s.store.GetContactMessage(id)
		}),
	)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrNotFound
	}

	resp := response.ContactMessageToResponse(msg)
	return &resp, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, req *request.UpdateContactStatusRequest) (*response.ContactMessageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	status := entity.ContactStatus(req.Status)

	msg, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (*entity.ContactMessage, error) {
			return s.repo.ContactMessage.UpdateStatus(ctx, id, status)
		},
		resolve.Memory(func() *entity.ContactMessage {
			return s.store.UpdateContactMessageStatus(id, status)
		}),
	)
	if err != nil {
		s.log.Error("Failed to update contact message", zap.Error(err), zap.Int64("contact_id", id))
		return nil, err
	}
	if msg == nil {
		return nil, ErrNotFound
	}

	resp := response.ContactMessageToResponse(msg)
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	_, err := resolve.Write(ctx, s.resolver,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repo.ContactMessage.Delete(ctx, id)
		},
		nil,
	)
	return translateRepoError(err)
}
