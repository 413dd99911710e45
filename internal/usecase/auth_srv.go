package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
}

type authService struct {
	repo     *repository.Repository
	resolver *resolve.Resolver
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(deps Dependencies, log *zap.Logger) AuthService {
	return &authService{
		repo:     deps.Repo,
		resolver: deps.Resolver,
		config:   deps.Config,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Login issues the shared admin token. A database user matching the email is
// checked with bcrypt; otherwise the configured admin password applies. With
// no admin password configured any password is accepted, which Config.Validate
// rules out in production.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}

	token := s.config.Admin.Secret()

	// 1. Per-user accounts
	if s.resolver.HasDB() && req.Email != "" {
		user, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			s.log.Error("Failed to look up admin user", zap.Error(err), zap.String("email", req.Email))
			return nil, err
		}
		if user != nil {
			if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
				s.log.Warn("Admin login rejected", zap.String("email", req.Email))
				return nil, ErrInvalidCredentials
			}
			s.log.Info("Admin logged in", zap.String("email", user.Email))
			return &response.LoginResponse{Token: token, Email: user.Email}, nil
		}
	}

	// 2. Legacy shared password
	email := req.Email
	if email == "" {
		email = s.config.Admin.Email
	}

	if s.config.Admin.Password == "" {
		s.log.Warn("ADMIN_PASSWORD is not set, accepting any password", zap.String("email", email))
		return &response.LoginResponse{Token: token, Email: email}, nil
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.Admin.Password)) != 1 {
		s.log.Warn("Admin login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("Admin logged in with shared password", zap.String("email", email))
	return &response.LoginResponse{Token: token, Email: email}, nil
}

func (s *authService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if !s.resolver.HasDB() {
		return nil, ErrRegistrationDisabled
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, translateRepoError(err)
	}

	s.log.Info("Admin user created", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	resp := response.UserToResponse(user)
	return &resp, nil
}
