package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/models"
	"github.com/jihoon-lab/coinboard-api/internal/repository"
)

// AuthService handles registration and credential verification. Session
// creation stays with the handler; this service only decides identity.
type AuthService interface {
	Signup(ctx context.Context, payload dto.SignupRequest) (dto.SessionUserResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.SessionUserResponse, error)
}

type authService struct {
	users     repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Signup(ctx context.Context, payload dto.SignupRequest) (dto.SessionUserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionUserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.SessionUserResponse{}, err
	}

	user := models.User{
		Nickname: strings.TrimSpace(payload.Nickname),
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: string(hash),
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.SessionUserResponse{}, ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return dto.SessionUserResponse{}, err
	}

	return dto.NewSessionUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.SessionUserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionUserResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(payload.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SessionUserResponse{}, ErrEmailNotFound
		}
		return dto.SessionUserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return dto.SessionUserResponse{}, ErrPasswordMismatch
	}

	if user.IsSuspended() {
		return dto.SessionUserResponse{}, ErrSuspended
	}

	return dto.NewSessionUserResponse(user), nil
}
