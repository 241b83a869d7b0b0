package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) models.ListResponse[*models.User]
	UpdatePremium(ctx context.Context, id string, req *models.UpdatePremiumRequest) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.ValidationError("Username is required")
	}

	user, err := s.repo.CreateUser(ctx, username, req.Password, models.RoleUser)
	if err != nil {
		if stdErrors.Is(err, repository.ErrUsernameTaken) {
			return nil, errors.DuplicateEntryError("Username already exists")
		}
		return nil, errors.InternalError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	allowed, _, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, req.Username)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
	}

	user, ok := s.repo.VerifyUserCredentials(ctx, req.Username, req.Password)
	if !ok {
		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	now := s.now()
	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
		User:      user,
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.repo.GetUser(ctx, id)
	if !ok {
		return nil, errors.NotFoundError("User not found")
	}

	return user, nil
}

// ListUsers returns every account, oldest first.
func (s *userService) ListUsers(ctx context.Context) models.ListResponse[*models.User] {
	return models.NewListResponse(s.repo.ListUsers(ctx))
}

func (s *userService) UpdatePremium(ctx context.Context, id string, req *models.UpdatePremiumRequest) (*models.User, error) {
	premiumUntil := req.PremiumUntil
	if premiumUntil != nil {
		utc := premiumUntil.UTC()
		premiumUntil = &utc
	}

	user, err := s.repo.UpdateUserPremium(ctx, id, *req.IsPremium, premiumUntil)
	if err != nil {
		if stdErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}
		return nil, errors.InternalError("Failed to update user").WithError(err)
	}

	return user, nil
}
