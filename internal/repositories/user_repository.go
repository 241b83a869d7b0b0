package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string, role models.UserRole) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, bool)
	GetUserByUsername(ctx context.Context, username string) (*models.User, bool)
	VerifyUserCredentials(ctx context.Context, username, password string) (*models.User, bool)
	ListUsers(ctx context.Context) []*models.User
	UpdateUserPremium(ctx context.Context, id string, isPremium bool, premiumUntil *time.Time) (*models.User, error)
}

type userRecord struct {
	user         models.User
	passwordHash string
}

func (r *userRecord) public() *models.User {
	u := r.user
	if r.user.PremiumUntil != nil {
		until := *r.user.PremiumUntil
		u.PremiumUntil = &until
	}
	return &u
}

// CreateUser hashes the password with bcrypt. Usernames are unique regardless of case.
func (s *Store) CreateUser(_ context.Context, username, password string, role models.UserRole) (*models.User, error) {
	// hash outside the lock, bcrypt is slow on purpose
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	s.mu.Lock()

	if s.userByUsername(username) != nil {
		s.mu.Unlock()
		return nil, ErrUsernameTaken
	}

	now := s.timestamp()
	record := &userRecord{
		user: models.User{
			ID:        s.newID(),
			Username:  username,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: string(hash),
	}
	s.users[record.user.ID] = record
	out := record.public()
	s.mu.Unlock()

	s.notify(ChangeUser, out.ID)
	return out, nil
}

func (s *Store) GetUser(_ context.Context, id string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return nil, false
	}

	return record.public(), true
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.userByUsername(username)
	if record == nil {
		return nil, false
	}

	return record.public(), true
}

// VerifyUserCredentials returns the user only when the password matches.
func (s *Store) VerifyUserCredentials(_ context.Context, username, password string) (*models.User, bool) {
	s.mu.Lock()
	record := s.userByUsername(username)
	if record == nil {
		s.mu.Unlock()
		return nil, false
	}
	hash := record.passwordHash
	user := record.public()
	s.mu.Unlock()

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, false
	}

	return user, true
}

// ListUsers returns every user, oldest first.
func (s *Store) ListUsers(_ context.Context) []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*models.User, 0, len(s.users))
	for _, record := range s.users {
		users = append(users, record.public())
	}

	slices.SortFunc(users, func(a, b *models.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Username, b.Username)
	})

	return users
}

func (s *Store) UpdateUserPremium(_ context.Context, id string, isPremium bool, premiumUntil *time.Time) (*models.User, error) {
	s.mu.Lock()

	record, ok := s.users[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUserNotFound
	}

	record.user.IsPremium = isPremium
	record.user.PremiumUntil = nil
	if premiumUntil != nil {
		until := premiumUntil.UTC()
		record.user.PremiumUntil = &until
	}
	record.user.UpdatedAt = s.timestamp()

	out := record.public()
	s.mu.Unlock()

	s.notify(ChangeUser, id)
	return out, nil
}

// must hold s.mu
func (s *Store) userByUsername(username string) *userRecord {
	for _, record := range s.users {
		if strings.EqualFold(record.user.Username, username) {
			return record
		}
	}
	return nil
}
