package service

import (
	"context"
	"errors"
	"strings"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a free member. Emails are compared case-insensitively.
func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	user := &domain.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Timezone:    req.Timezone,
		Role:        domain.RoleMember,
		Membership:  domain.MembershipFree,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
