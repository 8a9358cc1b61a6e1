package service

import (
	"context"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/blaisecz/soulsync/pkg/pagination"
	"github.com/google/uuid"
)

// AdminService backs the membership administration endpoints.
type AdminService interface {
	ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error)
	// UpdateMembership changes the tier and/or role of a user. Nil fields
	// are left unchanged.
	UpdateMembership(ctx context.Context, userID uuid.UUID, req *domain.UpdateMembershipRequest) (*domain.User, error)
	Stats(ctx context.Context) (*domain.StatsResponse, error)
}

type adminService struct {
	users    repository.UserRepository
	profiles repository.ChakraProfileRepository
	journal  repository.JournalRepository
	chats    repository.ChatRepository
}

func NewAdminService(
	users repository.UserRepository,
	profiles repository.ChakraProfileRepository,
	journal repository.JournalRepository,
	chats repository.ChatRepository,
) AdminService {
	return &adminService{
		users:    users,
		profiles: profiles,
		journal:  journal,
		chats:    chats,
	}
}

func (s *adminService) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, next, hasMore := pagination.Page(users, filter.Limit, func(u domain.User) pagination.Cursor {
		return pagination.Cursor{ID: u.ID, CreatedAt: u.CreatedAt}
	})

	resp := &domain.UserListResponse{
		Data: make([]domain.UserResponse, len(page)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    hasMore,
		},
	}
	for i := range page {
		resp.Data[i] = page[i].ToResponse()
	}
	return resp, nil
}

func (s *adminService) UpdateMembership(ctx context.Context, userID uuid.UUID, req *domain.UpdateMembershipRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Membership != nil {
		user.Membership = *req.Membership
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) Stats(ctx context.Context) (*domain.StatsResponse, error) {
	var (
		stats domain.StatsResponse
		err   error
	)
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PremiumMembers, err = s.users.CountByMembership(ctx, domain.MembershipPremium); err != nil {
		return nil, err
	}
	if stats.Assessments, err = s.profiles.Count(ctx); err != nil {
		return nil, err
	}
	if stats.JournalEntries, err = s.journal.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ChatMessages, err = s.chats.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
