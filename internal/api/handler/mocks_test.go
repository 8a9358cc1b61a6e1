package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Email: req.Email, Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockAssessmentService is a mock implementation of AssessmentService
type MockAssessmentService struct {
	submitFunc func(ctx context.Context, userID uuid.UUID, req *domain.AssessmentRequest) (*domain.ChakraProfileResponse, error)
	getFunc    func(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfileResponse, error)
}

func (m *MockAssessmentService) Submit(ctx context.Context, userID uuid.UUID, req *domain.AssessmentRequest) (*domain.ChakraProfileResponse, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, req)
	}
	p := &domain.ChakraProfile{UserID: userID}
	p.SetValues(req.Values())
	resp := domain.NewChakraProfileResponse(userID, p)
	return &resp, nil
}

func (m *MockAssessmentService) Get(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfileResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	resp := domain.NewChakraProfileResponse(userID, nil)
	return &resp, nil
}

func (m *MockAssessmentService) Reference() []chakra.Info {
	return chakra.All()
}

// MockRitualService is a mock implementation of RitualService
type MockRitualService struct {
	getFunc func(ctx context.Context, userID uuid.UUID) (*domain.RitualsResponse, error)
}

func (m *MockRitualService) Get(ctx context.Context, userID uuid.UUID) (*domain.RitualsResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return &domain.RitualsResponse{CoachType: chakra.CoachIntegration}, nil
}

// MockJournalService is a mock implementation of JournalService
type MockJournalService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error)
}

func (m *MockJournalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.JournalEntry{ID: uuid.New(), UserID: userID, Title: req.Title, Content: req.Content, SentimentLabel: "neutral"}, nil
}

func (m *MockJournalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.JournalListResponse{Data: []domain.JournalEntryResponse{}}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	sendFunc     func(ctx context.Context, userID uuid.UUID, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error)
	historyFunc  func(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChatHistoryResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error
}

func (m *MockCoachService) Send(ctx context.Context, userID uuid.UUID, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, userID, req)
	}
	return &domain.SendMessageResponse{CoachType: chakra.CoachIntegration, CoachLabel: chakra.CoachIntegration.Label()}, nil
}

func (m *MockCoachService) History(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChatHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, limit)
	}
	return &domain.ChatHistoryResponse{Data: []domain.ChatMessageResponse{}}, nil
}

func (m *MockCoachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// MockAdminService is a mock implementation of AdminService
type MockAdminService struct {
	listFunc   func(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateMembershipRequest) (*domain.User, error)
	statsFunc  func(ctx context.Context) (*domain.StatsResponse, error)
}

func (m *MockAdminService) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.UserListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.UserListResponse{Data: []domain.UserResponse{}}, nil
}

func (m *MockAdminService) UpdateMembership(ctx context.Context, userID uuid.UUID, req *domain.UpdateMembershipRequest) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, req)
	}
	u := &domain.User{ID: userID, Membership: domain.MembershipFree, Role: domain.RoleMember}
	if req.Membership != nil {
		u.Membership = *req.Membership
	}
	return u, nil
}

func (m *MockAdminService) Stats(ctx context.Context) (*domain.StatsResponse, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &domain.StatsResponse{}, nil
}

// newRequest builds a request with the userId chi URL param set.
func newRequest(method, target, userID, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rctx := chi.NewRouteContext()
	if userID != "" {
		rctx.URLParams.Add("userId", userID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
