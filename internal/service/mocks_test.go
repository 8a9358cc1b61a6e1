package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/langfuse"
	"github.com/blaisecz/soulsync/internal/llm"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// List ignores the cursor and returns up to limit+1 users newest first.
func (m *MockUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if n := filter.Limit + 1; filter.Limit > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), m.err
}

func (m *MockUserRepository) CountByMembership(ctx context.Context, membership domain.Membership) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Membership == membership {
			n++
		}
	}
	return n, m.err
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

func (m *MockUserRepository) add(membership domain.Membership) *domain.User {
	u := &domain.User{
		ID:          uuid.New(),
		Email:       uuid.NewString() + "@example.com",
		DisplayName: "Test",
		Timezone:    "UTC",
		Role:        domain.RoleMember,
		Membership:  membership,
		CreatedAt:   time.Now().UTC(),
	}
	m.users[u.ID] = u
	return u
}

// MockChakraProfileRepository is a mock implementation of ChakraProfileRepository
type MockChakraProfileRepository struct {
	profiles map[uuid.UUID]*domain.ChakraProfile
	err      error
}

func NewMockChakraProfileRepository() *MockChakraProfileRepository {
	return &MockChakraProfileRepository{profiles: make(map[uuid.UUID]*domain.ChakraProfile)}
}

func (m *MockChakraProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *MockChakraProfileRepository) Replace(ctx context.Context, profile *domain.ChakraProfile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *MockChakraProfileRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.profiles)), m.err
}

// MockJournalRepository is a mock implementation of JournalRepository
type MockJournalRepository struct {
	entries  []domain.JournalEntry
	emotions []string
	err      error
}

func (m *MockJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockJournalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.JournalEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *MockJournalRepository) RecentEmotions(ctx context.Context, userID uuid.UUID, entries int) ([]string, error) {
	return m.emotions, m.err
}

func (m *MockJournalRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.entries)), m.err
}

// MockChatRepository is a mock implementation of ChatRepository
type MockChatRepository struct {
	messages []domain.ChatMessage
	err      error
}

func (m *MockChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if m.err != nil {
		return m.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MockChatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockChatRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.ChatMessage
	for _, msg := range m.messages {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *MockChatRepository) CountSince(ctx context.Context, userID uuid.UUID, role domain.ChatRole, since time.Time) (int64, error) {
	var n int64
	for _, msg := range m.messages {
		if msg.UserID == userID && msg.Role == role && !msg.CreatedAt.Before(since) {
			n++
		}
	}
	return n, m.err
}

func (m *MockChatRepository) HasTrace(ctx context.Context, userID uuid.UUID, traceID string) (bool, error) {
	for _, msg := range m.messages {
		if traceID != "" && msg.UserID == userID && msg.TraceID == traceID {
			return true, m.err
		}
	}
	return false, m.err
}

func (m *MockChatRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.messages)), m.err
}

// MockCoach is a mock implementation of llm.Coach
type MockCoach struct {
	ReplyFunc func(ctx context.Context, req llm.CoachRequest) (*domain.CoachReply, error)
	requests  []llm.CoachRequest
}

func (m *MockCoach) Reply(ctx context.Context, req llm.CoachRequest) (*domain.CoachReply, error) {
	m.requests = append(m.requests, req)
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, req)
	}
	return &domain.CoachReply{
		Reply:              "I hear you.",
		SuggestedPractices: []string{"Slow breathing"},
		ReflectionQuestion: "What would feel supportive right now?",
	}, nil
}

// staticPrompts serves prompts from a map.
type staticPrompts map[string]string

func (p staticPrompts) Get(ctx context.Context, name string) (string, error) {
	if s, ok := p[name]; ok {
		return s, nil
	}
	return "", langfuse.ErrPromptNotFound
}

// MockLangfuse records traces and scores.
type MockLangfuse struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuse) IsEnabled() bool { return m.enabled }

func (m *MockLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return "trace-" + uuid.NewString(), nil
}

func (m *MockLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if !m.enabled {
		return nil
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuse) Close(ctx context.Context) error { return nil }
