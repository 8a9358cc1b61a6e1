package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/llm"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type coachFixture struct {
	svc      CoachService
	users    *MockUserRepository
	profiles *MockChakraProfileRepository
	journal  *MockJournalRepository
	chats    *MockChatRepository
	coach    *MockCoach
	langfuse *MockLangfuse
	reg      *prometheus.Registry
}

func newCoachFixture(t *testing.T, cfg CoachConfig) *coachFixture {
	t.Helper()
	f := &coachFixture{
		users:    NewMockUserRepository(),
		profiles: NewMockChakraProfileRepository(),
		journal:  &MockJournalRepository{},
		chats:    &MockChatRepository{},
		coach:    &MockCoach{},
		langfuse: &MockLangfuse{enabled: true},
		reg:      prometheus.NewRegistry(),
	}
	rec, err := metrics.New("test", f.reg)
	require.NoError(t, err)

	prompts := staticPrompts{}
	for _, c := range []chakra.CoachType{chakra.CoachInnerChild, chakra.CoachShadowSelf, chakra.CoachHigherSelf, chakra.CoachIntegration} {
		prompts[llm.PromptName(c)] = "You are the " + c.Label() + "."
	}

	svc := NewCoachService(CoachDeps{
		Engine:   chakra.New(),
		Coach:    f.coach,
		Prompts:  prompts,
		Langfuse: f.langfuse,
		Users:    f.users,
		Profiles: f.profiles,
		Journal:  f.journal,
		Chats:    f.chats,
		Metrics:  rec,
	}, cfg)
	svc.(*coachService).now = func() time.Time { return fixedNow }
	f.svc = svc
	return f
}

func (f *coachFixture) assess(t *testing.T, userID uuid.UUID, values chakra.Values) {
	t.Helper()
	p := &domain.ChakraProfile{UserID: userID}
	p.SetValues(values)
	require.NoError(t, f.profiles.Replace(context.Background(), p))
}

func TestCoachService_Send(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{FreeDailyLimit: 5, HistoryLimit: 4})
	user := f.users.add(domain.MembershipFree)
	values := chakra.DefaultValues()
	values[chakra.Heart] = 9
	f.assess(t, user.ID, values)
	f.journal.emotions = []string{"anxiety", "hope"}

	resp, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "I always say yes to everyone."})
	require.NoError(t, err)

	assert.Equal(t, chakra.CoachShadowSelf, resp.CoachType)
	assert.Equal(t, "Shadow Self Coach", resp.CoachLabel)
	assert.Equal(t, "I hear you.", resp.Reply.Reply)
	assert.True(t, strings.HasPrefix(resp.TraceID, "trace-"))
	require.NotNil(t, resp.RemainingToday)
	assert.Equal(t, 4, *resp.RemainingToday)

	require.Len(t, f.coach.requests, 1)
	req := f.coach.requests[0]
	assert.Equal(t, "You are the Shadow Self Coach.", req.SystemPrompt)
	assert.Contains(t, req.Context, "PRIMARY FOCUS: Heart Chakra (Overactive)")
	assert.Contains(t, req.Context, "RECENT EMOTIONS: anxiety, hope")
	assert.Empty(t, req.History)

	require.Len(t, f.chats.messages, 2)
	assert.Equal(t, domain.ChatRoleUser, f.chats.messages[0].Role)
	assert.Equal(t, domain.ChatRoleAssistant, f.chats.messages[1].Role)
	assert.Equal(t, resp.TraceID, f.chats.messages[1].TraceID)
	assert.True(t, f.chats.messages[1].CreatedAt.After(f.chats.messages[0].CreatedAt))

	require.Len(t, f.langfuse.traces, 1)
	assert.Equal(t, user.ID.String(), f.langfuse.traces[0].UserID)
	assert.Equal(t, []string{"shadow_self"}, f.langfuse.traces[0].Tags)

	// The next turn sees the previous one as history.
	_, err = f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "Why?"})
	require.NoError(t, err)
	assert.Len(t, f.coach.requests[1].History, 2)
}

func TestCoachService_Send_CoachOverrideAndNoProfile(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{})
	user := f.users.add(domain.MembershipFree)

	resp, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, chakra.CoachIntegration, resp.CoachType)
	assert.Nil(t, resp.RemainingToday)
	assert.Contains(t, f.coach.requests[0].Context, "not assessed")

	inner := chakra.CoachInnerChild
	resp, err = f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "hello", CoachType: &inner})
	require.NoError(t, err)
	assert.Equal(t, chakra.CoachInnerChild, resp.CoachType)
	assert.Equal(t, "You are the Inner Child Coach.", f.coach.requests[1].SystemPrompt)
}

func TestCoachService_Send_Quota(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{FreeDailyLimit: 2})
	free := f.users.add(domain.MembershipFree)
	premium := f.users.add(domain.MembershipPremium)

	seed := func(userID uuid.UUID, at time.Time) {
		f.chats.messages = append(f.chats.messages, domain.ChatMessage{
			ID: uuid.New(), UserID: userID, Role: domain.ChatRoleUser, Content: "x", CreatedAt: at,
		})
	}
	yesterday := fixedNow.Add(-13 * time.Hour)
	today := fixedNow.Add(-2 * time.Hour)

	seed(free.ID, yesterday)
	seed(free.ID, today)
	resp, err := f.svc.Send(context.Background(), free.ID, &domain.SendMessageRequest{Message: "one more"})
	require.NoError(t, err)
	assert.Equal(t, 0, *resp.RemainingToday)

	_, err = f.svc.Send(context.Background(), free.ID, &domain.SendMessageRequest{Message: "again"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Len(t, f.coach.requests, 1)

	seed(premium.ID, today)
	seed(premium.ID, today)
	seed(premium.ID, today)
	resp, err = f.svc.Send(context.Background(), premium.ID, &domain.SendMessageRequest{Message: "unlimited"})
	require.NoError(t, err)
	assert.Nil(t, resp.RemainingToday)

	expected := `
# HELP test_coach_replies_total Coach chat turns by coach type and outcome.
# TYPE test_coach_replies_total counter
test_coach_replies_total{coach="integration",outcome="ok"} 2
test_coach_replies_total{coach="none",outcome="quota_exceeded"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.reg, strings.NewReader(expected), "test_coach_replies_total"))
}

func TestCoachService_Send_ReservesQuotaSlot(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{FreeDailyLimit: 1})
	user := f.users.add(domain.MembershipFree)

	var overlapping error
	f.coach.ReplyFunc = func(ctx context.Context, req llm.CoachRequest) (*domain.CoachReply, error) {
		require.Len(t, f.chats.messages, 1, "user turn is stored before the reply")
		assert.Equal(t, domain.ChatRoleUser, f.chats.messages[0].Role)
		assert.Empty(t, req.History, "the pending turn is not its own history")

		// A second send arriving while this reply is pending.
		_, overlapping = f.svc.Send(ctx, user.ID, &domain.SendMessageRequest{Message: "me too"})
		return &domain.CoachReply{Reply: "I hear you."}, nil
	}

	resp, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "first"})
	require.NoError(t, err)
	assert.Equal(t, 0, *resp.RemainingToday)
	assert.ErrorIs(t, overlapping, domain.ErrQuotaExceeded)
	assert.Len(t, f.coach.requests, 1)

	require.Len(t, f.chats.messages, 2)
	assert.Equal(t, "first", f.chats.messages[0].Content)
	assert.Equal(t, domain.ChatRoleAssistant, f.chats.messages[1].Role)
}

func TestCoachService_Send_Errors(t *testing.T) {
	tests := []struct {
		name     string
		replyErr error
		wantErr  error
	}{
		{"coach unavailable", llm.ErrOpenAIUnavailable, llm.ErrOpenAIUnavailable},
		{"coach request failed", llm.ErrOpenAIRequest, llm.ErrOpenAIRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoachFixture(t, CoachConfig{FreeDailyLimit: 3})
			user := f.users.add(domain.MembershipFree)
			f.coach.ReplyFunc = func(context.Context, llm.CoachRequest) (*domain.CoachReply, error) {
				return nil, tt.replyErr
			}

			_, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "hi"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Send() error = %v, want %v", err, tt.wantErr)
			}
			assert.Empty(t, f.chats.messages, "failed turns are not stored")
		})
	}

	f := newCoachFixture(t, CoachConfig{})
	_, err := f.svc.Send(context.Background(), uuid.New(), &domain.SendMessageRequest{Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCoachService_Send_LangfuseDisabled(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{})
	f.langfuse.enabled = false
	user := f.users.add(domain.MembershipFree)

	resp, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Empty(t, resp.TraceID, "no recording span and no Langfuse means no trace id")
	assert.Empty(t, f.langfuse.traces)
}

func TestCoachService_History(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{})
	user := f.users.add(domain.MembershipPremium)
	for i := 0; i < 3; i++ {
		_, err := f.svc.Send(context.Background(), user.ID, &domain.SendMessageRequest{Message: "msg"})
		require.NoError(t, err)
	}

	resp, err := f.svc.History(context.Background(), user.ID, 4)
	require.NoError(t, err)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, domain.ChatRoleUser, resp.Data[0].Role)

	_, err = f.svc.History(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCoachService_Feedback(t *testing.T) {
	f := newCoachFixture(t, CoachConfig{})
	user := f.users.add(domain.MembershipFree)
	other := f.users.add(domain.MembershipFree)
	f.chats.messages = append(f.chats.messages,
		domain.ChatMessage{ID: uuid.New(), UserID: user.ID, Role: domain.ChatRoleAssistant, TraceID: "trace-1", CreatedAt: fixedNow},
		domain.ChatMessage{ID: uuid.New(), UserID: other.ID, Role: domain.ChatRoleAssistant, TraceID: "trace-2", CreatedAt: fixedNow},
	)

	err := f.svc.Feedback(context.Background(), user.ID, &domain.FeedbackRequest{TraceID: "trace-1", Score: 4, Comment: "helpful"})
	require.NoError(t, err)
	require.Len(t, f.langfuse.scores, 1)
	assert.Equal(t, "user_rating", f.langfuse.scores[0].Name)
	assert.Equal(t, 4.0, f.langfuse.scores[0].Value)
	assert.Equal(t, "trace-1", f.langfuse.scores[0].TraceID)

	tests := []struct {
		name    string
		userID  uuid.UUID
		traceID string
	}{
		{"unknown user", uuid.New(), "trace-1"},
		{"another user's trace", user.ID, "trace-2"},
		{"unknown trace", user.ID, "trace-404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.Feedback(context.Background(), tt.userID, &domain.FeedbackRequest{TraceID: tt.traceID, Score: 1})
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
	assert.Len(t, f.langfuse.scores, 1, "rejected feedback is not scored")
}
