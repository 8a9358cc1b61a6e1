package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/langfuse"
	"github.com/blaisecz/soulsync/internal/llm"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// recentEmotionEntries is how many journal entries feed the coaching context.
	recentEmotionEntries = 5

	DefaultChatHistoryLimit = 12
	MaxChatHistoryLimit     = 100

	feedbackScoreName = "user_rating"
)

// PromptSource resolves a named system prompt.
type PromptSource interface {
	Get(ctx context.Context, name string) (string, error)
}

// CoachConfig holds membership limits for coaching.
type CoachConfig struct {
	// FreeDailyLimit caps user messages per UTC day for free members.
	// Zero or less disables the cap.
	FreeDailyLimit int
	// HistoryLimit is how many earlier turns are sent to the model.
	HistoryLimit int
}

// CoachService runs coaching conversations.
type CoachService interface {
	Send(ctx context.Context, userID uuid.UUID, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChatHistoryResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error
}

type coachService struct {
	engine   *chakra.Engine
	coach    llm.Coach
	prompts  PromptSource
	langfuse langfuse.Client
	users    repository.UserRepository
	profiles repository.ChakraProfileRepository
	journal  repository.JournalRepository
	chats    repository.ChatRepository
	metrics  *metrics.Recorder
	cfg      CoachConfig
	now      func() time.Time
}

// CoachDeps bundles the collaborators of NewCoachService.
type CoachDeps struct {
	Engine   *chakra.Engine
	Coach    llm.Coach
	Prompts  PromptSource
	Langfuse langfuse.Client
	Users    repository.UserRepository
	Profiles repository.ChakraProfileRepository
	Journal  repository.JournalRepository
	Chats    repository.ChatRepository
	Metrics  *metrics.Recorder
}

func NewCoachService(deps CoachDeps, cfg CoachConfig) CoachService {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultChatHistoryLimit
	}
	return &coachService{
		engine:   deps.Engine,
		coach:    deps.Coach,
		prompts:  deps.Prompts,
		langfuse: deps.Langfuse,
		users:    deps.Users,
		profiles: deps.Profiles,
		journal:  deps.Journal,
		chats:    deps.Chats,
		metrics:  deps.Metrics,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *coachService) Send(ctx context.Context, userID uuid.UUID, req *domain.SendMessageRequest) (*domain.SendMessageResponse, error) {
	ctx, span := startSpan(ctx, "CoachService.Send", attribute.String("user.id", userID.String()))
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := loadProfile(ctx, s.profiles, userID)
	if err != nil {
		return nil, err
	}
	values := profile.Values()

	emotions, err := s.journal.RecentEmotions(ctx, userID, recentEmotionEntries)
	if err != nil {
		return nil, err
	}

	coachType := chakra.PrimaryCoach(values)
	if req.CoachType != nil && req.CoachType.Valid() {
		coachType = *req.CoachType
	}
	span.SetAttributes(attribute.String("coach.type", string(coachType)))

	coachingContext := s.engine.CoachingContext(values, emotions)
	observe(span, "input", map[string]any{
		"message":    req.Message,
		"coach_type": coachType,
		"context":    coachingContext,
	})

	prompt, err := s.prompts.Get(ctx, llm.PromptName(coachType))
	if err != nil {
		return nil, fmt.Errorf("load prompt for %s: %w", coachType, err)
	}

	history, err := s.chats.Recent(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	userMsg := &domain.ChatMessage{
		UserID:    userID,
		Role:      domain.ChatRoleUser,
		Content:   req.Message,
		CoachType: coachType,
		CreatedAt: now,
	}
	remaining, err := s.reserveTurn(ctx, user, userMsg)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			s.metrics.CoachReply("none", metrics.OutcomeQuota)
		}
		return nil, err
	}

	reply, err := s.coach.Reply(ctx, llm.CoachRequest{
		CoachType:    coachType,
		SystemPrompt: prompt,
		Context:      coachingContext,
		History:      history,
		Message:      req.Message,
	})
	if err != nil {
		s.releaseTurn(ctx, userMsg)
		outcome := metrics.OutcomeError
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			outcome = metrics.OutcomeUnavailable
		}
		s.metrics.CoachReply(string(coachType), outcome)
		return nil, err
	}
	observe(span, "output", reply)

	traceID := s.recordTrace(ctx, userID, coachType, req.Message, reply, values)

	replyAt := s.now()
	if !replyAt.After(now) {
		replyAt = now.Add(time.Millisecond)
	}
	assistantMsg := &domain.ChatMessage{
		UserID:    userID,
		Role:      domain.ChatRoleAssistant,
		Content:   reply.Reply,
		CoachType: coachType,
		TraceID:   traceID,
		CreatedAt: replyAt,
	}
	if err := s.chats.Create(ctx, assistantMsg); err != nil {
		s.releaseTurn(ctx, userMsg)
		return nil, err
	}

	s.metrics.CoachReply(string(coachType), metrics.OutcomeOK)

	return &domain.SendMessageResponse{
		CoachType:      coachType,
		CoachLabel:     coachType.Label(),
		Reply:          *reply,
		TraceID:        traceID,
		RemainingToday: remaining,
	}, nil
}

// reserveTurn stores the user's message before the model is called, so the
// daily count already includes it while the reply is pending. For free
// members it then counts the day's messages and withdraws the new one when
// the cap is passed. It returns how many messages are left after this one,
// or nil for members without a cap.
func (s *coachService) reserveTurn(ctx context.Context, user *domain.User, msg *domain.ChatMessage) (*int, error) {
	if err := s.chats.Create(ctx, msg); err != nil {
		return nil, err
	}
	if user.IsPremium() || s.cfg.FreeDailyLimit <= 0 {
		return nil, nil
	}

	now := msg.CreatedAt
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	used, err := s.chats.CountSince(ctx, user.ID, domain.ChatRoleUser, dayStart)
	if err != nil {
		s.releaseTurn(ctx, msg)
		return nil, err
	}
	if int(used) > s.cfg.FreeDailyLimit {
		s.releaseTurn(ctx, msg)
		return nil, domain.ErrQuotaExceeded
	}

	left := s.cfg.FreeDailyLimit - int(used)
	return &left, nil
}

// releaseTurn removes a reserved user message whose turn did not complete.
func (s *coachService) releaseTurn(ctx context.Context, msg *domain.ChatMessage) {
	if err := s.chats.Delete(context.WithoutCancel(ctx), msg.ID); err != nil {
		zap.L().Warn("reserved chat turn not released", zap.String("message_id", msg.ID.String()), zap.Error(err))
	}
}

// recordTrace sends the turn to Langfuse and returns the id clients use for
// feedback. Without Langfuse the OTEL trace id is used.
func (s *coachService) recordTrace(
	ctx context.Context,
	userID uuid.UUID,
	coachType chakra.CoachType,
	message string,
	reply *domain.CoachReply,
	values chakra.Values,
) string {
	if s.langfuse != nil && s.langfuse.IsEnabled() {
		id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   "coach-chat",
			Input:  message,
			Output: reply,
			Tags:   []string{string(coachType)},
			Metadata: map[string]any{
				"coach_type": coachType,
				"balance":    chakra.OverallBalance(values).Score,
			},
		})
		if err == nil && id != "" {
			return id
		}
		if err != nil {
			zap.L().Warn("langfuse trace failed", zap.Error(err))
		}
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}

func (s *coachService) History(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChatHistoryResponse, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}
	if limit > MaxChatHistoryLimit {
		limit = MaxChatHistoryLimit
	}

	msgs, err := s.chats.Recent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	resp := &domain.ChatHistoryResponse{Data: make([]domain.ChatMessageResponse, len(msgs))}
	for i := range msgs {
		resp.Data[i] = msgs[i].ToResponse()
	}
	return resp, nil
}

func (s *coachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	owned, err := s.chats.HasTrace(ctx, userID, req.TraceID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.ErrNotFound
	}
	if s.langfuse == nil {
		return nil
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}
