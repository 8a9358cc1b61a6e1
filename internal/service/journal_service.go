package service

import (
	"context"
	"strings"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/blaisecz/soulsync/internal/sentiment"
	"github.com/blaisecz/soulsync/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// JournalService writes sentiment-tagged journal entries.
type JournalService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error)
}

type journalService struct {
	repo     repository.JournalRepository
	users    repository.UserRepository
	analyzer *sentiment.Analyzer
	metrics  *metrics.Recorder
}

func NewJournalService(
	repo repository.JournalRepository,
	users repository.UserRepository,
	analyzer *sentiment.Analyzer,
	rec *metrics.Recorder,
) JournalService {
	return &journalService{
		repo:     repo,
		users:    users,
		analyzer: analyzer,
		metrics:  rec,
	}
}

func (s *journalService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	ctx, span := startSpan(ctx, "JournalService.Create", attribute.String("user.id", userID.String()))
	defer span.End()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	mood := strings.ToLower(strings.TrimSpace(req.Mood))
	result := s.analyzer.Analyze(req.Title+". "+req.Content, mood)
	observe(span, "output", result)

	entry := &domain.JournalEntry{
		UserID:         userID,
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		Mood:           mood,
		SentimentLabel: string(result.Label),
		SentimentScore: result.Score,
	}
	entry.SetEmotionTags(result.Emotions)

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.metrics.JournalEntryCreated(string(result.Label))

	return entry, nil
}

func (s *journalService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) (*domain.JournalListResponse, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	page, next, hasMore := pagination.Page(entries, filter.Limit, func(e domain.JournalEntry) pagination.Cursor {
		return pagination.Cursor{ID: e.ID, CreatedAt: e.CreatedAt}
	})

	resp := &domain.JournalListResponse{
		Data: make([]domain.JournalEntryResponse, len(page)),
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
