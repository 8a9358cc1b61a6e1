package repository

import (
	"context"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error)
	// RecentEmotions returns distinct emotion tags from the user's latest
	// entries, most recent first.
	RecentEmotions(ctx context.Context, userID uuid.UUID, entries int) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	var entries []domain.JournalEntry
	if err := query.Limit(limit + 1).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) RecentEmotions(ctx context.Context, userID uuid.UUID, entries int) ([]string, error) {
	var rows []domain.JournalEntry
	err := r.db.WithContext(ctx).
		Select("emotions", "created_at", "id").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(entries).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	emotions := make([]string, 0)
	for i := range rows {
		for _, tag := range rows[i].EmotionTags() {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			emotions = append(emotions, tag)
		}
	}
	return emotions, nil
}

func (r *journalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.JournalEntry{}).Count(&count).Error
	return count, err
}
