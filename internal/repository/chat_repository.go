package repository

import (
	"context"
	"time"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Recent returns up to limit of the user's latest messages, oldest first.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error)
	CountSince(ctx context.Context, userID uuid.UUID, role domain.ChatRole, since time.Time) (int64, error)
	// HasTrace reports whether one of the user's messages carries traceID.
	HasTrace(ctx context.Context, userID uuid.UUID, traceID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ChatMessage{}, "id = ?", id).Error
}

func (r *chatRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	var msgs []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (r *chatRepository) CountSince(ctx context.Context, userID uuid.UUID, role domain.ChatRole, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("user_id = ? AND role = ? AND created_at >= ?", userID, role, since).
		Count(&count).Error
	return count, err
}

func (r *chatRepository) HasTrace(ctx context.Context, userID uuid.UUID, traceID string) (bool, error) {
	if traceID == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("user_id = ? AND trace_id = ?", userID, traceID).
		Count(&count).Error
	return count > 0, err
}

func (r *chatRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Count(&count).Error
	return count, err
}
