package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChakraProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfile, error)
	// Replace stores profile as the user's only assessment, overwriting
	// every rating of an existing one.
	Replace(ctx context.Context, profile *domain.ChakraProfile) error
	Count(ctx context.Context) (int64, error)
}

type chakraProfileRepository struct {
	db *gorm.DB
}

func NewChakraProfileRepository(db *gorm.DB) ChakraProfileRepository {
	return &chakraProfileRepository{db: db}
}

func (r *chakraProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfile, error) {
	var profile domain.ChakraProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *chakraProfileRepository) Replace(ctx context.Context, profile *domain.ChakraProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.ChakraProfile
		err := tx.First(&existing, "user_id = ?", profile.UserID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(profile).Error
		case err != nil:
			return err
		}

		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Save(profile).Error
	})
}

func (r *chakraProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChakraProfile{}).Count(&count).Error
	return count, err
}
