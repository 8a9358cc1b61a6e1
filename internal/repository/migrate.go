package repository

import (
	"github.com/blaisecz/soulsync/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.ChakraProfile{},
		&domain.JournalEntry{},
		&domain.ChatMessage{},
	)
}
