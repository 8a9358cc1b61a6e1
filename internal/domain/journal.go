package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_journal_user_created" json:"user_id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Mood           string    `gorm:"type:varchar(32)" json:"mood,omitempty"`
	SentimentLabel string    `gorm:"type:varchar(16);not null" json:"sentiment_label"`
	SentimentScore float64   `gorm:"not null" json:"sentiment_score"`
	// Emotions is a comma-separated list of emotion tags.
	Emotions  string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_journal_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (e *JournalEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EmotionTags splits the stored emotion list.
func (e *JournalEntry) EmotionTags() []string {
	if e.Emotions == "" {
		return []string{}
	}
	return strings.Split(e.Emotions, ",")
}

// SetEmotionTags joins tags for storage.
func (e *JournalEntry) SetEmotionTags(tags []string) {
	e.Emotions = strings.Join(tags, ",")
}

// CreateJournalEntryRequest is the request body for writing a journal entry.
type CreateJournalEntryRequest struct {
	Title   string `json:"title" validate:"required,max=200" example:"Morning pages"`
	Content string `json:"content" validate:"required,max=10000" example:"Woke up calm and grateful for the quiet."`
	// Optional self-reported mood word
	Mood string `json:"mood,omitempty" validate:"omitempty,max=32" example:"hopeful"`
}

// JournalEntryResponse is the response body for journal endpoints.
type JournalEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Mood           string    `json:"mood,omitempty"`
	SentimentLabel string    `json:"sentiment_label" example:"positive"`
	SentimentScore float64   `json:"sentiment_score" example:"0.62"`
	Emotions       []string  `json:"emotions"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *JournalEntry) ToResponse() JournalEntryResponse {
	return JournalEntryResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Title:          e.Title,
		Content:        e.Content,
		Mood:           e.Mood,
		SentimentLabel: e.SentimentLabel,
		SentimentScore: e.SentimentScore,
		Emotions:       e.EmotionTags(),
		CreatedAt:      e.CreatedAt,
	}
}

// JournalListResponse is a page of journal entries, newest first.
type JournalListResponse struct {
	Data       []JournalEntryResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// JournalFilter contains filter parameters for listing journal entries.
type JournalFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
