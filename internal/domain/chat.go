package domain

import (
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_chat_user_created" json:"user_id"`
	Role      ChatRole         `gorm:"type:varchar(16);not null" json:"role"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	CoachType chakra.CoachType `gorm:"type:varchar(32);not null" json:"coach_type"`
	TraceID   string           `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index:idx_chat_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SendMessageRequest is the request body for talking to a coach.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000" example:"I keep putting everyone else first."`
	// Optional coach override; defaults to the coach for the primary focus chakra
	CoachType *chakra.CoachType `json:"coach_type,omitempty" validate:"omitempty,oneof=inner_child shadow_self higher_self integration" enums:"inner_child,shadow_self,higher_self,integration"`
}

// CoachReply is the structured answer produced by the coach model.
type CoachReply struct {
	Reply              string   `json:"reply" jsonschema:"description=Warm conversational reply to the user (2-5 sentences)"`
	SuggestedPractices []string `json:"suggested_practices" jsonschema:"description=Up to three concrete practices the user can try today"`
	ReflectionQuestion string   `json:"reflection_question" jsonschema:"description=One open question inviting further reflection"`
}

// ChatMessageResponse is one stored chat turn.
type ChatMessageResponse struct {
	ID        uuid.UUID        `json:"id"`
	Role      ChatRole         `json:"role"`
	Content   string           `json:"content"`
	CoachType chakra.CoachType `json:"coach_type"`
	CreatedAt time.Time        `json:"created_at"`
}

func (m *ChatMessage) ToResponse() ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		CoachType: m.CoachType,
		CreatedAt: m.CreatedAt,
	}
}

// SendMessageResponse is returned after a coach turn.
// @Description Coach reply with the persona used and a trace id for feedback.
type SendMessageResponse struct {
	CoachType  chakra.CoachType `json:"coach_type" example:"shadow_self"`
	CoachLabel string           `json:"coach_label" example:"Shadow Self Coach"`
	Reply      CoachReply       `json:"reply"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty"`
	// Remaining free-tier messages today; omitted for premium members
	RemainingToday *int `json:"remaining_today,omitempty" example:"7"`
}

// ChatHistoryResponse lists recent chat turns oldest first.
type ChatHistoryResponse struct {
	Data []ChatMessageResponse `json:"data"`
}

// FeedbackRequest rates a coach reply.
type FeedbackRequest struct {
	TraceID string `json:"trace_id" validate:"required,max=64"`
	Score   int    `json:"score" validate:"required,min=1,max=5" minimum:"1" maximum:"5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
