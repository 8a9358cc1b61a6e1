package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the authorization role of a user.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Membership is the subscription tier of a user.
// @Description Membership tier: free members have a daily coach message limit.
type Membership string

const (
	MembershipFree    Membership = "free"
	MembershipPremium Membership = "premium"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	DisplayName string     `gorm:"type:varchar(100);not null" json:"display_name"`
	Timezone    string     `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Role        Role       `gorm:"type:varchar(16);not null;default:'member'" json:"role"`
	Membership  Membership `gorm:"type:varchar(16);not null;default:'free'" json:"membership"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsPremium reports whether the user is exempt from free-tier limits.
func (u *User) IsPremium() bool {
	return u.Membership == MembershipPremium
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	// Contact email, unique per user
	Email string `json:"email" validate:"required,email,max=255" example:"maya@example.com"`
	// Name shown in the app
	DisplayName string `json:"display_name" validate:"required,min=1,max=100" example:"Maya"`
	// IANA timezone used for daily limits and local times
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UpdateMembershipRequest is the admin request body for changing a user's
// tier or role. Omitted fields are left unchanged.
type UpdateMembershipRequest struct {
	Membership *Membership `json:"membership,omitempty" validate:"omitempty,oneof=free premium" enums:"free,premium" example:"premium"`
	Role       *Role       `json:"role,omitempty" validate:"omitempty,oneof=member admin" enums:"member,admin" example:"member"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Timezone    string     `json:"timezone"`
	Role        Role       `json:"role"`
	Membership  Membership `json:"membership"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Timezone:    u.Timezone,
		Role:        u.Role,
		Membership:  u.Membership,
		CreatedAt:   u.CreatedAt,
	}
}

// UserListResponse is a page of users for the admin listing.
type UserListResponse struct {
	Data       []UserResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// UserFilter contains paging parameters for listing users.
type UserFilter struct {
	Limit  int
	Cursor string
}
