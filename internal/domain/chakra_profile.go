package domain

import (
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChakraProfile is a user's latest self-assessment. There is at most one per
// user; a new assessment replaces all seven values.
type ChakraProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Root        int       `gorm:"type:smallint;not null" json:"root"`
	Sacral      int       `gorm:"type:smallint;not null" json:"sacral"`
	SolarPlexus int       `gorm:"type:smallint;not null" json:"solar_plexus"`
	Heart       int       `gorm:"type:smallint;not null" json:"heart"`
	Throat      int       `gorm:"type:smallint;not null" json:"throat"`
	ThirdEye    int       `gorm:"type:smallint;not null" json:"third_eye"`
	Crown       int       `gorm:"type:smallint;not null" json:"crown"`
	AssessedAt  time.Time `gorm:"not null" json:"assessed_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChakraProfile) TableName() string {
	return "chakra_profiles"
}

func (p *ChakraProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Values returns the stored ratings keyed by chakra. A nil profile has no
// values.
func (p *ChakraProfile) Values() chakra.Values {
	if p == nil {
		return chakra.Values{}
	}
	return chakra.Values{
		chakra.Root:        p.Root,
		chakra.Sacral:      p.Sacral,
		chakra.SolarPlexus: p.SolarPlexus,
		chakra.Heart:       p.Heart,
		chakra.Throat:      p.Throat,
		chakra.ThirdEye:    p.ThirdEye,
		chakra.Crown:       p.Crown,
	}
}

// SetValues overwrites all seven ratings. Missing keys become zero, so
// callers validate first.
func (p *ChakraProfile) SetValues(v chakra.Values) {
	p.Root = v[chakra.Root]
	p.Sacral = v[chakra.Sacral]
	p.SolarPlexus = v[chakra.SolarPlexus]
	p.Heart = v[chakra.Heart]
	p.Throat = v[chakra.Throat]
	p.ThirdEye = v[chakra.ThirdEye]
	p.Crown = v[chakra.Crown]
}

// AssessmentRequest is the request body for submitting a chakra assessment.
// @Description All seven ratings, each from 1 (depleted) to 10 (excessive).
type AssessmentRequest struct {
	Root        int `json:"root" validate:"required,min=1,max=10" example:"4" minimum:"1" maximum:"10"`
	Sacral      int `json:"sacral" validate:"required,min=1,max=10" example:"6" minimum:"1" maximum:"10"`
	SolarPlexus int `json:"solar_plexus" validate:"required,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	Heart       int `json:"heart" validate:"required,min=1,max=10" example:"9" minimum:"1" maximum:"10"`
	Throat      int `json:"throat" validate:"required,min=1,max=10" example:"3" minimum:"1" maximum:"10"`
	ThirdEye    int `json:"third_eye" validate:"required,min=1,max=10" example:"6" minimum:"1" maximum:"10"`
	Crown       int `json:"crown" validate:"required,min=1,max=10" example:"5" minimum:"1" maximum:"10"`
}

// Values converts the request into engine values.
func (r *AssessmentRequest) Values() chakra.Values {
	return chakra.Values{
		chakra.Root:        r.Root,
		chakra.Sacral:      r.Sacral,
		chakra.SolarPlexus: r.SolarPlexus,
		chakra.Heart:       r.Heart,
		chakra.Throat:      r.Throat,
		chakra.ThirdEye:    r.ThirdEye,
		chakra.Crown:       r.Crown,
	}
}

// ChakraProfileResponse is the response for the assessment endpoints.
// Statuses and balance are computed on every read.
// @Description Chakra assessment with derived statuses and overall balance.
type ChakraProfileResponse struct {
	UserID     uuid.UUID        `json:"user_id"`
	Assessed   bool             `json:"assessed" example:"true"`
	AssessedAt *time.Time       `json:"assessed_at,omitempty"`
	Chakras    []chakra.Reading `json:"chakras"`
	Balance    chakra.Balance   `json:"balance"`
}

// NewChakraProfileResponse derives the read model for a user. p may be nil
// when the user has not been assessed.
func NewChakraProfileResponse(userID uuid.UUID, p *ChakraProfile) ChakraProfileResponse {
	values := p.Values()
	resp := ChakraProfileResponse{
		UserID:   userID,
		Assessed: p != nil,
		Chakras:  chakra.Readings(values),
		Balance:  chakra.OverallBalance(values),
	}
	if p != nil {
		at := p.AssessedAt
		resp.AssessedAt = &at
	}
	return resp
}

// FocusAffirmations groups affirmations for one focus chakra.
type FocusAffirmations struct {
	Key          chakra.Key `json:"key" example:"throat"`
	Name         string     `json:"name" example:"Throat Chakra"`
	Affirmations []string   `json:"affirmations"`
}

// RitualsResponse is the response for the healing rituals endpoint.
// @Description Personalized focus areas, practices and affirmations.
type RitualsResponse struct {
	Recommendations chakra.Recommendations `json:"recommendations"`
	Balance         chakra.Balance         `json:"balance"`
	CoachType       chakra.CoachType       `json:"coach_type" example:"higher_self"`
	CoachLabel      string                 `json:"coach_label" example:"Higher Self Coach"`
	Affirmations    []FocusAffirmations    `json:"affirmations"`
}
