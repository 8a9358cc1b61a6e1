package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// AssessmentService stores chakra assessments and derives their read model.
type AssessmentService interface {
	// Submit replaces the user's assessment with all seven ratings.
	Submit(ctx context.Context, userID uuid.UUID, req *domain.AssessmentRequest) (*domain.ChakraProfileResponse, error)
	// Get returns the current assessment. A user who has not been assessed
	// gets an empty profile, not ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfileResponse, error)
	// Reference lists the static chakra reference data.
	Reference() []chakra.Info
}

type assessmentService struct {
	profiles repository.ChakraProfileRepository
	users    repository.UserRepository
	metrics  *metrics.Recorder
	now      func() time.Time
}

func NewAssessmentService(
	profiles repository.ChakraProfileRepository,
	users repository.UserRepository,
	rec *metrics.Recorder,
) AssessmentService {
	return &assessmentService{
		profiles: profiles,
		users:    users,
		metrics:  rec,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *assessmentService) Submit(ctx context.Context, userID uuid.UUID, req *domain.AssessmentRequest) (*domain.ChakraProfileResponse, error) {
	ctx, span := startSpan(ctx, "AssessmentService.Submit", attribute.String("user.id", userID.String()))
	defer span.End()

	values := req.Values()
	observe(span, "input", values)
	if err := values.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	profile := &domain.ChakraProfile{
		UserID:     userID,
		AssessedAt: s.now(),
	}
	profile.SetValues(values)

	if err := s.profiles.Replace(ctx, profile); err != nil {
		return nil, err
	}
	s.metrics.AssessmentSubmitted()

	resp := domain.NewChakraProfileResponse(userID, profile)
	observe(span, "output", resp.Balance)
	return &resp, nil
}

func (s *assessmentService) Get(ctx context.Context, userID uuid.UUID) (*domain.ChakraProfileResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := loadProfile(ctx, s.profiles, userID)
	if err != nil {
		return nil, err
	}

	resp := domain.NewChakraProfileResponse(userID, profile)
	return &resp, nil
}

func (s *assessmentService) Reference() []chakra.Info {
	return chakra.All()
}

func (s *assessmentService) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// loadProfile returns the stored profile or nil when the user has none.
func loadProfile(ctx context.Context, repo repository.ChakraProfileRepository, userID uuid.UUID) (*domain.ChakraProfile, error) {
	profile, err := repo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
