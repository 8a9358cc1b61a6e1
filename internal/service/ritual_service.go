package service

import (
	"context"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// affirmationsPerFocus is how many affirmations are shown per focus chakra.
const affirmationsPerFocus = 2

// RitualService turns a stored assessment into healing rituals.
type RitualService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.RitualsResponse, error)
}

type ritualService struct {
	engine   *chakra.Engine
	profiles repository.ChakraProfileRepository
	users    repository.UserRepository
}

func NewRitualService(engine *chakra.Engine, profiles repository.ChakraProfileRepository, users repository.UserRepository) RitualService {
	return &ritualService{engine: engine, profiles: profiles, users: users}
}

func (s *ritualService) Get(ctx context.Context, userID uuid.UUID) (*domain.RitualsResponse, error) {
	ctx, span := startSpan(ctx, "RitualService.Get", attribute.String("user.id", userID.String()))
	defer span.End()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := loadProfile(ctx, s.profiles, userID)
	if err != nil {
		return nil, err
	}
	values := profile.Values()
	observe(span, "input", values)

	coach := chakra.PrimaryCoach(values)
	resp := &domain.RitualsResponse{
		Recommendations: s.engine.Recommendations(values),
		Balance:         chakra.OverallBalance(values),
		CoachType:       coach,
		CoachLabel:      coach.Label(),
		Affirmations:    focusAffirmations(values),
	}
	observe(span, "output", resp)
	return resp, nil
}

func focusAffirmations(values chakra.Values) []domain.FocusAffirmations {
	ranked := chakra.Rank(values)
	if len(ranked) > chakra.MaxFocusAreas {
		ranked = ranked[:chakra.MaxFocusAreas]
	}

	out := make([]domain.FocusAffirmations, 0, len(ranked))
	for _, im := range ranked {
		info := chakra.MustLookup(im.Key)
		affirmations := info.Affirmations
		if len(affirmations) > affirmationsPerFocus {
			affirmations = affirmations[:affirmationsPerFocus]
		}
		out = append(out, domain.FocusAffirmations{
			Key:          im.Key,
			Name:         info.Name,
			Affirmations: append([]string(nil), affirmations...),
		})
	}
	return out
}
