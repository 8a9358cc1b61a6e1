package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessment(v int) *domain.AssessmentRequest {
	return &domain.AssessmentRequest{
		Root: v, Sacral: v, SolarPlexus: v, Heart: v, Throat: v, ThirdEye: v, Crown: v,
	}
}

func TestAssessmentService_Submit(t *testing.T) {
	users := NewMockUserRepository()
	profiles := NewMockChakraProfileRepository()
	reg := prometheus.NewRegistry()
	rec, err := metrics.New("test", reg)
	require.NoError(t, err)
	svc := NewAssessmentService(profiles, users, rec)

	user := users.add(domain.MembershipFree)
	req := assessment(6)
	req.Heart = 9

	resp, err := svc.Submit(context.Background(), user.ID, req)
	require.NoError(t, err)

	assert.True(t, resp.Assessed)
	require.NotNil(t, resp.AssessedAt)
	require.Len(t, resp.Chakras, len(chakra.Keys))
	assert.Equal(t, chakra.Heart, resp.Chakras[3].Key)
	assert.Equal(t, chakra.LevelOveractive, resp.Chakras[3].Status.Level)
	assert.Equal(t, 6.4, resp.Balance.Score)
	assert.Equal(t, chakra.BalanceRelativelyBalanced, resp.Balance.Status)

	// Second submission replaces every value.
	_, err = svc.Submit(context.Background(), user.ID, assessment(2))
	require.NoError(t, err)
	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Chakras[3].Value)
	assert.Equal(t, chakra.BalanceSignificantlyUnderactive, got.Balance.Status)

	expected := `
# HELP test_assessments_submitted_total Chakra assessments stored.
# TYPE test_assessments_submitted_total counter
test_assessments_submitted_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_assessments_submitted_total"))
}

func TestAssessmentService_Submit_Errors(t *testing.T) {
	users := NewMockUserRepository()
	profiles := NewMockChakraProfileRepository()
	svc := NewAssessmentService(profiles, users, nil)
	user := users.add(domain.MembershipFree)

	tests := []struct {
		name    string
		userID  uuid.UUID
		req     *domain.AssessmentRequest
		wantErr error
	}{
		{"value out of range", user.ID, assessment(11), domain.ErrInvalidInput},
		{"value below range", user.ID, assessment(0), domain.ErrInvalidInput},
		{"unknown user", uuid.New(), assessment(5), domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.userID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	assert.Empty(t, profiles.profiles)
}

func TestAssessmentService_Get_NotAssessed(t *testing.T) {
	users := NewMockUserRepository()
	svc := NewAssessmentService(NewMockChakraProfileRepository(), users, nil)
	user := users.add(domain.MembershipFree)

	resp, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, resp.Assessed)
	assert.Nil(t, resp.AssessedAt)
	assert.Empty(t, resp.Chakras)
	assert.Equal(t, chakra.BalanceNotAssessed, resp.Balance.Status)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssessmentService_Get_RepoError(t *testing.T) {
	users := NewMockUserRepository()
	profiles := NewMockChakraProfileRepository()
	boom := errors.New("db down")
	profiles.err = boom
	svc := NewAssessmentService(profiles, users, nil)
	user := users.add(domain.MembershipFree)

	_, err := svc.Get(context.Background(), user.ID)
	assert.ErrorIs(t, err, boom)
}

func TestAssessmentService_Reference(t *testing.T) {
	svc := NewAssessmentService(nil, nil, nil)
	ref := svc.Reference()
	require.Len(t, ref, len(chakra.Keys))
	assert.Equal(t, "Muladhara", ref[0].Sanskrit)
}
