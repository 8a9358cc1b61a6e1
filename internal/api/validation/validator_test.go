package validation

import (
	"testing"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/pkg/problem"
	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	badCoach := chakra.CoachType("guru")

	tests := []struct {
		name string
		in   any
		want []problem.FieldError
	}{
		{
			name: "valid user",
			in:   domain.CreateUserRequest{Email: "maya@example.com", DisplayName: "Maya", Timezone: "Europe/Prague"},
			want: nil,
		},
		{
			name: "bad user",
			in:   domain.CreateUserRequest{Email: "nope", DisplayName: "", Timezone: "Mars/Olympus"},
			want: []problem.FieldError{
				{Field: "email", Message: "must be a valid email address"},
				{Field: "display_name", Message: "is required"},
				{Field: "timezone", Message: "must be a valid IANA timezone"},
			},
		},
		{
			name: "assessment out of range",
			in:   domain.AssessmentRequest{Root: 11, Sacral: 5, SolarPlexus: 5, Heart: 5, Throat: 5, ThirdEye: 5, Crown: 5},
			want: []problem.FieldError{{Field: "root", Message: "must be at most 10"}},
		},
		{
			name: "feedback uses json names",
			in:   domain.FeedbackRequest{Score: 6},
			want: []problem.FieldError{
				{Field: "trace_id", Message: "is required"},
				{Field: "score", Message: "must be at most 5"},
			},
		},
		{
			name: "unknown coach",
			in:   domain.SendMessageRequest{Message: "hi", CoachType: &badCoach},
			want: []problem.FieldError{{Field: "coach_type", Message: "must be one of: inner_child shadow_self higher_self integration"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"SolarPlexus": "solar_plexus",
		"ThirdEye":    "third_eye",
		"Root":        "root",
		"DisplayName": "display_name",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
