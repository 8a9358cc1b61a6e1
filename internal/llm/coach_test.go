package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(b)
}

func newTestCoach(t *testing.T, handler http.HandlerFunc) *OpenAICoach {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAICoach("test-key", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
}

func TestNewOpenAICoach_NoKey(t *testing.T) {
	c := NewOpenAICoach("", "gpt-4o")
	assert.Nil(t, c)

	_, err := c.Reply(context.Background(), CoachRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrOpenAIUnavailable)
}

func TestOpenAICoach_Reply(t *testing.T) {
	var body map[string]any
	c := newTestCoach(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completion(`{"reply":"Let's breathe together.","suggested_practices":["Box breathing"],"reflection_question":"What do you need right now?"}`))
	})

	reply, err := c.Reply(context.Background(), CoachRequest{
		CoachType:    chakra.CoachInnerChild,
		SystemPrompt: "You are kind.",
		Context:      "USER CHAKRA PROFILE: not assessed yet.",
		History: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: "hello"},
			{Role: domain.ChatRoleAssistant, Content: "hi there"},
		},
		Message: "I feel anxious",
	})
	require.NoError(t, err)
	assert.Equal(t, "Let's breathe together.", reply.Reply)
	assert.Equal(t, []string{"Box breathing"}, reply.SuggestedPractices)
	assert.Equal(t, "What do you need right now?", reply.ReflectionQuestion)

	assert.Equal(t, defaultModel, body["model"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 4)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "You are kind.\n\nUSER CHAKRA PROFILE: not assessed yet.", first["content"])
	assert.Equal(t, "assistant", msgs[2].(map[string]any)["role"])
	assert.Equal(t, "I feel anxious", msgs[3].(map[string]any)["content"])

	format := body["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "coach_reply", schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestOpenAICoach_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, ErrOpenAIRequest},
		{"not json", http.StatusOK, completion("sorry, I can't"), ErrOpenAIResponse},
		{"empty reply", http.StatusOK, completion(`{"reply":"","suggested_practices":[],"reflection_question":""}`), ErrOpenAIResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCoach(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.Reply(context.Background(), CoachRequest{Message: "hi"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Reply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSchema_Strict(t *testing.T) {
	schema := generateSchema[domain.CoachReply]()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []string{"reflection_question", "reply", "suggested_practices"}, schema["required"])
	assert.NotContains(t, schema, "$schema")

	props := schema["properties"].(map[string]any)
	practices := props["suggested_practices"].(map[string]any)
	assert.Equal(t, "array", practices["type"])
}

func TestDefaultCoachPrompts(t *testing.T) {
	for _, c := range []chakra.CoachType{
		chakra.CoachInnerChild, chakra.CoachShadowSelf, chakra.CoachHigherSelf, chakra.CoachIntegration,
	} {
		p, ok := DefaultCoachPrompts[PromptName(c)]
		if assert.True(t, ok, c) {
			assert.Contains(t, p, c.Label())
		}
	}
}

func TestParseReply_NilPractices(t *testing.T) {
	reply, err := parseReply(`{"reply":"ok","reflection_question":"?"}`)
	require.NoError(t, err)
	assert.NotNil(t, reply.SuggestedPractices)
}
