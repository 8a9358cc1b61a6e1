// Package llm adapts the OpenAI chat API to the coaching conversation.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultModel = "gpt-4o-mini"

var coachReplySchema = generateSchema[domain.CoachReply]()

// CoachRequest is everything the model sees for one turn.
type CoachRequest struct {
	CoachType    chakra.CoachType
	SystemPrompt string
	// Context is the rendered chakra coaching context.
	Context string
	// History holds earlier turns, oldest first.
	History []domain.ChatMessage
	Message string
}

// Coach produces a structured coach reply.
type Coach interface {
	Reply(ctx context.Context, req CoachRequest) (*domain.CoachReply, error)
}

// OpenAICoach implements Coach with OpenAI structured outputs.
type OpenAICoach struct {
	client openai.Client
	model  string
}

// NewOpenAICoach returns nil when apiKey is empty so callers can treat the
// coach as unavailable.
func NewOpenAICoach(apiKey, model string, opts ...option.RequestOption) *OpenAICoach {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAICoach{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (c *OpenAICoach) Reply(ctx context.Context, req CoachRequest) (*domain.CoachReply, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: buildMessages(req),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "coach_reply",
					Description: openai.String("A single coaching turn"),
					Schema:      coachReplySchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseReply(resp.Choices[0].Message.Content)
}

func buildMessages(req CoachRequest) []openai.ChatCompletionMessageParamUnion {
	system := strings.TrimSpace(req.SystemPrompt) + "\n\n" + req.Context
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	msgs = append(msgs, openai.SystemMessage(system))
	for _, m := range req.History {
		switch m.Role {
		case domain.ChatRoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(req.Message))
	return msgs
}

func parseReply(content string) (*domain.CoachReply, error) {
	var reply domain.CoachReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if strings.TrimSpace(reply.Reply) == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrOpenAIResponse)
	}
	if reply.SuggestedPractices == nil {
		reply.SuggestedPractices = []string{}
	}
	return &reply, nil
}
