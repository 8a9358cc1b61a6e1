package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tools holds what the tool handlers need.
type Tools struct {
	Engine *chakra.Engine
}

// --- Input types ---

type ProfileInput struct {
	Values map[string]int `json:"values" jsonschema:"Chakra ratings from 1 to 10 keyed by root, sacral, solarPlexus, heart, throat, thirdEye, crown. Partial profiles are allowed"`
}

type ContextInput struct {
	Values   map[string]int `json:"values" jsonschema:"Chakra ratings from 1 to 10 keyed by chakra"`
	Emotions []string       `json:"emotions,omitempty" jsonschema:"Recent emotion labels, most recent first"`
}

type ReferenceInput struct {
	Chakra string `json:"chakra,omitempty" jsonschema:"Chakra key; omit for all seven"`
}

// --- Output types ---

type StatusResult struct {
	Readings   []chakra.Reading   `json:"readings"`
	Balance    chakra.Balance     `json:"balance"`
	Imbalances []chakra.Imbalance `json:"imbalances"`
	Coach      chakra.CoachType   `json:"coach"`
	CoachLabel string             `json:"coach_label"`
}

type RecommendationsResult struct {
	chakra.Recommendations
	Coach chakra.CoachType `json:"coach"`
}

type ContextResult struct {
	Coach   chakra.CoachType `json:"coach"`
	Context string           `json:"context"`
}

// --- Handlers ---

func (t *Tools) Status(_ context.Context, _ *mcp.CallToolRequest, input ProfileInput) (*mcp.CallToolResult, any, error) {
	values, err := parseValues(input.Values)
	if err != nil {
		return toolError("Invalid profile: %v", err), nil, nil
	}

	coach := chakra.PrimaryCoach(values)
	return toolJSON(StatusResult{
		Readings:   chakra.Readings(values),
		Balance:    chakra.OverallBalance(values),
		Imbalances: chakra.Rank(values),
		Coach:      coach,
		CoachLabel: coach.Label(),
	})
}

func (t *Tools) Recommendations(_ context.Context, _ *mcp.CallToolRequest, input ProfileInput) (*mcp.CallToolResult, any, error) {
	values, err := parseValues(input.Values)
	if err != nil {
		return toolError("Invalid profile: %v", err), nil, nil
	}
	return toolJSON(RecommendationsResult{
		Recommendations: t.Engine.Recommendations(values),
		Coach:           chakra.PrimaryCoach(values),
	})
}

func (t *Tools) CoachingContext(_ context.Context, _ *mcp.CallToolRequest, input ContextInput) (*mcp.CallToolResult, any, error) {
	values, err := parseValues(input.Values)
	if err != nil {
		return toolError("Invalid profile: %v", err), nil, nil
	}
	emotions := input.Emotions
	if emotions == nil {
		emotions = []string{}
	}
	return toolJSON(ContextResult{
		Coach:   chakra.PrimaryCoach(values),
		Context: t.Engine.CoachingContext(values, emotions),
	})
}

func (t *Tools) Reference(_ context.Context, _ *mcp.CallToolRequest, input ReferenceInput) (*mcp.CallToolResult, any, error) {
	if input.Chakra == "" {
		return toolJSON(chakra.All())
	}
	k, err := chakra.ParseKey(input.Chakra)
	if err != nil {
		return toolError("%v", err), nil, nil
	}
	return toolJSON(chakra.MustLookup(k))
}

// parseValues checks chakra keys and rating ranges. Missing chakras are
// fine; the engine only scores what it is given.
func parseValues(raw map[string]int) (chakra.Values, error) {
	values := make(chakra.Values, len(raw))
	var errs []error
	for name, v := range raw {
		k, err := chakra.ParseKey(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v < chakra.MinValue || v > chakra.MaxValue {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d, got %d", k, chakra.MinValue, chakra.MaxValue, v))
			continue
		}
		values[k] = v
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
