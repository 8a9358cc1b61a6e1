// Package mcpserver exposes the chakra engine as Model Context Protocol
// tools so assistants can score profiles and fetch coaching context.
package mcpserver

import (
	"github.com/blaisecz/soulsync/internal/chakra"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "soulsync-chakra"
	serverVersion = "1.0.0"
)

// New creates an MCP server with every chakra tool registered. A nil engine
// uses chakra.New().
func New(engine *chakra.Engine) *mcp.Server {
	if engine == nil {
		engine = chakra.New()
	}
	t := &Tools{Engine: engine}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "chakra_status",
		Description: "Classify each chakra rating (1-10) and compute the overall energy balance and recommended coach",
	}, t.Status)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "chakra_recommendations",
		Description: "Suggest focus areas, healing practices and an insight paragraph for a chakra profile",
	}, t.Recommendations)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "coaching_context",
		Description: "Render a chakra profile and recent emotions as the plain-text context given to an AI coach",
	}, t.CoachingContext)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "chakra_reference",
		Description: "Reference data (name, color, element, symptoms, practices, affirmations) for one or all chakras",
	}, t.Reference)

	return srv
}
