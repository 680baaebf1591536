// Package server exposes the tool registry over the Model Context Protocol
// on stdio. Tool failures use soft-error semantics: the result carries
// IsError plus an error-status payload in its body, never an RPC-level
// failure.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/deskpal/deskpal/toolresult"
	"github.com/deskpal/deskpal/tools"
	"github.com/deskpal/deskpal/tools/schemas"
)

// Server wires the tool registry into an MCP stdio server.
type Server struct {
	mcp      *mcpserver.MCPServer
	registry *tools.Registry
	logger   zerolog.Logger
}

// New creates the MCP server and registers every tool in the registry with
// its schema. A registered tool without a schema is a programming error.
func New(registry *tools.Registry, toolSchemas map[string]schemas.ToolSchema, version string, logger zerolog.Logger) (*Server, error) {
	logger = logger.With().Str("component", "mcp_server").Logger()

	m := mcpserver.NewMCPServer(
		"deskpal",
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	s := &Server{
		mcp:      m,
		registry: registry,
		logger:   logger,
	}

	for _, name := range registry.Names() {
		schema, ok := toolSchemas[name]
		if !ok {
			return nil, fmt.Errorf("no schema registered for tool %s", name)
		}
		rawSchema, err := json.Marshal(schema.Schema)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema for tool %s: %w", name, err)
		}
		m.AddTool(mcp.NewToolWithRawSchema(name, schema.Description, rawSchema), s.handleToolCall(name))
		logger.Info().Str("tool", name).Msg("Registered MCP tool")
	}

	return s, nil
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return mcpserver.ServeStdio(s.mcp)
}

func (s *Server) handleToolCall(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		clientName := clientNameFromContext(ctx)

		rawArgs, err := json.Marshal(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid tool arguments: %v", err)), nil
		}

		result, err := s.registry.Handle(ctx, name, clientName, rawArgs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return s.renderResult(result), nil
	}
}

// renderResult converts a handler outcome into an MCP tool result. A
// toolresult.Output is rendered twice from the same value: the legacy text
// form as content and the payload itself as structured content.
func (s *Server) renderResult(result any) *mcp.CallToolResult {
	if payload, ok := result.(toolresult.Output); ok {
		if err := payload.Validate(); err != nil {
			s.logger.Error().Err(err).Msg("Constructed payload violates output contract")
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(toolresult.FormatLegacyText(payload)),
			},
			StructuredContent: payload,
			IsError:           payload.Status == toolresult.StatusError,
		}
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode tool result: %v", err))
	}
	return mcp.NewToolResultText(string(encoded))
}

// clientNameFromContext returns the caller's declared identity from the MCP
// handshake, or "" when the session does not expose one.
func clientNameFromContext(ctx context.Context) string {
	session := mcpserver.ClientSessionFromContext(ctx)
	if session == nil {
		return ""
	}
	if withInfo, ok := session.(mcpserver.SessionWithClientInfo); ok {
		return withInfo.GetClientInfo().Name
	}
	return ""
}
