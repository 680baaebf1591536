// Package schemas contains tool schema definitions for the DeskPal server.
// These schemas define the input parameters and descriptions for the tools
// exposed over MCP. They are registered with the server at startup.
package schemas

// ToolSchema represents a tool's description and JSON schema.
type ToolSchema struct {
	Description string
	Schema      map[string]any
}

// All returns all tool schemas from all categories.
func All() map[string]ToolSchema {
	schemas := make(map[string]ToolSchema)

	for name, schema := range NotificationSchemas() {
		schemas[name] = schema
	}

	return schemas
}
