package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// indexDocsTool returns the tool definition for index_docs
func indexDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_docs",
		Description: "Extract documentation comments from a C/C++ codebase and index the entity hierarchy",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root (must contain C/C++ sources or headers)",
				},
				"use_gitignore": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, honor the root .gitignore during file discovery",
					"default":     true,
				},
			},
			Required: []string{"path"},
		},
	}
}

// lookupEntityTool returns the tool definition for lookup_entity
func lookupEntityTool() mcp.Tool {
	return mcp.Tool{
		Name:        "lookup_entity",
		Description: "Look up a documented entity by its scope path (e.g. 'audio::Mixer::Gain'); returns close matches when the exact path is unknown",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the indexed project",
				},
				"entity": map[string]interface{}{
					"type":        "string",
					"description": "Scope path of the entity, segments separated by '::'",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of suggestions when the exact path is not found (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"path", "entity"},
		},
	}
}

// listChildrenTool returns the tool definition for list_children
func listChildrenTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_children",
		Description: "List the documented entities nested directly under a scope, in source order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the indexed project",
				},
				"parent": map[string]interface{}{
					"type":        "string",
					"description": "Scope path of the parent entity; omit or leave empty for top-level entities",
					"default":     "",
				},
			},
			Required: []string{"path"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Query indexing status and statistics for a C/C++ project",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project",
				},
			},
			Required: []string{"path"},
		},
	}
}
