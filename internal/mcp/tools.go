package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/internal/indexer"
	"github.com/dshills/cppdoc-mcp/internal/scanner"
	"github.com/dshills/cppdoc-mcp/internal/storage"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams      = -32602 // Invalid method parameters
	ErrorCodeInternalError      = -32603 // Internal JSON-RPC error
	ErrorCodeIndexingInProgress = -32002 // Another indexing operation is already running
	ErrorCodeNotIndexed         = -32003 // Project not indexed
	ErrorCodeResolveFailed      = -32004 // A docstring names a scope that does not exist
)

// handleIndexDocs handles the index_docs tool invocation
func (s *Server) handleIndexDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	config := indexer.DefaultConfig()
	config.UseGitignore = getBoolDefault(args, "use_gitignore", true)

	stats, err := s.indexer.Index(ctx, path, config)
	if err != nil {
		if errors.Is(err, indexer.ErrIndexInProgress) {
			return nil, newMCPError(ErrorCodeIndexingInProgress, "indexing already in progress", nil)
		}
		var resolveErr *types.ResolveError
		if errors.As(err, &resolveErr) {
			return nil, newMCPError(ErrorCodeResolveFailed, "unresolvable scope in docstring", map[string]interface{}{
				"segment": resolveErr.Segment,
				"name":    resolveErr.QualifiedName,
				"file":    resolveErr.Location.File,
				"line":    resolveErr.Location.Line,
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "indexing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"indexed":            true,
		"files_scanned":      stats.FilesScanned,
		"files_failed":       stats.FilesFailed,
		"entities_extracted": stats.EntitiesExtracted,
		"entities_merged":    stats.EntitiesMerged,
		"entities_stored":    stats.EntitiesStored,
		"duration_ms":        stats.Duration.Milliseconds(),
	}

	if len(stats.ErrorMessages) > 0 {
		// Include first few errors
		errorCount := len(stats.ErrorMessages)
		if errorCount > 5 {
			response["errors"] = stats.ErrorMessages[:5]
			response["error_count"] = errorCount
		} else {
			response["errors"] = stats.ErrorMessages
		}
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleLookupEntity handles the lookup_entity tool invocation
func (s *Server) handleLookupEntity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	entityPath, ok := args["entity"].(string)
	if !ok || entityPath == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "entity parameter is required", map[string]interface{}{
			"param":  "entity",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", 10)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	project, err := s.requireProject(ctx, path)
	if err != nil {
		return nil, err
	}

	record, err := s.storage.GetEntityByPath(ctx, project.ID, entityPath)
	if err == storage.ErrNotFound {
		// Fall back to a substring search on the last path segment
		segments := strings.Split(entityPath, hierarchy.ScopeSeparator)
		query := segments[len(segments)-1]
		matches, searchErr := s.storage.SearchEntities(ctx, project.ID, query, limit)
		if searchErr != nil {
			return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
				"error": searchErr.Error(),
			})
		}
		suggestions := make([]interface{}, 0, len(matches))
		for _, match := range matches {
			suggestions = append(suggestions, map[string]interface{}{
				"path":    match.Path,
				"kind":    string(match.Kind),
				"summary": match.Summary,
			})
		}
		response := map[string]interface{}{
			"found":       false,
			"entity":      entityPath,
			"suggestions": suggestions,
		}
		return mcp.NewToolResultText(formatJSON(response)), nil
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"found":  true,
		"entity": entityResponse(record),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListChildren handles the list_children tool invocation
func (s *Server) handleListChildren(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	parent := getStringDefault(args, "parent", "")

	project, err := s.requireProject(ctx, path)
	if err != nil {
		return nil, err
	}

	if parent != "" {
		if _, err := s.storage.GetEntityByPath(ctx, project.ID, parent); err == storage.ErrNotFound {
			return nil, newMCPError(ErrorCodeInvalidParams, "parent entity not found", map[string]interface{}{
				"param": "parent",
				"value": parent,
			})
		} else if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "lookup failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	children, err := s.storage.ListChildren(ctx, project.ID, parent)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list children", map[string]interface{}{
			"error": err.Error(),
		})
	}

	entries := make([]interface{}, 0, len(children))
	for _, child := range children {
		entries = append(entries, map[string]interface{}{
			"name":    child.Name,
			"path":    child.Path,
			"kind":    string(child.Kind),
			"summary": child.Summary,
		})
	}

	response := map[string]interface{}{
		"parent":   parent,
		"children": entries,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	project, err := s.storage.GetProject(ctx, path)
	if err == storage.ErrNotFound {
		response := map[string]interface{}{
			"indexed": false,
			"path":    path,
			"message": "Project not indexed. Use the index_docs tool to index this project.",
		}
		return mcp.NewToolResultText(formatJSON(response)), nil
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get project status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	status, err := s.storage.GetStatus(ctx, project.ID)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"indexed": true,
		"project": map[string]interface{}{
			"path":            project.RootPath,
			"index_version":   project.IndexVersion,
			"last_indexed_at": project.LastIndexedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
		"statistics": map[string]interface{}{
			"files_count":      status.TotalFiles,
			"entities_count":   status.TotalEntities,
			"entities_by_kind": status.EntitiesByKind,
		},
		"database": map[string]interface{}{
			"schema_version": status.SchemaVersion,
			"build_mode":     status.BuildMode,
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// requireProject resolves a project that must already be indexed
func (s *Server) requireProject(ctx context.Context, path string) (*storage.Project, error) {
	project, err := s.storage.GetProject(ctx, path)
	if err == storage.ErrNotFound {
		return nil, newMCPError(ErrorCodeNotIndexed, "project not indexed", map[string]interface{}{
			"path": path,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get project", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return project, nil
}

// entityResponse formats one stored entity for a tool result
func entityResponse(record *storage.EntityRecord) map[string]interface{} {
	locations := make([]interface{}, 0, len(record.Locations))
	for _, loc := range record.Locations {
		locations = append(locations, map[string]interface{}{
			"file": loc.File,
			"line": loc.Line,
		})
	}
	return map[string]interface{}{
		"name":      record.Name,
		"path":      record.Path,
		"kind":      string(record.Kind),
		"summary":   record.Summary,
		"doc":       record.DocText,
		"signature": record.SignatureDisplay,
		"locations": locations,
	}
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path exists and contains C/C++ sources
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if !info.IsDir() {
		return ErrNotDirectory
	}

	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	// Check for at least one source or header file
	hasSources := false
	_ = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() || hasSources {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		for _, e := range scanner.DefaultExtensions {
			if ext == e {
				hasSources = true
				break
			}
		}
		return nil
	})

	if !hasSources {
		return ErrNoSourceFiles
	}

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrNoSourceFiles   = errors.New("directory does not contain C/C++ source files")
)
