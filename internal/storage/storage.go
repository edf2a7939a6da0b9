package storage

import (
	"context"
	"time"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// Storage defines the interface for persisting and querying extracted documentation
type Storage interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, rootPath string) (*Project, error)
	UpdateProject(ctx context.Context, project *Project) error

	// Entity operations
	ReplaceEntities(ctx context.Context, projectID int64, tree *hierarchy.Tree) (int, error)
	GetEntityByPath(ctx context.Context, projectID int64, path string) (*EntityRecord, error)
	ListChildren(ctx context.Context, projectID int64, parentPath string) ([]*EntityRecord, error)
	ListTopLevel(ctx context.Context, projectID int64) ([]*EntityRecord, error)
	SearchEntities(ctx context.Context, projectID int64, query string, limit int) ([]*EntityRecord, error)

	// Status operations
	GetStatus(ctx context.Context, projectID int64) (*ProjectStatus, error)

	// Database operations
	Close() error
}

// Project represents an indexed C/C++ codebase
type Project struct {
	ID            int64
	RootPath      string
	IndexVersion  string
	TotalFiles    int
	TotalEntities int
	LastIndexedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EntityRecord is a persisted documentation entity. ParentPath is empty for
// top-level entities. Locations are stored in insertion order.
type EntityRecord struct {
	ID               int64
	ProjectID        int64
	ParentPath       string
	Path             string // scope-separated path from the root, e.g. "audio::Mixer"
	Name             string
	Kind             types.EntityKind
	Summary          string
	DocText          string
	SignatureDisplay string
	SignatureMinimal string
	IncludeAsIs      bool
	SortOrder        int
	Locations        []types.Location
}

// ProjectStatus summarizes the indexed state of a project
type ProjectStatus struct {
	ProjectID      int64
	RootPath       string
	TotalFiles     int
	TotalEntities  int
	EntitiesByKind map[string]int
	LastIndexedAt  time.Time
	SchemaVersion  string
	BuildMode      string
}
