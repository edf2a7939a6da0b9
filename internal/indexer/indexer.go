package indexer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/cppdoc-mcp/internal/extractor"
	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/internal/scanner"
	"github.com/dshills/cppdoc-mcp/internal/storage"
)

// ErrIndexInProgress is returned when an index run is already active
var ErrIndexInProgress = errors.New("indexing already in progress")

// Indexer coordinates the extraction pipeline: discover -> read -> extract -> store
type Indexer struct {
	storage storage.Storage
	lock    IndexLock
}

// Config contains configuration for the indexer
type Config struct {
	Extensions   []string // File extensions to scan (default: scanner.DefaultExtensions)
	UseGitignore bool     // Honor .gitignore at the project root (default: true)
	Workers      int      // Concurrent file readers (default: runtime.NumCPU())
}

// DefaultConfig returns the default indexer configuration
func DefaultConfig() *Config {
	return &Config{
		Extensions:   scanner.DefaultExtensions,
		UseGitignore: true,
		Workers:      runtime.NumCPU(),
	}
}

// Statistics contains statistics about one index run
type Statistics struct {
	FilesScanned      int
	FilesFailed       int
	EntitiesExtracted int
	EntitiesMerged    int
	EntitiesStored    int
	Duration          time.Duration
	ErrorMessages     []string
}

// New creates a new Indexer instance. A nil storage is allowed; BuildTree
// still works but Index returns an error.
func New(store storage.Storage) *Indexer {
	return &Indexer{storage: store}
}

// Index extracts documentation from every source file under rootPath and
// atomically replaces the project's stored hierarchy.
//
// Unreadable files are skipped and recorded in the statistics. A resolution
// failure inside a file is fatal: it aborts the run before anything is
// written, and the statistics gathered so far are returned alongside the
// error.
func (idx *Indexer) Index(ctx context.Context, rootPath string, config *Config) (*Statistics, error) {
	if idx.storage == nil {
		return nil, errors.New("indexer has no storage configured")
	}
	if !idx.lock.TryAcquire() {
		return nil, ErrIndexInProgress
	}
	defer idx.lock.Release()

	startTime := time.Now()

	tree, stats, err := idx.buildTree(ctx, rootPath, config)
	if err != nil {
		stats.Duration = time.Since(startTime)
		return stats, err
	}

	project, err := idx.getOrCreateProject(ctx, rootPath)
	if err != nil {
		return stats, fmt.Errorf("failed to get or create project: %w", err)
	}

	stored, err := idx.storage.ReplaceEntities(ctx, project.ID, tree)
	if err != nil {
		return stats, fmt.Errorf("failed to store entities: %w", err)
	}
	stats.EntitiesStored = stored

	project.TotalFiles = stats.FilesScanned
	project.TotalEntities = stored
	project.LastIndexedAt = time.Now()
	if err := idx.storage.UpdateProject(ctx, project); err != nil {
		return stats, fmt.Errorf("failed to update project stats: %w", err)
	}

	stats.Duration = time.Since(startTime)
	return stats, nil
}

// BuildTree runs discovery and extraction without persisting anything.
// The render command uses this to produce Markdown straight from source.
func (idx *Indexer) BuildTree(ctx context.Context, rootPath string, config *Config) (*hierarchy.Tree, *Statistics, error) {
	if !idx.lock.TryAcquire() {
		return nil, nil, ErrIndexInProgress
	}
	defer idx.lock.Release()

	startTime := time.Now()
	tree, stats, err := idx.buildTree(ctx, rootPath, config)
	stats.Duration = time.Since(startTime)
	return tree, stats, err
}

func (idx *Indexer) buildTree(ctx context.Context, rootPath string, config *Config) (*hierarchy.Tree, *Statistics, error) {
	if config == nil {
		config = DefaultConfig()
	}

	stats := &Statistics{ErrorMessages: make([]string, 0)}

	scanConfig := &scanner.Config{
		Extensions:   config.Extensions,
		UseGitignore: config.UseGitignore,
		Workers:      config.Workers,
	}

	paths, err := scanner.Discover(rootPath, scanConfig)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to discover files: %w", err)
	}

	// File contents are read concurrently; extraction stays sequential so
	// the tree sees files in discovery order.
	files, err := scanner.ReadFiles(ctx, rootPath, paths, scanConfig)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read files: %w", err)
	}

	tree := hierarchy.New()
	for _, file := range files {
		if file.Err != nil {
			stats.FilesFailed++
			stats.ErrorMessages = append(stats.ErrorMessages,
				fmt.Sprintf("%s: %v", file.RelPath, file.Err))
			continue
		}

		result, err := extractor.ExtractFile(tree, file.RelPath, file.Lines)
		if err != nil {
			// Resolution failures are fatal, not per-file noise
			return nil, stats, err
		}
		stats.FilesScanned++
		stats.EntitiesExtracted += result.Extracted
		stats.EntitiesMerged += result.Merged
	}

	return tree, stats, nil
}

// getOrCreateProject retrieves an existing project or creates a new one
func (idx *Indexer) getOrCreateProject(ctx context.Context, rootPath string) (*storage.Project, error) {
	project, err := idx.storage.GetProject(ctx, rootPath)
	if err == nil {
		return project, nil
	}
	if err != storage.ErrNotFound {
		return nil, err
	}

	project = &storage.Project{
		RootPath:     rootPath,
		IndexVersion: storage.CurrentSchemaVersion,
	}
	if err := idx.storage.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
