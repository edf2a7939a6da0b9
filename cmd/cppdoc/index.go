package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/cppdoc-mcp/internal/indexer"
	"github.com/dshills/cppdoc-mcp/internal/storage"
)

var (
	indexDBPath      string
	indexNoGitignore bool
	indexWorkers     int
)

var indexCmd = &cobra.Command{
	Use:   "index <path>",
	Short: "Extract documentation from a project and store the hierarchy",
	Long: `Scans the project for C/C++ sources and headers, extracts documentation
comments into the scoped entity hierarchy, and replaces the project's
stored index.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDBPath, "db", "", "index database directory")
	indexCmd.Flags().BoolVar(&indexNoGitignore, "no-gitignore", false, "ignore the root .gitignore during discovery")
	indexCmd.Flags().IntVar(&indexWorkers, "workers", 0, "concurrent file readers (default: number of CPUs)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	rootPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	store, err := openStorage(dbPath(indexDBPath))
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	config := indexer.DefaultConfig()
	config.UseGitignore = !indexNoGitignore
	if indexWorkers > 0 {
		config.Workers = indexWorkers
	}

	idx := indexer.New(store)
	stats, err := idx.Index(cmd.Context(), rootPath, config)
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %s\n", rootPath)
	fmt.Printf("  files scanned:      %d\n", stats.FilesScanned)
	fmt.Printf("  files failed:       %d\n", stats.FilesFailed)
	fmt.Printf("  entities extracted: %d\n", stats.EntitiesExtracted)
	fmt.Printf("  entities merged:    %d\n", stats.EntitiesMerged)
	fmt.Printf("  entities stored:    %d\n", stats.EntitiesStored)
	fmt.Printf("  duration:           %v\n", stats.Duration)

	for _, msg := range stats.ErrorMessages {
		log.Printf("warning: %s", msg)
	}
	return nil
}

// openStorage opens the index database, defaulting to ~/.cppdoc/indices
func openStorage(dir string) (*storage.SQLiteStorage, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".cppdoc", "indices")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return storage.NewSQLiteStorage(filepath.Join(dir, "cppdoc.db"))
}
