package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/cppdoc-mcp/internal/storage"
)

var (
	// Version information (set by build flags)
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Stdout is reserved for MCP protocol and rendered output
	log.SetOutput(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cppdoc",
	Short: "cppdoc - documentation extraction for C/C++ codebases",
	Long: `cppdoc scans C and C++ sources for documentation comments ("//!",
"/*!"), builds the scoped entity hierarchy they describe, and serves it
to AI assistants over MCP or renders it as Markdown.`,
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate(`cppdoc {{.Version}}
Build time: ` + buildTime + `
SQLite driver: ` + storage.DriverName + ` (` + storage.BuildMode + `)
`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(renderCmd)
}

// dbPath resolves the index database location from flag and environment
func dbPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CPPDOC_DB_PATH"); env != "" {
		return env
	}
	return ""
}
