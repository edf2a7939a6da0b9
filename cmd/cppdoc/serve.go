package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/cppdoc-mcp/internal/mcp"
	"github.com/dshills/cppdoc-mcp/internal/storage"
)

var serveDBPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation index over MCP stdio",
	Long: `Starts the MCP server on stdio. All logging goes to stderr; stdout
carries the protocol. The index database location is taken from --db,
then CPPDOC_DB_PATH, then ~/.cppdoc/indices.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "index database directory")
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Printf("cppdoc MCP server v%s starting...", version)
	log.Printf("Build mode: %s, driver: %s", storage.BuildMode, storage.DriverName)

	server, err := mcp.NewServer(dbPath(serveDBPath))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	log.Println("Server stopped")
	return nil
}
