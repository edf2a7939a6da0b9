package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/cppdoc-mcp/internal/indexer"
	"github.com/dshills/cppdoc-mcp/internal/render"
)

var (
	renderOut         string
	renderNoGitignore bool
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render a project's documentation as Markdown",
	Long: `Extracts documentation straight from source and writes one Markdown
file per top-level entity plus an index, without touching the database.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "docs", "output directory")
	renderCmd.Flags().BoolVar(&renderNoGitignore, "no-gitignore", false, "ignore the root .gitignore during discovery")
}

func runRender(cmd *cobra.Command, args []string) error {
	rootPath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	config := indexer.DefaultConfig()
	config.UseGitignore = !renderNoGitignore

	idx := indexer.New(nil)
	tree, stats, err := idx.BuildTree(cmd.Context(), rootPath, config)
	if err != nil {
		return err
	}

	for _, msg := range stats.ErrorMessages {
		log.Printf("warning: %s", msg)
	}

	renderer := render.New(tree)
	if err := renderer.WriteDocs(renderOut); err != nil {
		return err
	}

	fmt.Printf("Rendered %d entities from %d files into %s\n",
		stats.EntitiesExtracted, stats.FilesScanned, renderOut)
	return nil
}
