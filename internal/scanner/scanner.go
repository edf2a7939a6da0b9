package scanner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// DefaultExtensions are the C/C++ source and header extensions scanned
// when no explicit list is configured.
var DefaultExtensions = []string{".h", ".hpp", ".hh", ".hxx", ".c", ".cc", ".cpp", ".cxx"}

// Config contains configuration for file discovery and reading
type Config struct {
	Extensions   []string // file extensions to include (default: DefaultExtensions)
	UseGitignore bool     // honor the root .gitignore during discovery
	Workers      int      // concurrent file readers (default: runtime.NumCPU())
}

// File is one source file split into lines. Lines[0] holds source line 1.
// A read failure leaves Lines nil and sets Err; callers decide whether a
// bad file is fatal.
type File struct {
	Path    string // path as discovered, used in location reporting
	RelPath string // path relative to the scanned root
	Lines   []string
	Err     error
}

// Discover walks root and returns the paths of all matching source files
// in deterministic (lexical) order. Hidden directories are skipped, and
// the root .gitignore is honored when configured.
func Discover(root string, config *Config) ([]string, error) {
	if config == nil {
		config = &Config{}
	}
	extensions := config.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var gitignore *ignore.GitIgnore
	if config.UseGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			gitignore, _ = ignore.CompileIgnoreFile(gitignorePath)
		}
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			if gitignore != nil && relPath != "." && gitignore.MatchesPath(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(relPath) {
			return nil
		}

		if !hasExtension(path, extensions) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	// filepath.Walk is already lexical, but sort anyway so callers can
	// rely on the order regardless of how the path list was produced
	sort.Strings(files)
	return files, nil
}

// ReadFiles reads the given files concurrently, preserving the input
// order in the result. Reading is the only concurrent stage of the
// pipeline; extraction downstream consumes the files sequentially.
// Per-file read failures are reported on the returned Files, not as an
// error; only context cancellation fails the whole batch.
func ReadFiles(ctx context.Context, root string, paths []string, config *Config) ([]*File, error) {
	workers := 0
	if config != nil {
		workers = config.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	files := make([]*File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			relPath, relErr := filepath.Rel(root, path)
			if relErr != nil {
				relPath = path
			}

			lines, err := ReadLines(path)
			files[i] = &File{Path: path, RelPath: relPath, Lines: lines, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// ReadLines reads one file into its lines, without trailing newlines
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
