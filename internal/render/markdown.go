package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// IndexFile is the name of the generated index document
const IndexFile = "index.md"

// Renderer produces Markdown documentation from an entity tree: one
// document per top-level entity plus an index listing their names.
type Renderer struct {
	tree *hierarchy.Tree
}

// New creates a Renderer over a resolved tree
func New(tree *hierarchy.Tree) *Renderer {
	return &Renderer{tree: tree}
}

// Index renders the index document listing every top-level entity
func (r *Renderer) Index() string {
	var b strings.Builder

	b.WriteString("# Index\n\n")
	for _, id := range r.tree.TopLevel() {
		e := r.tree.Entity(id)
		name := displayName(e)
		b.WriteString(fmt.Sprintf("- [%s](%s)", name, DocumentFile(e)))
		if e.Summary != "" {
			b.WriteString(" - ")
			b.WriteString(e.Summary)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Document renders one top-level entity and all of its descendants
func (r *Renderer) Document(id hierarchy.NodeID) string {
	var b strings.Builder
	r.renderEntity(&b, id, 1)
	return b.String()
}

// WriteDocs writes the index plus one document per top-level entity into
// outDir, creating it if needed.
func (r *Renderer) WriteDocs(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, IndexFile), []byte(r.Index()), 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	for _, id := range r.tree.TopLevel() {
		e := r.tree.Entity(id)
		path := filepath.Join(outDir, DocumentFile(e))
		if err := os.WriteFile(path, []byte(r.Document(id)), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}

// DocumentFile returns the output file name for a top-level entity
func DocumentFile(e *types.Entity) string {
	name := displayName(e)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".md"
}

// renderEntity writes one entity section and recurses into its children
func (r *Renderer) renderEntity(b *strings.Builder, id hierarchy.NodeID, level int) {
	e := r.tree.Entity(id)

	heading := strings.Repeat("#", min(level, 6))
	name := displayName(e)

	if e.IncludeAsIs || !e.HasSignature() {
		// Documentation-only entities contribute their prose verbatim
		if name != "" {
			fmt.Fprintf(b, "%s %s\n\n", heading, name)
		}
		if e.DocText != "" {
			b.WriteString(e.DocText)
			b.WriteString("\n\n")
		}
	} else {
		fmt.Fprintf(b, "%s %s\n\n", heading, name)
		fmt.Fprintf(b, "*%s*\n\n", e.Kind)
		fmt.Fprintf(b, "```cpp\n%s\n```\n\n", strings.TrimSpace(e.SignatureDisplay))
		if e.DocText != "" {
			b.WriteString(e.DocText)
			b.WriteString("\n\n")
		}
		if len(e.Locations) > 0 {
			b.WriteString("Defined at ")
			for i, loc := range e.Locations {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(b, "%s:%d", loc.File, loc.Line)
			}
			b.WriteString("\n\n")
		}
	}

	for _, child := range r.tree.Node(id).Children() {
		r.renderEntity(b, child, level+1)
	}
}

// displayName prefers the stripped short name, falling back to the
// qualified name for entities that were not renamed.
func displayName(e *types.Entity) string {
	if e.Name != "" {
		return e.Name
	}
	return e.QualifiedName
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
