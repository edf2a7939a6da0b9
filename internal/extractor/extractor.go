package extractor

import (
	"github.com/dshills/cppdoc-mcp/internal/command"
	"github.com/dshills/cppdoc-mcp/internal/docstring"
	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/internal/signature"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// ExtractFile scans one file's lines for documentation blocks and places
// the resulting entities into the shared tree.
//
// The cursor (the "current parent" for entities without explicit
// placement) starts at the root for every file and is threaded explicitly
// through the loop: a placement only moves it when the command requested
// inherit-parent. The tree itself persists across files.
//
// lines holds the file's text with lines[0] being source line 1. A
// resolution failure aborts immediately; there is nothing to retry.
func ExtractFile(tree *hierarchy.Tree, filePath string, lines []string) (*types.ExtractResult, error) {
	result := &types.ExtractResult{FilePath: filePath}
	cursor := tree.Root()

	i := 0
	for i < len(lines) {
		if !docstring.IsStart(lines[i]) {
			i++
			continue
		}

		startLine := i + 1 // 1-indexed position of the docstring

		next, raw, cmd := docstring.Collect(lines, i)
		text, summary := docstring.Normalize(raw)
		i = next

		dir, err := command.Interpret(cmd, tree, cursor)
		if err != nil {
			annotate(err, filePath, startLine)
			return result, err
		}

		entity := &types.Entity{
			DocRaw:      raw,
			DocText:     text,
			Summary:     summary,
			IncludeAsIs: dir.IncludeAsIs,
			Locations:   []types.Location{{File: filePath, Line: startLine}},
		}

		if !dir.IncludeAsIs {
			if next, sig, ok := signature.Collect(lines, i); ok {
				entity.SignatureRaw = sig
				entity.Kind = signature.Classify(sig)
				entity.QualifiedName = signature.ExtractIdentifier(sig)
				entity.SignatureDisplay = signature.NormalizeDisplay(sig)
				entity.SignatureMinimal = signature.Minimize(sig)
				i = next
			}
		}

		placement, err := tree.Place(entity, dir.Target)
		if err != nil {
			annotate(err, filePath, startLine)
			return result, err
		}

		if placement.Merged {
			result.Merged++
		} else {
			result.Extracted++
		}

		if dir.InheritParent {
			cursor = placement.Node
		}
	}

	return result, nil
}

// annotate fills in the triggering location on resolution errors that were
// raised below the file level
func annotate(err error, filePath string, line int) {
	if re, ok := err.(*types.ResolveError); ok && re.Location.File == "" {
		re.Location = types.Location{File: filePath, Line: line}
	}
}
