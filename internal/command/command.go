package command

import (
	"strings"

	"github.com/dshills/cppdoc-mcp/internal/hierarchy"
	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// Directive is the interpreted placement command for one entity
type Directive struct {
	Target        hierarchy.NodeID // parent scope the entity resolves against
	IncludeAsIs   bool             // carry the documentation verbatim, collect no signature
	InheritParent bool             // after placement the entity becomes the cursor
}

// Interpret processes a command string left to right against the current
// cursor parent:
//
//	~       include as is; parent forced back to the pre-command cursor;
//	        remaining characters are not processed
//	>       the placed entity becomes the cursor for subsequent entities
//	<       move the target parent one level up
//	^       reset the target parent to the root
//	[path]  resolve a dot-separated path from the current target parent
//	        by repeated child lookup; a missing segment is fatal
//
// An empty command string yields the cursor unchanged.
func Interpret(cmd string, tree *hierarchy.Tree, cursor hierarchy.NodeID) (Directive, error) {
	dir := Directive{Target: cursor}

	for i := 0; i < len(cmd); {
		switch cmd[i] {
		case '~':
			dir.IncludeAsIs = true
			dir.Target = cursor
			return dir, nil
		case '>':
			dir.InheritParent = true
			i++
		case '<':
			if p := tree.Parent(dir.Target); p != hierarchy.InvalidNode {
				dir.Target = p
			}
			i++
		case '^':
			dir.Target = tree.Root()
			i++
		case '[':
			end := strings.IndexByte(cmd[i:], ']')
			if end < 0 {
				// The collector only emits matched groups; an unmatched
				// bracket here means a caller bypassed it
				return dir, &types.ResolveError{
					Segment:       cmd[i:],
					QualifiedName: cmd,
				}
			}
			target, err := resolvePath(tree, dir.Target, cmd[i+1:i+end])
			if err != nil {
				return dir, err
			}
			dir.Target = target
			i += end + 1
		default:
			i++
		}
	}

	return dir, nil
}

// resolvePath walks a dot-separated path by repeated child lookup
func resolvePath(tree *hierarchy.Tree, base hierarchy.NodeID, path string) (hierarchy.NodeID, error) {
	cursor := base
	for _, segment := range strings.Split(path, ".") {
		child, ok := tree.Child(cursor, segment)
		if !ok {
			return hierarchy.InvalidNode, &types.ResolveError{
				Segment:       segment,
				QualifiedName: path,
			}
		}
		cursor = child
	}
	return cursor, nil
}
