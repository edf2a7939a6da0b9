package hierarchy

import (
	"strings"

	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// ScopeSeparator is the scope qualification token of the source grammar
const ScopeSeparator = "::"

// Placement is the result of inserting or merging one entity
type Placement struct {
	Node   NodeID
	Merged bool
}

// Place resolves the entity's position under base and inserts or merges
// it.
//
// When the entity has a qualified name, every segment but the last names an
// ancestor that must already exist as a child of the walk cursor; a leading
// separator resets the cursor to the root. A missing segment is fatal.
//
// An existing child under the same lookup key with an equal minimal
// signature absorbs the entity (see merge); the merged node keeps its
// original tree position. Otherwise the entity is inserted as a new child.
// Either way the scope stripper then removes ancestor qualification from
// the entity's qualified name and display signature, deriving its short
// name.
func (t *Tree) Place(e *types.Entity, base NodeID) (Placement, error) {
	parent := base
	shortName := ""

	if e.QualifiedName != "" {
		segments := strings.Split(e.QualifiedName, ScopeSeparator)
		shortName = segments[len(segments)-1]

		for _, seg := range segments[:len(segments)-1] {
			if seg == "" {
				// Leading separator: an absolute path from the root
				parent = t.Root()
				continue
			}
			child, ok := t.Child(parent, seg)
			if !ok {
				return Placement{Node: InvalidNode}, &types.ResolveError{
					Segment:       seg,
					QualifiedName: e.QualifiedName,
					Signature:     e.SignatureRaw,
					Location:      firstLocation(e),
				}
			}
			parent = child
		}
	}

	key := lookupKey(e, shortName)

	if key != "" {
		if existing, ok := t.Child(parent, key); ok {
			node := t.nodes[existing]
			if node.entity.SignatureMinimal == e.SignatureMinimal {
				merge(node.entity, e)
				t.stripScopes(existing)
				return Placement{Node: existing, Merged: true}, nil
			}
		}
	}

	id := t.insert(parent, e, key)
	t.stripScopes(id)
	return Placement{Node: id}, nil
}

// lookupKey returns the dedup key: functions key by minimal signature so
// overloads coexist, everything else keys by short name. Entities without
// a name or signature have no key.
func lookupKey(e *types.Entity, shortName string) string {
	if e.IsFunction() {
		return e.SignatureMinimal
	}
	return shortName
}

// merge folds src into an existing entity. Locations concatenate; scalar
// string fields keep whichever value is longer; every other field takes
// the newly parsed value, treating the latest declaration as the
// definition side.
func merge(dst, src *types.Entity) {
	dst.Name = longer(dst.Name, src.Name)
	dst.QualifiedName = longer(dst.QualifiedName, src.QualifiedName)
	dst.DocRaw = longer(dst.DocRaw, src.DocRaw)
	dst.DocText = longer(dst.DocText, src.DocText)
	dst.Summary = longer(dst.Summary, src.Summary)
	dst.SignatureRaw = longer(dst.SignatureRaw, src.SignatureRaw)
	dst.SignatureDisplay = longer(dst.SignatureDisplay, src.SignatureDisplay)
	dst.SignatureMinimal = longer(dst.SignatureMinimal, src.SignatureMinimal)

	dst.Locations = append(dst.Locations, src.Locations...)

	dst.Kind = src.Kind
	dst.IncludeAsIs = src.IncludeAsIs
}

// stripScopes removes ancestor-name qualification from the node's
// qualified name and display signature once its position is fixed. Each
// ancestor contributes its own short name plus the scope separator, in
// root-to-entity order. The remaining qualified name becomes the entity's
// short name.
func (t *Tree) stripScopes(id NodeID) {
	node := t.nodes[id]
	e := node.entity

	var prefixes []string
	for p := node.parent; p != InvalidNode && p != t.Root(); p = t.nodes[p].parent {
		if name := t.nodes[p].entity.Name; name != "" {
			prefixes = append(prefixes, name+ScopeSeparator)
		}
	}
	// Walking parents yields entity-to-root order; reverse it
	for i, j := 0, len(prefixes)-1; i < j; i, j = i+1, j-1 {
		prefixes[i], prefixes[j] = prefixes[j], prefixes[i]
	}

	name := e.QualifiedName
	for _, prefix := range prefixes {
		name = strings.ReplaceAll(name, prefix, "")
		e.SignatureDisplay = strings.ReplaceAll(e.SignatureDisplay, prefix, "")
	}

	e.QualifiedName = name
	e.Name = name
}

func longer(a, b string) string {
	if len(b) > len(a) {
		return b
	}
	return a
}

func firstLocation(e *types.Entity) types.Location {
	if len(e.Locations) == 0 {
		return types.Location{}
	}
	return e.Locations[0]
}
