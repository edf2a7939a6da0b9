package hierarchy

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// NodeID is a handle into the tree's node arena. Parent links are stored
// as handles rather than pointers so the owning children collections never
// form reference cycles with their parents.
type NodeID int

// InvalidNode is the null handle; it is the root's parent
const InvalidNode NodeID = -1

// Node is one entity's position in the hierarchy. The root node carries no
// entity.
type Node struct {
	id     NodeID
	parent NodeID
	entity *types.Entity

	// Children live in one insertion-ordered map for O(1) key lookup,
	// plus an ordered slice that also covers keyless children
	// (documentation-only entities have no lookup key).
	index *orderedmap.OrderedMap[string, NodeID]
	order []NodeID
}

// ID returns the node's handle
func (n *Node) ID() NodeID { return n.id }

// Parent returns the handle of the owning scope, InvalidNode for the root
func (n *Node) Parent() NodeID { return n.parent }

// Entity returns the node's entity, nil for the root
func (n *Node) Entity() *types.Entity { return n.entity }

// Children returns child handles in insertion order. The returned slice is
// owned by the node and must not be mutated.
func (n *Node) Children() []NodeID { return n.order }

// Tree is the scoped hierarchy of documented entities. It is a single
// mutable structure accumulated across a whole run: later files resolve
// against scopes created by earlier files. Access is single-threaded.
type Tree struct {
	nodes []*Node
}

// New creates a tree holding only the root scope
func New() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, &Node{
		id:     0,
		parent: InvalidNode,
		index:  orderedmap.New[string, NodeID](),
	})
	return t
}

// Root returns the handle of the root scope
func (t *Tree) Root() NodeID { return 0 }

// Node returns the node for a handle
func (t *Tree) Node(id NodeID) *Node { return t.nodes[id] }

// Entity returns the entity for a handle, nil for the root
func (t *Tree) Entity(id NodeID) *types.Entity { return t.nodes[id].entity }

// Parent returns the parent handle, InvalidNode for the root
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Child looks up a direct child of parent by lookup key
func (t *Tree) Child(parent NodeID, key string) (NodeID, bool) {
	id, ok := t.nodes[parent].index.Get(key)
	if !ok {
		return InvalidNode, false
	}
	return id, true
}

// TopLevel returns the root's children in insertion order
func (t *Tree) TopLevel() []NodeID { return t.nodes[0].order }

// Len returns the number of entities in the tree, the root excluded
func (t *Tree) Len() int { return len(t.nodes) - 1 }

// Walk visits every entity node in depth-first insertion order, the root
// excluded. Depth is 0 for top-level entities. Returning an error stops
// the walk.
func (t *Tree) Walk(fn func(id NodeID, depth int) error) error {
	var visit func(id NodeID, depth int) error
	visit = func(id NodeID, depth int) error {
		for _, child := range t.nodes[id].order {
			if err := fn(child, depth); err != nil {
				return err
			}
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(t.Root(), 0)
}

// insert adds a new child under parent, registering it in ordinal position
// and, when key is non-empty, under the lookup key. A key collision
// replaces the key mapping (the newest entity wins for re-resolution) but
// both nodes remain in ordered iteration.
func (t *Tree) insert(parent NodeID, e *types.Entity, key string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		id:     id,
		parent: parent,
		entity: e,
		index:  orderedmap.New[string, NodeID](),
	})

	p := t.nodes[parent]
	p.order = append(p.order, id)
	if key != "" {
		p.index.Set(key, id)
	}
	return id
}
