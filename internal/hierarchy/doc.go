// Package hierarchy maintains the scoped tree of documented entities.
//
// The tree is the one structure that outlives a single file: entities from
// later files resolve against, and merge into, scopes created by earlier
// files. Nodes are arena-allocated and addressed by NodeID handles; each
// node holds its children in one insertion-ordered map keyed by lookup key
// (short name for most kinds, minimal signature for functions) alongside
// an ordered slice for iteration.
//
// Place is the single entry point: it walks the entity's qualified-name
// ancestor chain from a caller-supplied base scope, merges the entity into
// an existing node when the minimal signatures match, inserts it
// otherwise, and finally strips ancestor qualification from the entity's
// name and display signature.
package hierarchy
