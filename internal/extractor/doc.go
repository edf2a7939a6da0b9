// Package extractor drives the per-file extraction loop: detect a
// docstring, collect and normalize it, interpret its placement command,
// collect and analyze the following declaration, then resolve the entity
// into the shared hierarchy.
//
// Extraction is strictly sequential. Files are processed one at a time in
// caller-supplied order; the current-parent cursor resets at each file
// start while the hierarchy accumulates across the whole run, so a later
// file may attach entities to scopes declared by an earlier one.
package extractor
