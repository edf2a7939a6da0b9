// Package render emits Markdown documentation from a resolved entity
// tree: index.md listing the top-level entities, plus one document per
// top-level entity with its descendants nested under deeper headings.
package render
