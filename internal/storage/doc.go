// Package storage provides SQLite-based persistence for extracted
// documentation hierarchies.
//
// The storage layer manages:
//   - Project metadata
//   - Documentation entities and their scope hierarchy
//   - Source locations per entity
//
// # Database Schema
//
// Tables:
//   - projects: Project metadata (root path, index version, totals)
//   - entities: Extracted entities keyed by scope path (e.g. "audio::Mixer")
//   - entity_locations: Source file/line pairs per entity
//
// The hierarchy is materialized as paths: each entity row stores both its
// own path and its parent's path, so child listings are a single indexed
// query and no recursive CTE is needed.
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("~/.cppdoc/indices/project.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	// Persist an extracted tree
//	count, err := db.ReplaceEntities(ctx, project.ID, tree)
//
//	// Look up a single entity
//	record, err := db.GetEntityByPath(ctx, project.ID, "audio::Mixer")
//
//	// Walk one level of the hierarchy
//	children, err := db.ListChildren(ctx, project.ID, "audio::Mixer")
//
// ReplaceEntities runs in a single transaction: the previous hierarchy for
// the project is deleted and the new tree written atomically, so readers
// never observe a half-replaced index.
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// CGO build (default when CGO is available):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build ./...
//
// Pure Go build (purego tag or CGO disabled):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build ./...
package storage
