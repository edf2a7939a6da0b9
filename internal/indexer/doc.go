// Package indexer orchestrates the documentation extraction pipeline.
//
// The pipeline has four stages:
//
//  1. Discover: walk the project root for C/C++ sources and headers
//     (scanner.Discover), honoring the root .gitignore.
//  2. Read: load file contents concurrently (scanner.ReadFiles).
//  3. Extract: scan each file for documentation blocks and place the
//     resulting entities into one shared hierarchy (extractor.ExtractFile).
//     This stage is strictly sequential; the scope cursor resets per file
//     while the tree accumulates across all of them.
//  4. Store: atomically replace the project's persisted hierarchy
//     (storage.ReplaceEntities).
//
// # Basic Usage
//
//	idx := indexer.New(store)
//	stats, err := idx.Index(ctx, "/path/to/project", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("indexed %d entities from %d files in %v",
//	    stats.EntitiesStored, stats.FilesScanned, stats.Duration)
//
// BuildTree runs stages 1-3 only, for callers that want the in-memory
// hierarchy without touching the database (the render command).
//
// # Error Handling
//
// Unreadable files are tolerated: they are counted in
// Statistics.FilesFailed and listed in Statistics.ErrorMessages, and the
// run continues. A scope or command path that cannot be resolved is fatal:
// the run aborts immediately with a *types.ResolveError and nothing is
// persisted.
//
// # Concurrency
//
// Only file reading is concurrent. An IndexLock rejects overlapping runs
// on the same Indexer with ErrIndexInProgress rather than queueing them.
package indexer
