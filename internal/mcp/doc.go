// Package mcp implements the Model Context Protocol server for cppdoc.
//
// The server exposes the extraction pipeline and the persisted entity
// hierarchy over MCP stdio, so AI assistants can index a C/C++ codebase
// and query its documentation without shelling out to the CLI.
//
// # Tools
//
// Four tools are registered:
//
//   - index_docs: run the extraction pipeline over a project root and
//     replace its stored hierarchy
//   - lookup_entity: fetch one entity by scope path ("audio::Mixer::Gain");
//     when the exact path is unknown the response carries close matches
//     instead of an error
//   - list_children: list the entities nested directly under a scope, in
//     source order
//   - get_status: report index statistics for a project
//
// # Transport
//
// The server speaks MCP over stdio (github.com/mark3labs/mcp-go). Stdout
// carries the protocol; anything the process wants to say to a human must
// go to stderr.
//
// # Error Handling
//
// Parameter and state problems are returned as *MCPError with JSON-RPC
// style codes. An unresolvable scope reference inside a docstring aborts
// index_docs with ErrorCodeResolveFailed and the offending file, line and
// path segment in the error data.
//
// # Storage
//
// All projects share a single SQLite database under the configured index
// directory (CPPDOC_DB_PATH, default ~/.cppdoc/indices).
package mcp
