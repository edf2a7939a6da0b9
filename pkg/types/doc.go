// Package types provides shared type definitions for the cppdoc MCP server.
//
// This package defines the domain types used across the extraction pipeline:
// entities, source locations, per-file extraction results, and the fatal
// resolution error.
//
// # Core Types
//
// Entity represents a documented C/C++ declaration extracted from source:
//
//	entity := &types.Entity{
//	    QualifiedName:    "audio::Mixer",
//	    Kind:             types.KindClass,
//	    Summary:          "Mixes input channels into one stream.",
//	    SignatureDisplay: "Mixer",
//	}
//
// Entities come in two shapes. Regular entities carry a signature and all
// fields derived from it (kind, qualified name, display and minimal
// signatures). Documentation-only entities (an include-as-is directive, or a
// docstring followed by a blank line) carry only the documentation fields.
// Entity.HasSignature distinguishes the two; Validate enforces that the
// field sets are not mixed.
//
// # Deduplication
//
// SignatureMinimal is the canonical dedup key: a forward declaration and its
// later definition minimize to the same string and merge into one entity
// whose Locations lists both source positions. Functions dedup by minimal
// signature (so overloads coexist under one parent); every other kind dedups
// by short name.
//
// # Errors
//
// ResolveError is the one fatal error in the system: a qualified-name
// ancestor segment, or a placement-command path segment, that does not name
// an existing node. It aborts the whole run.
package types
