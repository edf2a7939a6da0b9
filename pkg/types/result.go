package types

import "fmt"

// ExtractResult represents the outcome of extracting one source file
type ExtractResult struct {
	FilePath string

	// Counters
	Extracted int // entities created from this file
	Merged    int // entities that matched an existing node and were merged
}

// ResolveError is the fatal error raised when a scope segment cannot be
// resolved against the existing hierarchy. It carries the offending segment
// plus enough context to point at the triggering declaration.
type ResolveError struct {
	Segment       string   // the segment that failed to resolve
	QualifiedName string   // full qualified name, or command path, being resolved
	Signature     string   // raw signature of the triggering entity, may be empty
	Location      Location // where the triggering docstring starts
}

// Error implements the error interface
func (re *ResolveError) Error() string {
	msg := fmt.Sprintf("unresolvable scope segment %q in %q", re.Segment, re.QualifiedName)
	if re.Signature != "" {
		msg += fmt.Sprintf(" (signature: %s)", re.Signature)
	}
	if re.Location.File != "" {
		msg += fmt.Sprintf(" at %s:%d", re.Location.File, re.Location.Line)
	}
	return msg
}
