package types

import "errors"

// EntityKind represents the declaration kind of a documented entity
type EntityKind string

const (
	KindNamespace EntityKind = "namespace"
	KindClass     EntityKind = "class"
	KindRecord    EntityKind = "record" // struct and union render as one kind
	KindEnum      EntityKind = "enum"
	KindEnumClass EntityKind = "enum-class"
	KindTypedef   EntityKind = "typedef"
	KindUsing     EntityKind = "using"
	KindFunction  EntityKind = "function"
)

// Location represents a source position of a declaration
type Location struct {
	File string
	Line int // 1-indexed
}

// Entity represents a documented declaration extracted from C/C++ source.
//
// Every field is statically declared; fields that a given extraction path
// does not produce stay at their zero value. An entity carrying only
// documentation (IncludeAsIs, or a docstring followed by a blank line) has
// no signature-derived fields: Kind, QualifiedName, SignatureRaw,
// SignatureDisplay and SignatureMinimal are all empty.
type Entity struct {
	// Identification
	Name          string // short name local to the parent scope, set after scope stripping
	QualifiedName string // identifier as written in the signature, fully scoped
	Kind          EntityKind

	// Documentation
	DocRaw  string // comment block as collected, command string removed
	DocText string // prose with comment syntax stripped
	Summary string // DocText up to the first newline

	// Signature
	SignatureRaw     string // declaration text up to (excluding) its terminator
	SignatureDisplay string // presentation form, keywords and template preamble stripped
	SignatureMinimal string // canonical dedup key

	// Placement
	Locations   []Location // grows on merge, never shrinks
	IncludeAsIs bool       // documentation-only entity, no signature was collected
}

// HasSignature reports whether signature-derived fields are populated
func (e *Entity) HasSignature() bool {
	return e.SignatureRaw != ""
}

// IsFunction reports whether the entity dedups by minimal signature
// rather than by name (allowing overload sets under one parent).
func (e *Entity) IsFunction() bool {
	return e.Kind == KindFunction
}

// ValidateKind checks if the entity kind is valid
func (e *Entity) ValidateKind() error {
	switch e.Kind {
	case KindNamespace, KindClass, KindRecord, KindEnum, KindEnumClass,
		KindTypedef, KindUsing, KindFunction:
		return nil
	default:
		return ErrInvalidKind
	}
}

// Validate performs comprehensive validation of the entity
func (e *Entity) Validate() error {
	if len(e.Locations) == 0 {
		return ErrMissingLocation
	}

	for _, loc := range e.Locations {
		if loc.File == "" {
			return errors.New("location file is required")
		}
		if loc.Line <= 0 {
			return errors.New("location line must be positive")
		}
	}

	// Documentation-only entities carry no signature-derived fields
	if !e.HasSignature() {
		if e.Kind != "" {
			return errors.New("entity without signature must not have a kind")
		}
		if e.QualifiedName != "" {
			return errors.New("entity without signature must not have a qualified name")
		}
		return nil
	}

	if e.IncludeAsIs {
		return errors.New("include-as-is entities must not collect a signature")
	}

	if e.QualifiedName == "" {
		return errors.New("qualified name is required for signatures")
	}

	if err := e.ValidateKind(); err != nil {
		return err
	}

	if e.SignatureMinimal == "" {
		return ErrMissingSignature
	}

	return nil
}
