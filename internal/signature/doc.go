// Package signature collects and analyzes the declaration text that
// follows a documentation comment.
//
// The package performs lightweight, heuristic parsing: no lexer, no AST.
// A signature is the raw text from the line after the docstring up to its
// terminator (';', '{', or a constructor initializer-list ':'). From that
// raw text the package derives:
//
//   - the entity kind (Classify): namespace, class, record, enum,
//     enum-class, typedef, using, or function
//   - the fully qualified identifier (ExtractIdentifier)
//   - the presentation signature (NormalizeDisplay), with declaration
//     keywords and template preamble stripped
//   - the minimal signature (Minimize), the canonical dedup key with
//     whitespace collapsed and default parameter values removed
//
// The heuristics stay correct across nested templates, operator
// overloads, constructors and destructors, and string literals containing
// lookalike syntax, which is where most of the care in this package goes.
package signature
