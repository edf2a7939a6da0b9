package signature

import (
	"strings"

	"github.com/dshills/cppdoc-mcp/pkg/types"
)

// Classify maps a raw signature to an entity kind by matching keyword
// prefixes after stripping a leading template preamble. Signatures that
// match no declaration keyword are functions. Template-prefixed
// declarations classify the same as their non-template forms.
func Classify(raw string) types.EntityKind {
	s, _ := stripTemplate(raw)

	switch {
	case hasKeyword(s, "namespace"):
		return types.KindNamespace
	case hasKeyword(s, "class"):
		return types.KindClass
	case hasKeyword(s, "enum"):
		// "enum class" / "enum struct" must win over plain "enum"
		rest := strings.TrimLeft(s[len("enum"):], " \t\n")
		if hasKeyword(rest, "class") || hasKeyword(rest, "struct") {
			return types.KindEnumClass
		}
		return types.KindEnum
	case hasKeyword(s, "struct"), hasKeyword(s, "union"):
		return types.KindRecord
	case hasKeyword(s, "typedef"):
		return types.KindTypedef
	case hasKeyword(s, "using"):
		return types.KindUsing
	default:
		return types.KindFunction
	}
}
