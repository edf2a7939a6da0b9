package signature

import "strings"

// Declaration keywords removed from display signatures
var declKeywords = []string{"enum", "class", "using", "namespace", "struct", "union", "typedef"}

// NormalizeDisplay produces the presentation form of a raw signature: the
// template preamble is removed, leading declaration keywords are stripped
// ("enum class" loses both words), and trailing whitespace is trimmed.
func NormalizeDisplay(raw string) string {
	s, _ := stripTemplate(raw)

	for {
		stripped := false
		for _, kw := range declKeywords {
			if hasKeyword(s, kw) {
				s = strings.TrimLeft(s[len(kw):], " \t\n")
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}

	return strings.TrimRight(s, " \t\n")
}
