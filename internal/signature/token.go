package signature

import "strings"

// stripTemplate removes a leading "template<...>" preamble from a
// signature. Angle bracket depth is tracked so a nested template argument
// list cannot close the group early. The stripped parameter text is
// returned separately; callers currently discard it, so a template's
// parameter list never reaches the display signature.
func stripTemplate(s string) (rest, params string) {
	trimmed := strings.TrimLeft(s, " \t\n")
	if !hasKeyword(trimmed, "template") {
		return trimmed, ""
	}

	after := strings.TrimLeft(trimmed[len("template"):], " \t\n")
	if !strings.HasPrefix(after, "<") {
		return trimmed, ""
	}

	depth := 0
	for i := 0; i < len(after); i++ {
		switch after[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return strings.TrimLeft(after[i+1:], " \t\n"), after[:i+1]
			}
		}
	}

	// Unterminated parameter list, keep the signature as written
	return trimmed, ""
}

// firstToken splits off the first whitespace-delimited token, respecting
// angle bracket nesting so a template argument list is never split.
func firstToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t\n")
	if s == "" {
		return "", ""
	}

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\n':
			if depth == 0 {
				return s[:i], strings.TrimLeft(s[i:], " \t\n")
			}
		}
	}
	return s, ""
}

// hasKeyword reports whether s starts with kw as a whole word
func hasKeyword(s, kw string) bool {
	if !strings.HasPrefix(s, kw) {
		return false
	}
	return len(s) == len(kw) || !isIdentChar(s[len(kw)])
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
