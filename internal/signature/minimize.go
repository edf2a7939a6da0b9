package signature

import "strings"

// Minimize canonicalizes a signature into a dedup key. Line breaks and
// runs of whitespace collapse to single spaces; default-parameter
// initializers (text between '=' and the next comma or closing bracket at
// the first bracket-nesting level) are removed. Bracket depth and
// quoted-string state are tracked so nested calls and literals containing
// lookalike syntax are not corrupted.
//
// Minimize is idempotent: Minimize(Minimize(s)) == Minimize(s).
func Minimize(raw string) string {
	return stripDefaults(strings.Join(strings.Fields(raw), " "))
}

// stripDefaults removes default-parameter initializers at bracket depth 1
func stripDefaults(s string) string {
	out := make([]byte, 0, len(s))
	depth := 0
	var inStr, inChar, esc bool

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inStr || inChar {
			out = append(out, c)
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case inStr && c == '"':
				inStr = false
			case inChar && c == '\'':
				inChar = false
			}
			continue
		}

		switch c {
		case '"':
			inStr = true
			out = append(out, c)
		case '\'':
			inChar = true
			out = append(out, c)
		case '(', '[', '{':
			depth++
			out = append(out, c)
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
			out = append(out, c)
		case '=':
			if depth == 1 && !partOfOperator(s, i) {
				// Drop the initializer and the separator space before it
				for len(out) > 0 && out[len(out)-1] == ' ' {
					out = out[:len(out)-1]
				}
				i = skipInitializer(s, i) - 1
				continue
			}
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}

	return string(out)
}

// partOfOperator reports whether the '=' at position i belongs to a
// comparison or compound-assignment operator rather than introducing a
// default value.
func partOfOperator(s string, i int) bool {
	if i+1 < len(s) && s[i+1] == '=' {
		return true // ==
	}
	if i > 0 && strings.IndexByte("=<>!+-*/%&|^", s[i-1]) >= 0 {
		return true // <=, >=, !=, +=, ...
	}
	return false
}

// skipInitializer advances past a default value: from the '=' at position
// i to the index of the next comma at depth 1 or the bracket that closes
// depth 1, whichever comes first. The terminating character itself is not
// consumed.
func skipInitializer(s string, i int) int {
	depth := 1
	var inStr, inChar, esc bool

	for j := i + 1; j < len(s); j++ {
		c := s[j]

		if inStr || inChar {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case inStr && c == '"':
				inStr = false
			case inChar && c == '\'':
				inChar = false
			}
			continue
		}

		switch c {
		case '"':
			inStr = true
		case '\'':
			inChar = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return j
			}
		case ',':
			if depth == 1 {
				return j
			}
		}
	}
	return len(s)
}
