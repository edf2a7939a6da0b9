package signature

import "strings"

// Collect gathers the declaration that follows a docstring, starting at
// lines[start]. If that line is blank no signature is collected and ok is
// false; the entity then keeps only its documentation fields.
//
// The column of the first non-whitespace character on the first line is
// recorded as the common indentation and stripped from every consumed
// line. Consumption stops at the first terminator: a statement terminator
// ';', a block opener '{', or a single ':' that is not part of a '::'
// scope operator (constructor initializer lists). The matched line is
// truncated at the terminator, exclusive.
func Collect(lines []string, start int) (next int, raw string, ok bool) {
	if start >= len(lines) {
		return start, "", false
	}

	indent := indentWidth(lines[start])
	if indent == len(lines[start]) {
		// Blank line: no signature follows this docstring
		return start, "", false
	}

	var b strings.Builder
	i := start
	for i < len(lines) {
		line := stripIndent(lines[i], indent)
		i++

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		if cut, found := cutAtTerminator(line); found {
			b.WriteString(cut)
			return i, b.String(), true
		}
		b.WriteString(line)
	}

	// Ran out of lines without a terminator; keep what was collected
	return i, b.String(), true
}

// indentWidth returns the number of leading whitespace characters
func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

// stripIndent removes up to width leading whitespace characters
func stripIndent(line string, width int) string {
	i := 0
	for i < width && i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}

// cutAtTerminator scans one line for a declaration terminator, skipping
// string and character literals so lookalike syntax inside them does not
// end the signature early.
func cutAtTerminator(line string) (string, bool) {
	var inStr, inChar, esc bool

	for i := 0; i < len(line); i++ {
		c := line[i]

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
		case ';', '{':
			return line[:i], true
		case ':':
			if i+1 < len(line) && line[i+1] == ':' {
				i++ // scope operator, not a terminator
				continue
			}
			return line[:i], true
		}
	}
	return line, false
}
