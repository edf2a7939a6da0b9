package docstring

import "strings"

// Comment-syntax prefixes stripped during normalization, longest match
// first so the bang variants win over their plain counterparts.
var markerPrefixes = []string{"//!", "/*!", "*/", "/*", "//", "*"}

// Normalize converts raw comment text into plain prose. Comment syntax is
// stripped line by line, a single optional leading space is trimmed, and
// leading/trailing blank lines are dropped from the whole block.
//
// The summary is the text up to (not including) the first newline.
func Normalize(raw string) (text, summary string) {
	lines := strings.Split(raw, "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = stripLine(line)
	}

	// Trim leading and trailing blank lines from the block
	lo, hi := 0, len(stripped)
	for lo < hi && strings.TrimSpace(stripped[lo]) == "" {
		lo++
	}
	for hi > lo && strings.TrimSpace(stripped[hi-1]) == "" {
		hi--
	}

	text = strings.Join(stripped[lo:hi], "\n")
	summary = text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		summary = text[:idx]
	}
	return text, summary
}

// stripLine removes comment syntax from one line of a docstring
func stripLine(line string) string {
	s := strings.TrimLeft(line, " \t")

	for _, p := range markerPrefixes {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}

	// A block close at the end of a content line is syntax, not prose
	if trimmed := strings.TrimRight(s, " \t"); strings.HasSuffix(trimmed, blockClose) {
		s = strings.TrimRight(trimmed[:len(trimmed)-len(blockClose)], " \t")
	}

	// One optional leading space separates marker from prose
	s = strings.TrimPrefix(s, " ")

	return s
}
