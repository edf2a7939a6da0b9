package docstring

import "strings"

// Documentation comment markers. The bang variants open a documentation
// block; plain comment markers continue one.
const (
	lineMarker  = "//!"
	blockMarker = "/*!"
	lineComment = "//"
	blockClose  = "*/"
)

// IsStart reports whether a line begins a documentation comment block.
// Leading whitespace is allowed before the marker.
func IsStart(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, blockMarker) || strings.HasPrefix(trimmed, lineMarker)
}

// Collect consumes the documentation block that begins at lines[start].
//
// Block-form comments are consumed verbatim up to and including the line
// containing the close marker. Line-form comments consume consecutive lines
// that also begin (after whitespace) with a line-comment marker.
//
// The placement command embedded in the first line is extracted and removed
// from the returned raw text so it never leaks into the prose. As a side
// effect the bang on the first line is stripped in place so a later scan
// pass does not re-trigger on it.
//
// Returns the index of the first unconsumed line, the raw comment text, and
// the command string.
func Collect(lines []string, start int) (next int, raw string, command string) {
	trimmed := strings.TrimLeft(lines[start], " \t")
	isBlock := strings.HasPrefix(trimmed, blockMarker)

	var collected []string
	i := start
	if isBlock {
		for i < len(lines) {
			collected = append(collected, lines[i])
			i++
			if strings.Contains(collected[len(collected)-1], blockClose) {
				break
			}
		}
	} else {
		collected = append(collected, lines[i])
		i++
		for i < len(lines) {
			t := strings.TrimLeft(lines[i], " \t")
			if !strings.HasPrefix(t, lineComment) {
				break
			}
			collected = append(collected, lines[i])
			i++
		}
	}

	collected[0], command = extractCommand(collected[0])

	lines[start] = stripBang(lines[start])

	return i, strings.Join(collected, "\n"), command
}

// extractCommand pulls the placement command out of the first docstring
// line: the first bracketed [path] group, concatenated with every run of
// the characters < > ^ ~ on that line. The extracted text is removed from
// the returned line, each removed element swallowing one trailing space so
// the prose is not left with gaps. An unmatched opening bracket is treated
// as literal prose and yields no group.
func extractCommand(line string) (string, string) {
	var group string

	if open := strings.IndexByte(line, '['); open >= 0 {
		if length := strings.IndexByte(line[open:], ']'); length > 0 {
			end := open + length + 1
			group = line[open:end]
			if end < len(line) && line[end] == ' ' {
				end++
			}
			line = line[:open] + line[end:]
		}
	}

	var flags, kept []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '<', '>', '^', '~':
			flags = append(flags, c)
			if i+1 < len(line) && line[i+1] == ' ' {
				i++
			}
		default:
			kept = append(kept, c)
		}
	}

	return string(kept), group + string(flags)
}

// stripBang removes the bang from a block-opening marker, leaving an
// ordinary comment marker behind.
func stripBang(line string) string {
	if idx := strings.Index(line, blockMarker); idx >= 0 {
		return line[:idx] + "/*" + line[idx+len(blockMarker):]
	}
	if idx := strings.Index(line, lineMarker); idx >= 0 {
		return line[:idx] + "//" + line[idx+len(lineMarker):]
	}
	return line
}
