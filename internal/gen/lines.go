package gen

import "strings"

// indentUnit is one level of indentation in emitted source.
const indentUnit = "  "

// indentAll prefixes every non-empty line with depth indentation levels.
func indentAll(lines []string, depth int) []string {
	if len(lines) == 0 {
		return lines
	}

	prefix := strings.Repeat(indentUnit, depth)
	out := make([]string, 0, len(lines))

	for _, l := range lines {
		if l == "" {
			out = append(out, l)
		} else {
			out = append(out, prefix+l)
		}
	}

	return out
}

// block wraps body in "head {" ... "}" with body indented one level.
func block(head string, body ...string) []string {
	out := make([]string, 0, len(body)+2)
	out = append(out, head+" {")
	out = append(out, indentAll(body, 1)...)

	return append(out, "}")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
