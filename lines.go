package grid

import "strings"

// CountLines returns the number of display lines in s.
// An empty string is one (empty) line; every '\n' starts another,
// so a trailing terminator yields a final empty line.
func CountLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// SplitLines splits s on '\n'. Unlike strings.Lines, a trailing
// terminator produces one additional empty line, keeping the result
// consistent with CountLines. A '\r' immediately before the terminator
// is dropped.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
