package skinfile

import (
	"strings"
	"unicode"
)

const commentMarker = "//"

// Preprocess strips full-line `//` comments and escapes backslashes.
//
// A line is a comment only when its left-trimmed form starts with `//`; text
// after a value on the same line is kept verbatim. Surviving lines are joined
// with "\n" and every backslash is doubled afterwards.
func Preprocess(raw string) string {
	lines := splitLines(raw)
	kept := lines[:0]
	for _, line := range lines {
		if isComment(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.ReplaceAll(strings.Join(kept, "\n"), `\`, `\\`)
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), commentMarker)
}

// splitLines breaks text on LF or CRLF. A trailing line terminator does not
// produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// unescape reverses the backslash doubling applied by Preprocess.
func unescape(value string) string {
	if !strings.Contains(value, `\\`) {
		return value
	}
	return strings.ReplaceAll(value, `\\`, `\`)
}
