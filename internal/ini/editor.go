package ini

import (
	"regexp"
	"strings"
)

// commentMarker is the php.ini line comment prefix.
const commentMarker = ";"

// matchesAt reports whether re matches rest starting at its first byte.
// Directive patterns are anchored to the start of the line modulo the
// prefix already stripped by the caller.
func matchesAt(re *regexp.Regexp, rest string) bool {
	loc := re.FindStringIndex(rest)
	return loc != nil && loc[0] == 0
}

// splitPrefix separates a line into its leading whitespace and the rest.
func splitPrefix(line string) (indent, rest string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i], line[i:]
}

// stripComment removes one leading comment marker and any immediately
// following whitespace. The second return value reports whether a marker
// was present.
func stripComment(rest string) (string, bool) {
	if !strings.HasPrefix(rest, commentMarker) {
		return rest, false
	}
	return strings.TrimLeft(rest[len(commentMarker):], " \t"), true
}

// IsLineEnabled reports whether content has at least one line matching
// pattern that is not commented out.
func IsLineEnabled(content, pattern string) bool {
	re := regexp.MustCompile(pattern)
	for _, line := range strings.Split(content, "\n") {
		_, rest := splitPrefix(line)
		if strings.HasPrefix(rest, commentMarker) {
			continue
		}
		if matchesAt(re, rest) {
			return true
		}
	}
	return false
}

// HasLine reports whether content has at least one line matching pattern,
// commented or not.
func HasLine(content, pattern string) bool {
	re := regexp.MustCompile(pattern)
	for _, line := range strings.Split(content, "\n") {
		_, rest := splitPrefix(line)
		rest, _ = stripComment(rest)
		if matchesAt(re, rest) {
			return true
		}
	}
	return false
}

// CommentLine comments out every currently-uncommented line matching
// pattern, preserving leading whitespace. Lines that are already
// commented are left untouched, so the transform is idempotent.
func CommentLine(content, pattern string) string {
	re := regexp.MustCompile(pattern)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		indent, rest := splitPrefix(line)
		if strings.HasPrefix(rest, commentMarker) {
			continue
		}
		if matchesAt(re, rest) {
			lines[i] = indent + commentMarker + rest
		}
	}
	return strings.Join(lines, "\n")
}

// UncommentLine strips exactly one leading comment marker (and any
// whitespace between the marker and the directive) from every commented
// line matching pattern. Uncommented matches are left untouched.
func UncommentLine(content, pattern string) string {
	re := regexp.MustCompile(pattern)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		indent, rest := splitPrefix(line)
		stripped, commented := stripComment(rest)
		if !commented {
			continue
		}
		if matchesAt(re, stripped) {
			lines[i] = indent + stripped
		}
	}
	return strings.Join(lines, "\n")
}

// AppendLine appends line plus a trailing newline to content. When
// content does not already end in a newline one is inserted first, so
// the appended directive never runs into the previous line.
func AppendLine(content, line string) string {
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n"
}
