package discovery

import "strings"

// bodyTracker bounds the lexical extent of a function body by counting brace
// delimiters line by line. Braces inside string and comment literals are not
// distinguished from real block delimiters; depth saturates at zero so
// unbalanced text cannot drive it negative.
type bodyTracker struct {
	depth   int
	entered bool
}

// feed consumes one line and reports whether the body closed on it. The body
// is considered closed once at least one opening brace has been seen and the
// depth has returned to zero.
func (t *bodyTracker) feed(line string) bool {
	if opens := strings.Count(line, "{"); opens > 0 {
		t.depth += opens
		t.entered = true
	}
	if closes := strings.Count(line, "}"); closes > 0 {
		t.depth -= closes
		if t.depth < 0 {
			t.depth = 0
		}
	}
	return t.entered && t.depth == 0
}

// inBody reports whether the tracker has entered the function body.
func (t *bodyTracker) inBody() bool {
	return t.entered
}

// bodyEnd returns the index of the last line belonging to the function body
// whose declaration starts at lines[start]. The opening brace does not have
// to appear on the starting line. A body that never closes extends to the
// last line of the file.
func bodyEnd(lines []string, start int) int {
	var t bodyTracker
	for i := start; i < len(lines); i++ {
		if t.feed(lines[i]) {
			return i
		}
	}
	return len(lines) - 1
}
