package discovery

import "regexp"

// The recognizer patterns are fixed, so a compile failure is a defect;
// MustCompile turns it into a startup panic.
var (
	// Matches a test function declaration taking *testing.T, *testing.B or
	// *testing.TB and captures the declared name.
	testFuncPattern = regexp.MustCompile(`func\s+(Test\w+)\s*\([^)]*\*testing\.[TB]\w*\)`)

	// Matches a .Run call whose first argument is a double-quoted string
	// literal and captures the literal's contents.
	subtestPattern = regexp.MustCompile(`\.Run\s*\(\s*"([^"]+)"`)
)

// TestDeclaration reports whether the line declares a top-level test
// function and returns the declared name.
func TestDeclaration(line string) (string, bool) {
	m := testFuncPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SubtestNames returns the string literal of every subtest invocation on the
// line, in order of appearance. A line may contain more than one.
func SubtestNames(line string) []string {
	matches := subtestPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
