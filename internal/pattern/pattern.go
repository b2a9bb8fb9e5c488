// Package pattern turns discovered tests into selectable identifiers and
// combines chosen identifiers into a go test -run filter.
package pattern

import (
	"strings"

	"gtf/internal/domain"
)

// Flatten expands tests into the flat list of selectable identifiers: the
// bare test name plus one "Name/Sub" entry per subtest. A test without
// subtests always yields its bare name; for a test with subtests the parent
// entry and the subtest entries are gated independently. Discovery order is
// preserved.
func Flatten(tests []domain.TestFunc, showSubtests, showParent bool) []string {
	var ids []string
	for _, test := range tests {
		if len(test.Subtests) == 0 {
			ids = append(ids, test.Name)
			continue
		}
		if showParent {
			ids = append(ids, test.Name)
		}
		if showSubtests {
			for _, sub := range test.Subtests {
				ids = append(ids, test.Name+"/"+sub)
			}
		}
	}
	return ids
}

// Combine joins chosen identifiers into a single run filter: an empty choice
// yields the empty string (run everything), a single identifier is passed
// verbatim, multiple identifiers are joined with the alternation operator in
// the given order. Identifiers are not deduplicated and regex-significant
// characters in test names are not escaped.
func Combine(chosen []string) string {
	switch len(chosen) {
	case 0:
		return ""
	case 1:
		return chosen[0]
	}
	return strings.Join(chosen, "|")
}

// Anchor renders one identifier in the anchored form expected by the go test
// -run syntax for exact matches.
func Anchor(id string) string {
	return "^" + id + "$"
}
