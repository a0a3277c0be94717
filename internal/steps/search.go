package steps

import (
	"iter"
	"strings"
)

// SearchRequest names a file and the substring to look for in it
type SearchRequest struct {
	Path   string
	Needle string
}

// SearchFirstMatch reports whether any line contains needle.
// Matching is case-sensitive and iteration stops at the first hit.
func SearchFirstMatch(lines iter.Seq[string], needle string) bool {
	for line := range lines {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}
