package facadex

import (
	"strconv"
	"strings"
)

// Token derives a URI-safe local token from a hierarchical path. Every
// character outside [A-Za-z0-9_] is replaced by a single '_', one
// replacement per character. The function is pure: identical paths always
// yield identical tokens.
func Token(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, r := range path {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// identifiers assigns one token per raw traversal path for a single
// conversion. Distinct paths whose sanitized forms collide receive
// deterministic numeric suffixes in first-request order, so every node URI
// stays the subject of exactly one statement block. Requests are memoized:
// the reference emitted by a parent and the block opened by the child resolve
// to the same token.
type identifiers struct {
	byPath map[string]string
	taken  map[string]bool
}

func newIdentifiers() *identifiers {
	return &identifiers{
		byPath: make(map[string]string),
		taken:  make(map[string]bool),
	}
}

func (ids *identifiers) tokenFor(path string) string {
	if tok, ok := ids.byPath[path]; ok {
		return tok
	}
	tok := Token(path)
	if ids.taken[tok] {
		base := tok
		for n := 2; ; n++ {
			tok = base + "_" + strconv.Itoa(n)
			if !ids.taken[tok] {
				break
			}
		}
	}
	ids.byPath[path] = tok
	ids.taken[tok] = true
	return tok
}
