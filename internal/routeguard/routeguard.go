// Package routeguard decides whether an admin role may navigate to a path.
//
// A grant is a path template such as "/orders/:id": segments starting with
// ':' match exactly one non-slash path segment. Matching is anchored at
// both ends, so a grant never authorizes paths deeper than itself, and the
// root grant "/" authorizes only the root path.
package routeguard

import "strings"

type segment struct {
	literal  string
	wildcard bool
}

// Pattern is a compiled route grant.
type Pattern struct {
	raw      string
	segments []segment
	root     bool
}

// Matcher holds a set of compiled patterns for one principal's grants.
type Matcher struct {
	patterns []Pattern
}

// Compile compiles grant patterns once so repeated checks only walk
// segment lists. Empty patterns are ignored.
func Compile(grants []string) *Matcher {
	patterns := make([]Pattern, 0, len(grants))
	for _, raw := range grants {
		if raw == "" {
			continue
		}
		patterns = append(patterns, compileOne(raw))
	}
	return &Matcher{patterns: patterns}
}

func compileOne(raw string) Pattern {
	normalized := Normalize(raw)
	if normalized == "/" {
		return Pattern{raw: raw, root: true}
	}

	parts := strings.Split(strings.TrimPrefix(normalized, "/"), "/")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			segments = append(segments, segment{wildcard: true})
		} else {
			segments = append(segments, segment{literal: part})
		}
	}
	return Pattern{raw: raw, segments: segments}
}

// Normalize strips exactly one trailing slash. The root path is preserved.
func Normalize(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return path[:len(path)-1]
	}
	return path
}

// Matches reports whether the normalized path matches this pattern. Segment
// counts must be equal: there are no multi-segment wildcards.
func (p Pattern) Matches(path string) bool {
	path = Normalize(path)
	if p.root {
		return path == "/"
	}
	if path == "/" || path == "" {
		return false
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) != len(p.segments) {
		return false
	}
	for i, seg := range p.segments {
		if seg.wildcard {
			if parts[i] == "" {
				return false
			}
			continue
		}
		if seg.literal != parts[i] {
			return false
		}
	}
	return true
}

// Matches reports whether any compiled pattern matches the path.
func (m *Matcher) Matches(path string) bool {
	for _, p := range m.patterns {
		if p.Matches(path) {
			return true
		}
	}
	return false
}

// IsAuthorized is the route-guard decision: the unrestricted role passes
// unconditionally, everyone else needs a matching grant. It never panics
// and has no side effects; a missing match is simply false.
func IsAuthorized(role string, matcher *Matcher, path string) bool {
	if role == unrestrictedRole {
		return true
	}
	if matcher == nil {
		return false
	}
	return matcher.Matches(path)
}

const unrestrictedRole = "super_admin"
