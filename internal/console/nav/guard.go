package nav

import (
	"strings"
	"sync"

	"marketadmin/internal/console/session"
	"marketadmin/internal/routeguard"
)

// Decision is the outcome of a pre-navigation check.
type Decision int

const (
	// Allow lets the navigation through.
	Allow Decision = iota
	// RedirectLogin means there is no valid session.
	RedirectLogin
	// RedirectFallback means the session is valid but the path is not
	// covered by the principal's grants.
	RedirectFallback
)

// Guard answers "may the current operator open this page". It reads the
// principal from the session store and evaluates the path against the
// principal's route grants. The compiled matcher is cached and rebuilt
// only when the grant list changes.
type Guard struct {
	session *session.Store

	mu          sync.Mutex
	matcher     *routeguard.Matcher
	fingerprint string
}

func NewGuard(store *session.Store) *Guard {
	return &Guard{session: store}
}

// Check evaluates a navigation target. Unauthenticated operators are
// sent to login regardless of the path; everything else goes through
// the grant evaluator.
func (g *Guard) Check(path string) Decision {
	if !g.session.Authenticated() {
		return RedirectLogin
	}

	principal := g.session.Principal()
	if routeguard.IsAuthorized(principal.Role, g.matcherFor(principal.RouteGrants), path) {
		return Allow
	}
	return RedirectFallback
}

func (g *Guard) matcherFor(grants []string) *routeguard.Matcher {
	fingerprint := strings.Join(grants, "\n")

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.matcher == nil || g.fingerprint != fingerprint {
		g.matcher = routeguard.Compile(grants)
		g.fingerprint = fingerprint
	}
	return g.matcher
}
