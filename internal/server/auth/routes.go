package auth

import "strings"

// RouteClass is the static protection level of a request path.
type RouteClass int

const (
	// RoutePublic paths bypass the authenticator entirely.
	RoutePublic RouteClass = iota
	// RouteProtectedOptional paths run without a token, degrading to an
	// anonymous unscoped view instead of rejecting the request.
	RouteProtectedOptional
	// RouteProtectedRequired paths need a valid token; without one the
	// request reaches the handler but fails closed at the first identity
	// check.
	RouteProtectedRequired
)

func (c RouteClass) String() string {
	switch c {
	case RoutePublic:
		return "public"
	case RouteProtectedOptional:
		return "protected-optional"
	default:
		return "protected-required"
	}
}

var publicPaths = []string{
	"/",
	"/error",
	"/healthz",
	"/api/sports/health",
}

var publicPrefixes = []string{
	"/api/auth/",
	"/api/public/",
	"/api/debug",
	"/debug",
}

var optionalPrefixes = []string{
	"/api/sports/schedules",
	"/api/sports/records",
	"/api/sports/analytics",
	"/api/sports/export",
}

// ClassifyRoute categorizes a request path. The table is fixed at compile
// time; classification is a pure string match with no state.
func ClassifyRoute(path string) RouteClass {
	for _, p := range publicPaths {
		if path == p {
			return RoutePublic
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return RoutePublic
		}
	}
	for _, p := range optionalPrefixes {
		if strings.HasPrefix(path, p) {
			return RouteProtectedOptional
		}
	}
	return RouteProtectedRequired
}
