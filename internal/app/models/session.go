package models

// SessionState follows the fixed lifecycle
// Unresolved -> Validating -> {Authenticated, Anonymous} and
// Authenticated -> Anonymous on logout.
type SessionState int

const (
	SessionUnresolved SessionState = iota
	SessionValidating
	SessionAuthenticated
	SessionAnonymous
)

func (s SessionState) String() string {
	switch s {
	case SessionUnresolved:
		return "unresolved"
	case SessionValidating:
		return "validating"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}
