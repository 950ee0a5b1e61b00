package domain

// Role is the client-held belief about what the current user may see.
// It gates UI visibility and navigation only; the backend re-checks
// authorization on every request.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole normalizes a stored or server-supplied role string.
// Unknown values collapse to RoleCustomer: a token holder is at least a
// customer, and an invented role must never unlock the admin console.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleGuest, "":
		return RoleGuest
	default:
		return RoleCustomer
	}
}

// Session is the persisted authentication state read on every page load.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Usable reports whether the session carries a token worth attaching to a
// request. The literal strings "undefined" and "null" show up when an absent
// value was stringified before being stored, and must count as absent.
func (s Session) Usable() bool {
	switch s.Token {
	case "", "undefined", "null":
		return false
	}
	return true
}

// EffectiveRole is the role used for gating: without a usable token the role
// field is meaningless and the user is a guest.
func (s Session) EffectiveRole() Role {
	if !s.Usable() {
		return RoleGuest
	}
	return ParseRole(string(s.Role))
}

// Credentials exist only for the duration of a login or register request.
// They are never persisted and never logged.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
