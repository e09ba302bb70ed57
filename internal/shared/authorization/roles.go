// Package authorization defines the portal's two access levels: citizens,
// who file and track their own complaints, and administrators, who review
// every complaint and drive its status.
package authorization

// UserRole is the access level carried in a session's token claims.
type UserRole string

const (
	// RoleAdmin marks department staff who review and update complaints.
	RoleAdmin UserRole = "admin"
	// RoleUser marks citizens who file complaints and see only their own.
	RoleUser UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin reports whether the role grants access to every complaint.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseUserRole maps a token claim to a role. Anything unrecognized
// degrades to the citizen role so a malformed claim never widens access.
func ParseUserRole(s string) UserRole {
	if UserRole(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}
