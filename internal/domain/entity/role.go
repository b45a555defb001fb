// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleStandard is assigned to every newly registered user.
	RoleStandard Role = "standard"
	// RolePasswordManager may reset other users' passwords, grant this role and read the audit log.
	RolePasswordManager Role = "password_manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RolePasswordManager:
		return true
	default:
		return false
	}
}

// ParseRole converts a stored string into a Role. Unknown values fall back to RoleStandard
// so that a corrupted column can never grant privileges.
func ParseRole(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleStandard
	}

	return role
}
