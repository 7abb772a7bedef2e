package models

// Role is the closed set of account roles. Authorization compares roles by
// equality; keeping the set closed avoids typo-class bugs that free strings
// would allow.
type Role string

const (
	RoleOwner Role = "Owner"
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleAdmin
}
