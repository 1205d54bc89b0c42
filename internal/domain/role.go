package domain

// Role represents a player's role in a round
type Role string

const (
	RoleImpostor Role = "IMPOSTOR"
	RoleCivilian Role = "CIVILIAN"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsImpostor returns true if this role is the impostor
func (r Role) IsImpostor() bool {
	return r == RoleImpostor
}
