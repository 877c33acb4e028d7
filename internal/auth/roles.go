package auth

// Role is an authorization role derived from a verified credential.
type Role string

const (
	RoleUser   Role = "USER"
	RolePerson Role = "PERSON"
	RoleAdmin  Role = "ADMIN"
)

// ParseRoles maps the raw role claim to the internal role set. Unknown
// role names are dropped.
func ParseRoles(raw []string) []Role {
	roles := make([]Role, 0, len(raw))
	for _, r := range raw {
		switch Role(r) {
		case RoleUser, RolePerson, RoleAdmin:
			roles = append(roles, Role(r))
		}
	}
	return roles
}

// HasAnyRole reports whether the role set satisfies at least one of the
// required roles.
func HasAnyRole(roles []Role, required ...Role) bool {
	for _, role := range roles {
		for _, req := range required {
			if role == req {
				return true
			}
		}
	}
	return false
}
