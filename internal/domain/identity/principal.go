package identity

import "context"

// Roles
const (
	RoleAdmin   = "ROLE_ADMIN"
	RoleTeacher = "ROLE_TEACHER"
	RoleMentor  = "ROLE_MENTOR"
	RoleStudent = "ROLE_STUDENT"
)

// rolePrecedence orders roles from the most to the least privileged.
var rolePrecedence = []string{RoleAdmin, RoleTeacher, RoleMentor, RoleStudent}

// Principal is an authenticated user.
type Principal struct {
	ID    string
	Name  string
	Roles []string
}

// HasRole reports whether the principal holds role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// PrimaryRole returns the most privileged known role, or "" when the
// principal holds none.
func (p *Principal) PrimaryRole() string {
	for _, role := range rolePrecedence {
		if p.HasRole(role) {
			return role
		}
	}
	return ""
}

// Username is the name recorded in audit entries.
func (p *Principal) Username() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
