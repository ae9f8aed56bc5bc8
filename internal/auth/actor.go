package auth

import "contala_backend/internal/models"

// Role is the single resolved role of an acting user. The boolean
// capability flags on User collapse into one of these, checked in
// precedence order staff > creator > client.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleCreator Role = "creator"
	RoleClient  Role = "client"
)

// Actor is the authenticated caller as seen by the policy layer.
type Actor struct {
	ID   string
	Role Role
}

// ResolveRole maps the capability flags to a Role.
func ResolveRole(isStaff, isCreator bool) Role {
	switch {
	case isStaff:
		return RoleStaff
	case isCreator:
		return RoleCreator
	default:
		return RoleClient
	}
}

// ActorForUser builds the Actor for a loaded user record.
func ActorForUser(user *models.User) Actor {
	return Actor{
		ID:   user.ID,
		Role: ResolveRole(user.IsStaff, user.IsCreator),
	}
}

func (a Actor) IsStaff() bool   { return a.Role == RoleStaff }
func (a Actor) IsCreator() bool { return a.Role == RoleCreator }
func (a Actor) IsClient() bool  { return a.Role == RoleClient }
