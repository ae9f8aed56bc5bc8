package policy

import (
	"contala_backend/internal/auth"

	"gorm.io/gorm"
)

// Per-entity visibility scopes. Each returns a gorm scope restricting a
// query to the rows the actor may see. Role precedence is
// staff > creator > client; staff always sees everything.
//
// List operations never error for an unrecognized actor: the scope
// collapses to an empty result set instead.

// Nothing matches; used when a role has no access at all.
func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// ProjectScope: creators see public projects plus projects they hold any
// invitation for (regardless of invitation status); clients see their own.
func ProjectScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where(
				"is_public = ? OR id IN (SELECT project_id FROM project_invitations WHERE creator_id = ?)",
				true, actor.ID,
			)
		default:
			return db.Where("client_id = ?", actor.ID)
		}
	}
}

// ProposalScope: creators see their own proposals; clients see proposals
// on projects they own.
func ProposalScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("creator_id = ?", actor.ID)
		default:
			return db.Where(
				"project_id IN (SELECT id FROM projects WHERE client_id = ?)",
				actor.ID,
			)
		}
	}
}

// InvitationScope: creators see invitations addressed to them; clients see
// invitations on projects they own.
func InvitationScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("creator_id = ?", actor.ID)
		default:
			return db.Where(
				"project_id IN (SELECT id FROM projects WHERE client_id = ?)",
				actor.ID,
			)
		}
	}
}

// MessageScope: only participants see a message. Owning the project is not
// enough.
func MessageScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.Role == auth.RoleStaff {
			return db
		}
		return db.Where("sender_id = ? OR receiver_id = ?", actor.ID, actor.ID)
	}
}

// ConvocatoriaScope: creators see open convocatorias; clients see their own.
func ConvocatoriaScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("status = ?", "open")
		default:
			return db.Where("client_id = ?", actor.ID)
		}
	}
}

// ApplicationScope: creators see their own applications; clients see
// applications to convocatorias they own.
func ApplicationScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("creator_id = ?", actor.ID)
		default:
			return db.Where(
				"convocatoria_id IN (SELECT id FROM convocatorias WHERE client_id = ?)",
				actor.ID,
			)
		}
	}
}

// ReviewScope: creators see reviews about them; clients see reviews they
// authored.
func ReviewScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("creator_id = ?", actor.ID)
		default:
			return db.Where("client_id = ?", actor.ID)
		}
	}
}

// CreatorProfileScope: staff see all, creators see their own, clients see
// nothing.
func CreatorProfileScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case auth.RoleStaff:
			return db
		case auth.RoleCreator:
			return db.Where("user_id = ?", actor.ID)
		default:
			return none(db)
		}
	}
}

// SocialNetworkScope: staff see all, everyone else their own links.
func SocialNetworkScope(actor auth.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.Role == auth.RoleStaff {
			return db
		}
		return db.Where("user_id = ?", actor.ID)
	}
}

// CanMutate is the generic object-level write gate: an entity exposing an
// owning-user reference may be mutated only by that user (or staff). Reads
// stay open to anyone who passed the visibility scope.
func CanMutate(actor auth.Actor, ownerID string) bool {
	return actor.Role == auth.RoleStaff || actor.ID == ownerID
}
