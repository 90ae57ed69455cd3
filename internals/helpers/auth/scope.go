// file: internals/helpers/auth/scope.go
package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrMembersOnly means the viewer has no resolved church: the query
	// must not run, the view renders the members-only state with zero rows.
	ErrMembersOnly = fiber.NewError(fiber.StatusForbidden, "This content is available to approved church members only")

	// ErrChurchRequired: an admin write needs an explicit church selection.
	ErrChurchRequired = fiber.NewError(fiber.StatusBadRequest, "church_id is required")

	// ErrCrossTenantWrite: a non-admin tried to tag a record with another church.
	ErrCrossTenantWrite = fiber.NewError(fiber.StatusForbidden, "You cannot write records for another church")
)

// ScopeChurch appends the tenant filter for a read of a church-scoped table.
//
//   - admin: unfiltered (all tenants), unless an explicit selection was made
//     via the church filter control, then filter by that selection;
//   - everyone else: forced to the viewer's own church; a viewer without a
//     church must never produce an unfiltered query, so ErrMembersOnly.
//
// column is the table's church FK, e.g. "sermon_church_id".
func ScopeChurch(q *gorm.DB, column string, uc UserChurch, selected *uuid.UUID) (*gorm.DB, error) {
	if uc.IsAdmin {
		if selected != nil && *selected != uuid.Nil {
			return q.Where(fmt.Sprintf("%s = ?", column), *selected), nil
		}
		return q, nil
	}
	if uc.ChurchID == nil || !uc.IsApproved {
		return nil, ErrMembersOnly
	}
	return q.Where(fmt.Sprintf("%s = ?", column), *uc.ChurchID), nil
}

// SelectedChurchID parses the admin church filter control (?church_id=).
func SelectedChurchID(c *fiber.Ctx) *uuid.UUID {
	raw := c.Query("church_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// WriteChurchID resolves the church a new/updated record is stamped with.
// Admins must select explicitly (cross-tenant writes are never implicit);
// everyone else always writes into their own church.
func WriteChurchID(uc UserChurch, selected *uuid.UUID) (uuid.UUID, error) {
	if uc.IsAdmin {
		if selected == nil || *selected == uuid.Nil {
			return uuid.Nil, ErrChurchRequired
		}
		return *selected, nil
	}
	if uc.ChurchID == nil || !uc.IsApproved {
		return uuid.Nil, ErrMembersOnly
	}
	if selected != nil && *selected != uuid.Nil && *selected != *uc.ChurchID {
		return uuid.Nil, ErrCrossTenantWrite
	}
	return *uc.ChurchID, nil
}
