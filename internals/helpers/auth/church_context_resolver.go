// file: internals/helpers/auth/church_context_resolver.go
package helper

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
)

// UserChurch is the resolved tenant/role snapshot for one identity.
// Capability flags are only true for an approved assignment; an
// unapproved role grants nothing.
type UserChurch struct {
	ChurchID      *uuid.UUID `json:"church_id"`
	ChurchName    *string    `json:"church_name"`
	Role          *string    `json:"role"`
	Status        *string    `json:"status"`
	IsApproved    bool       `json:"is_approved"`
	IsPastor      bool       `json:"is_pastor"`
	IsAdmin       bool       `json:"is_admin"`
	IsWorshipTeam bool       `json:"is_worship_team"`
}

type roleRow struct {
	UserRoleRole     string     `gorm:"column:user_role_role"`
	UserRoleStatus   string     `gorm:"column:user_role_status"`
	UserRoleChurchID *uuid.UUID `gorm:"column:user_role_church_id"`
	ChurchName       *string    `gorm:"column:church_name"`
}

// ResolveUserChurch looks up the identity's newest role assignment joined
// with its church. Any failure resolves to the zero snapshot (fail-closed):
// the caller must treat that the same as "no session" for authorization.
//
// The schema keeps at most one non-rejected assignment per user (partial
// unique index), so "newest first" only matters for the re-apply path
// where a fresh pending row supersedes older rejected history.
func ResolveUserChurch(db *gorm.DB, userID uuid.UUID) UserChurch {
	var uc UserChurch
	if db == nil || userID == uuid.Nil {
		return uc
	}

	var row roleRow
	err := db.
		Table("user_roles").
		Select("user_roles.user_role_role, user_roles.user_role_status, user_roles.user_role_church_id, churches.church_name").
		Joins("LEFT JOIN churches ON churches.church_id = user_roles.user_role_church_id").
		Where("user_roles.user_role_user_id = ?", userID).
		Order("user_roles.user_role_created_at DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] resolve user church failed user=%s: %v", userID, err)
		}
		return uc
	}

	return BuildUserChurch(row.UserRoleRole, row.UserRoleStatus, row.UserRoleChurchID, row.ChurchName)
}

// BuildUserChurch derives the capability flags from raw role/status
// values. ResolveUserChurch goes through this; the approval controller
// reuses it when pushing realtime snapshots.
func BuildUserChurch(role, status string, churchID *uuid.UUID, churchName *string) UserChurch {
	uc := UserChurch{
		ChurchID:   churchID,
		ChurchName: churchName,
	}
	if role == "" && status == "" {
		return uc
	}
	r, s := role, status
	uc.Role = &r
	uc.Status = &s
	uc.IsApproved = status == constants.RoleStatusApproved
	uc.IsPastor = role == constants.RolePastor && uc.IsApproved
	uc.IsAdmin = role == constants.RoleAdmin && uc.IsApproved
	uc.IsWorshipTeam = role == constants.RoleWorshipTeam && uc.IsApproved
	return uc
}

// HasAnyRole reports whether the approved role is one of wanted.
// Unapproved assignments never match.
func (uc UserChurch) HasAnyRole(wanted ...string) bool {
	if !uc.IsApproved || uc.Role == nil {
		return false
	}
	for _, w := range wanted {
		if *uc.Role == w {
			return true
		}
	}
	return false
}
