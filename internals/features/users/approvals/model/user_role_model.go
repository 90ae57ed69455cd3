package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel links an identity to one church, one requested role and
// its review status. At most one non-rejected row per user is allowed
// (partial unique index uq_user_roles_live on user_role_user_id WHERE
// user_role_status <> 'rejected'); rejected rows remain as history.
type UserRoleModel struct {
	UserRoleID       uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserRoleUserID   uuid.UUID  `gorm:"column:user_role_user_id;type:uuid;not null;index" json:"user_role_user_id"`
	UserRoleChurchID *uuid.UUID `gorm:"column:user_role_church_id;type:uuid" json:"user_role_church_id,omitempty"`
	UserRoleRole     string     `gorm:"column:user_role_role;type:varchar(20);not null;default:'member'" json:"user_role_role"`
	UserRoleStatus   string     `gorm:"column:user_role_status;type:varchar(20);not null;default:'pending'" json:"user_role_status"`

	// stamped once when an admin decides; never restamped
	UserRoleReviewedBy *uuid.UUID `gorm:"column:user_role_reviewed_by;type:uuid" json:"user_role_reviewed_by,omitempty"`
	UserRoleReviewedAt *time.Time `gorm:"column:user_role_reviewed_at;type:timestamptz" json:"user_role_reviewed_at,omitempty"`

	UserRoleCreatedAt time.Time `gorm:"column:user_role_created_at;type:timestamptz;autoCreateTime" json:"user_role_created_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
