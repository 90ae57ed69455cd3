package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/users/approvals/model"
)

type ChurchInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserRoleResponse is one row of the admin review queue.
type UserRoleResponse struct {
	UserRoleID uuid.UUID   `json:"user_role_id"`
	UserID     uuid.UUID   `json:"user_id"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
	ChurchID   *uuid.UUID  `json:"church_id,omitempty"`
	Church     *ChurchInfo `json:"church,omitempty"`
	FullName   *string     `json:"full_name,omitempty"`
	Email      *string     `json:"email,omitempty"`
	ReviewedBy *uuid.UUID  `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time  `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

func ToUserRoleResponse(m *model.UserRoleModel) *UserRoleResponse {
	return &UserRoleResponse{
		UserRoleID: m.UserRoleID,
		UserID:     m.UserRoleUserID,
		Role:       m.UserRoleRole,
		Status:     m.UserRoleStatus,
		ChurchID:   m.UserRoleChurchID,
		ReviewedBy: m.UserRoleReviewedBy,
		ReviewedAt: m.UserRoleReviewedAt,
		CreatedAt:  m.UserRoleCreatedAt,
	}
}

// ReviewRequest is the admin decision payload.
type ReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// RoleRequestCreate re-applies for a role after a rejection (or first
// registration without one).
type RoleRequestCreate struct {
	ChurchID uuid.UUID `json:"church_id" validate:"required"`
	Role     string    `json:"role" validate:"required,oneof=member pastor worship_team admin"`
}
