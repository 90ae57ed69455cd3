// file: internals/features/users/approvals/service/approval_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/users/approvals/model"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

var (
	ErrRoleRequestNotFound = fiber.NewError(fiber.StatusNotFound, "Role request not found")
	ErrAlreadyReviewed     = fiber.NewError(fiber.StatusConflict, "Role request has already been reviewed")
	ErrRequestPending      = fiber.NewError(fiber.StatusConflict, "A role request is already pending review")
	ErrAlreadyMember       = fiber.NewError(fiber.StatusConflict, "You already hold an approved role")
	ErrInvalidDecision     = fiber.NewError(fiber.StatusBadRequest, "Decision must be approve or reject")
)

// StatusForDecision maps the admin decision onto the terminal status.
func StatusForDecision(decision string) (string, error) {
	switch decision {
	case DecisionApprove:
		return constants.RoleStatusApproved, nil
	case DecisionReject:
		return constants.RoleStatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// CanReapply: a new role request is only allowed when there is no live
// assignment. Rejected is terminal for its row; retrying means a brand
// new row. Pending and approved rows block re-application.
func CanReapply(latestStatus string) bool {
	return latestStatus == "" || latestStatus == constants.RoleStatusRejected
}

// reapplyGate maps the user's newest assignment status onto the
// conflict a fresh request gets. nil means the request may proceed.
func reapplyGate(latestStatus string) error {
	if CanReapply(latestStatus) {
		return nil
	}
	if latestStatus == constants.RoleStatusApproved {
		return ErrAlreadyMember
	}
	return ErrRequestPending
}

// reviewUpdate builds the guarded decision write. The status='pending'
// predicate is the no-op guard: an already-reviewed row matches nothing,
// so reviewed_at/reviewed_by get stamped exactly once.
func reviewUpdate(db *gorm.DB, roleID, reviewerID uuid.UUID, newStatus string, now time.Time) *gorm.DB {
	return db.Model(&model.UserRoleModel{}).
		Where("user_role_id = ? AND user_role_status = ?", roleID, constants.RoleStatusPending).
		Updates(map[string]interface{}{
			"user_role_status":      newStatus,
			"user_role_reviewed_by": reviewerID,
			"user_role_reviewed_at": now,
		})
}

// Review flips one pending request to approved/rejected and stamps the
// reviewer. A second review is a conflict instead of a silent restamp.
func Review(db *gorm.DB, roleID, reviewerID uuid.UUID, decision string) (*model.UserRoleModel, error) {
	newStatus, err := StatusForDecision(decision)
	if err != nil {
		return nil, err
	}

	res := reviewUpdate(db, roleID, reviewerID, newStatus, time.Now().UTC())
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update role request")
	}

	if res.RowsAffected == 0 {
		var existing model.UserRoleModel
		if err := db.Where("user_role_id = ?", roleID).Take(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoleRequestNotFound
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load role request")
		}
		return nil, ErrAlreadyReviewed
	}

	var updated model.UserRoleModel
	if err := db.Where("user_role_id = ?", roleID).Take(&updated).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load role request")
	}
	return &updated, nil
}

// CreateRoleRequest inserts a fresh pending assignment. Used at
// registration and on the re-apply path after a rejection.
func CreateRoleRequest(db *gorm.DB, userID, churchID uuid.UUID, role string) (*model.UserRoleModel, error) {
	if !constants.IsValidRole(role) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown role")
	}

	var latest model.UserRoleModel
	err := db.Where("user_role_user_id = ?", userID).
		Order("user_role_created_at DESC").
		Limit(1).
		Take(&latest).Error
	switch {
	case err == nil:
		if gateErr := reapplyGate(latest.UserRoleStatus); gateErr != nil {
			return nil, gateErr
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first request
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing role request")
	}

	row := model.UserRoleModel{
		UserRoleUserID:   userID,
		UserRoleChurchID: &churchID,
		UserRoleRole:     role,
		UserRoleStatus:   constants.RoleStatusPending,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create role request")
	}
	return &row, nil
}
