package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/approvals/dto"
	"gerejaku_backend/internals/features/users/approvals/service"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
)

// RoleRequestController serves the signed-in user's own role status
// (the pending-approval view) and the re-apply path after a rejection.
type RoleRequestController struct {
	DB *gorm.DB
}

func NewRoleRequestController(db *gorm.DB) *RoleRequestController {
	return &RoleRequestController{DB: db}
}

// 🟢 GET /api/u/role-status
func (ctrl *RoleRequestController) GetMyRoleStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	uc := helperAuth.ResolveUserChurch(ctrl.DB, userID)
	return helper.Success(c, "Role status loaded", uc)
}

// 🟢 POST /api/u/role-requests
// Creates a fresh pending assignment. Only allowed when the newest one
// is rejected (or none exists) — approved and pending rows block it.
func (ctrl *RoleRequestController) CreateRoleRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.RoleRequestCreate
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := service.CreateRoleRequest(ctrl.DB, userID, body.ChurchID, body.Role)
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Role request submitted", dto.ToUserRoleResponse(row))
}
