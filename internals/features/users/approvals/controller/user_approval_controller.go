package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/approvals/dto"
	"gerejaku_backend/internals/features/users/approvals/model"
	"gerejaku_backend/internals/features/users/approvals/service"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/realtime"
)

var validate = validator.New()

type UserApprovalController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewUserApprovalController(db *gorm.DB, hub *realtime.Hub) *UserApprovalController {
	return &UserApprovalController{DB: db, Hub: hub}
}

type queueRow struct {
	model.UserRoleModel
	ChurchName *string `gorm:"column:church_name"`
	FullName   *string `gorm:"column:full_name"`
	Email      *string `gorm:"column:email"`
}

// 🟢 GET /api/a/user-roles
// Review queue. Admin-only; the church filter control is optional
// (?church_id=), no filter means all tenants.
func (ctrl *UserApprovalController) GetAllUserRoles(c *fiber.Ctx) error {
	q := ctrl.DB.
		Table("user_roles").
		Select("user_roles.*, churches.church_name, user_profiles.full_name, users.email").
		Joins("LEFT JOIN churches ON churches.church_id = user_roles.user_role_church_id").
		Joins("LEFT JOIN user_profiles ON user_profiles.user_id = user_roles.user_role_user_id").
		Joins("LEFT JOIN users ON users.id = user_roles.user_role_user_id").
		Order("user_roles.user_role_created_at DESC")

	if raw := c.Query("church_id"); raw != "" {
		churchID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid church_id filter")
		}
		q = q.Where("user_roles.user_role_church_id = ?", churchID)
	}

	var rows []queueRow
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("[ERROR] load user roles: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load role requests")
	}

	out := make([]dto.UserRoleResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToUserRoleResponse(&rows[i].UserRoleModel)
		resp.FullName = rows[i].FullName
		resp.Email = rows[i].Email
		if rows[i].UserRoleChurchID != nil && rows[i].ChurchName != nil {
			resp.Church = &dto.ChurchInfo{ID: *rows[i].UserRoleChurchID, Name: *rows[i].ChurchName}
		}
		out = append(out, *resp)
	}

	return helper.Success(c, "Role requests loaded", out)
}

// 🟢 PATCH /api/a/user-roles/:id/review
// Approve or reject one pending request, then push the change to the
// affected user's open sockets.
func (ctrl *UserApprovalController) ReviewUserRole(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid role request id")
	}

	reviewerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.ReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := service.Review(ctrl.DB, roleID, reviewerID, body.Decision)
	if err != nil {
		return err
	}

	ctrl.Hub.PublishRoleStatus(updated.UserRoleUserID, realtime.RoleStatusEvent{
		UserRoleID: updated.UserRoleID,
		Role:       updated.UserRoleRole,
		Status:     updated.UserRoleStatus,
		ChurchID:   updated.UserRoleChurchID,
	})

	return helper.Success(c, "Role request reviewed", dto.ToUserRoleResponse(updated))
}
