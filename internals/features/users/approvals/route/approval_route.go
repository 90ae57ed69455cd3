package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	approvalController "gerejaku_backend/internals/features/users/approvals/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
	"gerejaku_backend/internals/realtime"
)

// RoleRequestRoutes mounts the member-side approval surface: own status
// and the re-apply path after a rejection.
func RoleRequestRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := approvalController.NewRoleRequestController(db)

	user.Get("/role-status", ctrl.GetMyRoleStatus)
	user.Post("/role-requests", ctrl.CreateRoleRequest)
}

// UserApprovalRoutes mounts the admin review queue.
func UserApprovalRoutes(admin fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := approvalController.NewUserApprovalController(db, hub)

	roles := admin.Group("/user-roles",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user approval"), constants.RoleAdmin))
	roles.Get("/", ctrl.GetAllUserRoles)
	roles.Patch("/:id/review", ctrl.ReviewUserRole)
}
