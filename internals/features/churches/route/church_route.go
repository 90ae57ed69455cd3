package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	churchController "gerejaku_backend/internals/features/churches/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// PublicChurchRoutes serves the church picker and giving page copy.
func PublicChurchRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := churchController.NewChurchController(db)

	public.Get("/churches", ctrl.GetAllChurches)
	public.Get("/churches/:slug", ctrl.GetChurchBySlug)
	public.Get("/churches/:slug/giving", ctrl.GetGivingInstructions)
}

// AdminChurchRoutes mounts tenant management, admin only.
func AdminChurchRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := churchController.NewChurchController(db)

	churches := admin.Group("/churches",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("church management"), constants.RoleAdmin))
	churches.Post("/", ctrl.CreateChurch)
	churches.Put("/:id", ctrl.UpdateChurch)
	churches.Delete("/:id", ctrl.DeleteChurch)
}
