package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	sermonController "gerejaku_backend/internals/features/sermons/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// MemberSermonRoutes serves the member-facing sermon archive.
func MemberSermonRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := sermonController.NewSermonController(db)

	user.Get("/sermons", ctrl.GetSermons)
	user.Get("/sermons/:id", ctrl.GetSermonByID)
}

// AdminSermonRoutes mounts the sermon manager, pastors and admins only.
func AdminSermonRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sermonController.NewSermonController(db)

	sermons := admin.Group("/sermons",
		authMiddleware.OnlyRoles(constants.RoleErrorPastor("the sermon manager"), constants.PastorAndAbove...))
	sermons.Post("/", ctrl.CreateSermon)
	sermons.Put("/:id", ctrl.UpdateSermon)
	sermons.Delete("/:id", ctrl.DeleteSermon)
	sermons.Post("/:id/media/:kind", ctrl.UploadSermonMedia)
}
