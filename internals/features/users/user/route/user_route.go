package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "gerejaku_backend/internals/features/users/user/controller"
)

// UserRoutes mounts profile endpoints on the authenticated group.
func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	user.Get("/me", ctrl.GetMe)
	user.Put("/profile", ctrl.UpdateProfile)
	user.Post("/profile/avatar", ctrl.UploadAvatar)
}
