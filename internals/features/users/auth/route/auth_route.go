package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gerejaku_backend/internals/features/users/auth/controller"
	"gerejaku_backend/internals/helpers/mailer"
	"gerejaku_backend/internals/middlewares"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts sign-up, sign-in and session endpoints under /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db, mailer.New())

	auth := api.Group("/auth", middlewares.AuthRateLimiter())

	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/google", ctrl.GoogleLogin)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Get("/verify-email", ctrl.VerifyEmail)
	auth.Post("/resend-verification", ctrl.ResendVerification)

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
