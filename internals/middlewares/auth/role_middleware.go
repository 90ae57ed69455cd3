// internals/middlewares/auth/role_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
)

// RequireApproved resolves the viewer's tenant/role snapshot and blocks
// anyone without an approved assignment. The snapshot is resolved fresh
// on every request, so an admin downgrading a user takes effect on that
// user's very next request (the websocket push just makes open views
// re-hit sooner). The snapshot lands in locals "user_church" for
// handlers and later gates.
func RequireApproved(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromLocals(c)
		if err != nil {
			return err
		}

		uc := helperAuth.ResolveUserChurch(db, userID)
		c.Locals("user_church", uc)

		if !uc.IsApproved {
			// pending/rejected/no assignment all land on the waiting view
			return helper.Denied(c, fiber.StatusForbidden, constants.ErrNotApproved, "pending-approval")
		}
		return c.Next()
	}
}

// ResolveChurch resolves the snapshot into locals without blocking.
// Used on the member surface, where an unapproved viewer still reaches
// own-status endpoints and content reads answer with the members-only
// payload instead of an error page.
func ResolveChurch(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromLocals(c)
		if err != nil {
			return err
		}
		c.Locals("user_church", helperAuth.ResolveUserChurch(db, userID))
		return c.Next()
	}
}

// OnlyRoles gates a route on the approved role set. Must run after
// RequireApproved (it reads the resolved snapshot from locals).
func OnlyRoles(deniedMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc, ok := c.Locals("user_church").(helperAuth.UserChurch)
		if !ok {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		if uc.HasAnyRole(roles...) {
			return c.Next()
		}

		log.Printf("[DEBUG] access denied role=%v path=%s", uc.Role, c.Path())
		if deniedMessage == "" {
			deniedMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.Denied(c, fiber.StatusForbidden, deniedMessage, "dashboard")
	}
}

// UserChurchFromLocals is the handler-side accessor for the snapshot.
func UserChurchFromLocals(c *fiber.Ctx) helperAuth.UserChurch {
	if uc, ok := c.Locals("user_church").(helperAuth.UserChurch); ok {
		return uc
	}
	return helperAuth.UserChurch{}
}
