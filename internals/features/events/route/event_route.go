package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	eventController "gerejaku_backend/internals/features/events/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// PublicEventRoutes serves upcoming events on church landing pages.
func PublicEventRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	public.Get("/churches/:slug/events", ctrl.GetPublicEvents)
}

// AdminEventRoutes mounts the event manager, pastors and admins only.
func AdminEventRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := admin.Group("/events",
		authMiddleware.OnlyRoles(constants.RoleErrorPastor("the event manager"), constants.PastorAndAbove...))
	events.Get("/", ctrl.GetEvents)
	events.Post("/", ctrl.CreateEvent)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Post("/:id/image", ctrl.UploadEventImage)
}
