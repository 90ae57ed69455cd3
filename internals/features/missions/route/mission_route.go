package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	missionController "gerejaku_backend/internals/features/missions/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// PublicMissionRoutes serves the public missions page.
func PublicMissionRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := missionController.NewMissionController(db)

	public.Get("/churches/:slug/missions", ctrl.GetPublicMissions)
}

// AdminMissionRoutes mounts the mission manager, pastors and admins only.
func AdminMissionRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := missionController.NewMissionController(db)

	missions := admin.Group("/missions",
		authMiddleware.OnlyRoles(constants.RoleErrorPastor("the mission manager"), constants.PastorAndAbove...))
	missions.Get("/", ctrl.GetMissions)
	missions.Post("/", ctrl.CreateMission)
	missions.Put("/:id", ctrl.UpdateMission)
	missions.Delete("/:id", ctrl.DeleteMission)
	missions.Post("/:id/contributions", ctrl.AddContribution)
	missions.Post("/:id/image", ctrl.UploadMissionImage)
}
