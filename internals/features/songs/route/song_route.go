package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	songController "gerejaku_backend/internals/features/songs/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// MemberSongRoutes serves the member-facing song library and set lists.
func MemberSongRoutes(user fiber.Router, db *gorm.DB) {
	songs := songController.NewSongController(db)
	lists := songController.NewSongListController(db)

	user.Get("/songs", songs.GetSongs)
	user.Get("/songs/:id", songs.GetSongByID)
	user.Get("/song-lists", lists.GetSongLists)
	user.Get("/song-lists/:id", lists.GetSongListByID)
}

// AdminSongRoutes mounts the song manager; the worship team can manage
// songs alongside pastors and admins.
func AdminSongRoutes(admin fiber.Router, db *gorm.DB) {
	songs := songController.NewSongController(db)
	lists := songController.NewSongListController(db)

	gate := authMiddleware.OnlyRoles(constants.RoleErrorWorshipTeam("the song manager"), constants.WorshipTeamAndAbove...)

	sg := admin.Group("/songs", gate)
	sg.Post("/", songs.CreateSong)
	sg.Put("/:id", songs.UpdateSong)
	sg.Delete("/:id", songs.DeleteSong)
	sg.Post("/:id/audio", songs.UploadSongAudio)

	lg := admin.Group("/song-lists", gate)
	lg.Post("/", lists.CreateSongList)
	lg.Delete("/:id", lists.DeleteSongList)
	lg.Post("/:id/items", lists.AddSongListItem)
	lg.Delete("/:id/items/:itemId", lists.RemoveSongListItem)
}
