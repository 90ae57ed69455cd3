package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchRoute "gerejaku_backend/internals/features/churches/route"
	eventRoute "gerejaku_backend/internals/features/events/route"
	financeRoute "gerejaku_backend/internals/features/finance/route"
	missionRoute "gerejaku_backend/internals/features/missions/route"
	sermonRoute "gerejaku_backend/internals/features/sermons/route"
	songRoute "gerejaku_backend/internals/features/songs/route"
	approvalRoute "gerejaku_backend/internals/features/users/approvals/route"
	authRoute "gerejaku_backend/internals/features/users/auth/route"
	userRoute "gerejaku_backend/internals/features/users/user/route"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
	"gerejaku_backend/internals/realtime"
)

// SetupRoutes wires every route group:
//
//	/api/public — unauthenticated content reads
//	/api/auth   — session provider surface
//	/api/u      — any signed-in user (snapshot resolved, not gated)
//	/api/a      — approved members only, plus per-feature role gates
//	/api/ws     — websocket change notifications
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	api := app.Group("/api")

	// ---------- public ----------
	public := api.Group("/public")
	churchRoute.PublicChurchRoutes(public, db)
	eventRoute.PublicEventRoutes(public, db)
	missionRoute.PublicMissionRoutes(public, db)
	financeRoute.PublicFinanceRoutes(public, db)

	// ---------- auth ----------
	authRoute.AuthRoutes(api, db)

	// ---------- member surface ----------
	user := api.Group("/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.ResolveChurch(db),
	)
	userRoute.UserRoutes(user, db)
	approvalRoute.RoleRequestRoutes(user, db)
	sermonRoute.MemberSermonRoutes(user, db)
	songRoute.MemberSongRoutes(user, db)

	// ---------- admin surface ----------
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireApproved(db),
	)
	churchRoute.AdminChurchRoutes(admin, db)
	sermonRoute.AdminSermonRoutes(admin, db)
	songRoute.AdminSongRoutes(admin, db)
	eventRoute.AdminEventRoutes(admin, db)
	missionRoute.AdminMissionRoutes(admin, db)
	financeRoute.AdminFinanceRoutes(admin, db)
	approvalRoute.UserApprovalRoutes(admin, db, hub)

	// ---------- realtime ----------
	realtime.RegisterRoutes(api.Group("/ws"), hub)
}
