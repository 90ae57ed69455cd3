package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	financeController "gerejaku_backend/internals/features/finance/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

// PublicFinanceRoutes serves the giving transparency page.
func PublicFinanceRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := financeController.NewFinancialRecordController(db)

	public.Get("/churches/:slug/financial-records", ctrl.GetPublicRecords)
}

// AdminFinanceRoutes mounts the finance manager, pastors and admins only.
func AdminFinanceRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := financeController.NewFinancialRecordController(db)

	records := admin.Group("/financial-records",
		authMiddleware.OnlyRoles(constants.RoleErrorPastor("the finance manager"), constants.PastorAndAbove...))
	records.Get("/", ctrl.GetRecords)
	records.Post("/", ctrl.CreateRecord)
	records.Put("/:id", ctrl.UpdateRecord)
	records.Delete("/:id", ctrl.DeleteRecord)
}
