package seeds

import (
	"gorm.io/gorm"

	"gerejaku_backend/internals/seeds/churches"
	"gerejaku_backend/internals/seeds/users"
)

// RunAllSeeds loads the bootstrap data: churches first, then users with
// their role assignments (the first admin is pre-approved here because
// approvals otherwise need an existing admin).
func RunAllSeeds(db *gorm.DB) {
	churches.SeedChurchesFromJSON(db, "internals/seeds/churches/data_churches.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
