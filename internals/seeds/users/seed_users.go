package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	churchModel "gerejaku_backend/internals/features/churches/model"
	roleModel "gerejaku_backend/internals/features/users/approvals/model"
	"gerejaku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	ChurchSlug string `json:"church_slug"`
	Role       string `json:"role"`
	// Approved pre-approves the assignment; used to bootstrap the first
	// admin, since approvals otherwise require an existing admin.
	Approved bool `json:"approved"`
}

// SeedUsersFromJSON inserts users with profile and role assignment,
// skipping any email that already exists.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, s := range seeds {
		var existing model.UserModel
		if err := db.Where("email = ?", s.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User with email %s already exists, skipping", s.Email)
			continue
		}

		if !constants.IsValidRole(s.Role) {
			log.Printf("❌ Unknown role %q for %s, skipping", s.Role, s.Email)
			continue
		}

		var church churchModel.ChurchModel
		if err := db.Where("church_slug = ?", s.ChurchSlug).First(&church).Error; err != nil {
			log.Printf("❌ Church %s not found for %s, skipping", s.ChurchSlug, s.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for %s: %v", s.Email, err)
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			user := model.UserModel{
				UserName: s.UserName,
				Email:    s.Email,
				Password: string(hashed),
				IsActive: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := model.UserProfileModel{UserID: user.ID}
			if s.FullName != "" {
				profile.FullName = &s.FullName
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}

			status := constants.RoleStatusPending
			if s.Approved {
				status = constants.RoleStatusApproved
			}
			role := roleModel.UserRoleModel{
				UserRoleUserID:   user.ID,
				UserRoleChurchID: &church.ChurchID,
				UserRoleRole:     s.Role,
				UserRoleStatus:   status,
			}
			return tx.Create(&role).Error
		})
		if err != nil {
			log.Printf("❌ Failed to insert user %s: %v", s.Email, err)
		} else {
			log.Printf("✅ Inserted user %s (%s @ %s)", s.UserName, s.Role, s.ChurchSlug)
		}
	}
}
