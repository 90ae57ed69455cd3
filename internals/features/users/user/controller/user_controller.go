package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/user/dto"
	"gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	"gerejaku_backend/internals/helpers/storage"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}

	uc := helperAuth.ResolveUserChurch(ctrl.DB, userID)

	return helper.Success(c, "OK", dto.MeResponse{
		User: dto.UserResponse{
			ID:              user.ID,
			UserName:        user.UserName,
			Email:           user.Email,
			IsActive:        user.IsActive,
			EmailVerifiedAt: user.EmailVerifiedAt,
			CreatedAt:       user.CreatedAt,
		},
		Profile: dto.ProfileResponse{
			FullName:  profile.FullName,
			AvatarURL: profile.AvatarURL,
			Phone:     profile.Phone,
		},
		Church: uc,
	})
}

// 🟢 PUT /api/u/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctrl.DB.Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}
	if res.RowsAffected == 0 {
		// Google sign-ins can predate the profile row
		profile := model.UserProfileModel{UserID: userID, FullName: in.FullName, Phone: in.Phone}
		if profile.FullName == nil {
			if name := helper.GetUserNameFromLocals(c); name != "" {
				profile.FullName = &name
			}
		}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.Success(c, "Profile updated", dto.ProfileResponse{
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Phone:     profile.Phone,
	})
}

// 🟢 POST /api/u/profile/avatar (multipart: avatar)
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing avatar file")
	}
	if fileHeader.Size > storage.MaxUploadSize {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "Avatar exceeds the upload limit")
	}

	var prev model.UserProfileModel
	_ = ctrl.DB.Select("avatar_url").Where("user_id = ?", userID).Take(&prev).Error

	url, err := storage.UploadImageWebP("avatars", userID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to store avatar")
	}

	res := ctrl.DB.Model(&model.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save avatar")
	}
	if res.RowsAffected == 0 {
		profile := model.UserProfileModel{UserID: userID, AvatarURL: &url}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save avatar")
		}
	}

	// the replaced object is dead weight in the bucket; cleanup is
	// best-effort and never fails the request
	if prev.AvatarURL != nil && *prev.AvatarURL != url {
		if key, ok := storage.KeyFromPublicURL("avatars", *prev.AvatarURL); ok {
			if err := storage.Delete("avatars", key); err != nil {
				log.Printf("[WARN] failed to remove old avatar key=%s: %v", key, err)
			}
		}
	}

	return helper.Success(c, "Avatar updated", fiber.Map{"avatar_url": url})
}
