package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	churchModel "gerejaku_backend/internals/features/churches/model"
	"gerejaku_backend/internals/features/missions/dto"
	"gerejaku_backend/internals/features/missions/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	"gerejaku_backend/internals/helpers/storage"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

var validate = validator.New()

const missionDateLayout = "2006-01-02"

type MissionController struct {
	DB *gorm.DB
}

func NewMissionController(db *gorm.DB) *MissionController {
	return &MissionController{DB: db}
}

// 🟢 GET /api/public/churches/:slug/missions
// Active missions for the public missions page.
func (ctrl *MissionController) GetPublicMissions(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var church churchModel.ChurchModel
	if err := ctrl.DB.First(&church, "church_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}

	var missions []model.MissionModel
	if err := ctrl.DB.
		Where("mission_church_id = ? AND mission_status = ?", church.ChurchID, model.MissionStatusActive).
		Order("mission_created_at DESC").
		Limit(50).
		Find(&missions).Error; err != nil {
		log.Printf("[ERROR] list public missions failed: %v", err)
		missions = nil
	}
	return helper.Success(c, "OK", dto.ToMissionResponseList(missions))
}

// 🟢 GET /api/a/missions (pastor|admin)
func (ctrl *MissionController) GetMissions(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.MissionModel{}), "mission_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		return err
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("mission_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count missions failed: %v", err)
		total = 0
	}

	var missions []model.MissionModel
	if err := q.Order("mission_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&missions).Error; err != nil {
		log.Printf("[ERROR] list missions failed: %v", err)
		missions = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"missions":   dto.ToMissionResponseList(missions),
		"pagination": helper.BuildPagination(paging, total, len(missions)),
	})
}

// 🟢 POST /api/a/missions (pastor|admin)
func (ctrl *MissionController) CreateMission(c *fiber.Ctx) error {
	var in dto.MissionCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var selected *uuid.UUID
	if in.MissionChurchID != nil {
		id, perr := uuid.Parse(*in.MissionChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid mission_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	mission := model.MissionModel{
		MissionTitle:       in.MissionTitle,
		MissionDescription: in.MissionDescription,
		MissionLocation:    in.MissionLocation,
		MissionGoalAmount:  in.MissionGoalAmount,
		MissionStatus:      model.MissionStatusActive,
		MissionChurchID:    churchID,
		MissionCreatedBy:   userID,
	}
	if in.MissionStartDate != nil {
		t, perr := time.Parse(missionDateLayout, *in.MissionStartDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mission_start_date must be YYYY-MM-DD")
		}
		mission.MissionStartDate = &t
	}
	if in.MissionEndDate != nil {
		t, perr := time.Parse(missionDateLayout, *in.MissionEndDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mission_end_date must be YYYY-MM-DD")
		}
		mission.MissionEndDate = &t
	}

	if err := ctrl.DB.Create(&mission).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create mission")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mission created", dto.ToMissionResponse(mission))
}

func (ctrl *MissionController) loadScopedMission(c *fiber.Ctx) (*model.MissionModel, error) {
	missionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid mission id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.MissionModel{}), "mission_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var mission model.MissionModel
	if err := q.First(&mission, "mission_id = ?", missionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mission not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load mission")
	}
	return &mission, nil
}

// 🟢 PUT /api/a/missions/:id (pastor|admin)
func (ctrl *MissionController) UpdateMission(c *fiber.Ctx) error {
	mission, err := ctrl.loadScopedMission(c)
	if err != nil {
		return err
	}

	var in dto.MissionUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.MissionTitle != nil {
		updates["mission_title"] = *in.MissionTitle
	}
	if in.MissionDescription != nil {
		updates["mission_description"] = *in.MissionDescription
	}
	if in.MissionLocation != nil {
		updates["mission_location"] = *in.MissionLocation
	}
	if in.MissionStartDate != nil {
		t, perr := time.Parse(missionDateLayout, *in.MissionStartDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mission_start_date must be YYYY-MM-DD")
		}
		updates["mission_start_date"] = t
	}
	if in.MissionEndDate != nil {
		t, perr := time.Parse(missionDateLayout, *in.MissionEndDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "mission_end_date must be YYYY-MM-DD")
		}
		updates["mission_end_date"] = t
	}
	if in.MissionGoalAmount != nil {
		updates["mission_goal_amount"] = *in.MissionGoalAmount
	}
	if in.MissionStatus != nil {
		updates["mission_status"] = *in.MissionStatus
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(mission).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update mission")
	}
	return helper.Success(c, "Mission updated", dto.ToMissionResponse(*mission))
}

// 🟢 POST /api/a/missions/:id/contributions (pastor|admin)
// Records an offline contribution. Atomic increment; raised may pass goal.
func (ctrl *MissionController) AddContribution(c *fiber.Ctx) error {
	mission, err := ctrl.loadScopedMission(c)
	if err != nil {
		return err
	}

	var in dto.MissionContributionRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Model(&model.MissionModel{}).
		Where("mission_id = ?", mission.MissionID).
		Update("mission_raised_amount", gorm.Expr("mission_raised_amount + ?", in.Amount)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record contribution")
	}

	if err := ctrl.DB.First(mission, "mission_id = ?", mission.MissionID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload mission")
	}
	return helper.Success(c, "Contribution recorded", dto.ToMissionResponse(*mission))
}

// 🟢 DELETE /api/a/missions/:id (pastor|admin)
func (ctrl *MissionController) DeleteMission(c *fiber.Ctx) error {
	mission, err := ctrl.loadScopedMission(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.MissionModel{}, "mission_id = ?", mission.MissionID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete mission")
	}
	return helper.Success(c, "Mission deleted", nil)
}

// 🟢 POST /api/a/missions/:id/image (pastor|admin, multipart: file)
func (ctrl *MissionController) UploadMissionImage(c *fiber.Ctx) error {
	mission, err := ctrl.loadScopedMission(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing file")
	}
	if fileHeader.Size > storage.MaxUploadSize {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
	}

	url, err := storage.UploadImageWebP("missions", mission.MissionID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to store image")
	}

	if err := ctrl.DB.Model(mission).Update("mission_image_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image URL")
	}
	return helper.Success(c, "Image uploaded", fiber.Map{"url": url})
}
