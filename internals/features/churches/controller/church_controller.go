package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/churches/dto"
	"gerejaku_backend/internals/features/churches/model"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

type ChurchController struct {
	DB *gorm.DB
}

func NewChurchController(db *gorm.DB) *ChurchController {
	return &ChurchController{DB: db}
}

// 🟢 GET /api/public/churches
// Sign-up church picker. Read failures degrade to an empty list.
func (ctrl *ChurchController) GetAllChurches(c *fiber.Ctx) error {
	var churches []model.ChurchModel
	if err := ctrl.DB.Order("church_name ASC").Find(&churches).Error; err != nil {
		log.Printf("[ERROR] list churches failed: %v", err)
		return helper.Success(c, "OK", []dto.ChurchResponse{})
	}

	out := make([]dto.ChurchResponse, 0, len(churches))
	for _, ch := range churches {
		out = append(out, dto.ToChurchResponse(ch))
	}
	return helper.Success(c, "OK", out)
}

// 🟢 GET /api/public/churches/:slug
func (ctrl *ChurchController) GetChurchBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var church model.ChurchModel
	if err := ctrl.DB.First(&church, "church_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}
	return helper.Success(c, "OK", dto.ToChurchResponse(church))
}

// 🟢 GET /api/public/churches/:slug/giving
func (ctrl *ChurchController) GetGivingInstructions(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var church model.ChurchModel
	if err := ctrl.DB.First(&church, "church_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}
	return helper.Success(c, "OK", dto.GivingResponse{
		ChurchID:                 church.ChurchID,
		ChurchName:               church.ChurchName,
		ChurchGivingInstructions: church.ChurchGivingInstructions,
	})
}

// 🟢 POST /api/a/churches (admin)
func (ctrl *ChurchController) CreateChurch(c *fiber.Ctx) error {
	var in dto.ChurchCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.GenerateSlug(in.ChurchName), helper.SlugOptions{
		Table:       "churches",
		SlugColumn:  "church_slug",
		MaxLen:      100,
		DefaultBase: "church",
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	church := in.ToModel(slug)
	if err := ctrl.DB.Create(&church).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create church")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Church created", dto.ToChurchResponse(church))
}

// 🟢 PUT /api/a/churches/:id (admin)
func (ctrl *ChurchController) UpdateChurch(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid church id")
	}

	var in dto.ChurchUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	var church model.ChurchModel
	if err := ctrl.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}

	updates := map[string]interface{}{}
	if in.ChurchName != nil {
		updates["church_name"] = *in.ChurchName
	}
	if in.ChurchAddress != nil {
		updates["church_address"] = *in.ChurchAddress
	}
	if len(in.ChurchServiceTimes) > 0 {
		updates["church_service_times"] = datatypes.JSON(in.ChurchServiceTimes)
	}
	if in.ChurchGivingInstructions != nil {
		updates["church_giving_instructions"] = *in.ChurchGivingInstructions
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&church).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update church")
	}
	return helper.Success(c, "Church updated", dto.ToChurchResponse(church))
}

// 🟢 DELETE /api/a/churches/:id (admin)
func (ctrl *ChurchController) DeleteChurch(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid church id")
	}

	res := ctrl.DB.Delete(&model.ChurchModel{}, "church_id = ?", churchID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete church")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Church not found")
	}
	return helper.Success(c, "Church deleted", nil)
}
