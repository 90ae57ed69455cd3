package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/sermons/dto"
	"gerejaku_backend/internals/features/sermons/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	"gerejaku_backend/internals/helpers/storage"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

var validate = validator.New()

const sermonDateLayout = "2006-01-02"

type SermonController struct {
	DB *gorm.DB
}

func NewSermonController(db *gorm.DB) *SermonController {
	return &SermonController{DB: db}
}

// 🟢 GET /api/u/sermons
// Member-scoped archive. A viewer without a resolved church gets the
// members-only payload with zero rows, not an error page.
func (ctrl *SermonController) GetSermons(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SermonModel{}), "sermon_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		if errors.Is(err, helperAuth.ErrMembersOnly) {
			return helper.Success(c, "OK", fiber.Map{
				"members_only": true,
				"sermons":      []dto.SermonResponse{},
				"pagination":   helper.BuildPagination(paging, 0, 0),
			})
		}
		return err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count sermons failed: %v", err)
		total = 0
	}

	var sermons []model.SermonModel
	if err := q.Order("sermon_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sermons).Error; err != nil {
		log.Printf("[ERROR] list sermons failed: %v", err)
		sermons = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"members_only": false,
		"sermons":      dto.ToSermonResponseList(sermons),
		"pagination":   helper.BuildPagination(paging, total, len(sermons)),
	})
}

// 🟢 GET /api/u/sermons/:id
func (ctrl *SermonController) GetSermonByID(c *fiber.Ctx) error {
	sermonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SermonModel{}), "sermon_church_id", uc, nil)
	if err != nil {
		return err
	}

	var sermon model.SermonModel
	if err := q.First(&sermon, "sermon_id = ?", sermonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sermon not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load sermon")
	}
	return helper.Success(c, "OK", dto.ToSermonResponse(sermon))
}

// 🟢 POST /api/a/sermons (pastor|admin)
func (ctrl *SermonController) CreateSermon(c *fiber.Ctx) error {
	var in dto.SermonCreateRequest
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
	if in.SermonChurchID != nil {
		id, perr := uuid.Parse(*in.SermonChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid sermon_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	sermonDate, err := time.Parse(sermonDateLayout, in.SermonDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "sermon_date must be YYYY-MM-DD")
	}

	sermon := model.SermonModel{
		SermonTitle:       in.SermonTitle,
		SermonDescription: in.SermonDescription,
		SermonPastorName:  in.SermonPastorName,
		SermonDate:        sermonDate,
		SermonVideoURL:    in.SermonVideoURL,
		SermonChurchID:    churchID,
		SermonCreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&sermon).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create sermon")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sermon created", dto.ToSermonResponse(sermon))
}

// loadScopedSermon loads one row the actor is allowed to modify.
func (ctrl *SermonController) loadScopedSermon(c *fiber.Ctx) (*model.SermonModel, error) {
	sermonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid sermon id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SermonModel{}), "sermon_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var sermon model.SermonModel
	if err := q.First(&sermon, "sermon_id = ?", sermonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sermon not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load sermon")
	}
	return &sermon, nil
}

// 🟢 PUT /api/a/sermons/:id (pastor|admin)
func (ctrl *SermonController) UpdateSermon(c *fiber.Ctx) error {
	sermon, err := ctrl.loadScopedSermon(c)
	if err != nil {
		return err
	}

	var in dto.SermonUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.SermonTitle != nil {
		updates["sermon_title"] = *in.SermonTitle
	}
	if in.SermonDescription != nil {
		updates["sermon_description"] = *in.SermonDescription
	}
	if in.SermonPastorName != nil {
		updates["sermon_pastor_name"] = *in.SermonPastorName
	}
	if in.SermonDate != nil {
		parsed, perr := time.Parse(sermonDateLayout, *in.SermonDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "sermon_date must be YYYY-MM-DD")
		}
		updates["sermon_date"] = parsed
	}
	if in.SermonVideoURL != nil {
		updates["sermon_video_url"] = *in.SermonVideoURL
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(sermon).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update sermon")
	}
	return helper.Success(c, "Sermon updated", dto.ToSermonResponse(*sermon))
}

// 🟢 DELETE /api/a/sermons/:id (pastor|admin)
func (ctrl *SermonController) DeleteSermon(c *fiber.Ctx) error {
	sermon, err := ctrl.loadScopedSermon(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.SermonModel{}, "sermon_id = ?", sermon.SermonID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete sermon")
	}
	return helper.Success(c, "Sermon deleted", nil)
}

// media kinds accepted by UploadSermonMedia and the column each one lands in.
var sermonMediaColumns = map[string]string{
	"audio":        "sermon_audio_url",
	"document":     "sermon_document_url",
	"presentation": "sermon_presentation_url",
	"thumbnail":    "sermon_thumbnail_url",
}

// 🟢 POST /api/a/sermons/:id/media/:kind (pastor|admin, multipart: file)
func (ctrl *SermonController) UploadSermonMedia(c *fiber.Ctx) error {
	sermon, err := ctrl.loadScopedSermon(c)
	if err != nil {
		return err
	}

	kind := c.Params("kind")
	column, ok := sermonMediaColumns[kind]
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown media kind")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing file")
	}
	if fileHeader.Size > storage.MaxUploadSize {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
	}

	folder := "sermons/" + sermon.SermonID.String()
	var url string
	if kind == "thumbnail" {
		url, err = storage.UploadImageWebP("sermons", folder, fileHeader)
	} else {
		url, err = storage.UploadFile("sermons", folder, fileHeader)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to store file")
	}

	if err := ctrl.DB.Model(sermon).Update(column, url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save media URL")
	}
	return helper.Success(c, "Media uploaded", fiber.Map{"url": url, "kind": kind})
}
