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
	"gerejaku_backend/internals/features/events/dto"
	"gerejaku_backend/internals/features/events/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	"gerejaku_backend/internals/helpers/storage"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// parseEventDate accepts a date or a full timestamp.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// 🟢 GET /api/public/churches/:slug/events
// Upcoming events for the church landing page. Read failures degrade
// to an empty list.
func (ctrl *EventController) GetPublicEvents(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var church churchModel.ChurchModel
	if err := ctrl.DB.First(&church, "church_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Church not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load church")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Where("event_church_id = ? AND event_date >= ?", church.ChurchID, time.Now().AddDate(0, 0, -1)).
		Order("event_date ASC").
		Limit(50).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list public events failed: %v", err)
		events = nil
	}
	return helper.Success(c, "OK", dto.ToEventResponseList(events))
}

// 🟢 GET /api/a/events (pastor|admin) — manager view, past included.
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.EventModel{}), "event_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		return err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events failed: %v", err)
		total = 0
	}

	var events []model.EventModel
	if err := q.Order("event_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events failed: %v", err)
		events = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     dto.ToEventResponseList(events),
		"pagination": helper.BuildPagination(paging, total, len(events)),
	})
}

// 🟢 POST /api/a/events (pastor|admin)
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var in dto.EventCreateRequest
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
	if in.EventChurchID != nil {
		id, perr := uuid.Parse(*in.EventChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid event_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	eventDate, err := parseEventDate(in.EventDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "event_date must be YYYY-MM-DD or RFC3339")
	}

	event := model.EventModel{
		EventTitle:       in.EventTitle,
		EventDescription: in.EventDescription,
		EventDate:        eventDate,
		EventType:        in.EventType,
		EventLocation:    in.EventLocation,
		EventChurchID:    churchID,
		EventCreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", dto.ToEventResponse(event))
}

func (ctrl *EventController) loadScopedEvent(c *fiber.Ctx) (*model.EventModel, error) {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.EventModel{}), "event_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var event model.EventModel
	if err := q.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load event")
	}
	return &event, nil
}

// 🟢 PUT /api/a/events/:id (pastor|admin)
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	event, err := ctrl.loadScopedEvent(c)
	if err != nil {
		return err
	}

	var in dto.EventUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.EventTitle != nil {
		updates["event_title"] = *in.EventTitle
	}
	if in.EventDescription != nil {
		updates["event_description"] = *in.EventDescription
	}
	if in.EventDate != nil {
		parsed, perr := parseEventDate(*in.EventDate)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "event_date must be YYYY-MM-DD or RFC3339")
		}
		updates["event_date"] = parsed
	}
	if in.EventType != nil {
		updates["event_type"] = *in.EventType
	}
	if in.EventLocation != nil {
		updates["event_location"] = *in.EventLocation
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(event).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.Success(c, "Event updated", dto.ToEventResponse(*event))
}

// 🟢 DELETE /api/a/events/:id (pastor|admin)
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	event, err := ctrl.loadScopedEvent(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", event.EventID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.Success(c, "Event deleted", nil)
}

// 🟢 POST /api/a/events/:id/image (pastor|admin, multipart: file)
func (ctrl *EventController) UploadEventImage(c *fiber.Ctx) error {
	event, err := ctrl.loadScopedEvent(c)
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

	url, err := storage.UploadImageWebP("events", event.EventID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to store image")
	}

	if err := ctrl.DB.Model(event).Update("event_image_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image URL")
	}
	return helper.Success(c, "Image uploaded", fiber.Map{"url": url})
}
