package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/songs/dto"
	"gerejaku_backend/internals/features/songs/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

const serviceDateLayout = "2006-01-02"

type SongListController struct {
	DB *gorm.DB
}

func NewSongListController(db *gorm.DB) *SongListController {
	return &SongListController{DB: db}
}

// 🟢 GET /api/u/song-lists
func (ctrl *SongListController) GetSongLists(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SongListModel{}), "song_list_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		if errors.Is(err, helperAuth.ErrMembersOnly) {
			return helper.Success(c, "OK", fiber.Map{
				"members_only": true,
				"song_lists":   []dto.SongListResponse{},
			})
		}
		return err
	}

	var lists []model.SongListModel
	if err := q.Order("song_list_service_date DESC").Limit(50).Find(&lists).Error; err != nil {
		log.Printf("[ERROR] list song lists failed: %v", err)
		lists = nil
	}

	out := make([]dto.SongListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, dto.SongListResponse{
			SongListID:          l.SongListID,
			SongListName:        l.SongListName,
			SongListServiceDate: l.SongListServiceDate,
			SongListChurchID:    l.SongListChurchID,
			Items:               []dto.SongListItemResponse{},
		})
	}
	return helper.Success(c, "OK", fiber.Map{"members_only": false, "song_lists": out})
}

// 🟢 GET /api/u/song-lists/:id — list with its items and songs, in order.
func (ctrl *SongListController) GetSongListByID(c *fiber.Ctx) error {
	list, err := ctrl.loadScopedList(c)
	if err != nil {
		return err
	}

	var items []model.SongListItemModel
	if err := ctrl.DB.
		Where("song_list_item_list_id = ?", list.SongListID).
		Order("song_list_item_position ASC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load set list items")
	}

	songIDs := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		songIDs = append(songIDs, it.SongListItemSongID)
	}
	songByID := map[uuid.UUID]model.SongModel{}
	if len(songIDs) > 0 {
		var songs []model.SongModel
		if err := ctrl.DB.Where("song_id IN ?", songIDs).Find(&songs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load songs")
		}
		for _, s := range songs {
			songByID[s.SongID] = s
		}
	}

	resp := dto.SongListResponse{
		SongListID:          list.SongListID,
		SongListName:        list.SongListName,
		SongListServiceDate: list.SongListServiceDate,
		SongListChurchID:    list.SongListChurchID,
		Items:               make([]dto.SongListItemResponse, 0, len(items)),
	}
	for _, it := range items {
		item := dto.SongListItemResponse{
			SongListItemID:       it.SongListItemID,
			SongListItemPosition: it.SongListItemPosition,
			SongListItemNotes:    it.SongListItemNotes,
		}
		if s, ok := songByID[it.SongListItemSongID]; ok {
			sr := dto.ToSongResponse(s)
			item.Song = &sr
		}
		resp.Items = append(resp.Items, item)
	}
	return helper.Success(c, "OK", resp)
}

func (ctrl *SongListController) loadScopedList(c *fiber.Ctx) (*model.SongListModel, error) {
	listID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid song list id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SongListModel{}), "song_list_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var list model.SongListModel
	if err := q.First(&list, "song_list_id = ?", listID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Song list not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load song list")
	}
	return &list, nil
}

// 🟢 POST /api/a/song-lists (worship_team|pastor|admin)
func (ctrl *SongListController) CreateSongList(c *fiber.Ctx) error {
	var in dto.SongListCreateRequest
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
	if in.SongListChurchID != nil {
		id, perr := uuid.Parse(*in.SongListChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid song_list_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	serviceDate, err := time.Parse(serviceDateLayout, in.SongListServiceDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "song_list_service_date must be YYYY-MM-DD")
	}

	list := model.SongListModel{
		SongListName:        in.SongListName,
		SongListServiceDate: serviceDate,
		SongListChurchID:    churchID,
		SongListCreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create song list")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Song list created", fiber.Map{"song_list": list})
}

// 🟢 POST /api/a/song-lists/:id/items
// Fails with 409 when the position is already taken in this list.
func (ctrl *SongListController) AddSongListItem(c *fiber.Ctx) error {
	list, err := ctrl.loadScopedList(c)
	if err != nil {
		return err
	}

	var in dto.SongListItemRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	songID, err := uuid.Parse(in.SongID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid song_id")
	}

	// the song has to belong to the same church as the list
	var count int64
	if err := ctrl.DB.Model(&model.SongModel{}).
		Where("song_id = ? AND song_church_id = ?", songID, list.SongListChurchID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify song")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Song not found in this church")
	}

	item := model.SongListItemModel{
		SongListItemListID:   list.SongListID,
		SongListItemSongID:   songID,
		SongListItemPosition: in.Position,
		SongListItemNotes:    in.Notes,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "That position is already taken in this set list")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add song to set list")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Song added", fiber.Map{"item": item})
}

// 🟢 DELETE /api/a/song-lists/:id/items/:itemId
func (ctrl *SongListController) RemoveSongListItem(c *fiber.Ctx) error {
	list, err := ctrl.loadScopedList(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid item id")
	}

	res := ctrl.DB.Delete(&model.SongListItemModel{},
		"song_list_item_id = ? AND song_list_item_list_id = ?", itemID, list.SongListID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	}
	return helper.Success(c, "Song removed from set list", nil)
}

// 🟢 DELETE /api/a/song-lists/:id
func (ctrl *SongListController) DeleteSongList(c *fiber.Ctx) error {
	list, err := ctrl.loadScopedList(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SongListItemModel{}, "song_list_item_list_id = ?", list.SongListID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SongListModel{}, "song_list_id = ?", list.SongListID).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete song list")
	}
	return helper.Success(c, "Song list deleted", nil)
}
