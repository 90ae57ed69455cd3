package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/songs/dto"
	"gerejaku_backend/internals/features/songs/model"
	helper "gerejaku_backend/internals/helpers"
	helperAuth "gerejaku_backend/internals/helpers/auth"
	"gerejaku_backend/internals/helpers/storage"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SongController struct {
	DB *gorm.DB
}

func NewSongController(db *gorm.DB) *SongController {
	return &SongController{DB: db}
}

// 🟢 GET /api/u/songs
// Supports ?q= (title/artist) and ?tag= filters on top of the tenant scope.
func (ctrl *SongController) GetSongs(c *fiber.Ctx) error {
	uc := authMiddleware.UserChurchFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SongModel{}), "song_church_id", uc, helperAuth.SelectedChurchID(c))
	if err != nil {
		if errors.Is(err, helperAuth.ErrMembersOnly) {
			return helper.Success(c, "OK", fiber.Map{
				"members_only": true,
				"songs":        []dto.SongResponse{},
				"pagination":   helper.BuildPagination(paging, 0, 0),
			})
		}
		return err
	}

	if search := c.Query("q"); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("song_title ILIKE ? OR song_artist ILIKE ?", pattern, pattern)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(song_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count songs failed: %v", err)
		total = 0
	}

	var songs []model.SongModel
	if err := q.Order("song_title ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&songs).Error; err != nil {
		log.Printf("[ERROR] list songs failed: %v", err)
		songs = nil
	}

	return helper.Success(c, "OK", fiber.Map{
		"members_only": false,
		"songs":        dto.ToSongResponseList(songs),
		"pagination":   helper.BuildPagination(paging, total, len(songs)),
	})
}

// 🟢 GET /api/u/songs/:id
func (ctrl *SongController) GetSongByID(c *fiber.Ctx) error {
	song, err := ctrl.loadScopedSong(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.ToSongResponse(*song))
}

func (ctrl *SongController) loadScopedSong(c *fiber.Ctx) (*model.SongModel, error) {
	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid song id")
	}

	uc := authMiddleware.UserChurchFromLocals(c)
	q, err := helperAuth.ScopeChurch(ctrl.DB.Model(&model.SongModel{}), "song_church_id", uc, nil)
	if err != nil {
		return nil, err
	}

	var song model.SongModel
	if err := q.First(&song, "song_id = ?", songID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Song not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load song")
	}
	return &song, nil
}

// 🟢 POST /api/a/songs (worship_team|pastor|admin)
func (ctrl *SongController) CreateSong(c *fiber.Ctx) error {
	var in dto.SongCreateRequest
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
	if in.SongChurchID != nil {
		id, perr := uuid.Parse(*in.SongChurchID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid song_church_id")
		}
		selected = &id
	}
	churchID, err := helperAuth.WriteChurchID(uc, selected)
	if err != nil {
		return err
	}

	song := model.SongModel{
		SongTitle:        in.SongTitle,
		SongArtist:       in.SongArtist,
		SongKeySignature: in.SongKeySignature,
		SongTempo:        in.SongTempo,
		SongLyrics:       in.SongLyrics,
		SongTags:         pq.StringArray(in.SongTags),
		SongChurchID:     churchID,
		SongCreatedBy:    userID,
	}
	if err := ctrl.DB.Create(&song).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create song")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Song created", dto.ToSongResponse(song))
}

// 🟢 PUT /api/a/songs/:id
func (ctrl *SongController) UpdateSong(c *fiber.Ctx) error {
	song, err := ctrl.loadScopedSong(c)
	if err != nil {
		return err
	}

	var in dto.SongUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if in.SongTitle != nil {
		updates["song_title"] = *in.SongTitle
	}
	if in.SongArtist != nil {
		updates["song_artist"] = *in.SongArtist
	}
	if in.SongKeySignature != nil {
		updates["song_key_signature"] = *in.SongKeySignature
	}
	if in.SongTempo != nil {
		updates["song_tempo"] = *in.SongTempo
	}
	if in.SongLyrics != nil {
		updates["song_lyrics"] = *in.SongLyrics
	}
	if in.SongTags != nil {
		updates["song_tags"] = pq.StringArray(in.SongTags)
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(song).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update song")
	}
	return helper.Success(c, "Song updated", dto.ToSongResponse(*song))
}

// 🟢 DELETE /api/a/songs/:id
func (ctrl *SongController) DeleteSong(c *fiber.Ctx) error {
	song, err := ctrl.loadScopedSong(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SongListItemModel{}, "song_list_item_song_id = ?", song.SongID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SongModel{}, "song_id = ?", song.SongID).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete song")
	}
	return helper.Success(c, "Song deleted", nil)
}

// 🟢 POST /api/a/songs/:id/audio (multipart: file)
func (ctrl *SongController) UploadSongAudio(c *fiber.Ctx) error {
	song, err := ctrl.loadScopedSong(c)
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

	url, err := storage.UploadFile("songs", "songs/"+song.SongID.String(), fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to store file")
	}

	if err := ctrl.DB.Model(song).Update("song_audio_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save audio URL")
	}
	return helper.Success(c, "Audio uploaded", fiber.Map{"url": url})
}
