package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/songs/model"
)

type SongResponse struct {
	SongID           uuid.UUID `json:"song_id"`
	SongTitle        string    `json:"song_title"`
	SongArtist       *string   `json:"song_artist,omitempty"`
	SongKeySignature *string   `json:"song_key_signature,omitempty"`
	SongTempo        *int      `json:"song_tempo,omitempty"`
	SongLyrics       *string   `json:"song_lyrics,omitempty"`
	SongAudioURL     *string   `json:"song_audio_url,omitempty"`
	SongTags         []string  `json:"song_tags"`
	SongChurchID     uuid.UUID `json:"song_church_id"`
}

func ToSongResponse(m model.SongModel) SongResponse {
	tags := []string(m.SongTags)
	if tags == nil {
		tags = []string{}
	}
	return SongResponse{
		SongID:           m.SongID,
		SongTitle:        m.SongTitle,
		SongArtist:       m.SongArtist,
		SongKeySignature: m.SongKeySignature,
		SongTempo:        m.SongTempo,
		SongLyrics:       m.SongLyrics,
		SongAudioURL:     m.SongAudioURL,
		SongTags:         tags,
		SongChurchID:     m.SongChurchID,
	}
}

func ToSongResponseList(models []model.SongModel) []SongResponse {
	out := make([]SongResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToSongResponse(m))
	}
	return out
}

type SongCreateRequest struct {
	SongTitle        string   `json:"song_title" validate:"required,max=255"`
	SongArtist       *string  `json:"song_artist" validate:"omitempty,max=150"`
	SongKeySignature *string  `json:"song_key_signature" validate:"omitempty,max=10"`
	SongTempo        *int     `json:"song_tempo" validate:"omitempty,min=20,max=300"`
	SongLyrics       *string  `json:"song_lyrics"`
	SongTags         []string `json:"song_tags" validate:"omitempty,dive,max=40"`
	SongChurchID     *string  `json:"song_church_id" validate:"omitempty,uuid"`
}

type SongUpdateRequest struct {
	SongTitle        *string  `json:"song_title" validate:"omitempty,max=255"`
	SongArtist       *string  `json:"song_artist" validate:"omitempty,max=150"`
	SongKeySignature *string  `json:"song_key_signature" validate:"omitempty,max=10"`
	SongTempo        *int     `json:"song_tempo" validate:"omitempty,min=20,max=300"`
	SongLyrics       *string  `json:"song_lyrics"`
	SongTags         []string `json:"song_tags" validate:"omitempty,dive,max=40"`
}

type SongListItemResponse struct {
	SongListItemID       uuid.UUID     `json:"song_list_item_id"`
	SongListItemPosition int           `json:"song_list_item_position"`
	SongListItemNotes    *string       `json:"song_list_item_notes,omitempty"`
	Song                 *SongResponse `json:"song,omitempty"`
}

type SongListResponse struct {
	SongListID          uuid.UUID              `json:"song_list_id"`
	SongListName        string                 `json:"song_list_name"`
	SongListServiceDate time.Time              `json:"song_list_service_date"`
	SongListChurchID    uuid.UUID              `json:"song_list_church_id"`
	Items               []SongListItemResponse `json:"items"`
}

type SongListCreateRequest struct {
	SongListName        string  `json:"song_list_name" validate:"required,max=150"`
	SongListServiceDate string  `json:"song_list_service_date" validate:"required,datetime=2006-01-02"`
	SongListChurchID    *string `json:"song_list_church_id" validate:"omitempty,uuid"`
}

type SongListItemRequest struct {
	SongID   string  `json:"song_id" validate:"required,uuid"`
	Position int     `json:"position" validate:"required,min=1"`
	Notes    *string `json:"notes"`
}
