package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/sermons/model"
)

type SermonResponse struct {
	SermonID              uuid.UUID `json:"sermon_id"`
	SermonTitle           string    `json:"sermon_title"`
	SermonDescription     *string   `json:"sermon_description,omitempty"`
	SermonPastorName      string    `json:"sermon_pastor_name"`
	SermonDate            time.Time `json:"sermon_date"`
	SermonVideoURL        *string   `json:"sermon_video_url,omitempty"`
	SermonAudioURL        *string   `json:"sermon_audio_url,omitempty"`
	SermonDocumentURL     *string   `json:"sermon_document_url,omitempty"`
	SermonPresentationURL *string   `json:"sermon_presentation_url,omitempty"`
	SermonThumbnailURL    *string   `json:"sermon_thumbnail_url,omitempty"`
	SermonChurchID        uuid.UUID `json:"sermon_church_id"`
}

func ToSermonResponse(m model.SermonModel) SermonResponse {
	return SermonResponse{
		SermonID:              m.SermonID,
		SermonTitle:           m.SermonTitle,
		SermonDescription:     m.SermonDescription,
		SermonPastorName:      m.SermonPastorName,
		SermonDate:            m.SermonDate,
		SermonVideoURL:        m.SermonVideoURL,
		SermonAudioURL:        m.SermonAudioURL,
		SermonDocumentURL:     m.SermonDocumentURL,
		SermonPresentationURL: m.SermonPresentationURL,
		SermonThumbnailURL:    m.SermonThumbnailURL,
		SermonChurchID:        m.SermonChurchID,
	}
}

func ToSermonResponseList(models []model.SermonModel) []SermonResponse {
	out := make([]SermonResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToSermonResponse(m))
	}
	return out
}

type SermonCreateRequest struct {
	SermonTitle       string  `json:"sermon_title" validate:"required,max=255"`
	SermonDescription *string `json:"sermon_description"`
	SermonPastorName  string  `json:"sermon_pastor_name" validate:"required,max=100"`
	SermonDate        string  `json:"sermon_date" validate:"required,datetime=2006-01-02"`
	SermonVideoURL    *string `json:"sermon_video_url" validate:"omitempty,url"`
	SermonChurchID    *string `json:"sermon_church_id" validate:"omitempty,uuid"`
}

type SermonUpdateRequest struct {
	SermonTitle       *string `json:"sermon_title" validate:"omitempty,max=255"`
	SermonDescription *string `json:"sermon_description"`
	SermonPastorName  *string `json:"sermon_pastor_name" validate:"omitempty,max=100"`
	SermonDate        *string `json:"sermon_date" validate:"omitempty,datetime=2006-01-02"`
	SermonVideoURL    *string `json:"sermon_video_url" validate:"omitempty,url"`
}
