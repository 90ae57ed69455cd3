package model

import (
	"time"

	"github.com/google/uuid"
)

type SermonModel struct {
	SermonID              uuid.UUID `gorm:"column:sermon_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sermon_id"`
	SermonTitle           string    `gorm:"column:sermon_title;size:255;not null" json:"sermon_title"`
	SermonDescription     *string   `gorm:"column:sermon_description;type:text" json:"sermon_description,omitempty"`
	SermonPastorName      string    `gorm:"column:sermon_pastor_name;size:100;not null" json:"sermon_pastor_name"`
	SermonDate            time.Time `gorm:"column:sermon_date;not null" json:"sermon_date"`
	SermonVideoURL        *string   `gorm:"column:sermon_video_url;type:text" json:"sermon_video_url,omitempty"`
	SermonAudioURL        *string   `gorm:"column:sermon_audio_url;type:text" json:"sermon_audio_url,omitempty"`
	SermonDocumentURL     *string   `gorm:"column:sermon_document_url;type:text" json:"sermon_document_url,omitempty"`
	SermonPresentationURL *string   `gorm:"column:sermon_presentation_url;type:text" json:"sermon_presentation_url,omitempty"`
	SermonThumbnailURL    *string   `gorm:"column:sermon_thumbnail_url;type:text" json:"sermon_thumbnail_url,omitempty"`
	SermonChurchID        uuid.UUID `gorm:"column:sermon_church_id;type:uuid;not null;index" json:"sermon_church_id"`
	SermonCreatedBy       uuid.UUID `gorm:"column:sermon_created_by;type:uuid;not null" json:"sermon_created_by"`
	SermonCreatedAt       time.Time `gorm:"column:sermon_created_at;autoCreateTime" json:"sermon_created_at"`
	SermonUpdatedAt       time.Time `gorm:"column:sermon_updated_at;autoUpdateTime" json:"sermon_updated_at"`
}

func (SermonModel) TableName() string {
	return "sermons"
}
