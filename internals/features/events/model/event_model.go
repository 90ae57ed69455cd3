package model

import (
	"time"

	"github.com/google/uuid"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;size:255;not null" json:"event_title"`
	EventDescription *string   `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	EventDate        time.Time `gorm:"column:event_date;not null;index" json:"event_date"`
	EventType        *string   `gorm:"column:event_type;size:50" json:"event_type,omitempty"`
	EventLocation    *string   `gorm:"column:event_location;size:255" json:"event_location,omitempty"`
	EventImageURL    *string   `gorm:"column:event_image_url;type:text" json:"event_image_url,omitempty"`
	EventChurchID    uuid.UUID `gorm:"column:event_church_id;type:uuid;not null;index" json:"event_church_id"`
	EventCreatedBy   uuid.UUID `gorm:"column:event_created_by;type:uuid;not null" json:"event_created_by"`
	EventCreatedAt   time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt   time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
