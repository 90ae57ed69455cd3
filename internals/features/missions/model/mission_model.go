package model

import (
	"time"

	"github.com/google/uuid"
)

// Mission statuses.
const (
	MissionStatusActive    = "active"
	MissionStatusCompleted = "completed"
	MissionStatusArchived  = "archived"
)

// MissionModel carries a fundraising goal. Raised may exceed goal;
// the DTO reports the overflow instead of capping it.
type MissionModel struct {
	MissionID           uuid.UUID  `gorm:"column:mission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mission_id"`
	MissionTitle        string     `gorm:"column:mission_title;size:255;not null" json:"mission_title"`
	MissionDescription  *string    `gorm:"column:mission_description;type:text" json:"mission_description,omitempty"`
	MissionLocation     *string    `gorm:"column:mission_location;size:255" json:"mission_location,omitempty"`
	MissionStartDate    *time.Time `gorm:"column:mission_start_date" json:"mission_start_date,omitempty"`
	MissionEndDate      *time.Time `gorm:"column:mission_end_date" json:"mission_end_date,omitempty"`
	MissionGoalAmount   float64    `gorm:"column:mission_goal_amount;not null;default:0" json:"mission_goal_amount"`
	MissionRaisedAmount float64    `gorm:"column:mission_raised_amount;not null;default:0" json:"mission_raised_amount"`
	MissionStatus       string     `gorm:"column:mission_status;size:20;not null;default:'active'" json:"mission_status"`
	MissionImageURL     *string    `gorm:"column:mission_image_url;type:text" json:"mission_image_url,omitempty"`
	MissionChurchID     uuid.UUID  `gorm:"column:mission_church_id;type:uuid;not null;index" json:"mission_church_id"`
	MissionCreatedBy    uuid.UUID  `gorm:"column:mission_created_by;type:uuid;not null" json:"mission_created_by"`
	MissionCreatedAt    time.Time  `gorm:"column:mission_created_at;autoCreateTime" json:"mission_created_at"`
	MissionUpdatedAt    time.Time  `gorm:"column:mission_updated_at;autoUpdateTime" json:"mission_updated_at"`
}

func (MissionModel) TableName() string {
	return "missions"
}
