package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChurchModel is the tenant root. Every scoped table carries its id.
type ChurchModel struct {
	ChurchID                 uuid.UUID      `gorm:"column:church_id;type:uuid;default:gen_random_uuid();primaryKey" json:"church_id"`
	ChurchName               string         `gorm:"column:church_name;size:150;not null" json:"church_name"`
	ChurchSlug               string         `gorm:"column:church_slug;size:100;unique;not null" json:"church_slug"`
	ChurchAddress            *string        `gorm:"column:church_address;type:text" json:"church_address,omitempty"`
	ChurchServiceTimes       datatypes.JSON `gorm:"column:church_service_times;type:jsonb" json:"church_service_times,omitempty"`
	ChurchGivingInstructions *string        `gorm:"column:church_giving_instructions;type:text" json:"church_giving_instructions,omitempty"`
	ChurchCreatedAt          time.Time      `gorm:"column:church_created_at;autoCreateTime" json:"church_created_at"`
	ChurchUpdatedAt          time.Time      `gorm:"column:church_updated_at;autoUpdateTime" json:"church_updated_at"`
}

func (ChurchModel) TableName() string {
	return "churches"
}
