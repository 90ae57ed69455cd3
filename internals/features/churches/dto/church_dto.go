package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gerejaku_backend/internals/features/churches/model"
)

type ChurchResponse struct {
	ChurchID           uuid.UUID       `json:"church_id"`
	ChurchName         string          `json:"church_name"`
	ChurchSlug         string          `json:"church_slug"`
	ChurchAddress      *string         `json:"church_address,omitempty"`
	ChurchServiceTimes json.RawMessage `json:"church_service_times,omitempty"`
}

// GivingResponse is the static giving-page copy; no payment processing
// happens server side.
type GivingResponse struct {
	ChurchID                 uuid.UUID `json:"church_id"`
	ChurchName               string    `json:"church_name"`
	ChurchGivingInstructions *string   `json:"church_giving_instructions,omitempty"`
}

func ToChurchResponse(m model.ChurchModel) ChurchResponse {
	return ChurchResponse{
		ChurchID:           m.ChurchID,
		ChurchName:         m.ChurchName,
		ChurchSlug:         m.ChurchSlug,
		ChurchAddress:      m.ChurchAddress,
		ChurchServiceTimes: json.RawMessage(m.ChurchServiceTimes),
	}
}

type ChurchCreateRequest struct {
	ChurchName               string          `json:"church_name" validate:"required,max=150"`
	ChurchAddress            *string         `json:"church_address"`
	ChurchServiceTimes       json.RawMessage `json:"church_service_times"`
	ChurchGivingInstructions *string         `json:"church_giving_instructions"`
}

type ChurchUpdateRequest struct {
	ChurchName               *string         `json:"church_name" validate:"omitempty,max=150"`
	ChurchAddress            *string         `json:"church_address"`
	ChurchServiceTimes       json.RawMessage `json:"church_service_times"`
	ChurchGivingInstructions *string         `json:"church_giving_instructions"`
}

func (r ChurchCreateRequest) ToModel(slug string) model.ChurchModel {
	return model.ChurchModel{
		ChurchName:               r.ChurchName,
		ChurchSlug:               slug,
		ChurchAddress:            r.ChurchAddress,
		ChurchServiceTimes:       datatypes.JSON(r.ChurchServiceTimes),
		ChurchGivingInstructions: r.ChurchGivingInstructions,
	}
}
