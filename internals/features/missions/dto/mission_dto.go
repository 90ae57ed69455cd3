package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/missions/model"
)

type MissionResponse struct {
	MissionID           uuid.UUID  `json:"mission_id"`
	MissionTitle        string     `json:"mission_title"`
	MissionDescription  *string    `json:"mission_description,omitempty"`
	MissionLocation     *string    `json:"mission_location,omitempty"`
	MissionStartDate    *time.Time `json:"mission_start_date,omitempty"`
	MissionEndDate      *time.Time `json:"mission_end_date,omitempty"`
	MissionGoalAmount   float64    `json:"mission_goal_amount"`
	MissionRaisedAmount float64    `json:"mission_raised_amount"`
	MissionStatus       string     `json:"mission_status"`
	MissionImageURL     *string    `json:"mission_image_url,omitempty"`
	MissionChurchID     uuid.UUID  `json:"mission_church_id"`

	// ProgressPercent is uncapped: 120 means 20% over goal.
	ProgressPercent float64 `json:"progress_percent"`
	Overfunded      bool    `json:"overfunded"`
}

func ToMissionResponse(m model.MissionModel) MissionResponse {
	progress := 0.0
	if m.MissionGoalAmount > 0 {
		progress = m.MissionRaisedAmount / m.MissionGoalAmount * 100
	}
	return MissionResponse{
		MissionID:           m.MissionID,
		MissionTitle:        m.MissionTitle,
		MissionDescription:  m.MissionDescription,
		MissionLocation:     m.MissionLocation,
		MissionStartDate:    m.MissionStartDate,
		MissionEndDate:      m.MissionEndDate,
		MissionGoalAmount:   m.MissionGoalAmount,
		MissionRaisedAmount: m.MissionRaisedAmount,
		MissionStatus:       m.MissionStatus,
		MissionImageURL:     m.MissionImageURL,
		MissionChurchID:     m.MissionChurchID,
		ProgressPercent:     progress,
		Overfunded:          m.MissionRaisedAmount > m.MissionGoalAmount && m.MissionGoalAmount > 0,
	}
}

func ToMissionResponseList(models []model.MissionModel) []MissionResponse {
	out := make([]MissionResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToMissionResponse(m))
	}
	return out
}

type MissionCreateRequest struct {
	MissionTitle       string  `json:"mission_title" validate:"required,max=255"`
	MissionDescription *string `json:"mission_description"`
	MissionLocation    *string `json:"mission_location" validate:"omitempty,max=255"`
	MissionStartDate   *string `json:"mission_start_date" validate:"omitempty,datetime=2006-01-02"`
	MissionEndDate     *string `json:"mission_end_date" validate:"omitempty,datetime=2006-01-02"`
	MissionGoalAmount  float64 `json:"mission_goal_amount" validate:"gte=0"`
	MissionChurchID    *string `json:"mission_church_id" validate:"omitempty,uuid"`
}

type MissionUpdateRequest struct {
	MissionTitle       *string  `json:"mission_title" validate:"omitempty,max=255"`
	MissionDescription *string  `json:"mission_description"`
	MissionLocation    *string  `json:"mission_location" validate:"omitempty,max=255"`
	MissionStartDate   *string  `json:"mission_start_date" validate:"omitempty,datetime=2006-01-02"`
	MissionEndDate     *string  `json:"mission_end_date" validate:"omitempty,datetime=2006-01-02"`
	MissionGoalAmount  *float64 `json:"mission_goal_amount" validate:"omitempty,gte=0"`
	MissionStatus      *string  `json:"mission_status" validate:"omitempty,oneof=active completed archived"`
}

// MissionContributionRequest bumps the raised amount. Overfunding is
// allowed on purpose.
type MissionContributionRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
