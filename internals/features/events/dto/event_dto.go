package dto

import (
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/features/events/model"
)

type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventTitle       string    `json:"event_title"`
	EventDescription *string   `json:"event_description,omitempty"`
	EventDate        time.Time `json:"event_date"`
	EventType        *string   `json:"event_type,omitempty"`
	EventLocation    *string   `json:"event_location,omitempty"`
	EventImageURL    *string   `json:"event_image_url,omitempty"`
	EventChurchID    uuid.UUID `json:"event_church_id"`
}

func ToEventResponse(m model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDescription: m.EventDescription,
		EventDate:        m.EventDate,
		EventType:        m.EventType,
		EventLocation:    m.EventLocation,
		EventImageURL:    m.EventImageURL,
		EventChurchID:    m.EventChurchID,
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToEventResponse(m))
	}
	return out
}

type EventCreateRequest struct {
	EventTitle       string  `json:"event_title" validate:"required,max=255"`
	EventDescription *string `json:"event_description"`
	EventDate        string  `json:"event_date" validate:"required"`
	EventType        *string `json:"event_type" validate:"omitempty,max=50"`
	EventLocation    *string `json:"event_location" validate:"omitempty,max=255"`
	EventChurchID    *string `json:"event_church_id" validate:"omitempty,uuid"`
}

type EventUpdateRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,max=255"`
	EventDescription *string `json:"event_description"`
	EventDate        *string `json:"event_date"`
	EventType        *string `json:"event_type" validate:"omitempty,max=50"`
	EventLocation    *string `json:"event_location" validate:"omitempty,max=255"`
}
