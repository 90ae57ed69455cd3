package dto

import (
	"time"

	"github.com/google/uuid"

	helperAuth "gerejaku_backend/internals/helpers/auth"
)

type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserName        string     `json:"user_name"`
	Email           string     `json:"email"`
	IsActive        bool       `json:"is_active"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ProfileResponse struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// MeResponse bundles the identity, its profile and the resolved church
// membership snapshot so the client needs a single round trip after sign-in.
type MeResponse struct {
	User    UserResponse          `json:"user"`
	Profile ProfileResponse       `json:"profile"`
	Church  helperAuth.UserChurch `json:"church"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}
