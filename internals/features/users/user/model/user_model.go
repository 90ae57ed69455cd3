package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// UserModel maps the users table
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName        string     `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email           string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password        string     `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID        *string    `gorm:"size:255;unique" json:"google_id,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate checks the struct against the rules above
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msg string
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " is required. "
		case "email":
			msg += "Email format is invalid. "
		case "min":
			msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters. "
		case "max":
			msg += fieldErr.Field() + " must be under " + fieldErr.Param() + " characters. "
		default:
			msg += fieldErr.Field() + " is invalid. "
		}
	}
	return errors.New(msg)
}
