package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/auth/service"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/helpers/mailer"
)

var validate = validator.New()

type AuthController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewAuthController(db *gorm.DB, m mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Mailer: m}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB, ctrl.Mailer, c, in)
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Registration received. Check your inbox to verify your email; an administrator will review your role request.",
		fiber.Map{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := service.Login(ctrl.DB, c, in.Email, in.Password)
	if err != nil {
		return err
	}
	return helper.Success(c, "Signed in", session)
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🟢 POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var in googleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := service.GoogleLogin(ctrl.DB, c, in.IDToken)
	if err != nil {
		return err
	}
	return helper.Success(c, "Signed in", session)
}

// 🟢 POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	accessToken, err := service.RefreshSession(ctrl.DB, c)
	if err != nil {
		return err
	}
	return helper.Success(c, "Session refreshed", fiber.Map{"access_token": accessToken})
}

// 🟢 POST /api/auth/logout (auth required)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if err := service.Logout(ctrl.DB, c); err != nil {
		return err
	}
	return helper.Success(c, "Signed out", nil)
}

// 🟢 GET /api/auth/verify-email?token=...
func (ctrl *AuthController) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing token")
	}
	if err := service.VerifyEmail(ctrl.DB, token); err != nil {
		return err
	}
	return helper.Success(c, "Email verified", nil)
}

type resendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// 🟢 POST /api/auth/resend-verification
func (ctrl *AuthController) ResendVerification(c *fiber.Ctx) error {
	var in resendRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&in); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := service.ResendVerification(ctrl.DB, ctrl.Mailer, in.Email); err != nil {
		return err
	}
	return helper.Success(c, "If that address is registered and unverified, a new link is on its way", nil)
}
