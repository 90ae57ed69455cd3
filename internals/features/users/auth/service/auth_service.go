// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	approvalService "gerejaku_backend/internals/features/users/approvals/service"
	authModel "gerejaku_backend/internals/features/users/auth/model"
	userModel "gerejaku_backend/internals/features/users/user/model"
	"gerejaku_backend/internals/helpers/mailer"
)

const verifyEmailTTL = 48 * time.Hour

type RegisterInput struct {
	UserName string    `json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=8"`
	FullName string    `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string    `json:"phone"`
	ChurchID uuid.UUID `json:"church_id" validate:"required"`
	Role     string    `json:"role" validate:"required,oneof=member pastor worship_team admin"`
}

type SessionResult struct {
	AccessToken string               `json:"access_token"`
	User        *userModel.UserModel `json:"user"`
}

// Register creates the identity, its profile and a pending role request
// in one transaction, then sends the verification email. The new
// account holds no capability until an admin approves the request.
func Register(db *gorm.DB, m mailer.Mailer, c *fiber.Ctx, in RegisterInput) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(in.UserName),
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		fullName := strings.TrimSpace(in.FullName)
		profile := userModel.UserProfileModel{
			UserID:   user.ID,
			FullName: &fullName,
		}
		if phone := strings.TrimSpace(in.Phone); phone != "" {
			profile.Phone = &phone
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		if _, err := approvalService.CreateRoleRequest(tx, user.ID, in.ChurchID, in.Role); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		log.Printf("[ERROR] register tx failed: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
	}

	if err := sendVerificationEmail(m, &user); err != nil {
		// verification is resendable; the account itself is fine
		log.Printf("[WARNING] verification mail failed for %s: %v", user.Email, err)
	}

	return &user, nil
}

// Login checks credentials and opens a session (access JWT + rotated
// refresh cookie).
func Login(db *gorm.DB, c *fiber.Ctx, email, password string) (*SessionResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return openSession(db, c, &user)
}

// GoogleLogin verifies the Google ID token and signs the matching user
// in, creating the identity on first sight.
func GoogleLogin(db *gorm.DB, c *fiber.Ctx, idToken string) (*SessionResult, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = db.Where("google_id = ? OR email = ?", googleID, email).Take(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		now := nowUTC()
		user = userModel.UserModel{
			UserName:        strings.TrimSpace(claimSet.Name),
			Email:           email,
			Password:        uuid.NewString(), // unusable; Google-only account
			GoogleID:        &googleID,
			IsActive:        true,
			EmailVerifiedAt: &now, // Google already verified the address
		}
		if user.UserName == "" {
			user.UserName = strings.Split(email, "@")[0]
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
		}
	case err != nil:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	default:
		if user.GoogleID == nil {
			if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
				log.Printf("[WARNING] link google id failed: %v", err)
			}
		}
	}

	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	return openSession(db, c, &user)
}

func openSession(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (*SessionResult, error) {
	accessToken, err := IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}
	refreshToken, err := issueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := storeRefreshToken(db, c, user.ID, refreshToken, refreshSecret); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken)
	return &SessionResult{AccessToken: accessToken, User: user}, nil
}

// Logout blacklists the current access token and revokes the refresh
// cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if tokenString, ok := c.Locals("access_token").(string); ok && tokenString != "" {
		entry := authModel.TokenBlacklist{
			Token:     tokenString,
			ExpiredAt: nowUTC().Add(accessTTLDefault),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("[WARNING] blacklist insert failed: %v", err)
		}
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			if err := deleteRefreshTokenByHash(db, refreshCookie, secret); err != nil {
				log.Printf("[WARNING] refresh revoke failed: %v", err)
			}
		}
	}

	clearAuthCookies(c)
	return nil
}

/* ==========================
   Email verification
========================== */

func sendVerificationEmail(m mailer.Mailer, user *userModel.UserModel) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	claims := jwt.MapClaims{
		"sub":     user.ID.String(),
		"purpose": "verify_email",
		"iat":     nowUTC().Unix(),
		"exp":     nowUTC().Add(verifyEmailTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", configs.FrontendBaseURL, url.QueryEscape(token))
	return m.SendVerificationEmail(user.UserName, user.Email, verifyURL)
}

// VerifyEmail confirms the address from the emailed token. Idempotent:
// a second click is a no-op.
func VerifyEmail(db *gorm.DB, tokenString string) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired verification link")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid verification link")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid verification link")
	}

	now := nowUTC()
	res := db.Model(&userModel.UserModel{}).
		Where("id = ? AND email_verified_at IS NULL", userID).
		Update("email_verified_at", now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Verification failed")
	}
	return nil
}

// ResendVerification re-sends the link for a not-yet-verified account.
func ResendVerification(db *gorm.DB, m mailer.Mailer, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).Take(&user).Error; err != nil {
		// do not leak whether the address exists
		return nil
	}
	if user.EmailVerifiedAt != nil {
		return nil
	}
	return sendVerificationEmail(m, &user)
}
