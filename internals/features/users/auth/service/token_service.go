// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	authModel "gerejaku_backend/internals/features/users/auth/model"
	userModel "gerejaku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

// IssueAccessToken signs the short-lived access JWT. Only identity
// claims go in; role and church are resolved from the DB per request
// so an approval flip never waits for token expiry.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"iat":       nowUTC().Unix(),
		"exp":       nowUTC().Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func issueRefreshToken(userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": nowUTC().Unix(),
		"exp": nowUTC().Add(refreshTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// computeRefreshHash: only the HMAC of the refresh token is persisted.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func storeRefreshToken(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, token, secret string) error {
	ua := strings.TrimSpace(c.Get("User-Agent"))
	ip := c.IP()
	row := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(token, secret),
		ExpiresAt: nowUTC().Add(refreshTTLDefault),
	}
	if ua != "" {
		row.UserAgent = &ua
	}
	if ip != "" {
		row.IP = &ip
	}
	return db.Create(&row).Error
}

func deleteRefreshTokenByHash(db *gorm.DB, token, secret string) error {
	return db.Where("token_hash = ?", computeRefreshHash(token, secret)).
		Delete(&authModel.RefreshToken{}).Error
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") == "true"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  nowUTC().Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  nowUTC().Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/api/auth"})
}

// RefreshSession rotates the refresh token: validate JWT + stored hash,
// delete the old row, issue a new pair.
func RefreshSession(db *gorm.DB, c *fiber.Ctx) (string, error) {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// the stored hash must still exist (not revoked, not already rotated)
	var exists bool
	if err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > now())`,
		computeRefreshHash(refreshCookie, refreshSecret),
	).Scan(&exists).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unknown refresh token")
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", userID).Take(&user).Error; err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return "", fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	// ROTATE: drop the old token before issuing a new pair
	if err := deleteRefreshTokenByHash(db, refreshCookie, refreshSecret); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	accessToken, err := IssueAccessToken(&user)
	if err != nil {
		return "", err
	}
	newRefresh, err := issueRefreshToken(user.ID)
	if err != nil {
		return "", err
	}
	if err := storeRefreshToken(db, c, user.ID, newRefresh, refreshSecret); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, newRefresh)
	return accessToken, nil
}
