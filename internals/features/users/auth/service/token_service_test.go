package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/configs"
	userModel "gerejaku_backend/internals/features/users/user/model"
)

func TestIssueAccessTokenCarriesIdentityOnly(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	user := &userModel.UserModel{ID: uuid.New(), UserName: "budi"}

	tokenString, err := IssueAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "budi", claims["user_name"])

	// role and church must never ride in the token: they are resolved
	// from the DB on every request
	assert.NotContains(t, claims, "role")
	assert.NotContains(t, claims, "church_id")
	assert.NotContains(t, claims, "is_admin")
}

func TestIssueAccessTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := computeRefreshHash("token-a", "secret-1")
	h2 := computeRefreshHash("token-a", "secret-1")
	assert.Equal(t, h1, h2)

	assert.NotEqual(t, h1, computeRefreshHash("token-b", "secret-1"))
	assert.NotEqual(t, h1, computeRefreshHash("token-a", "secret-2"))
	assert.Len(t, h1, 32)
}
