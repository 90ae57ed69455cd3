package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithLocals(t *testing.T, locals map[string]interface{}, h fiber.Handler) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		return h(c)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
}

func TestGetUserIDFromLocals(t *testing.T) {
	want := uuid.New()
	runWithLocals(t, map[string]interface{}{"user_id": want.String()}, func(c *fiber.Ctx) error {
		got, err := GetUserIDFromLocals(c)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		return nil
	})

	runWithLocals(t, nil, func(c *fiber.Ctx) error {
		_, err := GetUserIDFromLocals(c)
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
		return nil
	})

	runWithLocals(t, map[string]interface{}{"user_id": "not-a-uuid"}, func(c *fiber.Ctx) error {
		_, err := GetUserIDFromLocals(c)
		require.Error(t, err)
		return nil
	})
}

func TestGetUserNameFromLocals(t *testing.T) {
	runWithLocals(t, map[string]interface{}{"user_name": "Budi Santoso"}, func(c *fiber.Ctx) error {
		assert.Equal(t, "Budi Santoso", GetUserNameFromLocals(c))
		return nil
	})

	// best-effort: absent or mistyped claim falls back to empty
	runWithLocals(t, nil, func(c *fiber.Ctx) error {
		assert.Equal(t, "", GetUserNameFromLocals(c))
		return nil
	})
	runWithLocals(t, map[string]interface{}{"user_name": 42}, func(c *fiber.Ctx) error {
		assert.Equal(t, "", GetUserNameFromLocals(c))
		return nil
	})
}
