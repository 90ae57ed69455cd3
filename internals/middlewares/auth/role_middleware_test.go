package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerejaku_backend/internals/constants"
	helperAuth "gerejaku_backend/internals/helpers/auth"
)

// gateApp mounts a handler behind OnlyRoles with the given snapshot
// pre-loaded into locals, the way RequireApproved/ResolveChurch would.
func gateApp(snapshot *helperAuth.UserChurch, roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if snapshot != nil {
			c.Locals("user_church", *snapshot)
		}
		return c.Next()
	})
	app.Get("/guarded", OnlyRoles("denied", roles...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func snapshotFor(role, status string) *helperAuth.UserChurch {
	id := uuid.New()
	name := "Grace Fellowship"
	uc := helperAuth.BuildUserChurch(role, status, &id, &name)
	return &uc
}

func doGet(t *testing.T, app *fiber.App) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var payload map[string]interface{}
	if len(body) > 0 && body[0] == '{' {
		require.NoError(t, json.Unmarshal(body, &payload))
	}
	return resp, payload
}

func TestOnlyRolesAllowsMatchingRole(t *testing.T) {
	app := gateApp(snapshotFor(constants.RolePastor, constants.RoleStatusApproved), constants.PastorAndAbove...)

	resp, _ := doGet(t, app)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesDeniesWithDashboardRedirect(t *testing.T) {
	// worship team on a pastor-gated feature (e.g. the finance manager)
	app := gateApp(snapshotFor(constants.RoleWorshipTeam, constants.RoleStatusApproved), constants.PastorAndAbove...)

	resp, payload := doGet(t, app)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "dashboard", payload["redirect"])
	assert.Equal(t, "denied", payload["message"])
}

func TestOnlyRolesDeniesPendingRole(t *testing.T) {
	// a pending pastor has no capabilities yet
	app := gateApp(snapshotFor(constants.RolePastor, constants.RoleStatusPending), constants.PastorAndAbove...)

	resp, _ := doGet(t, app)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesWithoutSnapshotIsUnauthorized(t *testing.T) {
	app := gateApp(nil, constants.PastorAndAbove...)

	resp, _ := doGet(t, app)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserChurchFromLocalsDefaultsToZero(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		uc := UserChurchFromLocals(c)
		assert.False(t, uc.IsApproved)
		assert.Nil(t, uc.ChurchID)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
