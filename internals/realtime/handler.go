// file: internals/realtime/handler.go
package realtime

import (
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"gerejaku_backend/internals/configs"
)

// Browsers cannot set an Authorization header on a websocket upgrade, so
// the token arrives via ?token= or the access_token cookie.
func authUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		tokenString = strings.TrimSpace(c.Cookies("access_token"))
	}
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
	}

	c.Locals("ws_user_id", userID)
	return c.Next()
}

// RegisterRoutes mounts GET /role-status on the given group. The socket
// stays registered for the lifetime of the connection and is always
// unregistered on the way out.
func RegisterRoutes(router fiber.Router, hub *Hub) {
	router.Get("/role-status", authUpgrade, websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("ws_user_id").(uuid.UUID)
		if !ok {
			_ = conn.Close()
			return
		}

		hub.Register(userID, conn)
		defer func() {
			hub.Unregister(userID, conn)
			_ = conn.Close()
		}()

		// reads are only used to detect close/pong; events flow one way
		conn.SetReadLimit(1024)
		_ = conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		})

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		}
	}))
}
