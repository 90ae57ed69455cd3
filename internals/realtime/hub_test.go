package realtime

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	connA := &websocket.Conn{}
	connB := &websocket.Conn{}

	assert.Equal(t, 0, hub.Subscribers(userID))

	hub.Register(userID, connA)
	hub.Register(userID, connB)
	assert.Equal(t, 2, hub.Subscribers(userID))

	// registering the same socket twice is not double-counted
	hub.Register(userID, connA)
	assert.Equal(t, 2, hub.Subscribers(userID))

	hub.Unregister(userID, connA)
	assert.Equal(t, 1, hub.Subscribers(userID))

	hub.Unregister(userID, connB)
	assert.Equal(t, 0, hub.Subscribers(userID))

	// unregistering an unknown socket is a no-op
	hub.Unregister(userID, connA)
	assert.Equal(t, 0, hub.Subscribers(userID))
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	// nobody listening: the event is simply dropped
	hub.PublishRoleStatus(uuid.New(), RoleStatusEvent{
		UserRoleID: uuid.New(),
		Role:       "member",
		Status:     "approved",
	})
}

func TestHubWriteLockPerSocket(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	connA := &websocket.Conn{}
	connB := &websocket.Conn{}

	hub.Register(userID, connA)
	hub.Register(userID, connB)

	// every socket gets its own write lock; the websocket allows a
	// single concurrent writer
	hub.mu.RLock()
	muA := hub.conns[userID][connA]
	muB := hub.conns[userID][connB]
	hub.mu.RUnlock()
	require.NotNil(t, muA)
	require.NotNil(t, muB)
	assert.NotSame(t, muA, muB)

	// re-registering must not swap the lock out from under a writer
	hub.Register(userID, connA)
	hub.mu.RLock()
	assert.Same(t, muA, hub.conns[userID][connA])
	hub.mu.RUnlock()
}

func TestHubSubscribersAreIsolatedPerUser(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	bob := uuid.New()

	hub.Register(alice, &websocket.Conn{})
	assert.Equal(t, 1, hub.Subscribers(alice))
	assert.Equal(t, 0, hub.Subscribers(bob))
}
