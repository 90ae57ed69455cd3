// file: internals/realtime/hub.go
package realtime

import (
	"os"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RoleStatusEvent is pushed to the affected user when an admin reviews
// their role request, so an open pending-approval view re-routes without
// polling.
type RoleStatusEvent struct {
	UserRoleID uuid.UUID  `json:"user_role_id"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	ChurchID   *uuid.UUID `json:"church_id,omitempty"`
}

// Hub fans role-status events out to the affected user's live sockets.
// Connections register on upgrade and MUST unregister on close; the
// websocket is the one long-lived resource in the system. Each socket
// carries its own write lock because the underlying websocket permits
// only one concurrent writer.
type Hub struct {
	mu     sync.RWMutex
	conns  map[uuid.UUID]map[*websocket.Conn]*sync.Mutex
	closed bool
	log    zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[uuid.UUID]map[*websocket.Conn]*sync.Mutex),
		log:   zerolog.New(os.Stderr).With().Timestamp().Str("component", "realtime").Logger(),
	}
}

func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		_ = conn.Close()
		return
	}
	set, ok := h.conns[userID]
	if !ok {
		set = make(map[*websocket.Conn]*sync.Mutex)
		h.conns[userID] = set
	}
	// keep the existing lock on re-register so an in-flight write
	// stays serialized
	if _, ok := set[conn]; !ok {
		set[conn] = &sync.Mutex{}
	}
	h.log.Debug().Str("user_id", userID.String()).Int("conns", len(set)).Msg("socket registered")
}

func (h *Hub) Unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	h.log.Debug().Str("user_id", userID.String()).Msg("socket unregistered")
}

// PublishRoleStatus delivers the event to every live socket of one user.
// Writes take the socket's lock so overlapping publishes cannot
// interleave frames. Dead sockets are dropped on write failure.
func (h *Hub) PublishRoleStatus(userID uuid.UUID, evt RoleStatusEvent) {
	type target struct {
		conn *websocket.Conn
		wmu  *sync.Mutex
	}
	h.mu.RLock()
	targets := make([]target, 0, 2)
	for conn, wmu := range h.conns[userID] {
		targets = append(targets, target{conn, wmu})
	}
	h.mu.RUnlock()

	for _, tgt := range targets {
		tgt.wmu.Lock()
		err := tgt.conn.WriteJSON(evt)
		tgt.wmu.Unlock()
		if err != nil {
			h.log.Warn().Err(err).Str("user_id", userID.String()).Msg("push failed, dropping socket")
			h.Unregister(userID, tgt.conn)
			_ = tgt.conn.Close()
		}
	}
}

// Subscribers reports how many live sockets a user has. Used by tests
// and the health payload.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Close tears every socket down; called on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for userID, set := range h.conns {
		for conn := range set {
			_ = conn.Close()
		}
		delete(h.conns, userID)
	}
}
