package realtime

import (
	"encoding/json"
	"sync"

	"github.com/xtharshh/kwick-backend/utils"

	"go.uber.org/zap"
)

// Connection is a live client channel the hub can write to.
type Connection interface {
	ID() string
	Role() string
	Send(data []byte) error
	Close() error
}

// Hub owns the set of live connections and the registry, and implements
// the broadcast operations. Delivery is best-effort: a connection whose
// send buffer is full or whose socket died is dropped, never retried.
type Hub struct {
	mu       sync.RWMutex
	conns    map[string]Connection
	registry *Registry
}

func NewHub() *Hub {
	return &Hub{
		conns:    make(map[string]Connection),
		registry: NewRegistry(),
	}
}

// Registry exposes the connection registry for the dispatch layer.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Register adds a connection and records its declared role.
func (h *Hub) Register(conn Connection) {
	h.mu.Lock()
	h.conns[conn.ID()] = conn
	count := len(h.conns)
	h.mu.Unlock()

	h.registry.Register(conn.ID(), conn.Role())
	utils.GetLogger().Info("client connected",
		zap.String("connId", conn.ID()),
		zap.String("role", conn.Role()),
		zap.Int("clients", count))
}

// Unregister removes a connection and its registry entries. Safe to call
// for connections that never completed registration.
func (h *Hub) Unregister(conn Connection) {
	h.mu.Lock()
	delete(h.conns, conn.ID())
	count := len(h.conns)
	h.mu.Unlock()

	h.registry.Unregister(conn.ID())
	utils.GetLogger().Info("client disconnected",
		zap.String("connId", conn.ID()),
		zap.Int("clients", count))
}

// JoinRoom puts the connection into the customer's broadcast room.
func (h *Hub) JoinRoom(connID, customerID string) {
	h.registry.JoinRoom(connID, customerID)
	utils.GetLogger().Debug("joined customer room",
		zap.String("connId", connID),
		zap.String("room", RoomKey(customerID)))
}

// SendTo delivers an event to one connection only.
func (h *Hub) SendTo(connID, event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	conn, ok := h.conns[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.deliver(conn, data)
}

// SendToRoom delivers an event to every live connection in the customer's
// room. An empty or unknown room is a no-op, not an error.
func (h *Hub) SendToRoom(customerID, event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return
	}
	for _, id := range h.registry.RoomMembers(customerID) {
		h.mu.RLock()
		conn, ok := h.conns[id]
		h.mu.RUnlock()
		if ok {
			h.deliver(conn, data)
		}
	}
}

// SendToRole delivers an event to every connection registered with the role.
func (h *Hub) SendToRole(role, event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return
	}
	for _, id := range h.registry.ConnectionsWithRole(role) {
		h.mu.RLock()
		conn, ok := h.conns[id]
		h.mu.RUnlock()
		if ok {
			h.deliver(conn, data)
		}
	}
}

// SendToAll delivers an event to every live connection.
func (h *Hub) SendToAll(event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	conns := make([]Connection, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		h.deliver(conn, data)
	}
}

// Stats reports the live connection count and open room count.
func (h *Hub) Stats() (clients, rooms int) {
	h.mu.RLock()
	clients = len(h.conns)
	h.mu.RUnlock()

	h.registry.mu.RLock()
	rooms = len(h.registry.rooms)
	h.registry.mu.RUnlock()
	return clients, rooms
}

func (h *Hub) deliver(conn Connection, data []byte) {
	if err := conn.Send(data); err != nil {
		utils.GetLogger().Warn("dropping dead connection",
			zap.String("connId", conn.ID()),
			zap.Error(err))
		go h.Unregister(conn)
	}
}

func marshalEnvelope(event string, payload any) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			utils.GetLogger().Warn("marshal error", zap.String("event", event), zap.Error(err))
			return nil, err
		}
		data = raw
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
