package realtime

import "sync"

// Roles a connection can declare on its handshake.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
)

// RoomKey returns the broadcast-group key for a customer identity.
func RoomKey(customerID string) string {
	return "customer:" + customerID
}

// Registry owns the connection→role and room-membership maps. It is shared
// by every handler goroutine; each read-modify-write holds the one mutex.
type Registry struct {
	mu         sync.RWMutex
	roles      map[string]string
	memberRoom map[string]string
	rooms      map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		roles:      make(map[string]string),
		memberRoom: make(map[string]string),
		rooms:      make(map[string]map[string]struct{}),
	}
}

// Register records the declared role for a connection. A connection that
// declared no role is left unregistered.
func (r *Registry) Register(connID, role string) {
	if role == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[connID] = role
}

// Role returns the registered role for a connection, if any.
func (r *Registry) Role(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[connID]
	return role, ok
}

// JoinRoom puts the connection into the customer's room. A connection
// belongs to at most one room; re-joining moves it.
func (r *Registry) JoinRoom(connID, customerID string) {
	key := RoomKey(customerID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.memberRoom[connID]; ok {
		if prev == key {
			return
		}
		r.leaveLocked(connID, prev)
	}

	room, ok := r.rooms[key]
	if !ok {
		room = make(map[string]struct{})
		r.rooms[key] = room
	}
	room[connID] = struct{}{}
	r.memberRoom[connID] = key
}

// Unregister removes the connection's role entry and room membership. Safe
// on identities that never completed registration.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.roles, connID)
	if key, ok := r.memberRoom[connID]; ok {
		r.leaveLocked(connID, key)
	}
}

func (r *Registry) leaveLocked(connID, roomKey string) {
	if room, ok := r.rooms[roomKey]; ok {
		delete(room, connID)
		if len(room) == 0 {
			delete(r.rooms, roomKey)
		}
	}
	delete(r.memberRoom, connID)
}

// RoomMembers returns the connection ids currently in the customer's room.
func (r *Registry) RoomMembers(customerID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[RoomKey(customerID)]
	if !ok {
		return nil
	}
	members := make([]string, 0, len(room))
	for id := range room {
		members = append(members, id)
	}
	return members
}

// ConnectionsWithRole returns every connection id registered with the role.
func (r *Registry) ConnectionsWithRole(role string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, got := range r.roles {
		if got == role {
			ids = append(ids, id)
		}
	}
	return ids
}
