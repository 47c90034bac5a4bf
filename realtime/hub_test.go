package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockConn struct {
	id   string
	role string

	mu       sync.Mutex
	received [][]byte
	sendErr  error
	closed   bool
}

func newMockConn(id, role string) *mockConn {
	return &mockConn{id: id, role: role}
}

func (c *mockConn) ID() string   { return c.id }
func (c *mockConn) Role() string { return c.role }

func (c *mockConn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.received = append(c.received, data)
	return nil
}

func (c *mockConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *mockConn) messages() []Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Envelope, 0, len(c.received))
	for _, raw := range c.received {
		var env Envelope
		if err := json.Unmarshal(raw, &env); err == nil {
			out = append(out, env)
		}
	}
	return out
}

func TestHubSendToRoom(t *testing.T) {
	hub := NewHub()
	customer := newMockConn("c1", RoleCustomer)
	worker := newMockConn("w1", RoleWorker)
	hub.Register(customer)
	hub.Register(worker)
	hub.JoinRoom("c1", "CUST1")

	hub.SendToRoom("CUST1", "priceUpdate", map[string]any{"price": 500})

	msgs := customer.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "priceUpdate", msgs[0].Event)
	assert.Empty(t, worker.messages())

	// An empty room is a no-op.
	hub.SendToRoom("CUST2", "priceUpdate", nil)
	assert.Len(t, customer.messages(), 1)
}

func TestHubSendToRole(t *testing.T) {
	hub := NewHub()
	customer := newMockConn("c1", RoleCustomer)
	worker1 := newMockConn("w1", RoleWorker)
	worker2 := newMockConn("w2", RoleWorker)
	hub.Register(customer)
	hub.Register(worker1)
	hub.Register(worker2)

	hub.SendToRole(RoleWorker, "new-service-request", map[string]any{"serviceType": "cleaning"})

	assert.Len(t, worker1.messages(), 1)
	assert.Len(t, worker2.messages(), 1)
	assert.Empty(t, customer.messages())
}

func TestHubSendToAll(t *testing.T) {
	hub := NewHub()
	conns := []*mockConn{
		newMockConn("c1", RoleCustomer),
		newMockConn("w1", RoleWorker),
		newMockConn("anon", ""),
	}
	for _, c := range conns {
		hub.Register(c)
	}

	hub.SendToAll("bidAccepted:b1", nil)

	for _, c := range conns {
		msgs := c.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "bidAccepted:b1", msgs[0].Event)
	}
}

func TestHubSendTo(t *testing.T) {
	hub := NewHub()
	a := newMockConn("a", RoleWorker)
	b := newMockConn("b", RoleWorker)
	hub.Register(a)
	hub.Register(b)

	hub.SendTo("a", "priceUpdateSuccess", map[string]any{"bookingId": "b1"})

	assert.Len(t, a.messages(), 1)
	assert.Empty(t, b.messages())

	// Unknown target is a no-op.
	hub.SendTo("ghost", "priceUpdateSuccess", nil)
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	customer := newMockConn("c1", RoleCustomer)
	hub.Register(customer)
	hub.JoinRoom("c1", "CUST1")

	hub.Unregister(customer)

	hub.SendToRoom("CUST1", "priceUpdate", nil)
	hub.SendToAll("bookingUpdate:b1", nil)
	assert.Empty(t, customer.messages())

	clients, rooms := hub.Stats()
	assert.Equal(t, 0, clients)
	assert.Equal(t, 0, rooms)
}

func TestHubDropsDeadConnection(t *testing.T) {
	hub := NewHub()
	dead := newMockConn("dead", RoleWorker)
	dead.sendErr = errors.New("broken pipe")
	live := newMockConn("live", RoleWorker)
	hub.Register(dead)
	hub.Register(live)

	hub.SendToAll("bookingUpdate:b1", nil)

	assert.Len(t, live.messages(), 1)
	assert.Eventually(t, func() bool {
		clients, _ := hub.Stats()
		return clients == 1
	}, time.Second, 10*time.Millisecond)
}

func TestHubStats(t *testing.T) {
	hub := NewHub()
	hub.Register(newMockConn("c1", RoleCustomer))
	hub.Register(newMockConn("c2", RoleCustomer))
	hub.JoinRoom("c1", "CUST1")
	hub.JoinRoom("c2", "CUST2")

	clients, rooms := hub.Stats()
	assert.Equal(t, 2, clients)
	assert.Equal(t, 2, rooms)
}
