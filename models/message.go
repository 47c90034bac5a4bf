package models

import "time"

// Message is a chat message persisted with the sender's role. Reads are
// windowed to the last ten minutes.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	Role      string    `bson:"role" json:"role"` // "customer" or "worker"
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
