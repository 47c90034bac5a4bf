package models

import "time"

// ServiceRequest is an open ad-hoc job posted by a customer and broadcast
// to all connected workers.
type ServiceRequest struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Location    string    `bson:"location" json:"location"`
	Status      string    `bson:"status" json:"status"` // "open", "accepted" or "completed"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
