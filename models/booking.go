package models

import "time"

// Booking status values. A booking starts out pending, moves to negotiating
// while workers bid on it, and ends confirmed, cancelled or completed.
const (
	BookingStatusPending     = "pending"
	BookingStatusNegotiating = "negotiating"
	BookingStatusConfirmed   = "confirmed"
	BookingStatusCancelled   = "cancelled"
	BookingStatusCompleted   = "completed"
)

// ServiceBooking is a customer's durable request for a service with a
// mutable price and status. The booking document is the authoritative
// record for negotiation state.
type ServiceBooking struct {
	ID               string    `bson:"id" json:"id"`
	OrderID          string    `bson:"orderId" json:"orderId"` // Unique, UUID
	CustomerID       string    `bson:"customerId" json:"customerId"`
	MobileNumber     string    `bson:"mobileNumber" json:"mobileNumber"`
	SelectedServices []string  `bson:"selectedServices" json:"selectedServices"`
	NumberOfRooms    int       `bson:"numberOfRooms" json:"numberOfRooms"`
	Date             time.Time `bson:"date" json:"date"`
	Time             string    `bson:"time" json:"time"`
	Comments         string    `bson:"comments,omitempty" json:"comments,omitempty"`
	Areas            []string  `bson:"areas" json:"areas"`
	Status           string    `bson:"status" json:"status"`
	Price            float64   `bson:"price" json:"price"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CustomerSummary carries the public customer fields attached to booking
// listings for workers.
type CustomerSummary struct {
	ID           string `bson:"id" json:"id"`
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	MobileNumber string `bson:"mobileNumber" json:"mobileNumber"`
	City         string `bson:"city" json:"city"`
}

// BookingWithCustomer pairs a booking with its owning customer's summary.
type BookingWithCustomer struct {
	ServiceBooking `bson:",inline"`
	Customer       *CustomerSummary `bson:"customer,omitempty" json:"customer,omitempty"`
}
