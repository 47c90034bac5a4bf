package models

import "time"

// User represents a customer account identified by mobile number.
type User struct {
	ID           string    `bson:"id" json:"id"`
	MobileNumber string    `bson:"mobileNumber" json:"mobileNumber"` // 10-digit, unique
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	DOB          time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	Street       string    `bson:"street" json:"street"`
	Landmark     string    `bson:"landmark" json:"landmark"`
	City         string    `bson:"city" json:"city"`
	State        string    `bson:"state" json:"state"`
	Pincode      string    `bson:"pincode" json:"pincode"`
	Age          string    `bson:"age" json:"age"`
	UserType     string    `bson:"userType" json:"userType"` // "customer" or "worker"
	Balance      float64   `bson:"balance" json:"balance"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
