package models

import "time"

// Transaction types.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction records a single wallet credit or debit for a user or worker,
// keyed by mobile number.
type Transaction struct {
	ID           string    `bson:"id" json:"id"`
	MobileNumber string    `bson:"mobileNumber" json:"mobileNumber"`
	Type         string    `bson:"type" json:"type"` // "credit" or "debit"
	Amount       float64   `bson:"amount" json:"amount"`
	Description  string    `bson:"description" json:"description"`
	Date         time.Time `bson:"date" json:"date"`
}
