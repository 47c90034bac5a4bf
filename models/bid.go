package models

// WorkerDetails is the snapshot of the offering worker attached to a bid.
type WorkerDetails struct {
	WorkerID  string `json:"workerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Location  string `json:"location"`
}

// Bid is a worker-proposed price for a booking. It is the payload carried
// by priceUpdate events and cached per booking while negotiation is open.
type Bid struct {
	BookingID     string        `json:"bookingId"`
	Price         float64       `json:"price"`
	WorkerDetails WorkerDetails `json:"workerDetails"`
	Status        string        `json:"status"`
}
