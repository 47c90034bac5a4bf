package realtime

import "encoding/json"

// Client→server event names.
const (
	EventJoinCustomerRoom = "joinCustomerRoom"
	EventChatMessage      = "chatMessage"
	EventBookingRequest   = "bookingRequest"
	EventUpdatePrice      = "updatePrice"
	EventAcceptBid        = "acceptBid"
	EventDeclineBid       = "declineBid"
	EventPriceResponse    = "priceResponse"
)

// Server→client event names emitted by the dispatch layer itself. The
// state-machine broadcasts carry their own names.
const (
	EventPriceUpdateSuccess = "priceUpdateSuccess"
	EventPriceUpdateError   = "priceUpdateError"
	EventBidError           = "bidError"
	EventNewServiceRequest  = "new-service-request"
)

// Envelope is the wire frame for every message on the channel. The payload
// stays raw until the named event's typed struct decodes it.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ChatMessagePayload is a relayed chat line.
type ChatMessagePayload struct {
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}

// UpdatePricePayload is a worker's price offer for a booking.
type UpdatePricePayload struct {
	BookingID  string     `json:"bookingId"`
	Price      float64    `json:"price"`
	WorkerData WorkerData `json:"workerData"`
}

// WorkerData is the offering worker's self-identification.
type WorkerData struct {
	MobileNumber string `json:"mobileNumber"`
}

// AcceptBidPayload is the customer's acceptance of the offered price.
type AcceptBidPayload struct {
	BookingID string  `json:"bookingId"`
	Price     float64 `json:"price"`
}

// DeclineBidPayload is the customer's rejection of the offered price.
type DeclineBidPayload struct {
	BookingID string `json:"bookingId"`
}

// PriceResponsePayload is the customer's yes/no answer to the current price.
type PriceResponsePayload struct {
	BookingID string `json:"bookingId"`
	Accepted  bool   `json:"accepted"`
}

// ErrorPayload is the structured error reported back to the sender only.
type ErrorPayload struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId,omitempty"`
}
