package negotiation

import (
	"context"

	bookingRepo "github.com/xtharshh/kwick-backend/database/repository/booking"
	workerRepo "github.com/xtharshh/kwick-backend/database/repository/worker"
	"github.com/xtharshh/kwick-backend/models"
)

// Broadcaster is the delivery surface the engine emits on. Delivery is
// best-effort and at-most-once: an empty room or a dead connection drops
// the event, it is never queued.
type Broadcaster interface {
	SendToRoom(customerID, event string, payload any)
	SendToRole(role, event string, payload any)
	SendToAll(event string, payload any)
}

// WorkerData identifies the offering worker as declared by the client.
// Only the mobile number is trusted; the rest of the snapshot comes from
// the worker record.
type WorkerData struct {
	MobileNumber string `json:"mobileNumber"`
}

// Service is the negotiation state machine. Each call validates the event
// against the current booking record, applies the transition durably and
// then broadcasts. Calls for the same booking are not serialized against
// each other; the booking document is the authoritative state.
type Service interface {
	// SubmitOffer records a worker's price offer: the booking moves to
	// negotiating at the offered price and the owning customer's room
	// receives a priceUpdate. The returned bid is also the payload for
	// the sender-only confirmation.
	SubmitOffer(ctx context.Context, bookingID string, price float64, worker WorkerData) (*models.Bid, error)

	// AcceptOffer confirms the booking at the given price, retires the
	// negotiation record and broadcasts bidAccepted:<bookingId>.
	AcceptOffer(ctx context.Context, bookingID string, price float64) (*models.ServiceBooking, error)

	// DeclineOffer returns the booking to pending, purges the cached
	// offer matching the booking's price and broadcasts
	// bidDeclined:<bookingId>.
	DeclineOffer(ctx context.Context, bookingID string) error

	// PriceResponse resolves a customer's yes/no answer to the current
	// price and broadcasts bookingUpdate:<bookingId>. It returns the
	// resulting booking status.
	PriceResponse(ctx context.Context, bookingID string, accepted bool) (string, error)
}

// DefaultNegotiationService implements Service against the booking record
// store, a worker lookup and an in-memory offer store.
type DefaultNegotiationService struct {
	BookingRepo bookingRepo.BookingRepository
	WorkerRepo  workerRepo.WorkerLookup
	Offers      *OfferStore
	Broadcaster Broadcaster
}
