package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/negotiation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type negotiationCall struct {
	op        string
	bookingID string
	price     float64
	accepted  bool
	worker    negotiation.WorkerData
}

type fakeNegotiation struct {
	calls []negotiationCall
	err   error
}

func (f *fakeNegotiation) SubmitOffer(ctx context.Context, bookingID string, price float64, worker negotiation.WorkerData) (*models.Bid, error) {
	f.calls = append(f.calls, negotiationCall{op: "submit", bookingID: bookingID, price: price, worker: worker})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Bid{BookingID: bookingID, Price: price}, nil
}

func (f *fakeNegotiation) AcceptOffer(ctx context.Context, bookingID string, price float64) (*models.ServiceBooking, error) {
	f.calls = append(f.calls, negotiationCall{op: "accept", bookingID: bookingID, price: price})
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceBooking{ID: bookingID, Status: models.BookingStatusConfirmed, Price: price}, nil
}

func (f *fakeNegotiation) DeclineOffer(ctx context.Context, bookingID string) error {
	f.calls = append(f.calls, negotiationCall{op: "decline", bookingID: bookingID})
	return f.err
}

func (f *fakeNegotiation) PriceResponse(ctx context.Context, bookingID string, accepted bool) (string, error) {
	f.calls = append(f.calls, negotiationCall{op: "priceResponse", bookingID: bookingID, accepted: accepted})
	if f.err != nil {
		return "", f.err
	}
	if accepted {
		return models.BookingStatusConfirmed, nil
	}
	return models.BookingStatusPending, nil
}

func frame(t *testing.T, event string, payload any) []byte {
	t.Helper()
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		data = raw
	}
	raw, err := json.Marshal(Envelope{Event: event, Data: data})
	require.NoError(t, err)
	return raw
}

func newTestHandler() (*EventHandler, *fakeNegotiation) {
	svc := &fakeNegotiation{}
	return NewEventHandler(NewHub(), svc), svc
}

func TestHandleJoinCustomerRoom(t *testing.T) {
	t.Run("bare string payload", func(t *testing.T) {
		handler, _ := newTestHandler()
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventJoinCustomerRoom, "CUST1"))

		assert.Equal(t, []string{"c1"}, handler.Hub.Registry().RoomMembers("CUST1"))
	})

	t.Run("object payload", func(t *testing.T) {
		handler, _ := newTestHandler()
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventJoinCustomerRoom, map[string]string{"customerId": "CUST1"}))

		assert.Equal(t, []string{"c1"}, handler.Hub.Registry().RoomMembers("CUST1"))
	})

	t.Run("empty id is ignored", func(t *testing.T) {
		handler, _ := newTestHandler()
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventJoinCustomerRoom, ""))

		_, rooms := handler.Hub.Stats()
		assert.Equal(t, 0, rooms)
	})
}

func TestHandleChatMessage(t *testing.T) {
	handler, _ := newTestHandler()
	sender := newMockConn("w1", RoleWorker)
	other := newMockConn("c1", RoleCustomer)
	handler.Hub.Register(sender)
	handler.Hub.Register(other)

	handler.Handle(sender, frame(t, EventChatMessage, ChatMessagePayload{
		Message: "on my way",
	}))

	for _, conn := range []*mockConn{sender, other} {
		msgs := conn.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, EventChatMessage, msgs[0].Event)

		var relayed ChatMessagePayload
		require.NoError(t, json.Unmarshal(msgs[0].Data, &relayed))
		assert.Equal(t, "on my way", relayed.Message)
		assert.Equal(t, RoleWorker, relayed.Role)
	}
}

func TestHandleBookingRequest(t *testing.T) {
	handler, _ := newTestHandler()
	customer := newMockConn("c1", RoleCustomer)
	worker := newMockConn("w1", RoleWorker)
	handler.Hub.Register(customer)
	handler.Hub.Register(worker)

	handler.Handle(customer, frame(t, EventBookingRequest, map[string]any{"serviceType": "cleaning"}))

	msgs := worker.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, EventBookingRequest, msgs[0].Event)
	assert.Empty(t, customer.messages())
}

func TestHandleUpdatePrice(t *testing.T) {
	t.Run("success replies to the sender only", func(t *testing.T) {
		handler, svc := newTestHandler()
		sender := newMockConn("w1", RoleWorker)
		other := newMockConn("w2", RoleWorker)
		handler.Hub.Register(sender)
		handler.Hub.Register(other)

		handler.Handle(sender, frame(t, EventUpdatePrice, UpdatePricePayload{
			BookingID:  "b1",
			Price:      500,
			WorkerData: WorkerData{MobileNumber: "9876543210"},
		}))

		require.Len(t, svc.calls, 1)
		assert.Equal(t, "submit", svc.calls[0].op)
		assert.Equal(t, "9876543210", svc.calls[0].worker.MobileNumber)

		msgs := sender.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, EventPriceUpdateSuccess, msgs[0].Event)
		assert.Empty(t, other.messages())
	})

	t.Run("failure replies with priceUpdateError", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.err = negotiation.NewValidationError("invalid price value")
		sender := newMockConn("w1", RoleWorker)
		handler.Hub.Register(sender)

		handler.Handle(sender, frame(t, EventUpdatePrice, UpdatePricePayload{
			BookingID: "b1",
			Price:     -5,
		}))

		msgs := sender.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, EventPriceUpdateError, msgs[0].Event)

		var payload ErrorPayload
		require.NoError(t, json.Unmarshal(msgs[0].Data, &payload))
		assert.Equal(t, "invalid price value", payload.Message)
		assert.Equal(t, "b1", payload.BookingID)
	})
}

func TestHandleBidEvents(t *testing.T) {
	t.Run("acceptBid forwards booking id and price", func(t *testing.T) {
		handler, svc := newTestHandler()
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventAcceptBid, AcceptBidPayload{BookingID: "b1", Price: 500}))

		require.Len(t, svc.calls, 1)
		assert.Equal(t, "accept", svc.calls[0].op)
		assert.Equal(t, 500.0, svc.calls[0].price)
		assert.Empty(t, conn.messages())
	})

	t.Run("declineBid failure replies with bidError", func(t *testing.T) {
		handler, svc := newTestHandler()
		svc.err = &negotiation.NotFoundError{Resource: "booking", Key: "b1"}
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventDeclineBid, DeclineBidPayload{BookingID: "b1"}))

		msgs := conn.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, EventBidError, msgs[0].Event)
	})

	t.Run("priceResponse forwards the decision", func(t *testing.T) {
		handler, svc := newTestHandler()
		conn := newMockConn("c1", RoleCustomer)
		handler.Hub.Register(conn)

		handler.Handle(conn, frame(t, EventPriceResponse, PriceResponsePayload{BookingID: "b1", Accepted: true}))

		require.Len(t, svc.calls, 1)
		assert.Equal(t, "priceResponse", svc.calls[0].op)
		assert.True(t, svc.calls[0].accepted)
	})
}

func TestHandleUnknownEvent(t *testing.T) {
	handler, svc := newTestHandler()
	conn := newMockConn("c1", RoleCustomer)
	handler.Hub.Register(conn)

	handler.Handle(conn, frame(t, "selfDestruct", nil))
	handler.Handle(conn, []byte("not json"))

	assert.Empty(t, svc.calls)
	assert.Empty(t, conn.messages())
}
