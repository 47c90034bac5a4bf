package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/xtharshh/kwick-backend/services/negotiation"
	"github.com/xtharshh/kwick-backend/utils"

	"go.uber.org/zap"
)

const eventTimeout = 10 * time.Second

// EventHandler decodes inbound frames into typed events and routes them to
// the negotiation state machine or the broadcast surface. Events from one
// connection are handled in arrival order; events from different
// connections may interleave freely.
type EventHandler struct {
	Hub         *Hub
	Negotiation negotiation.Service
}

func NewEventHandler(hub *Hub, svc negotiation.Service) *EventHandler {
	return &EventHandler{Hub: hub, Negotiation: svc}
}

func (h *EventHandler) Handle(conn Connection, data []byte) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		utils.GetLogger().Warn("invalid message", zap.String("connId", conn.ID()), zap.Error(err))
		return
	}

	switch env.Event {
	case EventJoinCustomerRoom:
		h.handleJoinCustomerRoom(conn, env.Data)
	case EventChatMessage:
		h.handleChatMessage(conn, env.Data)
	case EventBookingRequest:
		h.handleBookingRequest(conn, env.Data)
	case EventUpdatePrice:
		h.handleUpdatePrice(conn, env.Data)
	case EventAcceptBid:
		h.handleAcceptBid(conn, env.Data)
	case EventDeclineBid:
		h.handleDeclineBid(conn, env.Data)
	case EventPriceResponse:
		h.handlePriceResponse(conn, env.Data)
	default:
		utils.GetLogger().Warn("unknown event",
			zap.String("connId", conn.ID()),
			zap.String("event", env.Event))
	}
}

// handleJoinCustomerRoom accepts the customer id either as a bare string
// or wrapped in an object.
func (h *EventHandler) handleJoinCustomerRoom(conn Connection, data json.RawMessage) {
	var customerID string
	if err := json.Unmarshal(data, &customerID); err != nil {
		var wrapped struct {
			CustomerID string `json:"customerId"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			utils.GetLogger().Warn("invalid joinCustomerRoom payload", zap.String("connId", conn.ID()), zap.Error(err))
			return
		}
		customerID = wrapped.CustomerID
	}
	if customerID == "" {
		return
	}
	h.Hub.JoinRoom(conn.ID(), customerID)
}

// handleChatMessage relays the message to every connection, stamped with
// the sender's registered role. No state machine involvement.
func (h *EventHandler) handleChatMessage(conn Connection, data json.RawMessage) {
	var msg ChatMessagePayload
	if err := json.Unmarshal(data, &msg); err != nil {
		utils.GetLogger().Warn("invalid chatMessage payload", zap.String("connId", conn.ID()), zap.Error(err))
		return
	}
	if role, ok := h.Hub.Registry().Role(conn.ID()); ok {
		msg.Role = role
	}
	h.Hub.SendToAll(EventChatMessage, msg)
}

// handleBookingRequest relays the raw booking details to every worker.
func (h *EventHandler) handleBookingRequest(conn Connection, data json.RawMessage) {
	h.Hub.SendToRole(RoleWorker, EventBookingRequest, data)
}

func (h *EventHandler) handleUpdatePrice(conn Connection, data json.RawMessage) {
	var payload UpdatePricePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Hub.SendTo(conn.ID(), EventPriceUpdateError, ErrorPayload{Message: "invalid updatePrice payload"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	bid, err := h.Negotiation.SubmitOffer(ctx, payload.BookingID, payload.Price, negotiation.WorkerData{
		MobileNumber: payload.WorkerData.MobileNumber,
	})
	if err != nil {
		utils.GetLogger().Warn("price update rejected",
			zap.String("connId", conn.ID()),
			zap.String("bookingId", payload.BookingID),
			zap.Error(err))
		h.Hub.SendTo(conn.ID(), EventPriceUpdateError, ErrorPayload{
			Message:   err.Error(),
			BookingID: payload.BookingID,
		})
		return
	}

	h.Hub.SendTo(conn.ID(), EventPriceUpdateSuccess, bid)
}

func (h *EventHandler) handleAcceptBid(conn Connection, data json.RawMessage) {
	var payload AcceptBidPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{Message: "invalid acceptBid payload"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if _, err := h.Negotiation.AcceptOffer(ctx, payload.BookingID, payload.Price); err != nil {
		utils.GetLogger().Warn("accept bid failed",
			zap.String("bookingId", payload.BookingID),
			zap.Error(err))
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{
			Message:   err.Error(),
			BookingID: payload.BookingID,
		})
	}
}

func (h *EventHandler) handleDeclineBid(conn Connection, data json.RawMessage) {
	var payload DeclineBidPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{Message: "invalid declineBid payload"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if err := h.Negotiation.DeclineOffer(ctx, payload.BookingID); err != nil {
		utils.GetLogger().Warn("decline bid failed",
			zap.String("bookingId", payload.BookingID),
			zap.Error(err))
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{
			Message:   err.Error(),
			BookingID: payload.BookingID,
		})
	}
}

func (h *EventHandler) handlePriceResponse(conn Connection, data json.RawMessage) {
	var payload PriceResponsePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{Message: "invalid priceResponse payload"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if _, err := h.Negotiation.PriceResponse(ctx, payload.BookingID, payload.Accepted); err != nil {
		utils.GetLogger().Warn("price response failed",
			zap.String("bookingId", payload.BookingID),
			zap.Error(err))
		h.Hub.SendTo(conn.ID(), EventBidError, ErrorPayload{
			Message:   err.Error(),
			BookingID: payload.BookingID,
		})
	}
}
