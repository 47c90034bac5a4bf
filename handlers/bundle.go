package handlers

// HandlerBundle aggregates the handlers the route registration needs.
type HandlerBundle struct {
	User           *UserHandler
	Worker         *WorkerHandler
	Transaction    *TransactionHandler
	Booking        *BookingHandler
	ServiceRequest *ServiceRequestHandler
	Message        *MessageHandler
	WebSocket      *WebSocketHandler
}
