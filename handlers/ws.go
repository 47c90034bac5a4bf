package handlers

import (
	"net/http"

	"github.com/xtharshh/kwick-backend/realtime"
	"github.com/xtharshh/kwick-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades client connections onto the realtime channel.
type WebSocketHandler struct {
	Hub     *realtime.Hub
	Handler realtime.MessageHandler
}

func NewWebSocketHandler(hub *realtime.Hub, handler realtime.MessageHandler) *WebSocketHandler {
	return &WebSocketHandler{Hub: hub, Handler: handler}
}

// ServeWS handles GET /ws. The client declares its role as a query
// parameter on the upgrade request.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	role := c.Query("role")
	client := realtime.NewClient(uuid.New().String(), role, ws, h.Hub, h.Handler)
	client.Start()
}
