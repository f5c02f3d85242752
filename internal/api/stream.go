package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/store"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The store is same-origin in production; the demo UI runs on a
	// different port, so origin checking is left to the deployment proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler pushes notifications to connected clients over a websocket.
type StreamHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewStreamHandler(s *store.Store, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{store: s, logger: logger}
}

// Stream handles GET /v1/notifications/stream. Each connection receives the
// acting member's notifications as they are created. Slow consumers have
// events dropped rather than blocking the store.
func (h *StreamHandler) Stream(c *gin.Context) {
	snap := h.store.Snapshot()
	memberID := actorID(c, snap)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	notifications, cancel := h.store.Subscribe()
	defer cancel()

	// Reader goroutine: we never expect client messages, but reading is
	// what surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	h.logger.Info("notification stream opened", zap.String("member_id", memberID))
	for {
		select {
		case n, open := <-notifications:
			if !open {
				return
			}
			if memberID != "" && n.UserID != memberID {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(n); err != nil {
				h.logger.Info("notification stream closed", zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
