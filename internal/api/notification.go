package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/store"
)

type NotificationHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewNotificationHandler(s *store.Store, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{store: s, logger: logger}
}

// List handles GET /v1/notifications. Notifications are scoped to the acting
// member, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	ok(c, http.StatusOK, snap.NotificationsFor(actorID(c, snap)))
}

// UnreadCount handles GET /v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	snap := h.store.Snapshot()
	ok(c, http.StatusOK, gin.H{"count": snap.UnreadCount(actorID(c, snap))})
}

// MarkRead handles POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.store.MarkNotificationRead(c.Param("id")) {
		notFound(c, "notification")
		return
	}
	ok(c, http.StatusOK, gin.H{"read": true})
}

// MarkAllRead handles POST /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	h.store.MarkAllNotificationsRead()
	ok(c, http.StatusOK, gin.H{"read": true})
}
