package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/middleware"
	"github.com/workdeck/workdeck/internal/store"
)

type TeamHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewTeamHandler(s *store.Store, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{store: s, logger: logger}
}

// List handles GET /v1/team
func (h *TeamHandler) List(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Snapshot().TeamMembers)
}

// Get handles GET /v1/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	m, found := h.store.Snapshot().TeamMember(c.Param("id"))
	if !found {
		notFound(c, "team member")
		return
	}
	ok(c, http.StatusOK, m)
}

// Update handles PATCH /v1/team/:id. Member profiles are read-only for now.
func (h *TeamHandler) Update(c *gin.Context) {
	notImplemented(c, "team member update")
}

// actorID resolves who is acting: the token's member when present, otherwise
// the workspace's current user.
func actorID(c *gin.Context, snap store.State) string {
	if id := middleware.MemberID(c); id != "" {
		return id
	}
	if snap.CurrentUser != nil {
		return snap.CurrentUser.ID
	}
	return ""
}
