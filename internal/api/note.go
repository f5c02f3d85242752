package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

// NoteHandler serves notes by parent. Note mutations are stubbed: the
// original product gated note editing behind a collaboration backend that
// never shipped, so writes answer NOT_IMPLEMENTED rather than silently
// dropping data.
type NoteHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewNoteHandler(s *store.Store, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{store: s, logger: logger}
}

var noteParentTypes = map[models.NoteParentType]bool{
	models.NoteParentClient:        true,
	models.NoteParentProject:       true,
	models.NoteParentTask:          true,
	models.NoteParentEvent:         true,
	models.NoteParentInternalSpace: true,
}

// List handles GET /v1/notes?parentType=&parentId=
func (h *NoteHandler) List(c *gin.Context) {
	parentType := models.NoteParentType(c.Query("parentType"))
	parentID := c.Query("parentId")
	if !noteParentTypes[parentType] || parentID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "parentType and parentId query params are required")
		return
	}
	ok(c, http.StatusOK, h.store.Snapshot().NotesByParent(parentType, parentID))
}

// Create handles POST /v1/notes
func (h *NoteHandler) Create(c *gin.Context) {
	notImplemented(c, "note creation")
}

// Update handles PUT /v1/notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	notImplemented(c, "note update")
}

// Delete handles DELETE /v1/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	notImplemented(c, "note deletion")
}

// Reply handles POST /v1/notes/:id/replies
func (h *NoteHandler) Reply(c *gin.Context) {
	notImplemented(c, "note replies")
}
