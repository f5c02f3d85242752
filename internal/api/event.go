package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

type EventHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewEventHandler(s *store.Store, logger *zap.Logger) *EventHandler {
	return &EventHandler{store: s, logger: logger}
}

// List handles GET /v1/events?projectId=
func (h *EventHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	if projectID := c.Query("projectId"); projectID != "" {
		p, found := snap.FindProject(projectID)
		if !found {
			notFound(c, "project")
			return
		}
		ok(c, http.StatusOK, p.Events)
		return
	}
	ok(c, http.StatusOK, snap.AllEvents())
}

// Get handles GET /v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	e, found := h.store.Snapshot().FindEvent(c.Param("id"))
	if !found {
		notFound(c, "event")
		return
	}
	ok(c, http.StatusOK, e)
}

// Create handles POST /v1/events. Events always belong to a project, and
// every attendee ID is snapshotted into a pending RSVP entry.
func (h *EventHandler) Create(c *gin.Context) {
	var form models.EventFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	if form.ProjectID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "event needs a projectId")
		return
	}
	if dates.ParseDate(form.StartDate) == nil || dates.ParseDate(form.EndDate) == nil {
		fail(c, http.StatusBadRequest, CodeBadRequest, "startDate and endDate must be dates")
		return
	}

	snap := h.store.Snapshot()
	e, created := h.store.AddEvent(actorID(c, snap), form)
	if !created {
		notFound(c, "project")
		return
	}
	h.logger.Info("event created", zap.String("event_id", e.ID), zap.String("project_id", form.ProjectID))
	ok(c, http.StatusCreated, e)
}

// Update handles PUT /v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var form models.EventFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	if dates.ParseDate(form.StartDate) == nil || dates.ParseDate(form.EndDate) == nil {
		fail(c, http.StatusBadRequest, CodeBadRequest, "startDate and endDate must be dates")
		return
	}

	e, found := h.store.UpdateEvent(c.Param("id"), form)
	if !found {
		notFound(c, "event")
		return
	}
	ok(c, http.StatusOK, e)
}

// Delete handles DELETE /v1/events/:id?projectId=
func (h *EventHandler) Delete(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "projectId query param is required")
		return
	}
	id := c.Param("id")
	if !h.store.DeleteEvent(projectID, id) {
		notFound(c, "event")
		return
	}
	h.logger.Info("event deleted", zap.String("event_id", id))
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// DeleteInProject handles DELETE /v1/projects/:id/events/:eventId
func (h *EventHandler) DeleteInProject(c *gin.Context) {
	if !h.store.DeleteEvent(c.Param("id"), c.Param("eventId")) {
		notFound(c, "event")
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// UpdateAttendee handles PUT /v1/events/:id/attendees/:attendeeId. RSVP
// changes are accepted by the UI but not persisted yet.
func (h *EventHandler) UpdateAttendee(c *gin.Context) {
	notImplemented(c, "attendee RSVP update")
}
