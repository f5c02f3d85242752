package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

// WorkspaceHandler exposes the UI-facing workspace state: the selection
// pointers, active view, filters, and sort that the reducer carries
// alongside the entity tree.
type WorkspaceHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewWorkspaceHandler(s *store.Store, logger *zap.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{store: s, logger: logger}
}

type workspaceSummary struct {
	CurrentUser       *models.TeamMember `json:"currentUser"`
	SelectedClient    *models.Client     `json:"selectedClient,omitempty"`
	SelectedProject   *models.Project    `json:"selectedProject,omitempty"`
	SelectedClientID  string             `json:"selectedClientId,omitempty"`
	SelectedProjectID string             `json:"selectedProjectId,omitempty"`
	SelectedView      models.ViewType    `json:"selectedView"`
	Filters           models.FilterState `json:"filters"`
	Sort              models.SortState   `json:"sort"`
	SidebarCollapsed  bool               `json:"sidebarCollapsed"`
	ClientCount       int                `json:"clientCount"`
	SpaceCount        int                `json:"spaceCount"`
	ProjectCount      int                `json:"projectCount"`
	TaskCount         int                `json:"taskCount"`
}

// Get handles GET /v1/workspace
func (h *WorkspaceHandler) Get(c *gin.Context) {
	snap := h.store.Snapshot()
	summary := workspaceSummary{
		CurrentUser:       snap.CurrentUser,
		SelectedClientID:  snap.SelectedClientID,
		SelectedProjectID: snap.SelectedProjectID,
		SelectedView:      snap.SelectedView,
		Filters:           snap.Filters,
		Sort:              snap.Sort,
		SidebarCollapsed:  snap.SidebarCollapsed,
		ClientCount:       len(snap.Clients),
		SpaceCount:        len(snap.InternalSpaces),
		ProjectCount:      len(snap.AllProjects()),
		TaskCount:         len(snap.AllTasks()),
	}
	if cl, found := snap.SelectedClient(); found {
		summary.SelectedClient = &cl
	}
	if p, found := snap.SelectedProject(); found {
		summary.SelectedProject = &p
	}
	ok(c, http.StatusOK, summary)
}

var viewTypes = map[models.ViewType]bool{
	models.ViewTimeline: true,
	models.ViewCalendar: true,
	models.ViewList:     true,
}

type setViewRequest struct {
	View models.ViewType `json:"view" binding:"required"`
}

// SetView handles PUT /v1/workspace/view
func (h *WorkspaceHandler) SetView(c *gin.Context) {
	var req setViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !viewTypes[req.View] {
		fail(c, http.StatusBadRequest, CodeBadRequest, "view must be timeline, calendar, or list")
		return
	}
	h.store.SetView(req.View)
	ok(c, http.StatusOK, gin.H{"selectedView": req.View})
}

// SetFilters handles PUT /v1/workspace/filters. The body is a partial
// update: omitted fields keep their current values, clearDateRange drops
// the stored range.
func (h *WorkspaceHandler) SetFilters(c *gin.Context) {
	var patch models.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	h.store.SetFilters(patch)
	ok(c, http.StatusOK, h.store.Snapshot().Filters)
}

var sortFields = map[models.SortField]bool{
	models.SortByTitle:     true,
	models.SortByDueDate:   true,
	models.SortByPriority:  true,
	models.SortByStatus:    true,
	models.SortByCreatedAt: true,
	models.SortByUpdatedAt: true,
}

// SetSort handles PUT /v1/workspace/sort
func (h *WorkspaceHandler) SetSort(c *gin.Context) {
	var sortState models.SortState
	if err := c.ShouldBindJSON(&sortState); err != nil {
		badRequest(c, err)
		return
	}
	if !sortFields[sortState.Field] {
		fail(c, http.StatusBadRequest, CodeBadRequest, "unknown sort field")
		return
	}
	if sortState.Direction != models.SortAsc && sortState.Direction != models.SortDesc {
		fail(c, http.StatusBadRequest, CodeBadRequest, "direction must be asc or desc")
		return
	}
	h.store.SetSort(sortState)
	ok(c, http.StatusOK, sortState)
}

// ToggleSidebar handles POST /v1/workspace/sidebar/toggle
func (h *WorkspaceHandler) ToggleSidebar(c *gin.Context) {
	h.store.ToggleSidebar()
	ok(c, http.StatusOK, gin.H{"sidebarCollapsed": h.store.Snapshot().SidebarCollapsed})
}

type setSelectionRequest struct {
	ClientID  string `json:"clientId"`
	ProjectID string `json:"projectId"`
}

// SetSelection handles PUT /v1/workspace/selection. The client is applied
// first (which resets the project), then the project; empty IDs clear the
// corresponding pointer.
func (h *WorkspaceHandler) SetSelection(c *gin.Context) {
	var req setSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	snap := h.store.Snapshot()
	if req.ClientID != "" {
		if _, found := snap.FindClient(req.ClientID); !found {
			notFound(c, "client")
			return
		}
	}
	if req.ProjectID != "" {
		if _, found := snap.FindProject(req.ProjectID); !found {
			notFound(c, "project")
			return
		}
	}

	h.store.SelectClient(req.ClientID)
	if req.ProjectID != "" {
		h.store.SelectProject(req.ProjectID)
	}

	snap = h.store.Snapshot()
	ok(c, http.StatusOK, gin.H{
		"selectedClientId":  snap.SelectedClientID,
		"selectedProjectId": snap.SelectedProjectID,
	})
}

// ClearSelection handles DELETE /v1/workspace/selection. Clearing the
// client also clears the project, same as selecting a different client.
func (h *WorkspaceHandler) ClearSelection(c *gin.Context) {
	h.store.SelectClient("")
	ok(c, http.StatusOK, gin.H{"cleared": true})
}

// Labels handles GET /v1/workspace/labels: the display names for every
// enumerated value, so clients render statuses without hardcoding them.
func (h *WorkspaceHandler) Labels(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{
		"taskStatus":     models.TaskStatusLabels,
		"projectStatus":  models.ProjectStatusLabels,
		"clientStatus":   models.ClientStatusLabels,
		"priority":       models.PriorityLabels,
		"eventType":      models.EventTypeLabels,
		"attendeeStatus": models.AttendeeStatusLabels,
	})
}
