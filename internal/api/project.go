package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/query"
	"github.com/workdeck/workdeck/internal/store"
)

type ProjectHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewProjectHandler(s *store.Store, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{store: s, logger: logger}
}

// List handles GET /v1/projects. Client-owned projects come first, then
// internal ones.
func (h *ProjectHandler) List(c *gin.Context) {
	ok(c, http.StatusOK, h.store.Snapshot().AllProjects())
}

// Get handles GET /v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	p, found := h.store.Snapshot().FindProject(c.Param("id"))
	if !found {
		notFound(c, "project")
		return
	}
	ok(c, http.StatusOK, p)
}

// Create handles POST /v1/projects. The form must name exactly one parent
// container; a missing or unknown parent is a 404 on that parent.
func (h *ProjectHandler) Create(c *gin.Context) {
	var form models.ProjectFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	if form.ClientID == "" && form.InternalSpaceID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "project needs a clientId or internalSpaceId")
		return
	}

	snap := h.store.Snapshot()
	p, created := h.store.AddProject(actorID(c, snap), form)
	if !created {
		notFound(c, "parent container")
		return
	}
	h.logger.Info("project created", zap.String("project_id", p.ID))
	ok(c, http.StatusCreated, p)
}

// Update handles PUT /v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var form models.ProjectFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	p, found := h.store.UpdateProject(c.Param("id"), form)
	if !found {
		notFound(c, "project")
		return
	}
	ok(c, http.StatusOK, p)
}

// Delete handles DELETE /v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteProject(id) {
		notFound(c, "project")
		return
	}
	h.logger.Info("project deleted", zap.String("project_id", id))
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// Select handles PUT /v1/projects/:id/select
func (h *ProjectHandler) Select(c *gin.Context) {
	id := c.Param("id")
	if _, found := h.store.Snapshot().FindProject(id); !found {
		notFound(c, "project")
		return
	}
	h.store.SelectProject(id)
	ok(c, http.StatusOK, gin.H{"selectedProjectId": id})
}

// Progress handles GET /v1/projects/:id/progress
func (h *ProjectHandler) Progress(c *gin.Context) {
	p, found := h.store.Snapshot().FindProject(c.Param("id"))
	if !found {
		notFound(c, "project")
		return
	}
	counts := query.ProjectTaskCounts(p)
	ok(c, http.StatusOK, gin.H{
		"projectId": p.ID,
		"progress":  query.ProjectProgress(p),
		"completed": counts[models.TaskCompleted],
		"total":     len(p.Tasks),
		"byStatus":  counts,
	})
}
