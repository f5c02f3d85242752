package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/query"
	"github.com/workdeck/workdeck/internal/store"
)

type TaskHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewTaskHandler(s *store.Store, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: s, logger: logger}
}

// List handles GET /v1/tasks. The workspace's stored filters and sort apply
// by default; query params override them per dimension for this request
// only. groupBy=status|priority|assignee returns a grouped map instead of a
// flat list, and projectId narrows the scan to one project.
func (h *TaskHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()

	tasks := snap.AllTasks()
	if projectID := c.Query("projectId"); projectID != "" {
		p, found := snap.FindProject(projectID)
		if !found {
			notFound(c, "project")
			return
		}
		tasks = p.Tasks
	}

	filters := overrideFilters(c, snap.Filters)
	sortState := overrideSort(c, snap.Sort)

	tasks = query.SortTasks(query.FilterTasks(tasks, filters), sortState)

	// Deadline predicates stack on top of the stored filters. Overdue
	// ignores status on purpose; pair it with showCompleted=false to get
	// actionable work.
	now := time.Now()
	if v, _ := strconv.ParseBool(c.Query("overdue")); v {
		tasks = keepTasks(tasks, func(t models.Task) bool { return dates.IsOverdue(t.DueDate, now) })
	}
	if v, set := c.GetQuery("dueWithinDays"); set {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			fail(c, http.StatusBadRequest, CodeBadRequest, "dueWithinDays must be a positive number")
			return
		}
		tasks = keepTasks(tasks, func(t models.Task) bool { return dates.IsDueSoon(t.DueDate, now, days) })
	}

	switch c.Query("groupBy") {
	case "":
		ok(c, http.StatusOK, tasks)
	case "status":
		ok(c, http.StatusOK, query.GroupTasksByStatus(tasks))
	case "priority":
		ok(c, http.StatusOK, query.GroupTasksByPriority(tasks))
	case "assignee":
		ok(c, http.StatusOK, query.GroupTasksByAssignee(tasks, snap.TeamMembers))
	default:
		fail(c, http.StatusBadRequest, CodeBadRequest, "groupBy must be status, priority, or assignee")
	}
}

// Get handles GET /v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	t, found := h.store.Snapshot().FindTask(c.Param("id"))
	if !found {
		notFound(c, "task")
		return
	}
	ok(c, http.StatusOK, t)
}

// Create handles POST /v1/tasks. The owning project comes from the form.
func (h *TaskHandler) Create(c *gin.Context) {
	var form models.TaskFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	if form.ProjectID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "task needs a projectId")
		return
	}

	snap := h.store.Snapshot()
	t, created := h.store.AddTask(actorID(c, snap), form.ProjectID, form)
	if !created {
		notFound(c, "project")
		return
	}
	h.logger.Info("task created", zap.String("task_id", t.ID), zap.String("project_id", form.ProjectID))
	ok(c, http.StatusCreated, t)
}

// Update handles PUT /v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var form models.TaskFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	t, found := h.store.UpdateTask(c.Param("id"), form.ProjectID, form)
	if !found {
		notFound(c, "task")
		return
	}
	ok(c, http.StatusOK, t)
}

// ListByProject handles GET /v1/projects/:id/tasks
func (h *TaskHandler) ListByProject(c *gin.Context) {
	p, found := h.store.Snapshot().FindProject(c.Param("id"))
	if !found {
		notFound(c, "project")
		return
	}
	ok(c, http.StatusOK, p.Tasks)
}

// CreateInProject handles POST /v1/projects/:id/tasks; the path wins over
// any projectId in the body.
func (h *TaskHandler) CreateInProject(c *gin.Context) {
	var form models.TaskFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	projectID := c.Param("id")
	snap := h.store.Snapshot()
	t, created := h.store.AddTask(actorID(c, snap), projectID, form)
	if !created {
		notFound(c, "project")
		return
	}
	h.logger.Info("task created", zap.String("task_id", t.ID), zap.String("project_id", projectID))
	ok(c, http.StatusCreated, t)
}

// DeleteInProject handles DELETE /v1/projects/:id/tasks/:taskId
func (h *TaskHandler) DeleteInProject(c *gin.Context) {
	if !h.store.DeleteTask(c.Param("id"), c.Param("taskId")) {
		notFound(c, "task")
		return
	}
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// Delete handles DELETE /v1/tasks/:id?projectId=
func (h *TaskHandler) Delete(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		fail(c, http.StatusBadRequest, CodeBadRequest, "projectId query param is required")
		return
	}
	id := c.Param("id")
	if !h.store.DeleteTask(projectID, id) {
		notFound(c, "task")
		return
	}
	h.logger.Info("task deleted", zap.String("task_id", id))
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

func overrideFilters(c *gin.Context, f models.FilterState) models.FilterState {
	if v, set := c.GetQuery("search"); set {
		f.Search = v
	}
	if v, set := c.GetQuery("status"); set {
		f.Status = nil
		for _, s := range splitList(v) {
			f.Status = append(f.Status, models.TaskStatus(s))
		}
	}
	if v, set := c.GetQuery("priority"); set {
		f.Priority = nil
		for _, p := range splitList(v) {
			f.Priority = append(f.Priority, models.Priority(p))
		}
	}
	if v, set := c.GetQuery("assignees"); set {
		f.Assignees = splitList(v)
	}
	if v, set := c.GetQuery("tags"); set {
		f.Tags = splitList(v)
	}
	if v, set := c.GetQuery("showCompleted"); set {
		if b, err := strconv.ParseBool(v); err == nil {
			f.ShowCompleted = b
		}
	}
	return f
}

func overrideSort(c *gin.Context, s models.SortState) models.SortState {
	if v, set := c.GetQuery("sortField"); set {
		s.Field = models.SortField(v)
	}
	if v, set := c.GetQuery("sortDir"); set {
		s.Direction = models.SortDirection(v)
	}
	return s
}

func keepTasks(tasks []models.Task, pred func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
