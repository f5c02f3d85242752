package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/query"
	"github.com/workdeck/workdeck/internal/store"
)

// ViewsHandler serves the derived read models: the calendar grid and the
// cross-project timeline. Both apply the workspace's current filters.
type ViewsHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewViewsHandler(s *store.Store, logger *zap.Logger) *ViewsHandler {
	return &ViewsHandler{store: s, logger: logger}
}

// Calendar handles GET /v1/calendar?year=&month=. Year and month default to
// the current month; the grid always spans whole weeks, Sunday first.
func (h *ViewsHandler) Calendar(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		fail(c, http.StatusBadRequest, CodeBadRequest, "year must be a number")
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		fail(c, http.StatusBadRequest, CodeBadRequest, "month must be 1-12")
		return
	}

	snap := h.store.Snapshot()
	tasks := query.FilterTasks(snap.AllTasks(), snap.Filters)
	events := query.FilterEvents(snap.AllEvents(), snap.Filters)

	grid := query.CalendarGrid(year, time.Month(monthNum), tasks, events, time.Local)
	ok(c, http.StatusOK, gin.H{
		"year":  year,
		"month": monthNum,
		"days":  grid,
	})
}

// Timeline handles GET /v1/timeline?grouped=. Ungrouped, it returns the
// merged task-and-event feed sorted by date; grouped=true buckets it under
// relative day labels.
func (h *ViewsHandler) Timeline(c *gin.Context) {
	snap := h.store.Snapshot()
	tasks := query.SortTasks(query.FilterTasks(snap.AllTasks(), snap.Filters), snap.Sort)
	events := query.FilterEvents(snap.AllEvents(), snap.Filters)

	items := query.TimelineItems(tasks, events)
	if grouped, _ := strconv.ParseBool(c.Query("grouped")); grouped {
		ok(c, http.StatusOK, query.GroupTimeline(items, time.Now()))
		return
	}
	ok(c, http.StatusOK, items)
}
