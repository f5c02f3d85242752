package query

import (
	"sort"
	"time"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/models"
)

// TimelineItem is a task or an event flattened onto the shared time axis.
// Exactly one of Task/Event is set, matching Type.
type TimelineItem struct {
	ID    string        `json:"id"`
	Type  string        `json:"type"` // "task" | "event"
	Title string        `json:"title"`
	Date  time.Time     `json:"date"`
	Time  string        `json:"time,omitempty"`
	Task  *models.Task  `json:"task,omitempty"`
	Event *models.Event `json:"event,omitempty"`
}

// TimelineItems merges tasks that carry a due date with events (keyed on
// start date) into one list sorted ascending by date. Undated tasks are
// omitted; completed-task exclusion is the caller's concern.
func TimelineItems(tasks []models.Task, events []models.Event) []TimelineItem {
	items := make([]TimelineItem, 0, len(tasks)+len(events))

	for i := range tasks {
		t := tasks[i]
		if t.DueDate == nil {
			continue
		}
		items = append(items, TimelineItem{
			ID:    t.ID,
			Type:  "task",
			Title: t.Title,
			Date:  *t.DueDate,
			Time:  t.DueTime,
			Task:  &tasks[i],
		})
	}
	for i := range events {
		e := events[i]
		items = append(items, TimelineItem{
			ID:    e.ID,
			Type:  "event",
			Title: e.Title,
			Date:  e.StartDate,
			Time:  e.StartTime,
			Event: &events[i],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}

// GroupTimeline buckets timeline items under their human date label relative
// to now. Labels are computed at call time, so a session crossing midnight
// regroups on the next render; that is expected.
func GroupTimeline(items []TimelineItem, now time.Time) map[string][]TimelineItem {
	return GroupBy(items, func(it TimelineItem) string {
		return dates.RelativeLabel(it.Date, now)
	})
}
