// Package query contains the pure derived-view helpers: filtering, sorting,
// grouping, progress, and the timeline/calendar projections. Every function
// reads a snapshot slice and returns a new one; nothing here mutates state.
package query

import (
	"slices"
	"strings"

	"github.com/workdeck/workdeck/internal/models"
)

// FilterTasks keeps a task iff it passes every active filter dimension.
// Empty filter slices put no restriction on their dimension.
func FilterTasks(tasks []models.Task, f models.FilterState) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	search := strings.ToLower(f.Search)

	for _, t := range tasks {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if len(f.Status) > 0 && !slices.Contains(f.Status, t.Status) {
			continue
		}
		if len(f.Priority) > 0 && !slices.Contains(f.Priority, t.Priority) {
			continue
		}
		if len(f.Assignees) > 0 && !anyOf(t.Assignees, f.Assignees) {
			continue
		}
		if len(f.Tags) > 0 && !anyOf(t.Tags, f.Tags) {
			continue
		}
		if !f.ShowCompleted && t.Status.IsComplete() {
			continue
		}
		if f.DateRange != nil && t.DueDate != nil {
			if t.DueDate.Before(f.DateRange.Start) || t.DueDate.After(f.DateRange.End) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// FilterEvents narrows events by search text and the active date range, keyed
// on the event's start date.
func FilterEvents(events []models.Event, f models.FilterState) []models.Event {
	out := make([]models.Event, 0, len(events))
	search := strings.ToLower(f.Search)

	for _, e := range events {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		if f.DateRange != nil {
			if e.StartDate.Before(f.DateRange.Start) || e.StartDate.After(f.DateRange.End) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// anyOf reports whether have and want share at least one element.
func anyOf(have, want []string) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}
