package query

import (
	"sort"
	"strings"

	"github.com/workdeck/workdeck/internal/models"
)

// priorityRank and statusRank order high to low, so an ascending sort puts
// urgent work first. The desc direction negates the comparison again, which
// means desc on these two fields reads low to high. That inversion is the
// established behavior of the list view and is pinned by tests; change it in
// both places or not at all.
var priorityRank = map[models.Priority]int{
	models.PriorityUrgent: 4,
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

var statusRank = map[models.TaskStatus]int{
	models.TaskUrgent:     6,
	models.TaskInProgress: 5,
	models.TaskBlocked:    4,
	models.TaskOnHold:     3,
	models.TaskTodo:       2,
	models.TaskCompleted:  1,
}

// SortTasks returns a sorted copy of tasks. Tasks without a due date sort
// after dated ones regardless of direction.
func SortTasks(tasks []models.Task, s models.SortState) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if s.Field == models.SortByDueDate {
			// Undated tasks pin to the end whichever way the sort runs,
			// so the direction flip must not touch these branches.
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
		}
		c := compareTasks(a, b, s.Field)
		if s.Direction == models.SortDesc {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareTasks(a, b models.Task, field models.SortField) int {
	switch field {
	case models.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case models.SortByDueDate:
		return a.DueDate.Compare(*b.DueDate)
	case models.SortByPriority:
		return priorityRank[b.Priority] - priorityRank[a.Priority]
	case models.SortByStatus:
		return statusRank[b.Status] - statusRank[a.Status]
	case models.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case models.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return 0
	}
}
