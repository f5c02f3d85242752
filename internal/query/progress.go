package query

import (
	"math"

	"github.com/workdeck/workdeck/internal/models"
)

// ProjectProgress is the percentage of the project's tasks that are
// completed, rounded to the nearest integer. A project with no tasks is 0%.
func ProjectProgress(p models.Project) int {
	total := len(p.Tasks)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, t := range p.Tasks {
		if t.Status.IsComplete() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ProjectTaskCounts tallies the project's tasks by status.
func ProjectTaskCounts(p models.Project) map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int)
	for _, t := range p.Tasks {
		counts[t.Status]++
	}
	return counts
}
