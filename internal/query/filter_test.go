package query

import (
	"testing"
	"time"

	"github.com/workdeck/workdeck/internal/models"
)

func taskWith(id string, mut func(*models.Task)) models.Task {
	t := models.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   models.TaskTodo,
		Priority: models.PriorityMedium,
	}
	if mut != nil {
		mut(&t)
	}
	return t
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Task, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterTasks(t *testing.T) {
	due := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		taskWith("t1", func(t *models.Task) {
			t.Title = "Design homepage"
			t.Status = models.TaskInProgress
			t.Priority = models.PriorityHigh
			t.Assignees = []string{"tm-2"}
			t.Tags = []string{"design"}
			t.DueDate = &due
		}),
		taskWith("t2", func(t *models.Task) {
			t.Title = "Write API docs"
			t.Description = "covers the design of the endpoints"
			t.Assignees = []string{"tm-3"}
			t.Tags = []string{"docs"}
		}),
		taskWith("t3", func(t *models.Task) {
			t.Title = "Ship release"
			t.Status = models.TaskCompleted
		}),
	}

	base := models.FilterState{ShowCompleted: true}

	t.Run("no restrictions keeps everything", func(t *testing.T) {
		assertIDs(t, FilterTasks(tasks, base), "t1", "t2", "t3")
	})

	t.Run("search matches title and description", func(t *testing.T) {
		f := base
		f.Search = "DESIGN"
		assertIDs(t, FilterTasks(tasks, f), "t1", "t2")
	})

	t.Run("status narrows", func(t *testing.T) {
		f := base
		f.Status = []models.TaskStatus{models.TaskInProgress}
		assertIDs(t, FilterTasks(tasks, f), "t1")
	})

	t.Run("assignee matches any shared member", func(t *testing.T) {
		f := base
		f.Assignees = []string{"tm-3", "tm-9"}
		assertIDs(t, FilterTasks(tasks, f), "t2")
	})

	t.Run("hide completed", func(t *testing.T) {
		f := base
		f.ShowCompleted = false
		assertIDs(t, FilterTasks(tasks, f), "t1", "t2")
	})

	t.Run("date range skips undated tasks", func(t *testing.T) {
		f := base
		f.DateRange = &models.DateRange{
			Start: due.AddDate(0, 0, -1),
			End:   due.AddDate(0, 0, 1),
		}
		// t2 and t3 have no due date, so the range does not exclude them.
		assertIDs(t, FilterTasks(tasks, f), "t1", "t2", "t3")
	})

	t.Run("date range excludes dated tasks outside it", func(t *testing.T) {
		f := base
		f.DateRange = &models.DateRange{
			Start: due.AddDate(0, 0, 5),
			End:   due.AddDate(0, 0, 10),
		}
		assertIDs(t, FilterTasks(tasks, f), "t2", "t3")
	})

	t.Run("filtering twice equals filtering once", func(t *testing.T) {
		f := base
		f.Search = "design"
		f.Priority = []models.Priority{models.PriorityHigh}
		once := FilterTasks(tasks, f)
		twice := FilterTasks(once, f)
		assertIDs(t, twice, ids(once)...)
	})
}

func TestFilterEvents(t *testing.T) {
	mar := func(d int) time.Time { return time.Date(2026, time.March, d, 10, 0, 0, 0, time.UTC) }
	events := []models.Event{
		{ID: "e1", Title: "Sprint Planning", StartDate: mar(11)},
		{ID: "e2", Title: "Design Review", StartDate: mar(20)},
	}

	f := models.FilterState{Search: "design"}
	got := FilterEvents(events, f)
	if len(got) != 1 || got[0].ID != "e2" {
		t.Errorf("search filter got %d events", len(got))
	}

	f = models.FilterState{DateRange: &models.DateRange{Start: mar(10), End: mar(15)}}
	got = FilterEvents(events, f)
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("date range filter got %d events", len(got))
	}
}
