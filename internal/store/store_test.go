package store

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
)

func fixtureState() State {
	now := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)
	alex := models.TeamMember{ID: "tm-1", Name: "Alex Johnson", Email: "alex@company.com", IsActive: true}
	sarah := models.TeamMember{ID: "tm-2", Name: "Sarah Chen", Email: "sarah@company.com", IsActive: true}

	return State{
		CurrentUser: &alex,
		TeamMembers: []models.TeamMember{alex, sarah},
		Clients: []models.Client{
			{
				ID:     "acme",
				Name:   "Acme Corporation",
				Status: models.ClientActive,
				Projects: []models.Project{
					{
						ID:       "website",
						Name:     "Website Redesign",
						ClientID: "acme",
						Status:   models.ProjectActive,
						Priority: models.PriorityHigh,
						Tasks: []models.Task{
							{
								ID:        "design",
								Title:     "Design homepage",
								ProjectID: "website",
								Status:    models.TaskTodo,
								Priority:  models.PriorityMedium,
								Assignees: []string{"tm-2"},
								CreatedBy: "tm-1",
								CreatedAt: now,
								UpdatedAt: now,
							},
						},
						Events: []models.Event{},
					},
				},
				Notes: []models.Note{},
			},
		},
		InternalSpaces: []models.InternalSpace{
			{
				ID:   "eng",
				Name: "Engineering",
				Projects: []models.Project{
					{
						ID:              "tooling",
						Name:            "Tooling",
						InternalSpaceID: "eng",
						Status:          models.ProjectActive,
						Priority:        models.PriorityLow,
						Tasks:           []models.Task{},
						Events:          []models.Event{},
					},
				},
			},
		},
		SelectedView: models.ViewTimeline,
		Filters:      models.FilterState{ShowCompleted: true},
		Sort:         models.SortState{Field: models.SortByDueDate, Direction: models.SortAsc},
	}
}

func newTestStore() *Store {
	return New(fixtureState(), zap.NewNop())
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	s.AddTask("tm-1", "website", models.TaskFormData{
		Title: "New task", Status: models.TaskTodo, Priority: models.PriorityLow,
	})

	if n := len(before.Clients[0].Projects[0].Tasks); n != 1 {
		t.Errorf("older snapshot gained a task: %d", n)
	}
	after := s.Snapshot()
	if n := len(after.Clients[0].Projects[0].Tasks); n != 2 {
		t.Errorf("new snapshot has %d tasks, want 2", n)
	}
}

func TestSelection(t *testing.T) {
	s := newTestStore()

	s.SelectClient("acme")
	s.SelectProject("website")
	snap := s.Snapshot()
	if snap.SelectedClientID != "acme" || snap.SelectedProjectID != "website" {
		t.Fatalf("selection = %q/%q", snap.SelectedClientID, snap.SelectedProjectID)
	}

	// Re-selecting a client invalidates the project picked under the old
	// one.
	s.SelectClient("acme")
	if snap = s.Snapshot(); snap.SelectedProjectID != "" {
		t.Errorf("selecting a client should clear the selected project, got %q", snap.SelectedProjectID)
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	s := newTestStore()
	s.SelectClient("acme")
	s.SelectProject("website")

	if !s.DeleteProject("website") {
		t.Fatal("DeleteProject returned false for an existing project")
	}
	if snap := s.Snapshot(); snap.SelectedProjectID != "" {
		t.Errorf("deleting the selected project should clear the pointer, got %q", snap.SelectedProjectID)
	}

	if !s.DeleteClient("acme") {
		t.Fatal("DeleteClient returned false for an existing client")
	}
	if snap := s.Snapshot(); snap.SelectedClientID != "" {
		t.Errorf("deleting the selected client should clear the pointer, got %q", snap.SelectedClientID)
	}
}

func TestMissingTargetsAreNoOps(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	if s.DeleteClient("ghost") {
		t.Error("deleting a missing client should report false")
	}
	if _, found := s.UpdateProject("ghost", models.ProjectFormData{Name: "X", Status: models.ProjectActive, Priority: models.PriorityLow}); found {
		t.Error("updating a missing project should report false")
	}
	if s.DeleteTask("website", "ghost") {
		t.Error("deleting a missing task should report false")
	}
	if _, created := s.AddProject("tm-1", models.ProjectFormData{Name: "Orphan", Status: models.ProjectPlanning, Priority: models.PriorityLow}); created {
		t.Error("a project with no parent container should not be created")
	}
	if _, created := s.AddTask("tm-1", "ghost", models.TaskFormData{Title: "X", Status: models.TaskTodo, Priority: models.PriorityLow}); created {
		t.Error("a task under a missing project should not be created")
	}

	after := s.Snapshot()
	if len(after.Clients) != len(before.Clients) ||
		len(after.Clients[0].Projects) != len(before.Clients[0].Projects) ||
		len(after.Clients[0].Projects[0].Tasks) != len(before.Clients[0].Projects[0].Tasks) {
		t.Error("no-op intents changed the tree")
	}
}

func TestSubscribePublish(t *testing.T) {
	s := newTestStore()
	feed, cancel := s.Subscribe()
	defer cancel()

	s.AddTask("tm-1", "website", models.TaskFormData{
		Title:     "Review copy",
		Status:    models.TaskTodo,
		Priority:  models.PriorityMedium,
		Assignees: []string{"tm-2"},
	})

	select {
	case n := <-feed:
		if n.UserID != "tm-2" || n.Type != models.NotifyTaskAssigned {
			t.Errorf("notification = %+v", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no notification published")
	}
}

func TestSetFiltersPatch(t *testing.T) {
	s := newTestStore()
	search := "homepage"
	hide := false
	s.SetFilters(models.FilterPatch{Search: &search, ShowCompleted: &hide})

	f := s.Snapshot().Filters
	if f.Search != "homepage" || f.ShowCompleted {
		t.Errorf("filters = %+v", f)
	}

	// Untouched dimensions persist across later patches.
	rangeStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.SetFilters(models.FilterPatch{DateRange: &models.DateRange{Start: rangeStart, End: rangeStart.AddDate(0, 1, 0)}})
	f = s.Snapshot().Filters
	if f.Search != "homepage" || f.DateRange == nil {
		t.Errorf("patch clobbered filters: %+v", f)
	}

	s.SetFilters(models.FilterPatch{ClearDateRange: true})
	if f = s.Snapshot().Filters; f.DateRange != nil {
		t.Error("ClearDateRange did not drop the range")
	}
}
