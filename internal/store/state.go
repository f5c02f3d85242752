// Package store holds the workspace entity graph as one immutable snapshot
// and the update algebra over it. Mutations go through a closed action set
// and a pure reducer; every dispatch produces a new snapshot with
// copy-on-write on the affected branch, so a reader holding an older
// snapshot always sees a fully consistent tree.
package store

import "github.com/workdeck/workdeck/internal/models"

// State is one immutable value of the entire workspace at a point in time.
// The containment tree is Clients/InternalSpaces → Projects → tasks, events,
// lists, notes; Notifications are a flat list alongside it. The selection
// fields are weak references by ID and are cleared in the same update that
// deletes their target.
type State struct {
	CurrentUser       *models.TeamMember     `json:"currentUser"`
	TeamMembers       []models.TeamMember    `json:"teamMembers"`
	Clients           []models.Client        `json:"clients"`
	InternalSpaces    []models.InternalSpace `json:"internalSpaces"`
	Notifications     []models.Notification  `json:"notifications"`
	SelectedClientID  string                 `json:"selectedClientId,omitempty"`
	SelectedProjectID string                 `json:"selectedProjectId,omitempty"`
	SelectedView      models.ViewType        `json:"selectedView"`
	Filters           models.FilterState     `json:"filters"`
	Sort              models.SortState       `json:"sort"`
	SidebarCollapsed  bool                   `json:"sidebarCollapsed"`
	IsLoading         bool                   `json:"isLoading"`
	Err               string                 `json:"error,omitempty"`
}

// AllProjects flattens every project, client-owned first, then internal.
// Lookups that scan "all projects" resolve duplicates to the first match in
// this order.
func (s State) AllProjects() []models.Project {
	var out []models.Project
	for _, c := range s.Clients {
		out = append(out, c.Projects...)
	}
	for _, sp := range s.InternalSpaces {
		out = append(out, sp.Projects...)
	}
	return out
}

func (s State) AllTasks() []models.Task {
	var out []models.Task
	for _, p := range s.AllProjects() {
		out = append(out, p.Tasks...)
	}
	return out
}

func (s State) AllEvents() []models.Event {
	var out []models.Event
	for _, p := range s.AllProjects() {
		out = append(out, p.Events...)
	}
	return out
}

func (s State) FindClient(id string) (models.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s State) FindInternalSpace(id string) (models.InternalSpace, bool) {
	for _, sp := range s.InternalSpaces {
		if sp.ID == id {
			return sp, true
		}
	}
	return models.InternalSpace{}, false
}

func (s State) FindProject(id string) (models.Project, bool) {
	for _, p := range s.AllProjects() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

func (s State) FindTask(id string) (models.Task, bool) {
	for _, t := range s.AllTasks() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

func (s State) FindEvent(id string) (models.Event, bool) {
	for _, e := range s.AllEvents() {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

func (s State) SelectedClient() (models.Client, bool) {
	if s.SelectedClientID == "" {
		return models.Client{}, false
	}
	return s.FindClient(s.SelectedClientID)
}

func (s State) SelectedProject() (models.Project, bool) {
	if s.SelectedProjectID == "" {
		return models.Project{}, false
	}
	return s.FindProject(s.SelectedProjectID)
}

func (s State) TeamMember(id string) (models.TeamMember, bool) {
	for _, m := range s.TeamMembers {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

func (s State) TeamMemberByEmail(email string) (models.TeamMember, bool) {
	for _, m := range s.TeamMembers {
		if m.Email == email {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// NotesByParent collects the notes attached to one (parentType, parentID)
// pair, wherever the parent lives in the tree.
func (s State) NotesByParent(parentType models.NoteParentType, parentID string) []models.Note {
	match := func(notes []models.Note) []models.Note {
		var out []models.Note
		for _, n := range notes {
			if n.ParentType == parentType && n.ParentID == parentID {
				out = append(out, n)
			}
		}
		return out
	}

	var out []models.Note
	for _, c := range s.Clients {
		out = append(out, match(c.Notes)...)
	}
	for _, sp := range s.InternalSpaces {
		out = append(out, match(sp.Notes)...)
	}
	for _, p := range s.AllProjects() {
		out = append(out, match(p.Notes)...)
		for _, t := range p.Tasks {
			out = append(out, match(t.Notes)...)
		}
		for _, e := range p.Events {
			out = append(out, match(e.Notes)...)
		}
	}
	return out
}

// NotificationsFor returns the notifications addressed to one member,
// newest first as stored.
func (s State) NotificationsFor(userID string) []models.Notification {
	var out []models.Notification
	for _, n := range s.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (s State) UnreadCount(userID string) int {
	count := 0
	for _, n := range s.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}
