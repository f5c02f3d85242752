package store

import (
	"slices"

	"github.com/workdeck/workdeck/internal/models"
)

// reduce is the pure update algebra: (state, action) → new state. It never
// mutates its input; the branches it touches are rebuilt, everything else is
// shared structurally with the previous snapshot. Actions referencing a
// missing parent or target fall through and return the state unchanged.
func reduce(s State, action Action) State {
	switch a := action.(type) {
	case setLoading:
		s.IsLoading = a.Loading
		return s

	case setError:
		s.Err = a.Message
		return s

	case setCurrentUser:
		s.CurrentUser = a.Member
		return s

	case selectClient:
		s.SelectedClientID = a.ID
		s.SelectedProjectID = ""
		return s

	case selectProject:
		s.SelectedProjectID = a.ID
		return s

	case setView:
		s.SelectedView = a.View
		return s

	case toggleSidebar:
		s.SidebarCollapsed = !s.SidebarCollapsed
		return s

	case setFilters:
		s.Filters = mergeFilters(s.Filters, a.Patch)
		return s

	case setSort:
		s.Sort = a.Sort
		return s

	case addClient:
		s.Clients = append(slices.Clone(s.Clients), a.Client)
		return s

	case updateClient:
		clients := slices.Clone(s.Clients)
		for i, c := range clients {
			if c.ID == a.Client.ID {
				clients[i] = a.Client
			}
		}
		s.Clients = clients
		return s

	case deleteClient:
		clients := make([]models.Client, 0, len(s.Clients))
		for _, c := range s.Clients {
			if c.ID != a.ID {
				clients = append(clients, c)
			}
		}
		s.Clients = clients
		if s.SelectedClientID == a.ID {
			s.SelectedClientID = ""
		}
		return s

	case addProject:
		switch {
		case a.ClientID != "":
			clients := slices.Clone(s.Clients)
			for i, c := range clients {
				if c.ID == a.ClientID {
					c.Projects = append(slices.Clone(c.Projects), a.Project)
					clients[i] = c
				}
			}
			s.Clients = clients
		case a.SpaceID != "":
			spaces := slices.Clone(s.InternalSpaces)
			for i, sp := range spaces {
				if sp.ID == a.SpaceID {
					sp.Projects = append(slices.Clone(sp.Projects), a.Project)
					spaces[i] = sp
				}
			}
			s.InternalSpaces = spaces
		}
		return s

	case updateProject:
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				if p.ID == a.Project.ID {
					out[i] = a.Project
				}
			}
			return out
		})

	case deleteProject:
		s = mapProjects(s, func(ps []models.Project) []models.Project {
			out := make([]models.Project, 0, len(ps))
			for _, p := range ps {
				if p.ID != a.ID {
					out = append(out, p)
				}
			}
			return out
		})
		if s.SelectedProjectID == a.ID {
			s.SelectedProjectID = ""
		}
		return s

	case addTask:
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				if p.ID == a.ProjectID {
					p.Tasks = append(slices.Clone(p.Tasks), a.Task)
					out[i] = p
				}
			}
			return out
		})

	case updateTask:
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				tasks := slices.Clone(p.Tasks)
				for j, t := range tasks {
					if t.ID == a.Task.ID {
						tasks[j] = a.Task
					}
				}
				p.Tasks = tasks
				out[i] = p
			}
			return out
		})

	case deleteTask:
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				if p.ID != a.ProjectID {
					continue
				}
				tasks := make([]models.Task, 0, len(p.Tasks))
				for _, t := range p.Tasks {
					if t.ID != a.TaskID {
						tasks = append(tasks, t)
					}
				}
				p.Tasks = tasks
				out[i] = p
			}
			return out
		})

	case addEvent:
		if a.ProjectID == "" {
			return s
		}
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				if p.ID == a.ProjectID {
					p.Events = append(slices.Clone(p.Events), a.Event)
					out[i] = p
				}
			}
			return out
		})

	case updateEvent:
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				events := slices.Clone(p.Events)
				for j, e := range events {
					if e.ID == a.Event.ID {
						events[j] = a.Event
					}
				}
				p.Events = events
				out[i] = p
			}
			return out
		})

	case deleteEvent:
		if a.ProjectID == "" {
			return s
		}
		return mapProjects(s, func(ps []models.Project) []models.Project {
			out := slices.Clone(ps)
			for i, p := range out {
				if p.ID != a.ProjectID {
					continue
				}
				events := make([]models.Event, 0, len(p.Events))
				for _, e := range p.Events {
					if e.ID != a.EventID {
						events = append(events, e)
					}
				}
				p.Events = events
				out[i] = p
			}
			return out
		})

	case markNotificationRead:
		notifs := slices.Clone(s.Notifications)
		for i, n := range notifs {
			if n.ID == a.ID {
				n.IsRead = true
				notifs[i] = n
			}
		}
		s.Notifications = notifs
		return s

	case markAllNotificationsRead:
		notifs := slices.Clone(s.Notifications)
		for i := range notifs {
			notifs[i].IsRead = true
		}
		s.Notifications = notifs
		return s

	case addNotification:
		notifs := make([]models.Notification, 0, len(s.Notifications)+1)
		notifs = append(notifs, a.Notification)
		notifs = append(notifs, s.Notifications...)
		s.Notifications = notifs
		return s

	default:
		return s
	}
}

// mapProjects rebuilds every client's and space's project slice through fn.
// The update/delete actions for projects, tasks, and events all sweep the
// whole tree this way, mirroring their full-scan lookup semantics.
func mapProjects(s State, fn func([]models.Project) []models.Project) State {
	clients := slices.Clone(s.Clients)
	for i, c := range clients {
		c.Projects = fn(c.Projects)
		clients[i] = c
	}
	spaces := slices.Clone(s.InternalSpaces)
	for i, sp := range spaces {
		sp.Projects = fn(sp.Projects)
		spaces[i] = sp
	}
	s.Clients = clients
	s.InternalSpaces = spaces
	return s
}

func mergeFilters(f models.FilterState, p models.FilterPatch) models.FilterState {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Priority != nil {
		f.Priority = *p.Priority
	}
	if p.Assignees != nil {
		f.Assignees = *p.Assignees
	}
	if p.Tags != nil {
		f.Tags = *p.Tags
	}
	if p.DateRange != nil {
		f.DateRange = p.DateRange
	}
	if p.ClearDateRange {
		f.DateRange = nil
	}
	if p.ShowCompleted != nil {
		f.ShowCompleted = *p.ShowCompleted
	}
	return f
}
