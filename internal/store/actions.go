package store

import "github.com/workdeck/workdeck/internal/models"

// Action is the closed set of state transitions. Keeping the variants in one
// place means the reducer switch handles every intent the system knows; a
// new intent kind starts here.
type Action interface {
	isAction()
}

type setLoading struct{ Loading bool }
type setError struct{ Message string }
type setCurrentUser struct{ Member *models.TeamMember }

// selectClient also resets the selected project: changing client context
// invalidates any project picked under the previous one.
type selectClient struct{ ID string }
type selectProject struct{ ID string }
type setView struct{ View models.ViewType }
type toggleSidebar struct{}
type setFilters struct{ Patch models.FilterPatch }
type setSort struct{ Sort models.SortState }

type addClient struct{ Client models.Client }
type updateClient struct{ Client models.Client }
type deleteClient struct{ ID string }

// addProject carries the parent reference out-of-band so the reducer can
// append into exactly one container; with neither ID set it is a no-op.
type addProject struct {
	ClientID string
	SpaceID  string
	Project  models.Project
}
type updateProject struct{ Project models.Project }
type deleteProject struct{ ID string }

type addTask struct {
	ProjectID string
	Task      models.Task
}
type updateTask struct{ Task models.Task }
type deleteTask struct {
	ProjectID string
	TaskID    string
}

type addEvent struct {
	ProjectID string
	Event     models.Event
}
type updateEvent struct{ Event models.Event }
type deleteEvent struct {
	ProjectID string
	EventID   string
}

type markNotificationRead struct{ ID string }
type markAllNotificationsRead struct{}
type addNotification struct{ Notification models.Notification }

func (setLoading) isAction()               {}
func (setError) isAction()                 {}
func (setCurrentUser) isAction()           {}
func (selectClient) isAction()             {}
func (selectProject) isAction()            {}
func (setView) isAction()                  {}
func (toggleSidebar) isAction()            {}
func (setFilters) isAction()               {}
func (setSort) isAction()                  {}
func (addClient) isAction()                {}
func (updateClient) isAction()             {}
func (deleteClient) isAction()             {}
func (addProject) isAction()               {}
func (updateProject) isAction()            {}
func (deleteProject) isAction()            {}
func (addTask) isAction()                  {}
func (updateTask) isAction()               {}
func (deleteTask) isAction()               {}
func (addEvent) isAction()                 {}
func (updateEvent) isAction()              {}
func (deleteEvent) isAction()              {}
func (markNotificationRead) isAction()     {}
func (markAllNotificationsRead) isAction() {}
func (addNotification) isAction()          {}
