package store

import (
	"fmt"
	"time"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/models"
)

// Intents: one method per named state change. Each builds the entity (or
// locates the target), dispatches through the reducer under the lock, and
// reports whether anything changed. Intents referencing a missing target
// leave the snapshot untouched and return false — the store never errors.

func (s *Store) SetLoading(loading bool) {
	s.dispatch(setLoading{Loading: loading})
}

func (s *Store) SetError(message string) {
	s.dispatch(setError{Message: message})
}

func (s *Store) SelectClient(id string) {
	s.dispatch(selectClient{ID: id})
}

func (s *Store) SelectProject(id string) {
	s.dispatch(selectProject{ID: id})
}

func (s *Store) SetView(v models.ViewType) {
	s.dispatch(setView{View: v})
}

func (s *Store) ToggleSidebar() {
	s.dispatch(toggleSidebar{})
}

func (s *Store) SetFilters(patch models.FilterPatch) {
	s.dispatch(setFilters{Patch: patch})
}

func (s *Store) SetSort(sort models.SortState) {
	s.dispatch(setSort{Sort: sort})
}

func (s *Store) SetCurrentUser(m *models.TeamMember) {
	s.dispatch(setCurrentUser{Member: m})
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// AddClient builds a client with a fresh ID, empty projects and notes, and
// appends it. Duplicate names are permitted.
func (s *Store) AddClient(data models.ClientFormData) models.Client {
	now := time.Now()
	c := models.Client{
		ID:           newID(),
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		Address:      data.Address,
		Website:      data.Website,
		Status:       data.Status,
		TeamMembers:  orEmpty(data.TeamMembers),
		Projects:     []models.Project{},
		Notes:        []models.Note{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.dispatch(addClient{Client: c})
	return c
}

// UpdateClient replaces the client's form-editable fields wholesale; owned
// projects and notes are untouched.
func (s *Store) UpdateClient(id string, data models.ClientFormData) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.FindClient(id)
	if !ok {
		return models.Client{}, false
	}
	existing.Name = data.Name
	existing.ContactEmail = data.ContactEmail
	existing.ContactPhone = data.ContactPhone
	existing.Address = data.Address
	existing.Website = data.Website
	existing.Status = data.Status
	existing.TeamMembers = orEmpty(data.TeamMembers)
	existing.UpdatedAt = time.Now()

	s.state = reduce(s.state, updateClient{Client: existing})
	return existing, true
}

// DeleteClient removes the client and, in the same update, clears the
// selected-client pointer if it referenced it.
func (s *Store) DeleteClient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.state.FindClient(id)
	s.state = reduce(s.state, deleteClient{ID: id})
	return ok
}

// AddProject appends a new project into the one parent named by the form:
// ClientID wins if both are somehow set. With neither parent, or an unknown
// parent, the snapshot is unchanged and ok is false.
func (s *Store) AddProject(actorID string, data models.ProjectFormData) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := false
	switch {
	case data.ClientID != "":
		_, ok = s.state.FindClient(data.ClientID)
	case data.InternalSpaceID != "":
		_, ok = s.state.FindInternalSpace(data.InternalSpaceID)
	}
	if !ok {
		return models.Project{}, false
	}

	now := time.Now()
	p := models.Project{
		ID:              newID(),
		Name:            data.Name,
		Description:     data.Description,
		ClientID:        data.ClientID,
		InternalSpaceID: data.InternalSpaceID,
		Status:          data.Status,
		Priority:        data.Priority,
		StartDate:       dates.ParseDate(data.StartDate),
		DueDate:         dates.ParseDate(data.DueDate),
		TeamMembers:     orEmpty(data.TeamMembers),
		Tasks:           []models.Task{},
		Events:          []models.Event{},
		Lists:           []models.List{},
		Notes:           []models.Note{},
		Tags:            orEmpty(data.Tags),
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.state = reduce(s.state, addProject{ClientID: data.ClientID, SpaceID: data.InternalSpaceID, Project: p})
	return p, true
}

// UpdateProject locates the project by ID across all clients and spaces
// (first match in iteration order) and replaces its form-editable fields.
// The parent reference never changes on update.
func (s *Store) UpdateProject(id string, data models.ProjectFormData) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.FindProject(id)
	if !ok {
		return models.Project{}, false
	}
	existing.Name = data.Name
	existing.Description = data.Description
	existing.Status = data.Status
	existing.Priority = data.Priority
	existing.StartDate = dates.ParseDate(data.StartDate)
	existing.DueDate = dates.ParseDate(data.DueDate)
	existing.TeamMembers = orEmpty(data.TeamMembers)
	existing.Tags = orEmpty(data.Tags)
	existing.UpdatedAt = time.Now()

	s.state = reduce(s.state, updateProject{Project: existing})
	return existing, true
}

func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.state.FindProject(id)
	s.state = reduce(s.state, deleteProject{ID: id})
	return ok
}

// AddTask builds a task with empty notes, subtasks, and dependencies and
// appends it to the named project's task sequence.
func (s *Store) AddTask(actorID, projectID string, data models.TaskFormData) (models.Task, bool) {
	s.mu.Lock()
	if _, ok := s.state.FindProject(projectID); !ok {
		s.mu.Unlock()
		return models.Task{}, false
	}

	now := time.Now()
	t := models.Task{
		ID:           newID(),
		Title:        data.Title,
		Description:  data.Description,
		ProjectID:    projectID,
		ListID:       data.ListID,
		Status:       data.Status,
		Priority:     data.Priority,
		Assignees:    orEmpty(data.Assignees),
		DueDate:      dates.ParseDate(data.DueDate),
		DueTime:      data.DueTime,
		Tags:         orEmpty(data.Tags),
		Notes:        []models.Note{},
		Subtasks:     []models.Subtask{},
		Dependencies: []string{},
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.state = reduce(s.state, addTask{ProjectID: projectID, Task: t})
	pending := s.notifyAssigned(t, t.Assignees, actorID, now)
	s.mu.Unlock()

	s.flush(pending)
	return t, true
}

// UpdateTask locates the task by ID with a full scan across every project;
// the projectID argument is accepted for callers that track it but does not
// narrow the search. CompletedAt is stamped the first time the status
// becomes completed and survives all later edits.
func (s *Store) UpdateTask(id, projectID string, data models.TaskFormData) (models.Task, bool) {
	_ = projectID

	s.mu.Lock()
	existing, ok := s.state.FindTask(id)
	if !ok {
		s.mu.Unlock()
		return models.Task{}, false
	}

	now := time.Now()
	wasCompleted := existing.CompletedAt != nil
	newlyAssigned := diffStrings(data.Assignees, existing.Assignees)

	existing.Title = data.Title
	existing.Description = data.Description
	existing.Status = data.Status
	existing.Priority = data.Priority
	existing.Assignees = orEmpty(data.Assignees)
	existing.DueDate = dates.ParseDate(data.DueDate)
	existing.DueTime = data.DueTime
	existing.Tags = orEmpty(data.Tags)
	existing.UpdatedAt = now
	if data.Status == models.TaskCompleted && existing.CompletedAt == nil {
		existing.CompletedAt = &now
	}

	s.state = reduce(s.state, updateTask{Task: existing})

	pending := s.notifyAssigned(existing, newlyAssigned, actorFallback(s.state, ""), now)
	if existing.Status == models.TaskCompleted && !wasCompleted {
		pending = append(pending, s.notifyCompleted(existing, now)...)
	}
	s.mu.Unlock()

	s.flush(pending)
	return existing, true
}

func (s *Store) DeleteTask(projectID, taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if p, ok := s.state.FindProject(projectID); ok {
		for _, t := range p.Tasks {
			if t.ID == taskID {
				found = true
				break
			}
		}
	}
	s.state = reduce(s.state, deleteTask{ProjectID: projectID, TaskID: taskID})
	return found
}

// AddEvent requires a project; the attendee list resolves team-member IDs to
// display-name snapshots with RSVP pending and notified false.
func (s *Store) AddEvent(actorID string, data models.EventFormData) (models.Event, bool) {
	s.mu.Lock()
	if data.ProjectID == "" {
		s.mu.Unlock()
		return models.Event{}, false
	}
	if _, ok := s.state.FindProject(data.ProjectID); !ok {
		s.mu.Unlock()
		return models.Event{}, false
	}

	now := time.Now()
	attendees := make([]models.EventAttendee, 0, len(data.Attendees))
	for _, memberID := range data.Attendees {
		name := ""
		if m, ok := s.state.TeamMember(memberID); ok {
			name = m.Name
		}
		attendees = append(attendees, models.EventAttendee{
			ID:             newID(),
			TeamMemberID:   memberID,
			Name:           name,
			Status:         models.AttendeePending,
			CanViewDetails: true,
			Notified:       false,
		})
	}

	start := dates.ParseDate(data.StartDate)
	end := dates.ParseDate(data.EndDate)
	if start == nil || end == nil {
		s.mu.Unlock()
		return models.Event{}, false
	}

	e := models.Event{
		ID:          newID(),
		Title:       data.Title,
		Description: data.Description,
		ProjectID:   data.ProjectID,
		Type:        data.Type,
		StartDate:   *start,
		StartTime:   data.StartTime,
		EndDate:     *end,
		EndTime:     data.EndTime,
		AllDay:      data.AllDay,
		Location:    data.Location,
		MeetingLink: data.MeetingLink,
		Attendees:   attendees,
		Visibility:  data.Visibility,
		Reminders:   []models.EventReminderEntry{},
		Notes:       []models.Note{},
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state = reduce(s.state, addEvent{ProjectID: data.ProjectID, Event: e})
	pending := s.notifyInvited(e, actorID, now)
	s.mu.Unlock()

	s.flush(pending)
	return e, true
}

// UpdateEvent replaces the schedule, type, visibility, and location fields.
// The attendee list is not editable through this intent.
func (s *Store) UpdateEvent(id string, data models.EventFormData) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.FindEvent(id)
	if !ok {
		return models.Event{}, false
	}
	start := dates.ParseDate(data.StartDate)
	end := dates.ParseDate(data.EndDate)
	if start == nil || end == nil {
		return models.Event{}, false
	}

	existing.Title = data.Title
	existing.Description = data.Description
	existing.Type = data.Type
	existing.StartDate = *start
	existing.StartTime = data.StartTime
	existing.EndDate = *end
	existing.EndTime = data.EndTime
	existing.AllDay = data.AllDay
	existing.Location = data.Location
	existing.MeetingLink = data.MeetingLink
	existing.Visibility = data.Visibility
	existing.UpdatedAt = time.Now()

	s.state = reduce(s.state, updateEvent{Event: existing})
	return existing, true
}

// DeleteEvent needs the owning project supplied by the caller; the event's
// project reference is a weak one and is not resolved internally.
func (s *Store) DeleteEvent(projectID, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if p, ok := s.state.FindProject(projectID); ok {
		for _, e := range p.Events {
			if e.ID == eventID {
				found = true
				break
			}
		}
	}
	s.state = reduce(s.state, deleteEvent{ProjectID: projectID, EventID: eventID})
	return found
}

func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, n := range s.state.Notifications {
		if n.ID == id {
			found = true
			break
		}
	}
	s.state = reduce(s.state, markNotificationRead{ID: id})
	return found
}

func (s *Store) MarkAllNotificationsRead() {
	s.dispatch(markAllNotificationsRead{})
}

// notifyAssigned builds task-assigned notifications for recipients, prepends
// them to the notification list, and hands them back for live publishing.
// Callers hold the lock.
func (s *Store) notifyAssigned(t models.Task, recipients []string, actorID string, now time.Time) []models.Notification {
	var pending []models.Notification
	actor := actorName(s.state, actorID)
	for _, userID := range recipients {
		if userID == actorID {
			continue
		}
		n := models.Notification{
			ID:                newID(),
			UserID:            userID,
			Type:              models.NotifyTaskAssigned,
			Title:             "Task assigned",
			Message:           fmt.Sprintf("%s assigned you %q", actor, t.Title),
			Link:              "/tasks/" + t.ID,
			RelatedEntityType: "task",
			RelatedEntityID:   t.ID,
			CreatedAt:         now,
		}
		s.state = reduce(s.state, addNotification{Notification: n})
		pending = append(pending, n)
	}
	return pending
}

// notifyCompleted tells the task's creator their task was finished.
func (s *Store) notifyCompleted(t models.Task, now time.Time) []models.Notification {
	if t.CreatedBy == "" {
		return nil
	}
	n := models.Notification{
		ID:                newID(),
		UserID:            t.CreatedBy,
		Type:              models.NotifyTaskCompleted,
		Title:             "Task completed",
		Message:           fmt.Sprintf("%q was marked completed", t.Title),
		Link:              "/tasks/" + t.ID,
		RelatedEntityType: "task",
		RelatedEntityID:   t.ID,
		CreatedAt:         now,
	}
	s.state = reduce(s.state, addNotification{Notification: n})
	return []models.Notification{n}
}

func (s *Store) notifyInvited(e models.Event, actorID string, now time.Time) []models.Notification {
	var pending []models.Notification
	actor := actorName(s.state, actorID)
	for _, a := range e.Attendees {
		if a.TeamMemberID == "" || a.TeamMemberID == actorID {
			continue
		}
		n := models.Notification{
			ID:                newID(),
			UserID:            a.TeamMemberID,
			Type:              models.NotifyEventInvite,
			Title:             "Event invitation",
			Message:           fmt.Sprintf("%s invited you to %q", actor, e.Title),
			Link:              "/events/" + e.ID,
			RelatedEntityType: "event",
			RelatedEntityID:   e.ID,
			CreatedAt:         now,
		}
		s.state = reduce(s.state, addNotification{Notification: n})
		pending = append(pending, n)
	}
	return pending
}

func (s *Store) flush(pending []models.Notification) {
	for _, n := range pending {
		s.publish(n)
	}
}

func actorName(s State, actorID string) string {
	if m, ok := s.TeamMember(actorID); ok {
		return m.Name
	}
	return "Someone"
}

func actorFallback(s State, actorID string) string {
	if actorID != "" {
		return actorID
	}
	if s.CurrentUser != nil {
		return s.CurrentUser.ID
	}
	return ""
}

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// diffStrings returns the members of next that are not in prev.
func diffStrings(next, prev []string) []string {
	var out []string
	for _, n := range next {
		seen := false
		for _, p := range prev {
			if n == p {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, n)
		}
	}
	return out
}
