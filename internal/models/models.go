package models

import "time"

// TeamMember is a person in the workspace. Members are referenced by ID from
// every assignable or attendee field and are never deleted, only deactivated.
type TeamMember struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         TeamRole  `json:"role"`
	Department   string    `json:"department,omitempty"`
	IsActive     bool      `json:"isActive"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TeamRole string

const (
	RoleAdmin   TeamRole = "admin"
	RoleManager TeamRole = "manager"
	RoleMember  TeamRole = "member"
	RoleViewer  TeamRole = "viewer"
)

// Client owns an ordered sequence of projects and notes. TeamMembers holds
// the IDs of members with access.
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty"`
	Address      string       `json:"address,omitempty"`
	Website      string       `json:"website,omitempty"`
	Logo         string       `json:"logo,omitempty"`
	Status       ClientStatus `json:"status"`
	TeamMembers  []string     `json:"teamMembers"`
	Projects     []Project    `json:"projects"`
	Notes        []Note       `json:"notes"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientArchived ClientStatus = "archived"
)

// InternalSpace is the client-less container for internal work. Same shape as
// Client minus the contact fields.
type InternalSpace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	TeamMembers []string  `json:"teamMembers"`
	Projects    []Project `json:"projects"`
	Notes       []Note    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project belongs to exactly one parent container: ClientID xor
// InternalSpaceID is set, never both, never neither.
type Project struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	ClientID        string        `json:"clientId,omitempty"`
	InternalSpaceID string        `json:"internalSpaceId,omitempty"`
	Status          ProjectStatus `json:"status"`
	Priority        Priority      `json:"priority"`
	StartDate       *time.Time    `json:"startDate,omitempty"`
	DueDate         *time.Time    `json:"dueDate,omitempty"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
	TeamMembers     []string      `json:"teamMembers"`
	Tasks           []Task        `json:"tasks"`
	Events          []Event       `json:"events"`
	Lists           []List        `json:"lists"`
	Notes           []Note        `json:"notes"`
	Tags            []string      `json:"tags"`
	CreatedBy       string        `json:"createdBy"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Task lives inside one project (and optionally one list within it).
// CompletedAt is set the first time Status transitions into completed and is
// never cleared by later edits, even if the status leaves completed again.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	ProjectID      string     `json:"projectId"`
	ListID         string     `json:"listId,omitempty"`
	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	Assignees      []string   `json:"assignees"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	DueTime        string     `json:"dueTime,omitempty"` // HH:mm
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty"`
	ActualHours    *float64   `json:"actualHours,omitempty"`
	Tags           []string   `json:"tags"`
	Notes          []Note     `json:"notes"`
	Subtasks       []Subtask  `json:"subtasks"`
	Dependencies   []string   `json:"dependencies"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskOnHold     TaskStatus = "on-hold"
	TaskUrgent     TaskStatus = "urgent"
	TaskCompleted  TaskStatus = "completed"
)

// Subtask has no lifecycle of its own beyond its parent task.
type Subtask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
}

// Event is a calendar entry attached to a project. Attendees carry a
// display-name snapshot taken when the event was created.
type Event struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	ProjectID       string               `json:"projectId,omitempty"`
	ClientID        string               `json:"clientId,omitempty"`
	InternalSpaceID string               `json:"internalSpaceId,omitempty"`
	Type            EventType            `json:"type"`
	StartDate       time.Time            `json:"startDate"`
	StartTime       string               `json:"startTime"` // HH:mm
	EndDate         time.Time            `json:"endDate"`
	EndTime         string               `json:"endTime"` // HH:mm
	AllDay          bool                 `json:"allDay"`
	Location        string               `json:"location,omitempty"`
	MeetingLink     string               `json:"meetingLink,omitempty"`
	Attendees       []EventAttendee      `json:"attendees"`
	Visibility      EventVisibility      `json:"visibility"`
	Recurrence      *EventRecurrence     `json:"recurrence,omitempty"`
	Reminders       []EventReminderEntry `json:"reminders"`
	Notes           []Note               `json:"notes"`
	CreatedBy       string               `json:"createdBy"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type EventType string

const (
	EventMeeting   EventType = "meeting"
	EventCall      EventType = "call"
	EventDeadline  EventType = "deadline"
	EventMilestone EventType = "milestone"
	EventReminder  EventType = "reminder"
	EventOther     EventType = "other"
)

type EventAttendee struct {
	ID             string         `json:"id"`
	TeamMemberID   string         `json:"teamMemberId,omitempty"`
	ExternalEmail  string         `json:"externalEmail,omitempty"`
	Name           string         `json:"name"`
	Status         AttendeeStatus `json:"status"`
	CanViewDetails bool           `json:"canViewDetails"`
	Notified       bool           `json:"notified"`
}

type AttendeeStatus string

const (
	AttendeePending   AttendeeStatus = "pending"
	AttendeeAccepted  AttendeeStatus = "accepted"
	AttendeeDeclined  AttendeeStatus = "declined"
	AttendeeTentative AttendeeStatus = "tentative"
)

type EventVisibility string

const (
	VisibilityPublic   EventVisibility = "public"
	VisibilityPrivate  EventVisibility = "private"
	VisibilityTeamOnly EventVisibility = "team-only"
)

type EventRecurrence struct {
	Pattern     RecurrencePattern `json:"pattern"`
	Interval    int               `json:"interval"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	Occurrences int               `json:"occurrences,omitempty"`
	DaysOfWeek  []int             `json:"daysOfWeek,omitempty"` // 0-6, Sunday first
	DayOfMonth  int               `json:"dayOfMonth,omitempty"`
}

type RecurrencePattern string

const (
	RecurDaily   RecurrencePattern = "daily"
	RecurWeekly  RecurrencePattern = "weekly"
	RecurMonthly RecurrencePattern = "monthly"
	RecurYearly  RecurrencePattern = "yearly"
)

type EventReminderEntry struct {
	ID   string       `json:"id"`
	Type ReminderType `json:"type"`
	Time int          `json:"time"` // minutes before event
	Sent bool         `json:"sent"`
}

type ReminderType string

const (
	ReminderEmail ReminderType = "email"
	ReminderPush  ReminderType = "push"
	ReminderInApp ReminderType = "in-app"
)

// List is a named, ordered bucket of tasks within one project.
type List struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ProjectID   string    `json:"projectId"`
	Color       string    `json:"color,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	Tasks       []Task    `json:"tasks"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Note is free text attached to exactly one parent entity, identified by the
// (ParentType, ParentID) pair.
type Note struct {
	ID          string         `json:"id"`
	Content     string         `json:"content"`
	AuthorID    string         `json:"authorId"`
	ParentType  NoteParentType `json:"parentType"`
	ParentID    string         `json:"parentId"`
	Mentions    []Mention      `json:"mentions"`
	Attachments []Attachment   `json:"attachments"`
	Replies     []Reply        `json:"replies"`
	IsPinned    bool           `json:"isPinned"`
	IsPrivate   bool           `json:"isPrivate"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type NoteParentType string

const (
	NoteParentClient        NoteParentType = "client"
	NoteParentProject       NoteParentType = "project"
	NoteParentTask          NoteParentType = "task"
	NoteParentEvent         NoteParentType = "event"
	NoteParentInternalSpace NoteParentType = "internal-space"
)

type Mention struct {
	ID           string `json:"id"`
	TeamMemberID string `json:"teamMemberId"`
	StartIndex   int    `json:"startIndex"`
	EndIndex     int    `json:"endIndex"`
	Notified     bool   `json:"notified"`
}

type Attachment struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Reply struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	AuthorID    string       `json:"authorId"`
	NoteID      string       `json:"noteId"`
	Mentions    []Mention    `json:"mentions"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Notification is addressed to one member. Notifications live in a flat list
// on the workspace state, not inside the containment tree.
type Notification struct {
	ID                string           `json:"id"`
	UserID            string           `json:"userId"`
	Type              NotificationType `json:"type"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	Link              string           `json:"link,omitempty"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty"`
	RelatedEntityID   string           `json:"relatedEntityId,omitempty"`
	IsRead            bool             `json:"isRead"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type NotificationType string

const (
	NotifyMention       NotificationType = "mention"
	NotifyTaskAssigned  NotificationType = "task-assigned"
	NotifyTaskDue       NotificationType = "task-due"
	NotifyTaskCompleted NotificationType = "task-completed"
	NotifyEventInvite   NotificationType = "event-invite"
	NotifyEventReminder NotificationType = "event-reminder"
	NotifyEventUpdated  NotificationType = "event-updated"
	NotifyNoteReply     NotificationType = "note-reply"
	NotifyProjectUpdate NotificationType = "project-update"
	NotifySystem        NotificationType = "system"
)
