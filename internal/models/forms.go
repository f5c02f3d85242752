package models

// Form payloads carry what the edit modals submit. They are deliberately not
// the entity shapes: ids, timestamps, and owned collections are assigned by
// the store, never by the caller. Dates arrive as strings ("2006-01-02" or
// RFC 3339) and are parsed when the entity is built.

type ClientFormData struct {
	Name         string       `json:"name" binding:"required"`
	ContactEmail string       `json:"contactEmail"`
	ContactPhone string       `json:"contactPhone"`
	Address      string       `json:"address"`
	Website      string       `json:"website"`
	Status       ClientStatus `json:"status" binding:"required"`
	TeamMembers  []string     `json:"teamMembers"`
}

type ProjectFormData struct {
	Name            string        `json:"name" binding:"required"`
	Description     string        `json:"description"`
	ClientID        string        `json:"clientId"`
	InternalSpaceID string        `json:"internalSpaceId"`
	Status          ProjectStatus `json:"status" binding:"required"`
	Priority        Priority      `json:"priority" binding:"required"`
	StartDate       string        `json:"startDate"`
	DueDate         string        `json:"dueDate"`
	TeamMembers     []string      `json:"teamMembers"`
	Tags            []string      `json:"tags"`
}

type TaskFormData struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ProjectID   string     `json:"projectId"`
	ListID      string     `json:"listId"`
	Status      TaskStatus `json:"status" binding:"required"`
	Priority    Priority   `json:"priority" binding:"required"`
	Assignees   []string   `json:"assignees"`
	DueDate     string     `json:"dueDate"`
	DueTime     string     `json:"dueTime"`
	Tags        []string   `json:"tags"`
}

type EventFormData struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	ProjectID   string          `json:"projectId"`
	Type        EventType       `json:"type" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required"`
	StartTime   string          `json:"startTime"`
	EndDate     string          `json:"endDate" binding:"required"`
	EndTime     string          `json:"endTime"`
	AllDay      bool            `json:"allDay"`
	Location    string          `json:"location"`
	MeetingLink string          `json:"meetingLink"`
	Attendees   []string        `json:"attendees"` // team member IDs
	Visibility  EventVisibility `json:"visibility" binding:"required"`
}

type ListFormData struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId" binding:"required"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}
