package models

import "time"

// FilterState holds the active task-filter dimensions. Empty slices mean "no
// restriction on that dimension", not "match nothing".
type FilterState struct {
	Search        string       `json:"search"`
	Status        []TaskStatus `json:"status"`
	Priority      []Priority   `json:"priority"`
	Assignees     []string     `json:"assignees"`
	Tags          []string     `json:"tags"`
	DateRange     *DateRange   `json:"dateRange,omitempty"`
	ShowCompleted bool         `json:"showCompleted"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FilterPatch is a partial FilterState update: nil fields leave the current
// value untouched.
type FilterPatch struct {
	Search         *string       `json:"search"`
	Status         *[]TaskStatus `json:"status"`
	Priority       *[]Priority   `json:"priority"`
	Assignees      *[]string     `json:"assignees"`
	Tags           *[]string     `json:"tags"`
	DateRange      *DateRange    `json:"dateRange"`
	ClearDateRange bool          `json:"clearDateRange"`
	ShowCompleted  *bool         `json:"showCompleted"`
}

type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

type SortField string

const (
	SortByTitle     SortField = "title"
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type ViewType string

const (
	ViewTimeline ViewType = "timeline"
	ViewCalendar ViewType = "calendar"
	ViewList     ViewType = "list"
)
