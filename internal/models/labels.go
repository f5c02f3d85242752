package models

// Display labels for the enumerated types, keyed the way the edit modals and
// grouped views expect them.

var TaskStatusLabels = map[TaskStatus]string{
	TaskTodo:       "To Do",
	TaskInProgress: "In Progress",
	TaskBlocked:    "Blocked",
	TaskOnHold:     "On Hold",
	TaskUrgent:     "Urgent",
	TaskCompleted:  "Completed",
}

var ProjectStatusLabels = map[ProjectStatus]string{
	ProjectPlanning:  "Planning",
	ProjectActive:    "Active",
	ProjectOnHold:    "On Hold",
	ProjectCompleted: "Completed",
	ProjectArchived:  "Archived",
}

var ClientStatusLabels = map[ClientStatus]string{
	ClientActive:   "Active",
	ClientInactive: "Inactive",
	ClientArchived: "Archived",
}

var PriorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

var EventTypeLabels = map[EventType]string{
	EventMeeting:   "Meeting",
	EventCall:      "Call",
	EventDeadline:  "Deadline",
	EventMilestone: "Milestone",
	EventReminder:  "Reminder",
	EventOther:     "Other",
}

var AttendeeStatusLabels = map[AttendeeStatus]string{
	AttendeePending:   "Pending",
	AttendeeAccepted:  "Accepted",
	AttendeeDeclined:  "Declined",
	AttendeeTentative: "Tentative",
}

func (s TaskStatus) IsComplete() bool { return s == TaskCompleted }

func (s TaskStatus) IsActive() bool { return s == TaskInProgress || s == TaskUrgent }

func (s TaskStatus) IsBlocked() bool { return s == TaskBlocked || s == TaskOnHold }
