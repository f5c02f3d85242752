// Package seed builds the sample workspace graph used at startup when no
// other data source is configured, and by tests that want a realistic tree.
package seed

import (
	"strconv"
	"time"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/mention"
	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

// Workspace returns a populated initial state. Entity IDs are stable so that
// links between the sample entities (assignees, mentions, notifications)
// stay valid. passwordHash is attached to every member so any of them can
// sign in with the demo password.
func Workspace(now time.Time, passwordHash string) store.State {
	members := teamMembers(now, passwordHash)
	current := members[0]

	s := store.State{
		CurrentUser:    &current,
		TeamMembers:    members,
		Clients:        clients(now),
		InternalSpaces: internalSpaces(now),
		Notifications:  notifications(now),
		SelectedView:   models.ViewTimeline,
		Filters: models.FilterState{
			Status:        []models.TaskStatus{},
			Priority:      []models.Priority{},
			Assignees:     []string{},
			Tags:          []string{},
			ShowCompleted: true,
		},
		Sort: models.SortState{
			Field:     models.SortByDueDate,
			Direction: models.SortAsc,
		},
	}
	return s
}

func teamMembers(now time.Time, hash string) []models.TeamMember {
	mk := func(id, name, email string, role models.TeamRole, dept string) models.TeamMember {
		return models.TeamMember{
			ID:           id,
			Name:         name,
			Email:        email,
			Role:         role,
			Department:   dept,
			IsActive:     true,
			PasswordHash: hash,
			CreatedAt:    now.AddDate(0, -6, 0),
			UpdatedAt:    now.AddDate(0, -6, 0),
		}
	}
	return []models.TeamMember{
		mk("tm-1", "Alex Johnson", "alex.johnson@company.com", models.RoleAdmin, "Management"),
		mk("tm-2", "Sarah Chen", "sarah.chen@company.com", models.RoleManager, "Design"),
		mk("tm-3", "Mike Wilson", "mike.wilson@company.com", models.RoleMember, "Engineering"),
		mk("tm-4", "Emily Davis", "emily.davis@company.com", models.RoleMember, "Engineering"),
		mk("tm-5", "David Kim", "david.kim@company.com", models.RoleViewer, "QA"),
	}
}

func clients(now time.Time) []models.Client {
	return []models.Client{
		{
			ID:           "client-1",
			Name:         "Acme Corporation",
			ContactEmail: "contact@acme.example",
			Website:      "https://acme.example",
			Status:       models.ClientActive,
			TeamMembers:  []string{"tm-1", "tm-2", "tm-3"},
			Projects: []models.Project{
				websiteRedesign(now),
			},
			Notes: []models.Note{
				note("note-c1", "Kickoff went well. @[Sarah Chen](tm-2) owns the design track.",
					"tm-1", models.NoteParentClient, "client-1", now.AddDate(0, 0, -14)),
			},
			CreatedAt: now.AddDate(0, -3, 0),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:           "client-2",
			Name:         "TechStart Inc",
			ContactEmail: "hello@techstart.example",
			Status:       models.ClientActive,
			TeamMembers:  []string{"tm-3", "tm-4"},
			Projects: []models.Project{
				mobileApp(now),
			},
			Notes:     []models.Note{},
			CreatedAt: now.AddDate(0, -2, 0),
			UpdatedAt: now.AddDate(0, 0, -5),
		},
	}
}

func websiteRedesign(now time.Time) models.Project {
	start := now.AddDate(0, 0, -21)
	due := now.AddDate(0, 0, 30)
	dueSoon := now.AddDate(0, 0, 2)
	overdue := now.AddDate(0, 0, -3)
	completedAt := now.AddDate(0, 0, -5)

	return models.Project{
		ID:          "proj-1",
		Name:        "Website Redesign",
		Description: "Full visual and IA refresh of the marketing site",
		ClientID:    "client-1",
		Status:      models.ProjectActive,
		Priority:    models.PriorityHigh,
		StartDate:   &start,
		DueDate:     &due,
		TeamMembers: []string{"tm-2", "tm-3", "tm-4"},
		Tasks: []models.Task{
			{
				ID:          "task-1",
				Title:       "Design system setup",
				Description: "Tokens, typography, and component inventory",
				ProjectID:   "proj-1",
				Status:      models.TaskCompleted,
				Priority:    models.PriorityHigh,
				Assignees:   []string{"tm-2"},
				DueDate:     &overdue,
				CompletedAt: &completedAt,
				Tags:        []string{"design"},
				Notes:       []models.Note{},
				Subtasks: []models.Subtask{
					{ID: "st-1", Title: "Define color palette", Completed: true},
					{ID: "st-2", Title: "Set up typography scale", Completed: true},
				},
				Dependencies: []string{},
				CreatedBy:    "tm-1",
				CreatedAt:    now.AddDate(0, 0, -20),
				UpdatedAt:    completedAt,
			},
			{
				ID:          "task-2",
				Title:       "API integration",
				Description: "Wire the CMS content endpoints",
				ProjectID:   "proj-1",
				Status:      models.TaskInProgress,
				Priority:    models.PriorityUrgent,
				Assignees:   []string{"tm-3", "tm-4"},
				DueDate:     &dueSoon,
				DueTime:     "17:00",
				Tags:        []string{"backend"},
				Notes: []models.Note{
					note("note-t2", "Blocked on CMS credentials, pinged @[Alex Johnson](tm-1).",
						"tm-3", models.NoteParentTask, "task-2", now.AddDate(0, 0, -1)),
				},
				Subtasks: []models.Subtask{
					{ID: "st-3", Title: "Set up API client", Completed: true},
					{ID: "st-4", Title: "Implement auth endpoints", Completed: false},
				},
				Dependencies: []string{"task-1"},
				CreatedBy:    "tm-1",
				CreatedAt:    now.AddDate(0, 0, -10),
				UpdatedAt:    now.AddDate(0, 0, -1),
			},
			{
				ID:           "task-3",
				Title:        "User testing preparation",
				ProjectID:    "proj-1",
				Status:       models.TaskTodo,
				Priority:     models.PriorityMedium,
				Assignees:    []string{"tm-5"},
				Tags:         []string{"research"},
				Notes:        []models.Note{},
				Subtasks:     []models.Subtask{},
				Dependencies: []string{},
				CreatedBy:    "tm-2",
				CreatedAt:    now.AddDate(0, 0, -7),
				UpdatedAt:    now.AddDate(0, 0, -7),
			},
		},
		Events: []models.Event{
			{
				ID:        "event-1",
				Title:     "Sprint Planning",
				ProjectID: "proj-1",
				Type:      models.EventMeeting,
				StartDate: dates.StartOfDay(now.AddDate(0, 0, 1)),
				StartTime: "10:00",
				EndDate:   dates.StartOfDay(now.AddDate(0, 0, 1)),
				EndTime:   "11:00",
				Location:  "Conference Room A",
				Attendees: []models.EventAttendee{
					{ID: "att-1", TeamMemberID: "tm-1", Name: "Alex Johnson", Status: models.AttendeeAccepted, CanViewDetails: true, Notified: true},
					{ID: "att-2", TeamMemberID: "tm-2", Name: "Sarah Chen", Status: models.AttendeeAccepted, CanViewDetails: true, Notified: true},
					{ID: "att-3", TeamMemberID: "tm-3", Name: "Mike Wilson", Status: models.AttendeePending, CanViewDetails: true, Notified: true},
				},
				Visibility: models.VisibilityPublic,
				Reminders:  []models.EventReminderEntry{},
				Notes:      []models.Note{},
				CreatedBy:  "tm-1",
				CreatedAt:  now.AddDate(0, 0, -3),
				UpdatedAt:  now.AddDate(0, 0, -3),
			},
			{
				ID:        "event-2",
				Title:     "Design Review",
				ProjectID: "proj-1",
				Type:      models.EventMeeting,
				StartDate: dates.StartOfDay(now.AddDate(0, 0, 4)),
				StartTime: "14:00",
				EndDate:   dates.StartOfDay(now.AddDate(0, 0, 4)),
				EndTime:   "15:30",
				Attendees: []models.EventAttendee{
					{ID: "att-4", TeamMemberID: "tm-2", Name: "Sarah Chen", Status: models.AttendeeAccepted, CanViewDetails: true, Notified: true},
					{ID: "att-5", TeamMemberID: "tm-4", Name: "Emily Davis", Status: models.AttendeeTentative, CanViewDetails: true, Notified: true},
				},
				Visibility: models.VisibilityTeamOnly,
				Reminders:  []models.EventReminderEntry{},
				Notes:      []models.Note{},
				CreatedBy:  "tm-2",
				CreatedAt:  now.AddDate(0, 0, -2),
				UpdatedAt:  now.AddDate(0, 0, -2),
			},
		},
		Lists:     []models.List{},
		Notes:     []models.Note{},
		Tags:      []string{"website", "q3"},
		CreatedBy: "tm-1",
		CreatedAt: now.AddDate(0, 0, -21),
		UpdatedAt: now.AddDate(0, 0, -1),
	}
}

func mobileApp(now time.Time) models.Project {
	start := now.AddDate(0, 0, -10)
	due := now.AddDate(0, 2, 0)

	return models.Project{
		ID:          "proj-2",
		Name:        "Mobile App MVP",
		Description: "First shippable cut of the companion app",
		ClientID:    "client-2",
		Status:      models.ProjectPlanning,
		Priority:    models.PriorityMedium,
		StartDate:   &start,
		DueDate:     &due,
		TeamMembers: []string{"tm-3", "tm-4"},
		Tasks: []models.Task{
			{
				ID:           "task-4",
				Title:        "Performance optimization",
				ProjectID:    "proj-2",
				Status:       models.TaskTodo,
				Priority:     models.PriorityLow,
				Assignees:    []string{},
				Tags:         []string{},
				Notes:        []models.Note{},
				Subtasks:     []models.Subtask{},
				Dependencies: []string{},
				CreatedBy:    "tm-3",
				CreatedAt:    now.AddDate(0, 0, -4),
				UpdatedAt:    now.AddDate(0, 0, -4),
			},
		},
		Events:    []models.Event{},
		Lists:     []models.List{},
		Notes:     []models.Note{},
		Tags:      []string{"mobile"},
		CreatedBy: "tm-1",
		CreatedAt: now.AddDate(0, 0, -10),
		UpdatedAt: now.AddDate(0, 0, -4),
	}
}

func internalSpaces(now time.Time) []models.InternalSpace {
	return []models.InternalSpace{
		{
			ID:          "space-1",
			Name:        "Engineering",
			Description: "Internal platform and tooling work",
			Icon:        "wrench",
			Color:       "#4f46e5",
			TeamMembers: []string{"tm-1", "tm-3", "tm-4", "tm-5"},
			Projects: []models.Project{
				{
					ID:              "proj-3",
					Name:            "Security Hardening",
					InternalSpaceID: "space-1",
					Status:          models.ProjectActive,
					Priority:        models.PriorityUrgent,
					TeamMembers:     []string{"tm-3", "tm-5"},
					Tasks: []models.Task{
						{
							ID:        "task-5",
							Title:     "Security audit",
							ProjectID: "proj-3",
							Status:    models.TaskInProgress,
							Priority:  models.PriorityUrgent,
							Assignees: []string{"tm-5"},
							Tags:      []string{"security"},
							Notes:     []models.Note{},
							Subtasks: []models.Subtask{
								{ID: "st-6", Title: "Review authentication flow", Completed: false},
								{ID: "st-7", Title: "Audit API endpoints", Completed: false},
							},
							Dependencies: []string{},
							CreatedBy:    "tm-1",
							CreatedAt:    now.AddDate(0, 0, -6),
							UpdatedAt:    now.AddDate(0, 0, -2),
						},
					},
					Events:    []models.Event{},
					Lists:     []models.List{},
					Notes:     []models.Note{},
					Tags:      []string{"security"},
					CreatedBy: "tm-1",
					CreatedAt: now.AddDate(0, 0, -8),
					UpdatedAt: now.AddDate(0, 0, -2),
				},
			},
			Notes:     []models.Note{},
			CreatedAt: now.AddDate(0, -4, 0),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
	}
}

func notifications(now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:                "notif-1",
			UserID:            "tm-1",
			Type:              models.NotifyMention,
			Title:             "You were mentioned",
			Message:           "Mike Wilson mentioned you on \"API integration\"",
			Link:              "/tasks/task-2",
			RelatedEntityType: "task",
			RelatedEntityID:   "task-2",
			CreatedAt:         now.AddDate(0, 0, -1),
		},
		{
			ID:                "notif-2",
			UserID:            "tm-3",
			Type:              models.NotifyEventInvite,
			Title:             "Event invitation",
			Message:           "Alex Johnson invited you to \"Sprint Planning\"",
			Link:              "/events/event-1",
			RelatedEntityType: "event",
			RelatedEntityID:   "event-1",
			IsRead:            true,
			CreatedAt:         now.AddDate(0, 0, -3),
		},
	}
}

// note builds a note with its mention spans parsed out of the content.
func note(id, content, authorID string, parentType models.NoteParentType, parentID string, at time.Time) models.Note {
	var mentions []models.Mention
	for i, p := range mention.Parse(content) {
		mentions = append(mentions, models.Mention{
			ID:           id + "-m" + strconv.Itoa(i+1),
			TeamMemberID: p.TeamMemberID,
			StartIndex:   p.StartIndex,
			EndIndex:     p.EndIndex,
			Notified:     true,
		})
	}
	if mentions == nil {
		mentions = []models.Mention{}
	}
	return models.Note{
		ID:          id,
		Content:     content,
		AuthorID:    authorID,
		ParentType:  parentType,
		ParentID:    parentID,
		Mentions:    mentions,
		Attachments: []models.Attachment{},
		Replies:     []models.Reply{},
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}
