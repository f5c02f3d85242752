package query

import "github.com/workdeck/workdeck/internal/models"

// GroupBy partitions items by a derived key. Membership is exclusive: each
// item lands in exactly one group.
func GroupBy[T any](items []T, key func(T) string) map[string][]T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// GroupTasksByStatus and GroupTasksByPriority group on the literal field
// value, matching how the list view keys its sections.

func GroupTasksByStatus(tasks []models.Task) map[string][]models.Task {
	return GroupBy(tasks, func(t models.Task) string { return string(t.Status) })
}

func GroupTasksByPriority(tasks []models.Task) map[string][]models.Task {
	return GroupBy(tasks, func(t models.Task) string { return string(t.Priority) })
}

// GroupTasksByAssignee fans tasks out: a task with N assignees appears under
// all N member names. Tasks with no assignees collect under "Unassigned",
// and that group is dropped when it ends up empty.
func GroupTasksByAssignee(tasks []models.Task, members []models.TeamMember) map[string][]models.Task {
	const unassigned = "Unassigned"
	groups := map[string][]models.Task{unassigned: {}}

	for _, t := range tasks {
		if len(t.Assignees) == 0 {
			groups[unassigned] = append(groups[unassigned], t)
			continue
		}
		for _, id := range t.Assignees {
			name := "Unknown"
			if m := FindTeamMember(members, id); m != nil {
				name = m.Name
			}
			groups[name] = append(groups[name], t)
		}
	}

	if len(groups[unassigned]) == 0 {
		delete(groups, unassigned)
	}
	return groups
}

// FindTeamMember returns the member with the given ID, or nil.
func FindTeamMember(members []models.TeamMember, id string) *models.TeamMember {
	for i := range members {
		if members[i].ID == id {
			return &members[i]
		}
	}
	return nil
}

// AssigneeNames resolves a task's assignee IDs to display names, skipping
// IDs that no longer resolve.
func AssigneeNames(task models.Task, members []models.TeamMember) []string {
	var names []string
	for _, id := range task.Assignees {
		if m := FindTeamMember(members, id); m != nil {
			names = append(names, m.Name)
		}
	}
	return names
}
