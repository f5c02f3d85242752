package query

import (
	"time"

	"github.com/workdeck/workdeck/internal/dates"
	"github.com/workdeck/workdeck/internal/models"
)

// CalendarDay is one cell of the month grid: the cell's date, whether it
// belongs to the displayed month, and the tasks (by due date) and events (by
// start date) falling on it, independent of time of day.
type CalendarDay struct {
	Date    time.Time      `json:"date"`
	InMonth bool           `json:"inMonth"`
	Tasks   []models.Task  `json:"tasks"`
	Events  []models.Event `json:"events"`
}

// CalendarGrid builds the whole-week month grid for year/month and buckets
// every dated task and event into its day cell.
func CalendarGrid(year int, month time.Month, tasks []models.Task, events []models.Event, loc *time.Location) []CalendarDay {
	days := dates.CalendarDays(year, month, loc)
	grid := make([]CalendarDay, 0, len(days))

	for _, day := range days {
		cell := CalendarDay{
			Date:    day,
			InMonth: day.Month() == month,
			Tasks:   []models.Task{},
			Events:  []models.Event{},
		}
		for _, t := range tasks {
			if t.DueDate != nil && dates.SameDay(*t.DueDate, day) {
				cell.Tasks = append(cell.Tasks, t)
			}
		}
		for _, e := range events {
			if dates.SameDay(e.StartDate, day) {
				cell.Events = append(cell.Events, e)
			}
		}
		grid = append(grid, cell)
	}
	return grid
}
