// Package export renders tasks into formats other tools can import
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/thenoetrevino/lista/internal/models"
)

const productID = "-//lista//lista task export//EN"

// Calendar builds a VCALENDAR holding one VTODO per task.
// now stamps every entry with DTSTAMP.
func Calendar(tasks []*models.Task, priorities []*models.Priority, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	ranks := priorityRanks(priorities)

	for _, t := range tasks {
		todo := cal.AddTodo(TaskUID(t.ID))
		todo.SetDtStampTime(now)
		todo.SetSummary(t.Name)
		if t.Description != "" {
			todo.SetDescription(t.Description)
		}
		if !t.Deadline.IsZero() {
			todo.SetDueAt(t.Deadline)
		}
		if rank, ok := ranks[t.PriorityID]; ok {
			todo.SetPriority(rank)
		}
		if t.Done {
			todo.SetStatus(ics.ObjectStatusCompleted)
		} else {
			todo.SetStatus(ics.ObjectStatusNeedsAction)
		}
	}

	return cal
}

// WriteICS serializes Calendar(tasks, priorities, now) to w
func WriteICS(w io.Writer, tasks []*models.Task, priorities []*models.Priority, now time.Time) error {
	cal := Calendar(tasks, priorities, now)
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// TaskUID is the stable UID a task is exported under
func TaskUID(id int) string {
	return fmt.Sprintf("task-%d@lista", id)
}

// priorityRanks spreads the priority levels, in storage order, over the
// iCalendar range 1 (highest) to 9 (lowest).
func priorityRanks(priorities []*models.Priority) map[int]int {
	ranks := make(map[int]int, len(priorities))
	switch len(priorities) {
	case 0:
	case 1:
		ranks[priorities[0].ID] = 1
	default:
		last := len(priorities) - 1
		for i, p := range priorities {
			ranks[p.ID] = 1 + i*8/last
		}
	}
	return ranks
}
