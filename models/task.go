package models

import "time"

type TaskCategory string
type TaskPriority string
type Recurrence string

// SubTask is one checklist item inside a task.
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Completed      bool         `json:"completed"`
	CreatedAt      time.Time    `json:"createdAt"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty"`
	DueDate        *time.Time   `json:"dueDate,omitempty"`
	Category       TaskCategory `json:"category"`
	Priority       TaskPriority `json:"priority"`
	Recurrence     Recurrence   `json:"recurrence"`
	LastRecurredAt *time.Time   `json:"lastRecurredAt,omitempty"`
	Subtasks       []SubTask    `json:"subtasks"`
}

// RecurrenceElapsed reports whether a full recurrence interval has passed
// since the task was last completed. Daily and weekly intervals are fixed
// spans; monthly follows the calendar.
func (t Task) RecurrenceElapsed(now time.Time) bool {
	if t.Recurrence == RecurrenceNone || t.LastRecurredAt == nil {
		return false
	}
	last := *t.LastRecurredAt
	switch t.Recurrence {
	case RecurrenceDaily:
		return now.Sub(last) >= 24*time.Hour
	case RecurrenceWeekly:
		return now.Sub(last) >= 7*24*time.Hour
	case RecurrenceMonthly:
		return !now.Before(last.AddDate(0, 1, 0))
	}
	return false
}
