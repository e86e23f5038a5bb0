package store

import (
	"context"
	"time"

	"lifeos/models"

	"github.com/google/uuid"
)

// AddTask appends a new task and schedules a remote upsert of exactly
// that task. Empty category, priority and recurrence fall back to the
// app defaults. Title validation is the caller's responsibility.
func (s *Store) AddTask(title string, dueDate *time.Time, category models.TaskCategory, priority models.TaskPriority, recurrence models.Recurrence) models.Task {
	if category == "" {
		category = models.TaskCategoryOther
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if recurrence == "" {
		recurrence = models.RecurrenceNone
	}
	task := models.Task{
		ID:         uuid.NewString(),
		Title:      title,
		CreatedAt:  time.Now(),
		DueDate:    dueDate,
		Category:   category,
		Priority:   priority,
		Recurrence: recurrence,
		Subtasks:   []models.SubTask{},
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	s.notify()
	s.pushTask(task)
	return task
}

// ToggleTask flips a task's completed flag. Completing a recurring task
// additionally stamps lastRecurredAt so the daily sweep knows when the
// next occurrence is due. Unknown ids are a no-op.
func (s *Store) ToggleTask(id string) {
	now := time.Now()
	updated, ok := s.updateTask(id, func(t *models.Task) {
		if !t.Completed {
			t.Completed = true
			t.CompletedAt = &now
			if t.Recurrence != models.RecurrenceNone {
				t.LastRecurredAt = &now
			}
			return
		}
		t.Completed = false
		t.CompletedAt = nil
	})
	if ok {
		s.notify()
		s.pushTask(updated)
	}
}

// DeleteTask removes the task locally and schedules a remote delete.
// Local deletion is final; a failed remote delete is never rolled back.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
	s.notify()
	s.push("task delete", func(ctx context.Context, r Syncer) error {
		return r.DeleteTask(ctx, id)
	})
}

// UpdateTaskCategory sets the category of one task.
func (s *Store) UpdateTaskCategory(id string, category models.TaskCategory) {
	if updated, ok := s.updateTask(id, func(t *models.Task) { t.Category = category }); ok {
		s.notify()
		s.pushTask(updated)
	}
}

// UpdateTaskPriority sets the priority of one task.
func (s *Store) UpdateTaskPriority(id string, priority models.TaskPriority) {
	if updated, ok := s.updateTask(id, func(t *models.Task) { t.Priority = priority }); ok {
		s.notify()
		s.pushTask(updated)
	}
}

// UpdateTaskRecurrence sets the recurrence interval of one task.
func (s *Store) UpdateTaskRecurrence(id string, recurrence models.Recurrence) {
	if updated, ok := s.updateTask(id, func(t *models.Task) { t.Recurrence = recurrence }); ok {
		s.notify()
		s.pushTask(updated)
	}
}

// UpdateTaskDueDate sets or clears the due date of one task.
func (s *Store) UpdateTaskDueDate(id string, dueDate *time.Time) {
	if updated, ok := s.updateTask(id, func(t *models.Task) { t.DueDate = dueDate }); ok {
		s.notify()
		s.pushTask(updated)
	}
}

// ReorderTasks re-sequences the collection so the named tasks come first
// in the given order, followed by the unnamed ones in their prior
// relative order. Every named task is re-pushed so its order_index lands
// remotely.
func (s *Store) ReorderTasks(orderedIDs []string) {
	s.mu.Lock()
	byID := make(map[string]models.Task, len(s.tasks))
	for _, t := range s.tasks {
		byID[t.ID] = t
	}
	named := make(map[string]bool, len(orderedIDs))
	reordered := make([]models.Task, 0, len(s.tasks))
	var pushed []models.Task
	for _, id := range orderedIDs {
		named[id] = true
		if t, ok := byID[id]; ok {
			reordered = append(reordered, t)
			pushed = append(pushed, t)
		}
	}
	for _, t := range s.tasks {
		if !named[t.ID] {
			reordered = append(reordered, t)
		}
	}
	s.tasks = reordered
	s.mu.Unlock()
	s.notify()
	for _, t := range pushed {
		s.pushTask(t)
	}
}

// AddSubtask appends a checklist item to a task.
func (s *Store) AddSubtask(taskID, title string) {
	sub := models.SubTask{ID: uuid.NewString(), Title: title}
	updated, ok := s.updateTask(taskID, func(t *models.Task) {
		t.Subtasks = append(append([]models.SubTask(nil), t.Subtasks...), sub)
	})
	if ok {
		s.notify()
		s.pushTask(updated)
	}
}

// ToggleSubtask flips one checklist item.
func (s *Store) ToggleSubtask(taskID, subtaskID string) {
	updated, ok := s.updateTask(taskID, func(t *models.Task) {
		subs := append([]models.SubTask(nil), t.Subtasks...)
		for i := range subs {
			if subs[i].ID == subtaskID {
				subs[i].Completed = !subs[i].Completed
			}
		}
		t.Subtasks = subs
	})
	if ok {
		s.notify()
		s.pushTask(updated)
	}
}

// DeleteSubtask removes one checklist item.
func (s *Store) DeleteSubtask(taskID, subtaskID string) {
	updated, ok := s.updateTask(taskID, func(t *models.Task) {
		subs := make([]models.SubTask, 0, len(t.Subtasks))
		for _, st := range t.Subtasks {
			if st.ID != subtaskID {
				subs = append(subs, st)
			}
		}
		t.Subtasks = subs
	})
	if ok {
		s.notify()
		s.pushTask(updated)
	}
}

// SweepRecurringTasks flips completed recurring tasks back to pending
// once their interval has elapsed since lastRecurredAt. Returns how many
// tasks were reset. Run daily by the scheduler.
func (s *Store) SweepRecurringTasks(now time.Time) int {
	s.mu.Lock()
	var due []string
	for _, t := range s.tasks {
		if t.Completed && t.RecurrenceElapsed(now) {
			due = append(due, t.ID)
		}
	}
	s.mu.Unlock()
	for _, id := range due {
		s.ToggleTask(id)
	}
	return len(due)
}

// TaskPosition returns the task's index in display order, or -1.
func (s *Store) TaskPosition(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// updateTask applies fn to the task with the given id under the lock and
// returns the updated copy. Unknown ids return ok=false and change
// nothing.
func (s *Store) updateTask(id string, fn func(*models.Task)) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			fn(&t)
			s.tasks[i] = t
			return t, true
		}
	}
	return models.Task{}, false
}

func (s *Store) pushTask(task models.Task) {
	s.push("task upsert", func(ctx context.Context, r Syncer) error {
		return r.SyncTask(ctx, task)
	})
}
