package store

import (
	"context"
	"time"

	"lifeos/models"

	"github.com/google/uuid"
)

// AddNote prepends a new note and schedules a remote upsert. Empty color
// and category fall back to the app defaults.
func (s *Store) AddNote(content string, reminder *time.Time, color models.NoteColor, category models.NoteCategory) models.Note {
	if color == "" {
		color = models.NoteColorDefault
	}
	if category == "" {
		category = models.NoteCategoryPersonal
	}
	note := models.Note{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: time.Now(),
		Reminder:  reminder,
		Color:     color,
		Category:  category,
	}
	s.mu.Lock()
	s.notes = append([]models.Note{note}, s.notes...)
	s.mu.Unlock()
	s.notify()
	s.pushNote(note)
	return note
}

// UpdateNoteReminder sets or clears a note's reminder and re-arms the
// local notified flag.
func (s *Store) UpdateNoteReminder(id string, reminder *time.Time) {
	updated, ok := s.updateNote(id, func(n *models.Note) {
		n.Reminder = reminder
		n.ReminderNotified = false
	})
	if ok {
		s.notify()
		s.pushNote(updated)
	}
}

// UpdateNoteColor sets a note's color.
func (s *Store) UpdateNoteColor(id string, color models.NoteColor) {
	if updated, ok := s.updateNote(id, func(n *models.Note) { n.Color = color }); ok {
		s.notify()
		s.pushNote(updated)
	}
}

// UpdateNoteCategory sets a note's category.
func (s *Store) UpdateNoteCategory(id string, category models.NoteCategory) {
	if updated, ok := s.updateNote(id, func(n *models.Note) { n.Category = category }); ok {
		s.notify()
		s.pushNote(updated)
	}
}

// MarkNoteNotified records that a reminder fired. Session-local only;
// never synced.
func (s *Store) MarkNoteNotified(id string) {
	if _, ok := s.updateNote(id, func(n *models.Note) { n.ReminderNotified = true }); ok {
		s.notify()
	}
}

// ToggleNoteLock locks the note with the supplied password, or unlocks it
// and clears the password. The store holds the password as given; hashing
// happens at the sync boundary before anything leaves the process.
func (s *Store) ToggleNoteLock(id string, password string) {
	updated, ok := s.updateNote(id, func(n *models.Note) {
		if !n.IsLocked {
			n.IsLocked = true
			n.Password = password
			return
		}
		n.IsLocked = false
		n.Password = ""
	})
	if ok {
		s.notify()
		s.pushNote(updated)
	}
}

// DeleteNote removes the note locally and schedules a remote delete.
func (s *Store) DeleteNote(id string) {
	s.mu.Lock()
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.mu.Unlock()
	s.notify()
	s.push("note delete", func(ctx context.Context, r Syncer) error {
		return r.DeleteNote(ctx, id)
	})
}

// DueNoteReminders returns notes whose reminder has passed and has not
// been flagged as notified yet.
func (s *Store) DueNoteReminders(now time.Time) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []models.Note
	for _, n := range s.notes {
		if n.Reminder != nil && !n.ReminderNotified && !n.Reminder.After(now) {
			due = append(due, n)
		}
	}
	return due
}

func (s *Store) updateNote(id string, fn func(*models.Note)) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			n := s.notes[i]
			fn(&n)
			s.notes[i] = n
			return n, true
		}
	}
	return models.Note{}, false
}

func (s *Store) pushNote(note models.Note) {
	s.push("note upsert", func(ctx context.Context, r Syncer) error {
		return r.SyncNote(ctx, note)
	})
}
