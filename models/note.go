package models

import "time"

type NoteColor string
type NoteCategory string

type Note struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	Reminder  *time.Time `json:"reminder,omitempty"`
	// ReminderNotified is session-local bookkeeping for the reminder
	// checker. It is never pushed to the remote mirror.
	ReminderNotified bool         `json:"reminderNotified,omitempty"`
	IsLocked         bool         `json:"isLocked,omitempty"`
	Password         string       `json:"password,omitempty"`
	Color            NoteColor    `json:"color"`
	Category         NoteCategory `json:"category"`
}
