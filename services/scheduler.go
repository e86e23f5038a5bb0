package services

import (
	"log"
	"time"

	"lifeos/store"
)

// StartScheduler starts the background maintenance loops: a daily sweep
// that flips elapsed recurring tasks back to pending, and a minute
// ticker that fires note reminders.
func StartScheduler(st *store.Store) {
	log.Println("Starting task scheduler...")

	go startRecurrenceSweep(st)
	go startReminderCheck(st)
}

// startRecurrenceSweep runs the recurring-task sweep once immediately and
// then daily at midnight.
func startRecurrenceSweep(st *store.Store) {
	sweep(st)

	for {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		time.Sleep(midnight.Sub(now))

		sweep(st)

		// Small delay so a fast loop doesn't run the sweep twice.
		time.Sleep(time.Second)
	}
}

func sweep(st *store.Store) {
	if reset := st.SweepRecurringTasks(time.Now()); reset > 0 {
		log.Printf("Recurrence sweep reset %d task(s)", reset)
	}
}

// startReminderCheck marks due note reminders as notified. Delivering
// the notification itself is the UI's job; the log line is the server's
// record that it fired.
func startReminderCheck(st *store.Store) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		for _, note := range st.DueNoteReminders(now) {
			log.Printf("Note reminder due: %s", note.ID)
			st.MarkNoteNotified(note.ID)
		}
	}
}
