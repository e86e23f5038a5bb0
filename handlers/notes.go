package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"lifeos/models"
	"lifeos/security"

	"github.com/gorilla/mux"
)

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	// Locked note contents are the UI's concern to mask; passwords never
	// leave the process.
	notes := h.Store.Notes()
	for i := range notes {
		notes[i].Password = ""
	}
	writeJSON(w, notes)
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content  string     `json:"content"`
		Reminder *time.Time `json:"reminder"`
		Color    string     `json:"color"`
		Category string     `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	note := h.Store.AddNote(body.Content, body.Reminder,
		models.ParseNoteColor(body.Color),
		models.ParseNoteCategory(body.Category))
	writeJSON(w, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Color    *string         `json:"color"`
		Category *string         `json:"category"`
		Reminder json.RawMessage `json:"reminder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if body.Color != nil {
		h.Store.UpdateNoteColor(id, models.ParseNoteColor(*body.Color))
	}
	if body.Category != nil {
		h.Store.UpdateNoteCategory(id, models.ParseNoteCategory(*body.Category))
	}
	if len(body.Reminder) > 0 {
		if string(body.Reminder) == "null" {
			h.Store.UpdateNoteReminder(id, nil)
		} else {
			var reminder time.Time
			if err := json.Unmarshal(body.Reminder, &reminder); err != nil {
				http.Error(w, "invalid reminder", http.StatusBadRequest)
				return
			}
			h.Store.UpdateNoteReminder(id, &reminder)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.Store.DeleteNote(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusOK)
}

// ToggleNoteLock locks an unlocked note with the supplied password, or
// unlocks a locked one.
func (h *Handler) ToggleNoteLock(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Store.ToggleNoteLock(mux.Vars(r)["id"], body.Password)
	w.WriteHeader(http.StatusOK)
}

// VerifyNotePassword checks a supplied password against a locked note.
func (h *Handler) VerifyNotePassword(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, note := range h.Store.Notes() {
		if note.ID == id {
			if !note.IsLocked {
				http.Error(w, "note is not locked", http.StatusBadRequest)
				return
			}
			writeJSON(w, map[string]bool{
				"valid": security.VerifyNotePassword(note.Password, body.Password),
			})
			return
		}
	}
	http.Error(w, "note not found", http.StatusNotFound)
}
