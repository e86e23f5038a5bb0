package handlers

import (
	"net/http"
	"testing"

	"lifeos/models"
)

func TestAddNoteHandler(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/notes", map[string]interface{}{
		"content":  "remember",
		"color":    "blue",
		"category": "work",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var note models.Note
	decodeBody(t, rec, &note)
	if note.Content != "remember" || note.Color != models.NoteColorBlue {
		t.Errorf("Unexpected note: %+v", note)
	}
}

func TestAddNoteRequiresContent(t *testing.T) {
	_, router := newTestHandler(t)

	rec := doJSON(t, router, http.MethodPost, "/notes", map[string]interface{}{"content": ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestGetNotesBlanksPasswords(t *testing.T) {
	h, router := newTestHandler(t)
	note := h.Store.AddNote("secret", nil, "", "")
	h.Store.ToggleNoteLock(note.ID, "hunter2")

	rec := doJSON(t, router, http.MethodGet, "/notes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var notes []models.Note
	decodeBody(t, rec, &notes)
	if len(notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(notes))
	}
	if notes[0].Password != "" {
		t.Error("Expected password blanked in responses")
	}
	if !notes[0].IsLocked {
		t.Error("Expected locked flag visible")
	}

	// The store still holds it for verification.
	if h.Store.Notes()[0].Password != "hunter2" {
		t.Error("Expected store to keep the password")
	}
}

func TestNoteLockAndVerify(t *testing.T) {
	h, router := newTestHandler(t)
	note := h.Store.AddNote("secret", nil, "", "")

	rec := doJSON(t, router, http.MethodPost, "/notes/"+note.ID+"/lock", map[string]interface{}{
		"password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	rec = doJSON(t, router, http.MethodPost, "/notes/"+note.ID+"/verify", map[string]interface{}{
		"password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &result)
	if !result.Valid {
		t.Error("Expected right password to verify")
	}

	rec = doJSON(t, router, http.MethodPost, "/notes/"+note.ID+"/verify", map[string]interface{}{
		"password": "wrong",
	})
	decodeBody(t, rec, &result)
	if result.Valid {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestVerifyUnlockedNoteRejected(t *testing.T) {
	h, router := newTestHandler(t)
	note := h.Store.AddNote("open", nil, "", "")

	rec := doJSON(t, router, http.MethodPost, "/notes/"+note.ID+"/verify", map[string]interface{}{
		"password": "whatever",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unlocked note, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/notes/missing/verify", map[string]interface{}{
		"password": "whatever",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown note, got %d", rec.Code)
	}
}

func TestUpdateNoteReminderNullClears(t *testing.T) {
	h, router := newTestHandler(t)
	note := h.Store.AddNote("call mom", nil, "", "")

	rec := doJSON(t, router, http.MethodPut, "/notes/"+note.ID, map[string]interface{}{
		"reminder": "2026-09-01T09:00:00Z",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if h.Store.Notes()[0].Reminder == nil {
		t.Fatal("Expected reminder set")
	}

	rec = doJSON(t, router, http.MethodPut, "/notes/"+note.ID, map[string]interface{}{
		"reminder": nil,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if h.Store.Notes()[0].Reminder != nil {
		t.Error("Expected reminder cleared by explicit null")
	}
}
