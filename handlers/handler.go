package handlers

import (
	"encoding/json"
	"net/http"

	"lifeos/middleware"
	"lifeos/prefs"
	"lifeos/remote"
	"lifeos/store"

	"github.com/gorilla/mux"
)

// Handler exposes the store to the UI over HTTP. It owns no state of its
// own; every operation goes through the store, and the remote client is
// only touched when a session wires a sync adapter.
type Handler struct {
	Store  *store.Store
	Prefs  *prefs.Store
	Remote *remote.Client // nil means local-only operation
}

// New creates the HTTP handler set.
func New(st *store.Store, pf *prefs.Store, rc *remote.Client) *Handler {
	return &Handler{Store: st, Prefs: pf, Remote: rc}
}

// RegisterRoutes sets up all API routes on the given router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Public routes (no auth required)
	r.HandleFunc("/health", h.HealthCheck).Methods("GET", "OPTIONS")

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	// Session lifecycle: sign-in wires the sync adapter and pulls,
	// sign-out drops back to local-only.
	protected.HandleFunc("/session", h.StartSession).Methods("POST")
	protected.HandleFunc("/session", h.EndSession).Methods("DELETE")

	protected.HandleFunc("/state", h.GetState).Methods("GET")

	protected.HandleFunc("/tasks", h.GetTasks).Methods("GET")
	protected.HandleFunc("/tasks", h.AddTask).Methods("POST")
	protected.HandleFunc("/tasks/reorder", h.ReorderTasks).Methods("POST")
	protected.HandleFunc("/tasks/{id}", h.UpdateTask).Methods("PUT")
	protected.HandleFunc("/tasks/{id}", h.DeleteTask).Methods("DELETE")
	protected.HandleFunc("/tasks/{id}/toggle", h.ToggleTask).Methods("POST")
	protected.HandleFunc("/tasks/{id}/subtasks", h.AddSubtask).Methods("POST")
	protected.HandleFunc("/tasks/{id}/subtasks/{subtaskId}/toggle", h.ToggleSubtask).Methods("POST")
	protected.HandleFunc("/tasks/{id}/subtasks/{subtaskId}", h.DeleteSubtask).Methods("DELETE")

	protected.HandleFunc("/notes", h.GetNotes).Methods("GET")
	protected.HandleFunc("/notes", h.AddNote).Methods("POST")
	protected.HandleFunc("/notes/{id}", h.UpdateNote).Methods("PUT")
	protected.HandleFunc("/notes/{id}", h.DeleteNote).Methods("DELETE")
	protected.HandleFunc("/notes/{id}/lock", h.ToggleNoteLock).Methods("POST")
	protected.HandleFunc("/notes/{id}/verify", h.VerifyNotePassword).Methods("POST")

	protected.HandleFunc("/transactions", h.GetTransactions).Methods("GET")
	protected.HandleFunc("/transactions", h.AddTransaction).Methods("POST")
	protected.HandleFunc("/transactions/{id}", h.UpdateTransaction).Methods("PUT")
	protected.HandleFunc("/transactions/{id}", h.DeleteTransaction).Methods("DELETE")
	protected.HandleFunc("/balance", h.GetBalance).Methods("GET")

	protected.HandleFunc("/profile", h.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")

	protected.HandleFunc("/goals", h.GetGoals).Methods("GET")
	protected.HandleFunc("/goals/budget", h.SetBudgetGoal).Methods("PUT")
	protected.HandleFunc("/goals/savings", h.SetSavingsGoal).Methods("PUT")

	protected.HandleFunc("/settings", h.GetSettings).Methods("GET")
	protected.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")
	protected.HandleFunc("/settings/notifications", h.UpdateNotificationPrefs).Methods("PUT")
	protected.HandleFunc("/settings/privacy", h.UpdatePrivacyPrefs).Methods("PUT")
	protected.HandleFunc("/settings/appearance", h.UpdateAppearancePrefs).Methods("PUT")

	protected.HandleFunc("/data/export", h.ExportData).Methods("GET")
	protected.HandleFunc("/data/import", h.ImportData).Methods("POST")
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
