package handlers

import (
	"log"
	"net/http"

	"lifeos/middleware"
	"lifeos/remote"
)

// StartSession wires a sync adapter for the authenticated identity and
// performs the boot-time pull. The pull is authoritative: it replaces
// local state wholesale. If it fails the store is left as it was and a
// generic notice is surfaced, but the adapter stays wired so later
// mutations still mirror out.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if h.Remote == nil {
		h.Store.SetSyncer(nil)
		writeJSON(w, map[string]interface{}{"synced": false})
		return
	}

	adapter := remote.NewAdapter(h.Remote, h.Store, h.Prefs, userID)
	h.Store.SetSyncer(adapter)

	if err := adapter.LoadData(r.Context()); err != nil {
		log.Printf("Error loading data: %v", err)
		http.Error(w, "Failed to load your data", http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]interface{}{"synced": true})
}

// EndSession clears the sync seam; every mutation afterwards degrades to
// local-only until the next sign-in.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.Store.SetSyncer(nil)
	w.WriteHeader(http.StatusOK)
}
