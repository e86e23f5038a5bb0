package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"lifeos/models"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Profile())
}

// UpdateProfile applies the edit locally and pushes it in the foreground.
// Unlike the background pushes, a failure here reaches the caller: the
// user pressed save and expects to know whether it worked.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Store.UpdateProfile(patch)

	if err := h.Store.SyncProfileNow(r.Context()); err != nil {
		log.Printf("Profile sync error: %v", err)
		http.Error(w, "Failed to save profile", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.Store.Profile())
}
