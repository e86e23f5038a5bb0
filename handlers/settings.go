package handlers

import (
	"encoding/json"
	"net/http"

	"lifeos/models"
	"lifeos/prefs"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"language":      h.Store.Language(),
		"activeTab":     h.Store.ActiveTab(),
		"notifications": h.Prefs.LoadNotifications(),
		"privacy":       h.Prefs.LoadPrivacy(),
		"appearance":    h.Prefs.LoadAppearance(),
	})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language  *string `json:"language"`
		ActiveTab *string `json:"activeTab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.ActiveTab != nil {
		h.Store.SetActiveTab(*body.ActiveTab)
	}
	if body.Language != nil {
		h.Store.SetLanguage(models.ParseLanguage(*body.Language))
	}
	w.WriteHeader(http.StatusOK)
}

// The preference blobs live in local storage; they ride along to the
// remote on the next settings push.

func (h *Handler) UpdateNotificationPrefs(w http.ResponseWriter, r *http.Request) {
	var body prefs.Notifications
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Prefs.SaveNotifications(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdatePrivacyPrefs(w http.ResponseWriter, r *http.Request) {
	var body prefs.Privacy
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Prefs.SavePrivacy(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdateAppearancePrefs(w http.ResponseWriter, r *http.Request) {
	var body prefs.Appearance
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Prefs.SaveAppearance(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
