package handlers

import (
	"io"
	"net/http"
)

// GetState returns the full application state for the UI.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	// Same rule as GetNotes: passwords never leave the process.
	notes := h.Store.Notes()
	for i := range notes {
		notes[i].Password = ""
	}
	writeJSON(w, map[string]interface{}{
		"tasks":        h.Store.Tasks(),
		"notes":        notes,
		"transactions": h.Store.Transactions(),
		"balance":      h.Store.Balance(),
		"budgetGoal":   h.Store.BudgetGoal(),
		"savingsGoal":  h.Store.SavingsGoal(),
		"profile":      h.Store.Profile(),
		"language":     h.Store.Language(),
		"activeTab":    h.Store.ActiveTab(),
		"syncErrors":   h.Store.SyncErrorCount(),
	})
}

// ExportData writes the backup blob.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	blob, err := h.Store.Export()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="lifeos-backup.json"`)
	w.Write([]byte(blob))
}

// ImportData replaces the state from an uploaded backup blob. A
// malformed blob is rejected without touching any collection.
func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.Store.Import(string(blob)) {
		http.Error(w, "invalid backup file", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"imported": true,
		"balance":  h.Store.Balance(),
	})
}
