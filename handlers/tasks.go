package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"lifeos/models"

	"github.com/gorilla/mux"
)

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Tasks())
}

func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title      string     `json:"title"`
		DueDate    *time.Time `json:"dueDate"`
		Category   string     `json:"category"`
		Priority   string     `json:"priority"`
		Recurrence string     `json:"recurrence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	task := h.Store.AddTask(body.Title, body.DueDate,
		models.ParseTaskCategory(body.Category),
		models.ParseTaskPriority(body.Priority),
		models.ParseRecurrence(body.Recurrence))
	writeJSON(w, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Category   *string         `json:"category"`
		Priority   *string         `json:"priority"`
		Recurrence *string         `json:"recurrence"`
		DueDate    json.RawMessage `json:"dueDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if body.Category != nil {
		h.Store.UpdateTaskCategory(id, models.ParseTaskCategory(*body.Category))
	}
	if body.Priority != nil {
		h.Store.UpdateTaskPriority(id, models.ParseTaskPriority(*body.Priority))
	}
	if body.Recurrence != nil {
		h.Store.UpdateTaskRecurrence(id, models.ParseRecurrence(*body.Recurrence))
	}
	if len(body.DueDate) > 0 {
		// Distinguish an explicit null (clear) from an absent field.
		if string(body.DueDate) == "null" {
			h.Store.UpdateTaskDueDate(id, nil)
		} else {
			var due time.Time
			if err := json.Unmarshal(body.DueDate, &due); err != nil {
				http.Error(w, "invalid dueDate", http.StatusBadRequest)
				return
			}
			h.Store.UpdateTaskDueDate(id, &due)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.Store.DeleteTask(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	h.Store.ToggleTask(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Store.ReorderTasks(body.IDs)
	writeJSON(w, h.Store.Tasks())
}

func (h *Handler) AddSubtask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	h.Store.AddSubtask(mux.Vars(r)["id"], body.Title)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Store.ToggleSubtask(vars["id"], vars["subtaskId"])
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Store.DeleteSubtask(vars["id"], vars["subtaskId"])
	w.WriteHeader(http.StatusOK)
}
