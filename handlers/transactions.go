package handlers

import (
	"encoding/json"
	"net/http"

	"lifeos/models"
	"lifeos/store"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Transactions())
}

func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    string          `json:"title"`
		Amount   decimal.Decimal `json:"amount"`
		Type     string          `json:"type"`
		Category string          `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	txType := models.TransactionType(body.Type)
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}
	if body.Amount.IsZero() {
		http.Error(w, "amount is required", http.StatusBadRequest)
		return
	}

	tx := h.Store.AddTransaction(body.Title, body.Amount, txType, body.Category)
	writeJSON(w, tx)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch store.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if patch.Type != nil && *patch.Type != models.TransactionIncome && *patch.Type != models.TransactionExpense {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}

	h.Store.UpdateTransaction(id, patch)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.Store.DeleteTransaction(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]decimal.Decimal{"balance": h.Store.Balance()})
}
