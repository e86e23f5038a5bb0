package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

type goalBody struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]*decimal.Decimal{
		"budgetGoal":  h.Store.BudgetGoal(),
		"savingsGoal": h.Store.SavingsGoal(),
	})
}

func (h *Handler) SetBudgetGoal(w http.ResponseWriter, r *http.Request) {
	var body goalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Store.SetBudgetGoal(body.Amount)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) SetSavingsGoal(w http.ResponseWriter, r *http.Request) {
	var body goalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Store.SetSavingsGoal(body.Amount)
	w.WriteHeader(http.StatusOK)
}
