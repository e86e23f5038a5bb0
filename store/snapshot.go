package store

import (
	"encoding/json"

	"lifeos/models"

	"github.com/shopspring/decimal"
)

// Snapshot is the full replaceable state: the five entity collections
// plus the derived balance and the synced preference scalars.
type Snapshot struct {
	Tasks        []models.Task        `json:"tasks"`
	Notes        []models.Note        `json:"notes"`
	Transactions []models.Transaction `json:"transactions"`
	Balance      decimal.Decimal      `json:"balance"`
	BudgetGoal   *decimal.Decimal     `json:"budgetGoal"`
	SavingsGoal  *decimal.Decimal     `json:"savingsGoal"`
	Profile      models.Profile       `json:"profile"`
	Language     models.Language      `json:"language"`
}

// exportEnvelope wraps the snapshot the way the mobile app's backup file
// does: a top-level storage field holding a JSON-encoded state object.
type exportEnvelope struct {
	Storage string `json:"storage"`
}

type exportState struct {
	State *Snapshot `json:"state"`
}

// ReplaceAll swaps in a whole snapshot atomically. The snapshot's balance
// field is ignored: the balance is always recomputed from the incoming
// transactions. No pushes are scheduled; the pull path is the caller.
func (s *Store) ReplaceAll(snap Snapshot) {
	s.mu.Lock()
	s.tasks = snap.Tasks
	if s.tasks == nil {
		s.tasks = []models.Task{}
	}
	s.notes = snap.Notes
	if s.notes == nil {
		s.notes = []models.Note{}
	}
	s.transactions = snap.Transactions
	if s.transactions == nil {
		s.transactions = []models.Transaction{}
	}
	s.balance = models.SumBalance(s.transactions)
	s.budgetGoal = snap.BudgetGoal
	s.savingsGoal = snap.SavingsGoal
	s.profile = snap.Profile
	if snap.Language != "" {
		s.language = snap.Language
	}
	s.mu.Unlock()
	s.notify()
}

// Export serializes the current state into the backup envelope format.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	snap := Snapshot{
		Tasks:        append([]models.Task(nil), s.tasks...),
		Notes:        append([]models.Note(nil), s.notes...),
		Transactions: append([]models.Transaction(nil), s.transactions...),
		Balance:      s.balance,
		BudgetGoal:   copyDecimal(s.budgetGoal),
		SavingsGoal:  copyDecimal(s.savingsGoal),
		Profile:      s.profile,
		Language:     s.language,
	}
	s.mu.Unlock()

	inner, err := json.Marshal(exportState{State: &snap})
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(exportEnvelope{Storage: string(inner)})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Import parses an externally supplied backup blob and, if well-formed,
// wholesale-replaces the state. Returns false on any parse or shape
// failure, leaving current state untouched: the operation either fully
// applies or fully no-ops.
func (s *Store) Import(blob string) bool {
	var envelope exportEnvelope
	if err := json.Unmarshal([]byte(blob), &envelope); err != nil {
		return false
	}
	if envelope.Storage == "" {
		return false
	}
	var state exportState
	if err := json.Unmarshal([]byte(envelope.Storage), &state); err != nil {
		return false
	}
	if state.State == nil {
		return false
	}
	snap := *state.State
	if snap.Language == "" {
		snap.Language = models.LanguageTurkish
	}
	s.ReplaceAll(snap)
	return true
}
