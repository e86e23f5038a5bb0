package store

import (
	"context"
	"time"

	"lifeos/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionPatch carries partial transaction edits; nil fields keep
// their current value.
type TransactionPatch struct {
	Title    *string                 `json:"title,omitempty"`
	Amount   *decimal.Decimal        `json:"amount,omitempty"`
	Type     *models.TransactionType `json:"type,omitempty"`
	Category *string                 `json:"category,omitempty"`
}

// AddTransaction prepends a new wallet entry, recomputes the balance from
// the full resulting collection before returning, and schedules a remote
// transaction upsert plus a settings push carrying the fresh balance.
// The amount is normalized to positive; the sign lives in the type.
func (s *Store) AddTransaction(title string, amount decimal.Decimal, txType models.TransactionType, category string) models.Transaction {
	tx := models.Transaction{
		ID:        uuid.NewString(),
		Title:     title,
		Amount:    amount.Abs(),
		Type:      txType,
		Category:  category,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	s.balance = models.SumBalance(s.transactions)
	s.mu.Unlock()
	s.notify()
	s.pushTransaction(tx)
	s.pushSettings()
	return tx
}

// UpdateTransaction applies a partial edit, recomputes the balance, and
// schedules the upsert and settings pushes. Unknown ids are a no-op.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) {
	s.mu.Lock()
	idx := -1
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	tx := s.transactions[idx]
	if patch.Title != nil {
		tx.Title = *patch.Title
	}
	if patch.Amount != nil {
		tx.Amount = patch.Amount.Abs()
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	s.transactions[idx] = tx
	s.balance = models.SumBalance(s.transactions)
	s.mu.Unlock()
	s.notify()
	s.pushTransaction(tx)
	s.pushSettings()
}

// DeleteTransaction removes the entry locally, recomputes the balance
// from what remains, and schedules the remote delete and settings pushes.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	s.balance = models.SumBalance(s.transactions)
	s.mu.Unlock()
	s.notify()
	s.push("transaction delete", func(ctx context.Context, r Syncer) error {
		return r.DeleteTransaction(ctx, id)
	})
	s.pushSettings()
}

func (s *Store) pushTransaction(tx models.Transaction) {
	s.push("transaction upsert", func(ctx context.Context, r Syncer) error {
		return r.SyncTransaction(ctx, tx)
	})
}

func (s *Store) pushSettings() {
	s.push("settings", func(ctx context.Context, r Syncer) error {
		return r.SyncSettings(ctx)
	})
}
