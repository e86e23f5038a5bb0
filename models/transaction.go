package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

// Transaction is a single wallet entry. Amount is always stored positive;
// the sign is derived from Type at aggregation time.
type Transaction struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// SumBalance derives the balance from a full transaction collection.
// Stored or cached balances are never trusted over this recomputation.
func SumBalance(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Signed())
	}
	return total
}
