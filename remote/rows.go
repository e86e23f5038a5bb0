package remote

import (
	"encoding/json"
	"time"

	"lifeos/models"

	"github.com/shopspring/decimal"
)

// Row shapes mirror the hosted schema. Optional columns are pointers so
// null round-trips cleanly; timestamps travel as RFC 3339 strings.

type taskRow struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Title      string          `json:"title"`
	Completed  bool            `json:"completed"`
	Priority   string          `json:"priority"`
	Category   string          `json:"category"`
	DueDate    *string         `json:"due_date"`
	Recurrence string          `json:"recurrence"`
	Subtasks   json.RawMessage `json:"subtasks"`
	OrderIndex int             `json:"order_index"`
	CreatedAt  *string         `json:"created_at,omitempty"`
}

type noteRow struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Content      string  `json:"content"`
	Color        string  `json:"color"`
	Category     string  `json:"category"`
	IsLocked     bool    `json:"is_locked"`
	PasswordHash *string `json:"password_hash"`
	Reminder     *string `json:"reminder"`
	CreatedAt    *string `json:"created_at,omitempty"`
}

type transactionRow struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   *string         `json:"created_at,omitempty"`
}

type settingsRow struct {
	UserID            string          `json:"user_id,omitempty"`
	Balance           decimal.Decimal `json:"balance"`
	Language          string          `json:"language"`
	Theme             string          `json:"theme"`
	AccentColor       string          `json:"accent_color"`
	FontSize          string          `json:"font_size"`
	CompactMode       bool            `json:"compact_mode"`
	QuietHoursEnabled bool            `json:"quiet_hours_enabled"`
	QuietHoursStart   string          `json:"quiet_hours_start"`
	QuietHoursEnd     string          `json:"quiet_hours_end"`
	HideBalances      bool            `json:"hide_balances"`
	HideAmounts       bool            `json:"hide_amounts"`
	BiometricLock     bool            `json:"biometric_lock"`
}

type profileRow struct {
	UserID string  `json:"user_id,omitempty"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Avatar *string `json:"avatar"`
}

type goalRow struct {
	ID     string          `json:"id,omitempty"`
	UserID string          `json:"user_id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Title  string          `json:"title"`
}

func taskToRow(task models.Task, userID string, orderIndex int) taskRow {
	if orderIndex < 0 {
		orderIndex = 0
	}
	subtasks, _ := json.Marshal(task.Subtasks)
	return taskRow{
		ID:         task.ID,
		UserID:     userID,
		Title:      task.Title,
		Completed:  task.Completed,
		Priority:   string(task.Priority),
		Category:   string(task.Category),
		DueDate:    wireTime(task.DueDate),
		Recurrence: string(task.Recurrence),
		Subtasks:   subtasks,
		OrderIndex: orderIndex,
		CreatedAt:  wireTime(&task.CreatedAt),
	}
}

func taskFromRow(row taskRow) models.Task {
	var subtasks []models.SubTask
	if len(row.Subtasks) > 0 {
		// Anything that isn't a subtask array comes back empty.
		json.Unmarshal(row.Subtasks, &subtasks)
	}
	if subtasks == nil {
		subtasks = []models.SubTask{}
	}
	return models.Task{
		ID:         row.ID,
		Title:      row.Title,
		Completed:  row.Completed,
		CreatedAt:  parseWireTimeValue(row.CreatedAt),
		DueDate:    parseWireTime(row.DueDate),
		Category:   models.ParseTaskCategory(row.Category),
		Priority:   models.ParseTaskPriority(row.Priority),
		Recurrence: models.ParseRecurrence(row.Recurrence),
		Subtasks:   subtasks,
	}
}

func noteFromRow(row noteRow) models.Note {
	var password string
	if row.PasswordHash != nil {
		password = *row.PasswordHash
	}
	return models.Note{
		ID:        row.ID,
		Content:   row.Content,
		CreatedAt: parseWireTimeValue(row.CreatedAt),
		Reminder:  parseWireTime(row.Reminder),
		IsLocked:  row.IsLocked,
		Password:  password,
		Color:     models.ParseNoteColor(row.Color),
		Category:  models.ParseNoteCategory(row.Category),
	}
}

func transactionToRow(tx models.Transaction, userID string) transactionRow {
	return transactionRow{
		ID:          tx.ID,
		UserID:      userID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Title,
		Category:    tx.Category,
		CreatedAt:   wireTime(&tx.CreatedAt),
	}
}

func transactionFromRow(row transactionRow) models.Transaction {
	txType := models.TransactionType(row.Type)
	if txType != models.TransactionIncome {
		txType = models.TransactionExpense
	}
	category := row.Category
	if category == "" {
		category = "other"
	}
	return models.Transaction{
		ID:        row.ID,
		Title:     row.Description,
		Amount:    row.Amount.Abs(),
		Type:      txType,
		Category:  category,
		CreatedAt: parseWireTimeValue(row.CreatedAt),
	}
}

func wireTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func parseWireTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseWireTimeValue(s *string) time.Time {
	if t := parseWireTime(s); t != nil {
		return *t
	}
	return time.Time{}
}
