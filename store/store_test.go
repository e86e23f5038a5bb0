package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"lifeos/models"

	"github.com/shopspring/decimal"
)

// fakeSyncer records every call the store fires into the seam.
type fakeSyncer struct {
	mu           sync.Mutex
	taskUpserts  []models.Task
	taskDeletes  []string
	noteUpserts  []models.Note
	noteDeletes  []string
	txUpserts    []models.Transaction
	txDeletes    []string
	settingsSync int
	profileSync  int
	goalSyncs    []string
	err          error
}

func (f *fakeSyncer) SyncTask(ctx context.Context, task models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taskUpserts = append(f.taskUpserts, task)
	return f.err
}

func (f *fakeSyncer) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taskDeletes = append(f.taskDeletes, id)
	return f.err
}

func (f *fakeSyncer) SyncNote(ctx context.Context, note models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteUpserts = append(f.noteUpserts, note)
	return f.err
}

func (f *fakeSyncer) DeleteNote(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteDeletes = append(f.noteDeletes, id)
	return f.err
}

func (f *fakeSyncer) SyncTransaction(ctx context.Context, tx models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txUpserts = append(f.txUpserts, tx)
	return f.err
}

func (f *fakeSyncer) DeleteTransaction(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txDeletes = append(f.txDeletes, id)
	return f.err
}

func (f *fakeSyncer) SyncSettings(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settingsSync++
	return f.err
}

func (f *fakeSyncer) SyncProfile(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileSync++
	return f.err
}

func (f *fakeSyncer) SyncGoal(ctx context.Context, kind models.GoalKind, amount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.goalSyncs = append(f.goalSyncs, string(kind))
	return f.err
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEmptyCollectionsAreNeverNil(t *testing.T) {
	s := New()

	if s.Tasks() == nil {
		t.Error("Expected non-nil task slice from an empty store")
	}
	if s.Notes() == nil {
		t.Error("Expected non-nil note slice from an empty store")
	}
	if s.Transactions() == nil {
		t.Error("Expected non-nil transaction slice from an empty store")
	}
}

func TestBalanceRecomputedOnEveryMutation(t *testing.T) {
	s := New()

	if !s.Balance().IsZero() {
		t.Fatalf("Expected zero starting balance, got %s", s.Balance())
	}

	first := s.AddTransaction("Salary", dec("100"), models.TransactionIncome, "salary")
	if got := s.Balance(); !got.Equal(dec("100")) {
		t.Errorf("Expected balance 100, got %s", got)
	}

	s.AddTransaction("Groceries", dec("40"), models.TransactionExpense, "food")
	if got := s.Balance(); !got.Equal(dec("60")) {
		t.Errorf("Expected balance 60, got %s", got)
	}

	s.DeleteTransaction(first.ID)
	if got := s.Balance(); !got.Equal(dec("-40")) {
		t.Errorf("Expected balance -40, got %s", got)
	}
}

func TestBalanceAfterUpdate(t *testing.T) {
	s := New()
	tx := s.AddTransaction("Salary", dec("100"), models.TransactionIncome, "salary")

	amount := dec("250")
	s.UpdateTransaction(tx.ID, TransactionPatch{Amount: &amount})
	if got := s.Balance(); !got.Equal(dec("250")) {
		t.Errorf("Expected balance 250, got %s", got)
	}

	txType := models.TransactionExpense
	s.UpdateTransaction(tx.ID, TransactionPatch{Type: &txType})
	if got := s.Balance(); !got.Equal(dec("-250")) {
		t.Errorf("Expected balance -250, got %s", got)
	}
}

func TestAmountStoredPositive(t *testing.T) {
	s := New()
	tx := s.AddTransaction("Refund", dec("-25"), models.TransactionExpense, "misc")
	if tx.Amount.IsNegative() {
		t.Errorf("Expected positive stored amount, got %s", tx.Amount)
	}
	if got := s.Balance(); !got.Equal(dec("-25")) {
		t.Errorf("Expected balance -25, got %s", got)
	}
}

func TestTransactionMutationsSchedulePushes(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)

	tx := s.AddTransaction("Salary", dec("100"), models.TransactionIncome, "salary")
	s.DeleteTransaction(tx.ID)
	s.Flush()

	if len(syncer.txUpserts) != 1 {
		t.Errorf("Expected 1 transaction upsert, got %d", len(syncer.txUpserts))
	}
	if len(syncer.txDeletes) != 1 || syncer.txDeletes[0] != tx.ID {
		t.Errorf("Expected delete of %s, got %v", tx.ID, syncer.txDeletes)
	}
	if syncer.settingsSync != 2 {
		t.Errorf("Expected 2 settings pushes, got %d", syncer.settingsSync)
	}
}

func TestNilSyncerIsLocalOnly(t *testing.T) {
	s := New()

	// No syncer injected at all.
	s.AddTransaction("Salary", dec("100"), models.TransactionIncome, "salary")
	s.Flush()

	// Inject and clear again.
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)
	s.SetSyncer(nil)
	s.AddTask("local task", nil, "", "", "")
	s.Flush()

	if len(syncer.taskUpserts) != 0 {
		t.Errorf("Expected no pushes after syncer cleared, got %d", len(syncer.taskUpserts))
	}
	if len(s.Tasks()) != 1 {
		t.Errorf("Expected local mutation to apply, got %d tasks", len(s.Tasks()))
	}
}

func TestSyncFailureNeverRollsBack(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{err: errors.New("remote down")}
	s.SetSyncer(syncer)

	var failures []string
	var mu sync.Mutex
	s.SetSyncErrorHandler(func(op string, err error) {
		mu.Lock()
		failures = append(failures, op)
		mu.Unlock()
	})

	s.AddTransaction("Salary", dec("100"), models.TransactionIncome, "salary")
	s.Flush()

	if got := s.Balance(); !got.Equal(dec("100")) {
		t.Errorf("Expected local state to survive sync failure, balance %s", got)
	}
	if len(s.Transactions()) != 1 {
		t.Errorf("Expected transaction kept, got %d", len(s.Transactions()))
	}
	mu.Lock()
	count := len(failures)
	mu.Unlock()
	if count != 2 { // transaction upsert + settings
		t.Errorf("Expected 2 reported failures, got %d", count)
	}
	if s.SyncErrorCount() != 2 {
		t.Errorf("Expected error counter 2, got %d", s.SyncErrorCount())
	}
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	s := New()

	var calls int
	unsubscribe := s.Subscribe(func() { calls++ })

	s.AddTask("task", nil, "", "", "")
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}

	unsubscribe()
	s.AddTask("another", nil, "", "", "")
	if calls != 1 {
		t.Errorf("Expected no notification after unsubscribe, got %d", calls)
	}
}

func TestUpdateProfileIsLocalUntilForegroundSync(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)

	name := "Ada"
	s.UpdateProfile(models.ProfilePatch{Name: &name})
	s.Flush()

	if syncer.profileSync != 0 {
		t.Errorf("Expected no background profile push, got %d", syncer.profileSync)
	}
	if s.Profile().Name != "Ada" {
		t.Errorf("Expected profile name applied, got %q", s.Profile().Name)
	}

	if err := s.SyncProfileNow(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if syncer.profileSync != 1 {
		t.Errorf("Expected 1 foreground profile push, got %d", syncer.profileSync)
	}
}

func TestSyncProfileNowPropagatesFailure(t *testing.T) {
	s := New()
	s.SetSyncer(&fakeSyncer{err: errors.New("remote down")})

	if err := s.SyncProfileNow(context.Background()); err == nil {
		t.Error("Expected profile sync error to propagate")
	}

	// Local-only mode swallows nothing because nothing is attempted.
	s.SetSyncer(nil)
	if err := s.SyncProfileNow(context.Background()); err != nil {
		t.Errorf("Expected nil in local-only mode, got %v", err)
	}
}

func TestGoalsPush(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)

	s.SetBudgetGoal(dec("5000"))
	s.SetSavingsGoal(dec("1000"))
	s.Flush()

	if s.BudgetGoal() == nil || !s.BudgetGoal().Equal(dec("5000")) {
		t.Errorf("Expected budget goal 5000, got %v", s.BudgetGoal())
	}
	if s.SavingsGoal() == nil || !s.SavingsGoal().Equal(dec("1000")) {
		t.Errorf("Expected savings goal 1000, got %v", s.SavingsGoal())
	}
	if len(syncer.goalSyncs) != 2 {
		t.Fatalf("Expected 2 goal pushes, got %d", len(syncer.goalSyncs))
	}
	// Pushes run on independent goroutines; check kinds, not order.
	kinds := map[string]bool{}
	for _, k := range syncer.goalSyncs {
		kinds[k] = true
	}
	if !kinds["budget"] || !kinds["savings"] {
		t.Errorf("Expected a budget and a savings push, got %v", syncer.goalSyncs)
	}
}

func TestSetLanguagePushesSettings(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)

	s.SetLanguage(models.LanguageEnglish)
	s.Flush()

	if s.Language() != models.LanguageEnglish {
		t.Errorf("Expected language en, got %s", s.Language())
	}
	if syncer.settingsSync != 1 {
		t.Errorf("Expected 1 settings push, got %d", syncer.settingsSync)
	}
}

func TestUpdateBalanceAppliesDelta(t *testing.T) {
	s := New()
	syncer := &fakeSyncer{}
	s.SetSyncer(syncer)

	s.UpdateBalance(dec("42"))
	s.Flush()

	if got := s.Balance(); !got.Equal(dec("42")) {
		t.Errorf("Expected balance 42, got %s", got)
	}
	if syncer.settingsSync != 1 {
		t.Errorf("Expected settings push after manual adjustment, got %d", syncer.settingsSync)
	}
}
