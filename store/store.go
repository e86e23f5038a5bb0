package store

import (
	"context"
	"log"
	"sync"
	"time"

	"lifeos/models"

	"github.com/shopspring/decimal"
)

// defaultSyncTimeout bounds every background push so a hung remote call
// cannot leak a goroutine forever.
const defaultSyncTimeout = 15 * time.Second

// Syncer is the injected seam between the store and the remote mirror.
// The store never imports the remote package; with a nil Syncer every
// mutation degrades to local-only and no remote call is attempted.
type Syncer interface {
	SyncTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
	SyncNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, id string) error
	SyncTransaction(ctx context.Context, tx models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	SyncSettings(ctx context.Context) error
	SyncProfile(ctx context.Context) error
	SyncGoal(ctx context.Context, kind models.GoalKind, amount decimal.Decimal) error
}

// Store holds the canonical in-process application state. All mutations
// go through its methods, complete synchronously, and schedule best-effort
// background pushes to the remote mirror. Local state is the source of
// truth for the running session; a failed push is logged, never rolled
// back and never surfaced to the mutating caller.
type Store struct {
	mu sync.Mutex

	tasks        []models.Task
	notes        []models.Note
	transactions []models.Transaction
	balance      decimal.Decimal
	budgetGoal   *decimal.Decimal
	savingsGoal  *decimal.Decimal
	profile      models.Profile
	activeTab    string
	language     models.Language

	syncer      Syncer
	syncTimeout time.Duration
	onSyncError func(op string, err error)
	syncErrors  int64

	subscribers map[int]func()
	nextSubID   int

	wg sync.WaitGroup
}

// New creates an empty store with the app's original defaults.
func New() *Store {
	s := &Store{
		activeTab:   "home",
		language:    models.LanguageTurkish,
		syncTimeout: defaultSyncTimeout,
		subscribers: make(map[int]func()),
	}
	s.onSyncError = func(op string, err error) {
		log.Printf("%s sync error: %v", op, err)
	}
	return s
}

// SetSyncer injects (or, with nil, clears) the remote sync surface. It is
// swapped on sign-in and sign-out; in-flight pushes keep the syncer they
// were started with.
func (s *Store) SetSyncer(syncer Syncer) {
	s.mu.Lock()
	s.syncer = syncer
	s.mu.Unlock()
}

// SetSyncErrorHandler replaces the default log-only failure hook.
func (s *Store) SetSyncErrorHandler(fn func(op string, err error)) {
	s.mu.Lock()
	s.onSyncError = fn
	s.mu.Unlock()
}

// SyncErrorCount reports how many background pushes have failed.
func (s *Store) SyncErrorCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncErrors
}

// Subscribe registers an observer called after every mutation. The
// returned function unsubscribes it.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Flush waits for all in-flight background pushes. Used by tests and by
// graceful shutdown; regular callers never wait on the network.
func (s *Store) Flush() {
	s.wg.Wait()
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// push schedules a fire-and-forget call into the injected syncer. The
// caller's mutation has already been applied and is never reverted.
func (s *Store) push(op string, call func(ctx context.Context, r Syncer) error) {
	s.mu.Lock()
	syncer := s.syncer
	timeout := s.syncTimeout
	s.mu.Unlock()
	if syncer == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := call(ctx, syncer); err != nil {
			s.mu.Lock()
			s.syncErrors++
			hook := s.onSyncError
			s.mu.Unlock()
			if hook != nil {
				hook(op, err)
			}
		}
	}()
}

// Tasks returns the task collection in display order. The copy is never
// nil, so empty collections serialize as [] rather than null.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Notes returns the note collection, newest first. Never nil.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

// Transactions returns the transaction collection, newest first. Never
// nil.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return transactions
}

// Balance returns the derived balance. It is recomputed from the full
// transaction collection on every transaction mutation and after every
// pull, never incrementally drifted.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// SetBalance overwrites the cached balance. Used by the sync adapter to
// close the loop after a settings push recomputes it; schedules no push.
func (s *Store) SetBalance(balance decimal.Decimal) {
	s.mu.Lock()
	s.balance = balance
	s.mu.Unlock()
	s.notify()
}

// UpdateBalance applies a manual balance adjustment. The subsequent
// settings push recomputes from transactions and corrects any drift this
// introduces.
func (s *Store) UpdateBalance(delta decimal.Decimal) {
	s.mu.Lock()
	s.balance = s.balance.Add(delta)
	s.mu.Unlock()
	s.notify()
	s.push("settings", func(ctx context.Context, r Syncer) error {
		return r.SyncSettings(ctx)
	})
}

// Profile returns the current profile.
func (s *Store) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile applies a partial profile edit locally. The remote push
// is the explicit foreground SyncProfileNow, because profile saves are
// user-acknowledged actions that must report success or failure.
func (s *Store) UpdateProfile(patch models.ProfilePatch) {
	s.mu.Lock()
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Email != nil {
		s.profile.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.profile.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		s.profile.Avatar = *patch.Avatar
	}
	s.mu.Unlock()
	s.notify()
}

// SyncProfileNow pushes the profile synchronously and propagates failure
// to the caller. With no syncer injected it is a local-only no-op.
func (s *Store) SyncProfileNow(ctx context.Context) error {
	s.mu.Lock()
	syncer := s.syncer
	s.mu.Unlock()
	if syncer == nil {
		return nil
	}
	return syncer.SyncProfile(ctx)
}

// BudgetGoal returns the budget goal, or nil when unset.
func (s *Store) BudgetGoal() *decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDecimal(s.budgetGoal)
}

// SavingsGoal returns the savings goal, or nil when unset.
func (s *Store) SavingsGoal() *decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDecimal(s.savingsGoal)
}

// SetBudgetGoal sets the budget goal and schedules a remote goal upsert.
func (s *Store) SetBudgetGoal(amount decimal.Decimal) {
	s.mu.Lock()
	s.budgetGoal = &amount
	s.mu.Unlock()
	s.notify()
	s.push("budget goal", func(ctx context.Context, r Syncer) error {
		return r.SyncGoal(ctx, models.GoalBudget, amount)
	})
}

// SetSavingsGoal sets the savings goal and schedules a remote goal upsert.
func (s *Store) SetSavingsGoal(amount decimal.Decimal) {
	s.mu.Lock()
	s.savingsGoal = &amount
	s.mu.Unlock()
	s.notify()
	s.push("savings goal", func(ctx context.Context, r Syncer) error {
		return r.SyncGoal(ctx, models.GoalSavings, amount)
	})
}

// ActiveTab returns the UI navigation tab. Never synced.
func (s *Store) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// SetActiveTab records the UI navigation tab locally.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
	s.notify()
}

// Language returns the UI language.
func (s *Store) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage sets the UI language and schedules a settings push.
func (s *Store) SetLanguage(lang models.Language) {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	s.notify()
	s.push("settings", func(ctx context.Context, r Syncer) error {
		return r.SyncSettings(ctx)
	})
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
