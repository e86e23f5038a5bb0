package remote

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"lifeos/models"
	"lifeos/prefs"
	"lifeos/security"
	"lifeos/store"

	"github.com/shopspring/decimal"
)

// balanceEpsilon is the tolerated drift between the balance stored in the
// remote settings row and the one recomputed from transactions. Anything
// beyond it triggers a corrective re-push after a pull.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// Adapter translates between the store's domain shapes and the remote row
// shapes and performs both directions of synchronization for one
// authenticated identity. It is stateless between calls apart from its
// wiring; sign-in builds a fresh adapter and sign-out discards it.
type Adapter struct {
	client *Client
	store  *store.Store
	prefs  *prefs.Store
	userID string
}

// NewAdapter wires a sync adapter for the given identity.
func NewAdapter(client *Client, st *store.Store, pf *prefs.Store, userID string) *Adapter {
	return &Adapter{client: client, store: st, prefs: pf, userID: userID}
}

var _ store.Syncer = (*Adapter)(nil)

type idRow struct {
	ID string `json:"id"`
}

// SyncTask upserts one task row. Existence is checked by id first, so the
// row keeps its identity across insert and update.
func (a *Adapter) SyncTask(ctx context.Context, task models.Task) error {
	row := taskToRow(task, a.userID, a.store.TaskPosition(task.ID))

	query := eq("id", task.ID)
	query.Set("select", "id")
	var existing []idRow
	if err := a.client.Select(ctx, "tasks", query, &existing); err != nil {
		return fmt.Errorf("error checking task existence: %w", err)
	}

	if len(existing) > 0 {
		return a.client.Update(ctx, "tasks", eq("id", task.ID), row)
	}
	return a.client.Insert(ctx, "tasks", row)
}

// DeleteTask removes the task row, scoped to the authenticated identity.
func (a *Adapter) DeleteTask(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "tasks", a.scoped(eq("id", id)))
}

// SyncNote upserts one note row. A session-local plaintext password is
// hashed here; the plaintext never reaches the wire.
func (a *Adapter) SyncNote(ctx context.Context, note models.Note) error {
	var passwordHash *string
	if note.IsLocked && note.Password != "" {
		stored := note.Password
		if !security.IsNotePasswordHash(stored) {
			hashed, err := security.HashNotePassword(stored)
			if err != nil {
				return fmt.Errorf("error hashing note password: %w", err)
			}
			stored = hashed
		}
		passwordHash = &stored
	}

	row := noteRow{
		ID:           note.ID,
		UserID:       a.userID,
		Content:      note.Content,
		Color:        string(note.Color),
		Category:     string(note.Category),
		IsLocked:     note.IsLocked,
		PasswordHash: passwordHash,
		Reminder:     wireTime(note.Reminder),
		CreatedAt:    wireTime(&note.CreatedAt),
	}
	return a.client.Upsert(ctx, "notes", row)
}

// DeleteNote removes the note row, scoped to the authenticated identity.
func (a *Adapter) DeleteNote(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "notes", a.scoped(eq("id", id)))
}

// SyncTransaction upserts one transaction row.
func (a *Adapter) SyncTransaction(ctx context.Context, tx models.Transaction) error {
	return a.client.Upsert(ctx, "transactions", transactionToRow(tx, a.userID))
}

// DeleteTransaction removes the transaction row, scoped to the
// authenticated identity.
func (a *Adapter) DeleteTransaction(ctx context.Context, id string) error {
	return a.client.Delete(ctx, "transactions", a.scoped(eq("id", id)))
}

// SyncSettings recomputes the balance from the store's transactions,
// folds in the local preference blobs, and updates the remote settings
// row. On success the recomputed balance is written back into the store
// so local and remote agree.
func (a *Adapter) SyncSettings(ctx context.Context) error {
	balance := models.SumBalance(a.store.Transactions())

	notifications := a.prefs.LoadNotifications()
	privacy := a.prefs.LoadPrivacy()
	appearance := a.prefs.LoadAppearance()

	row := settingsRow{
		Balance:           balance,
		Language:          string(a.store.Language()),
		Theme:             appearance.Theme,
		AccentColor:       appearance.AccentColor,
		FontSize:          appearance.FontSize,
		CompactMode:       appearance.CompactMode,
		QuietHoursEnabled: notifications.QuietHoursEnabled,
		QuietHoursStart:   notifications.QuietHoursStart,
		QuietHoursEnd:     notifications.QuietHoursEnd,
		HideBalances:      privacy.HideBalances,
		HideAmounts:       privacy.HideAmounts,
		BiometricLock:     privacy.LockEnabled,
	}

	if err := a.client.Update(ctx, "user_settings", eq("user_id", a.userID), row); err != nil {
		return err
	}

	a.store.SetBalance(balance)
	return nil
}

// SyncProfile updates the remote profile row. Unlike the other pushes the
// error propagates to the caller: profile saves are foreground actions.
func (a *Adapter) SyncProfile(ctx context.Context) error {
	profile := a.store.Profile()
	row := profileRow{
		Name:  profile.Name,
		Email: profile.Email,
		Phone: profile.Phone,
	}
	if profile.Avatar != "" {
		row.Avatar = &profile.Avatar
	}
	return a.client.Update(ctx, "profiles", eq("user_id", a.userID), row)
}

// SyncGoal updates the goal row of the given kind if one exists, or
// inserts it.
func (a *Adapter) SyncGoal(ctx context.Context, kind models.GoalKind, amount decimal.Decimal) error {
	query := a.scoped(eq("type", string(kind)))
	query.Set("select", "id")
	var existing []idRow
	if err := a.client.Select(ctx, "goals", query, &existing); err != nil {
		return fmt.Errorf("error checking %s goal existence: %w", kind, err)
	}

	if len(existing) > 0 {
		patch := map[string]interface{}{
			"amount": amount,
			"title":  models.GoalTitle(kind),
		}
		return a.client.Update(ctx, "goals", eq("id", existing[0].ID), patch)
	}

	return a.client.Insert(ctx, "goals", goalRow{
		UserID: a.userID,
		Type:   string(kind),
		Amount: amount,
		Title:  models.GoalTitle(kind),
	})
}

// LoadData pulls everything for the identity, recomputes the balance from
// the pulled transactions, and wholesale-replaces the store's state. Any
// local-only unsynced state is discarded; the remote is authoritative on
// boot. A failed fetch returns before the store is touched. When the
// stored remote balance drifts from the recomputed one beyond the epsilon
// a corrective settings push follows.
func (a *Adapter) LoadData(ctx context.Context) error {
	var taskRows []taskRow
	query := a.scoped(nil)
	query.Set("order", "order_index.asc")
	if err := a.client.Select(ctx, "tasks", query, &taskRows); err != nil {
		return fmt.Errorf("error loading tasks: %w", err)
	}

	var noteRows []noteRow
	query = a.scoped(nil)
	query.Set("order", "created_at.desc")
	if err := a.client.Select(ctx, "notes", query, &noteRows); err != nil {
		return fmt.Errorf("error loading notes: %w", err)
	}

	var txRows []transactionRow
	query = a.scoped(nil)
	query.Set("order", "created_at.desc")
	if err := a.client.Select(ctx, "transactions", query, &txRows); err != nil {
		return fmt.Errorf("error loading transactions: %w", err)
	}

	var settingsRows []settingsRow
	if err := a.client.Select(ctx, "user_settings", a.scoped(nil), &settingsRows); err != nil {
		return fmt.Errorf("error loading settings: %w", err)
	}

	var profileRows []profileRow
	if err := a.client.Select(ctx, "profiles", a.scoped(nil), &profileRows); err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	var goalRows []goalRow
	if err := a.client.Select(ctx, "goals", a.scoped(nil), &goalRows); err != nil {
		return fmt.Errorf("error loading goals: %w", err)
	}

	tasks := make([]models.Task, 0, len(taskRows))
	for _, row := range taskRows {
		tasks = append(tasks, taskFromRow(row))
	}
	notes := make([]models.Note, 0, len(noteRows))
	for _, row := range noteRows {
		notes = append(notes, noteFromRow(row))
	}
	transactions := make([]models.Transaction, 0, len(txRows))
	for _, row := range txRows {
		transactions = append(transactions, transactionFromRow(row))
	}

	calculated := models.SumBalance(transactions)
	stored := decimal.Zero

	snap := store.Snapshot{
		Tasks:        tasks,
		Notes:        notes,
		Transactions: transactions,
		Balance:      calculated,
		Language:     models.LanguageTurkish,
	}

	if len(settingsRows) > 0 {
		settings := settingsRows[0]
		stored = settings.Balance
		snap.Language = models.ParseLanguage(settings.Language)
		a.writePrefs(settings)
	}

	if len(profileRows) > 0 {
		row := profileRows[0]
		snap.Profile = models.Profile{Name: row.Name, Email: row.Email, Phone: row.Phone}
		if row.Avatar != nil {
			snap.Profile.Avatar = *row.Avatar
		}
	}

	for _, row := range goalRows {
		amount := row.Amount
		switch models.GoalKind(row.Type) {
		case models.GoalBudget:
			snap.BudgetGoal = &amount
		case models.GoalSavings:
			snap.SavingsGoal = &amount
		}
	}

	a.store.ReplaceAll(snap)

	if stored.Sub(calculated).Abs().GreaterThan(balanceEpsilon) {
		log.Printf("balance mismatch detected (stored %s, calculated %s), re-pushing settings",
			stored, calculated)
		if err := a.SyncSettings(ctx); err != nil {
			log.Printf("corrective settings push failed: %v", err)
		}
	}

	return nil
}

// writePrefs mirrors pulled settings fields back into the local
// preference store so settings screens see what the remote has.
func (a *Adapter) writePrefs(settings settingsRow) {
	notifications := prefs.Notifications{
		QuietHoursEnabled: settings.QuietHoursEnabled,
		QuietHoursStart:   settings.QuietHoursStart,
		QuietHoursEnd:     settings.QuietHoursEnd,
	}
	if notifications.QuietHoursStart == "" {
		notifications.QuietHoursStart = "22:00"
	}
	if notifications.QuietHoursEnd == "" {
		notifications.QuietHoursEnd = "08:00"
	}
	if err := a.prefs.SaveNotifications(notifications); err != nil {
		log.Printf("error writing notification prefs: %v", err)
	}

	privacy := prefs.Privacy{
		HideBalances: settings.HideBalances,
		HideAmounts:  settings.HideAmounts,
		LockEnabled:  settings.BiometricLock,
	}
	if err := a.prefs.SavePrivacy(privacy); err != nil {
		log.Printf("error writing privacy prefs: %v", err)
	}

	appearance := prefs.Appearance{
		Theme:       settings.Theme,
		AccentColor: settings.AccentColor,
		FontSize:    settings.FontSize,
		CompactMode: settings.CompactMode,
	}
	defaults := prefs.DefaultAppearance()
	if appearance.Theme == "" {
		appearance.Theme = defaults.Theme
	}
	if appearance.AccentColor == "" {
		appearance.AccentColor = defaults.AccentColor
	}
	if appearance.FontSize == "" {
		appearance.FontSize = defaults.FontSize
	}
	if err := a.prefs.SaveAppearance(appearance); err != nil {
		log.Printf("error writing appearance prefs: %v", err)
	}
}

// scoped adds the identity filter every remote operation must carry.
func (a *Adapter) scoped(query url.Values) url.Values {
	if query == nil {
		query = url.Values{}
	}
	query.Set("user_id", "eq."+a.userID)
	return query
}

func eq(column, value string) url.Values {
	query := url.Values{}
	query.Set(column, "eq."+value)
	return query
}
