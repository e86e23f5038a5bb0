package prefs

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Preference keys
const (
	KeyNotifications = "notifications"
	KeyPrivacy       = "privacy"
	KeyAppearance    = "appearance"
	KeyRemoteAPIKey  = "remote_api_key"
)

// Store is the local persistent key-value preference store. Settings
// screens write to it directly; the sync adapter folds its contents into
// the remote settings row and writes pulled values back.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preference database at path. Use ":memory:"
// for tests.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open prefs database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or "" when absent.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get pref %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

// Notifications holds the quiet-hours preference blob.
type Notifications struct {
	QuietHoursEnabled bool   `json:"quietHoursEnabled"`
	QuietHoursStart   string `json:"quietHoursStart"`
	QuietHoursEnd     string `json:"quietHoursEnd"`
}

// Privacy holds the privacy toggle blob.
type Privacy struct {
	HideBalances bool `json:"hideBalances"`
	HideAmounts  bool `json:"hideAmounts"`
	LockEnabled  bool `json:"lockEnabled"`
}

// Appearance holds the theming blob.
type Appearance struct {
	Theme       string `json:"theme"`
	AccentColor string `json:"accentColor"`
	FontSize    string `json:"fontSize"`
	CompactMode bool   `json:"compactMode"`
}

// DefaultNotifications matches the app's out-of-box quiet hours.
func DefaultNotifications() Notifications {
	return Notifications{QuietHoursStart: "22:00", QuietHoursEnd: "08:00"}
}

// DefaultAppearance matches the app's out-of-box theme.
func DefaultAppearance() Appearance {
	return Appearance{
		Theme:       "dark",
		AccentColor: "hsl(186 100% 50%)",
		FontSize:    "small",
		CompactMode: true,
	}
}

// LoadNotifications reads the notification blob, applying defaults when
// the key is absent or malformed.
func (s *Store) LoadNotifications() Notifications {
	n := DefaultNotifications()
	loadJSON(s, KeyNotifications, &n)
	return n
}

// LoadPrivacy reads the privacy blob.
func (s *Store) LoadPrivacy() Privacy {
	var p Privacy
	loadJSON(s, KeyPrivacy, &p)
	return p
}

// LoadAppearance reads the appearance blob.
func (s *Store) LoadAppearance() Appearance {
	a := DefaultAppearance()
	loadJSON(s, KeyAppearance, &a)
	return a
}

// SaveNotifications writes the notification blob.
func (s *Store) SaveNotifications(n Notifications) error {
	return saveJSON(s, KeyNotifications, n)
}

// SavePrivacy writes the privacy blob.
func (s *Store) SavePrivacy(p Privacy) error {
	return saveJSON(s, KeyPrivacy, p)
}

// SaveAppearance writes the appearance blob.
func (s *Store) SaveAppearance(a Appearance) error {
	return saveJSON(s, KeyAppearance, a)
}

func loadJSON(s *Store, key string, dest interface{}) {
	raw, err := s.Get(key)
	if err != nil || raw == "" {
		return
	}
	// A malformed blob keeps the defaults.
	json.Unmarshal([]byte(raw), dest)
}

func saveJSON(s *Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
