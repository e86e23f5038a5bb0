package prefs

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open prefs store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	value, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("Expected empty value for missing key, got %q", value)
	}

	if err := s.Set("color", "blue"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("color", "green"); err != nil {
		t.Fatalf("Second set failed: %v", err)
	}

	value, err = s.Get("color")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "green" {
		t.Errorf("Expected latest value green, got %q", value)
	}
}

func TestNotificationDefaults(t *testing.T) {
	s := openTestStore(t)

	n := s.LoadNotifications()
	if n.QuietHoursEnabled {
		t.Error("Expected quiet hours disabled by default")
	}
	if n.QuietHoursStart != "22:00" || n.QuietHoursEnd != "08:00" {
		t.Errorf("Expected default quiet hours 22:00-08:00, got %s-%s", n.QuietHoursStart, n.QuietHoursEnd)
	}

	n.QuietHoursEnabled = true
	n.QuietHoursStart = "23:30"
	if err := s.SaveNotifications(n); err != nil {
		t.Fatalf("SaveNotifications failed: %v", err)
	}

	got := s.LoadNotifications()
	if !got.QuietHoursEnabled || got.QuietHoursStart != "23:30" {
		t.Errorf("Expected saved notifications back, got %+v", got)
	}
}

func TestAppearanceDefaults(t *testing.T) {
	s := openTestStore(t)

	a := s.LoadAppearance()
	if a.Theme != "dark" {
		t.Errorf("Expected dark default theme, got %q", a.Theme)
	}
	if a.FontSize != "small" || !a.CompactMode {
		t.Errorf("Expected compact small defaults, got %+v", a)
	}

	a.Theme = "light"
	a.CompactMode = false
	if err := s.SaveAppearance(a); err != nil {
		t.Fatalf("SaveAppearance failed: %v", err)
	}

	got := s.LoadAppearance()
	if got.Theme != "light" || got.CompactMode {
		t.Errorf("Expected saved appearance back, got %+v", got)
	}
}

func TestPrivacyRoundTrip(t *testing.T) {
	s := openTestStore(t)

	p := s.LoadPrivacy()
	if p.HideBalances || p.HideAmounts || p.LockEnabled {
		t.Errorf("Expected all privacy toggles off by default, got %+v", p)
	}

	p.HideBalances = true
	p.LockEnabled = true
	if err := s.SavePrivacy(p); err != nil {
		t.Fatalf("SavePrivacy failed: %v", err)
	}

	got := s.LoadPrivacy()
	if !got.HideBalances || !got.LockEnabled || got.HideAmounts {
		t.Errorf("Expected saved privacy back, got %+v", got)
	}
}

func TestMalformedBlobKeepsDefaults(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set(KeyAppearance, "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	a := s.LoadAppearance()
	if a.Theme != "dark" {
		t.Errorf("Expected defaults on malformed blob, got %+v", a)
	}
}
