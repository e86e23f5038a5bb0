package security

import "testing"

func TestHashNotePassword(t *testing.T) {
	hash, err := HashNotePassword("hunter2")
	if err != nil {
		t.Fatalf("HashNotePassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Error("Expected hash to differ from the password")
	}
	if !IsNotePasswordHash(hash) {
		t.Errorf("Expected a recognizable bcrypt hash, got %q", hash)
	}
}

func TestIsNotePasswordHash(t *testing.T) {
	testCases := []struct {
		name     string
		stored   string
		expected bool
	}{
		{"bcrypt 2a", "$2a$10$abcdefghijklmnopqrstuv", true},
		{"bcrypt 2b", "$2b$12$abcdefghijklmnopqrstuv", true},
		{"bcrypt 2y", "$2y$10$abcdefghijklmnopqrstuv", true},
		{"plaintext", "hunter2", false},
		{"empty", "", false},
		{"dollar but not bcrypt", "$1$legacy", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotePasswordHash(tc.stored); got != tc.expected {
				t.Errorf("Expected %v for %q, got %v", tc.expected, tc.stored, got)
			}
		})
	}
}

func TestVerifyNotePassword(t *testing.T) {
	hash, err := HashNotePassword("hunter2")
	if err != nil {
		t.Fatalf("HashNotePassword failed: %v", err)
	}

	if !VerifyNotePassword(hash, "hunter2") {
		t.Error("Expected hash to verify against the right password")
	}
	if VerifyNotePassword(hash, "wrong") {
		t.Error("Expected hash to reject the wrong password")
	}

	// Session-local notes still hold the plaintext.
	if !VerifyNotePassword("hunter2", "hunter2") {
		t.Error("Expected plaintext comparison to succeed")
	}
	if VerifyNotePassword("hunter2", "wrong") {
		t.Error("Expected plaintext comparison to fail on mismatch")
	}
	if VerifyNotePassword("", "anything") {
		t.Error("Expected empty stored value to never verify")
	}
}
