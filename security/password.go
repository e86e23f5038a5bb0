package security

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashNotePassword hashes a note password before it is pushed to the
// remote mirror. The plaintext never leaves the process.
func HashNotePassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IsNotePasswordHash reports whether a stored value is already a bcrypt
// hash. Notes pulled from the remote carry the hash; notes locked in the
// current session still carry the plaintext.
func IsNotePasswordHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// VerifyNotePassword checks a supplied password against the stored value,
// which may be either a bcrypt hash or a session-local plaintext.
func VerifyNotePassword(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if IsNotePasswordHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
