package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// minIterations is the floor for PBKDF2-HMAC-SHA256; configured values
	// below it are raised to it.
	minIterations = 120000
	saltBytes     = 16
	keyBytes      = 32
)

// PBKDF2PasswordHasher derives password hashes with PBKDF2-HMAC-SHA256 and a
// per-credential random salt. Derivation cost is fixed per attempt, so
// verification time does not depend on where a mismatch occurs.
type PBKDF2PasswordHasher struct {
	iterations int
}

func NewPBKDF2PasswordHasher(iterations int) *PBKDF2PasswordHasher {
	if iterations < minIterations {
		iterations = minIterations
	}
	return &PBKDF2PasswordHasher{iterations: iterations}
}

func (h *PBKDF2PasswordHasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha256.New)
	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

func (h *PBKDF2PasswordHasher) Verify(password, hash, salt string) error {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}
	expected, err := hex.DecodeString(hash)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}
	derived := pbkdf2.Key([]byte(password), saltBytes, h.iterations, keyBytes, sha256.New)
	if subtle.ConstantTimeCompare(derived, expected) != 1 {
		// Generic message regardless of cause; callers must not be able to
		// distinguish a malformed record from a wrong password.
		return fmt.Errorf("password verification failed")
	}
	return nil
}
