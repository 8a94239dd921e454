package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/planetpizza/planetpizza-backend/pkg/config"
)

// HashPrefix tags salted SHA-256 representations so they can be told apart
// from un-migrated plaintext values still present in the funcionarios table.
const HashPrefix = "sha256"

const minSaltBytes = 16

// HashPassword returns a salted representation of the form
// sha256$<hex-salt>$<hex-digest> using a fresh random salt.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	saltBytes := cfg.SaltBytes
	if saltBytes < minSaltBytes {
		saltBytes = minSaltBytes
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return HashPasswordWithSalt(password, hex.EncodeToString(salt)), nil
}

// HashPasswordWithSalt computes the deterministic representation for a known
// salt. Verification depends on this determinism.
func HashPasswordWithSalt(password, hexSalt string) string {
	return fmt.Sprintf("%s$%s$%s", HashPrefix, hexSalt, digest(password, hexSalt))
}

// VerifyPassword reports whether the password matches the stored
// representation. Tagged values are verified by recomputing the digest with
// the embedded salt; anything else is treated as a legacy plaintext value.
// Malformed representations fail closed: the function never panics and never
// returns an error.
func VerifyPassword(password, stored string) bool {
	if !IsHashed(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != HashPrefix || parts[1] == "" || parts[2] == "" {
		return false
	}

	computed := digest(password, parts[1])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(parts[2])) == 1
}

// IsHashed reports whether the stored value carries the algorithm tag. The
// login path uses this to decide whether a successful verification should
// trigger the write-through migration.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, HashPrefix+"$")
}

func digest(password, hexSalt string) string {
	sum := sha256.Sum256([]byte(password + hexSalt))
	return hex.EncodeToString(sum[:])
}
