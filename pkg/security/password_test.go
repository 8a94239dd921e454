package security

import (
	"strings"
	"testing"

	"github.com/planetpizza/planetpizza-backend/pkg/config"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("abc123", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 3 || parts[0] != "sha256" {
		t.Fatalf("unexpected representation %q", hash)
	}
	if len(parts[1]) < 32 {
		t.Fatalf("salt shorter than 16 bytes hex-encoded: %q", parts[1])
	}

	if !VerifyPassword("abc123", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if VerifyPassword("abc124", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("abc123", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("abc123", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must use distinct salts")
	}
	if !VerifyPassword("abc123", first) || !VerifyPassword("abc123", second) {
		t.Fatalf("both representations must verify independently")
	}
}

func TestHashPasswordWithSaltDeterministic(t *testing.T) {
	salt := "00112233445566778899aabbccddeeff"
	first := HashPasswordWithSalt("abc123", salt)
	second := HashPasswordWithSalt("abc123", salt)
	if first != second {
		t.Fatalf("same password and salt must produce the same representation")
	}
}

func TestVerifyPasswordLegacyPlaintext(t *testing.T) {
	if !VerifyPassword("abc123", "abc123") {
		t.Fatalf("legacy plaintext match must verify")
	}
	if VerifyPassword("abc123", "wrong") {
		t.Fatalf("legacy plaintext mismatch must not verify")
	}
}

func TestVerifyPasswordEmptyPassword(t *testing.T) {
	if VerifyPassword("", "something") {
		t.Fatalf("empty password must not match a non-empty stored value")
	}
	if !VerifyPassword("", "") {
		t.Fatalf("empty password matches an empty legacy stored value")
	}
}

func TestVerifyPasswordMalformedFailsClosed(t *testing.T) {
	malformed := []string{
		"sha256$onlytwoparts",
		"sha256$",
		"sha256$$",
		"sha256$salt$digest$extra",
		"sha256$$digestonly",
		"sha256$saltonly$",
	}
	for _, stored := range malformed {
		if VerifyPassword("abc123", stored) {
			t.Fatalf("malformed representation %q must fail verification", stored)
		}
	}
}

func TestIsHashed(t *testing.T) {
	if IsHashed("abc123") {
		t.Fatalf("plaintext must not look hashed")
	}
	hash := HashPasswordWithSalt("abc123", "aa")
	if !IsHashed(hash) {
		t.Fatalf("tagged representation must look hashed")
	}
}
