package auth_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/auth"
)

func TestHashAndVerify(t *testing.T) {
	hasher := auth.NewHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !hasher.Verify(hash, "secret123") {
		t.Error("expected correct password to verify")
	}
	if hasher.Verify(hash, "wrong-password") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := auth.NewHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}
