package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword([]byte("p1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "p1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %q", hash)
	}
	if !ComparePassword(hash, []byte("p1")) {
		t.Fatal("expected matching password to compare true")
	}
	if ComparePassword(hash, []byte("wrong")) {
		t.Fatal("expected wrong password to compare false")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a, err := HashPassword([]byte("same"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword([]byte("same"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatal("identical passwords must yield different hashes")
	}
}

func TestHashPassword_CostOutOfRangeUsesDefault(t *testing.T) {
	hash, err := HashPassword([]byte("x"), 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(bytes.Repeat([]byte("a"), 73), bcrypt.MinCost)
	if err != ErrPasswordTooLong {
		t.Fatalf("want ErrPasswordTooLong, got %v", err)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	if ComparePassword("not-a-hash", []byte("x")) {
		t.Fatal("malformed hash must never match")
	}
}
