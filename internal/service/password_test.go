package service

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret-password", hash) {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestLongPasswordsTruncateAt72Bytes(t *testing.T) {
	prefix := strings.Repeat("a", 72)
	hash, err := HashPassword(prefix + "tail-one")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// Bytes past 72 never reach bcrypt, so any suffix verifies.
	if !VerifyPassword(prefix+"tail-two", hash) {
		t.Fatalf("expected truncated passwords to verify against each other")
	}
	if VerifyPassword(prefix[:71], hash) {
		t.Fatalf("shorter password must not verify")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("empty hash verified")
	}
}
