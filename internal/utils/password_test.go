package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "sup3rsecret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPasswordHash("sup3rsecret", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
