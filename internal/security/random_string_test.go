package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	const alphabet = "abc123"
	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected length 32, got %d", len(value))
	}
	for _, r := range value {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("unexpected character %q", r)
		}
	}
}

func TestRandomStringValuesDiffer(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	first, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct values")
	}
}
