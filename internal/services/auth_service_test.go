package services

import (
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	service := NewAuthService(f.repos.Users)

	user, err := service.Register("Taro@Example.com ", "correct horse battery", "Taro", "Yamada")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "correct horse battery" {
		t.Fatal("expected the password to be hashed")
	}

	authenticated, err := service.Authenticate("  taro@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
}

func TestAuthenticateRejectsWrongPasswordAndUnknownEmail(t *testing.T) {
	f := newFixture(t)
	service := NewAuthService(f.repos.Users)

	if _, err := service.Register("taro@example.com", "correct horse battery", "Taro", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := service.Authenticate("taro@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	service := NewAuthService(f.repos.Users)

	if _, err := service.Register("taro@example.com", "correct horse battery", "Taro", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := service.Register("TARO@example.com", "another password", "Impostor", "")
	if !IsIntegrityConflict(err) {
		t.Fatalf("expected duplicate email conflict, got %v", err)
	}
}
