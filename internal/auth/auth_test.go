package auth

import (
	"testing"
	"time"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals the plaintext password")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.IssueToken("user-uuid-1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	userID, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "user-uuid-1" {
		t.Errorf("VerifyToken subject = %q, want user-uuid-1", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	token, err := m.IssueToken("user-uuid-1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := other.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("VerifyToken with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.IssueToken("user-uuid-1")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := m.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("VerifyToken on expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	if _, err := m.VerifyToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("VerifyToken(garbage): err = %v, want ErrInvalidToken", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("abcdef"); err != nil {
		t.Errorf("ValidatePassword(6 chars) = %v, want nil", err)
	}
	if err := ValidatePassword("abc"); err == nil {
		t.Error("ValidatePassword(3 chars) = nil, want error")
	}
}
