package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret-key-12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := issuer.GenerateToken(userID, email, RoleStaff)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := issuer.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != email {
		t.Fatalf("Expected email %s, got %s", email, claims.Email)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret-a")
	other, _ := NewTokenIssuer("secret-b")

	token, err := other.GenerateToken("u1", "a@b.c", RoleStaff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	expired, _ := NewTokenIssuer("secret-a")
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	old, _ := expired.GenerateToken("u1", "a@b.c", RoleStaff)
	if _, err := issuer.ValidateToken(old); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
