package auth

import (
	"context"
	"testing"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register(context.Background(), "Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "A", "dup@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := service.Register(ctx, "B", "DUP@example.com", "Password@123")
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	for _, email := range []string{"plainaddress", "chef@", "@example.com"} {
		_, err := service.Register(context.Background(), "Chef", email, "Password@123")
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("%q: expected validation error, got %v", email, err)
		}
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "Chef", "chef@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		user, err := service.Login(ctx, "chef@example.com", "Password@123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != RoleStaff {
			t.Errorf("expected role %s, got %s", RoleStaff, user.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "chef@example.com", "nope")
		if !apperr.Is(err, apperr.KindAuthentication) {
			t.Fatalf("expected authentication error, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, "ghost@example.com", "Password@123")
		if !apperr.Is(err, apperr.KindAuthentication) {
			t.Fatalf("expected authentication error, got %v", err)
		}
	})
}
