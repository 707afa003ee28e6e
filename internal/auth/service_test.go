package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
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

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Register("Other User", "test@example.com", "Password@456"); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := service.Login("test@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("unknown@example.com", "Password@123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
