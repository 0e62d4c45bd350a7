package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

// newTestService builds an AuthService over an in-memory database.
func newTestService(t *testing.T) *AuthService {
	t.Helper()

	repo := NewUserRepository(setupTestDB(t))
	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(JWTConfig{
		SecretKey: "test-secret-key",
		Lifetime:  time.Hour,
		Issuer:    "test-issuer",
	})
	return NewAuthService(repo, hasher, jwtManager)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	user, err := service.Register(ctx, "a@x.com", "password1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("user.Email = %v, want a@x.com", user.Email)
	}
	if user.PasswordHash == "password1" {
		t.Error("password stored in plaintext")
	}

	t.Run("correct credentials", func(t *testing.T) {
		token, err := service.Login(ctx, "a@x.com", "password1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token == "" {
			t.Error("Login() returned empty token")
		}

		claims, err := service.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.Email != "a@x.com" {
			t.Errorf("claims.Email = %v, want a@x.com", claims.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "a@x.com", "password2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody@x.com", "password1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	longPassword := make([]byte, 73)
	for i := range longPassword {
		longPassword[i] = 'a'
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "password1",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "short password",
			email:    "b@x.com",
			password: "short",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "password over bcrypt limit",
			email:    "b@x.com",
			password: string(longPassword),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := service.Register(ctx, "dup@x.com", "password1"); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		_, err := service.Register(ctx, "dup@x.com", "password1")
		if !errors.Is(err, ErrUserExists) {
			t.Errorf("Register() error = %v, want ErrUserExists", err)
		}
	})
}

func TestAuthService_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	registered, err := service.Register(ctx, "c@x.com", "password1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	found, err := service.GetUserByEmail(ctx, "c@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if found.ID != registered.ID {
		t.Errorf("found.ID = %v, want %v", found.ID, registered.ID)
	}

	_, err = service.GetUserByEmail(ctx, "stale@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestAuthService_SeedAdmin(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	if err := service.SeedAdmin(ctx, "admin@x.com", "adminpass1"); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	token, err := service.Login(ctx, "admin@x.com", "adminpass1")
	if err != nil {
		t.Fatalf("Login() after seed error = %v", err)
	}
	if token == "" {
		t.Error("Login() returned empty token")
	}

	// Seeding only happens on an empty table
	if err := service.SeedAdmin(ctx, "other@x.com", "otherpass1"); err != nil {
		t.Fatalf("SeedAdmin() second call error = %v", err)
	}
	if _, err := service.GetUserByEmail(ctx, "other@x.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second seed created a user, want ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ExpiredTokenRejected(t *testing.T) {
	ctx := context.Background()

	repo := NewUserRepository(setupTestDB(t))
	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(JWTConfig{
		SecretKey: "test-secret-key",
		Lifetime:  time.Millisecond,
		Issuer:    "test-issuer",
	})
	service := NewAuthService(repo, hasher, jwtManager)

	if _, err := service.Register(ctx, "e@x.com", "password1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token, err := service.Login(ctx, "e@x.com", "password1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = service.ValidateToken(ctx, token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}
