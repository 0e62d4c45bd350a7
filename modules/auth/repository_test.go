package auth

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-manager-api/domain/user"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestUser(email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$12$fakedigestfakedigestfakedigestfakedigestfakedigest12",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("a@x.com")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, found.Email)
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("find@x.com")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByEmail("find@x.com")
		if err != nil {
			t.Fatalf("FindByEmail() error = %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected ID %q, got %q", user.ID, found.ID)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail("nobody@x.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := repo.FindByEmail("FIND@x.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_EmailExists(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	if err := repo.Create(newTestUser("taken@x.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.EmailExists("taken@x.com")
	if err != nil {
		t.Fatalf("EmailExists() error = %v", err)
	}
	if !exists {
		t.Error("EmailExists() = false, want true")
	}

	exists, err = repo.EmailExists("free@x.com")
	if err != nil {
		t.Fatalf("EmailExists() error = %v", err)
	}
	if exists {
		t.Error("EmailExists() = true, want false")
	}
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	for _, email := range []string{"one@x.com", "two@x.com"} {
		if err := repo.Create(newTestUser(email)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err = repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
