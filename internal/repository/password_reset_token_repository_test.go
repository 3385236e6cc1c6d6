package repository

import (
	"testing"
	"time"

	"github.com/event-horizon/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPasswordResetTokenRepositoryTest(t *testing.T) (*GormPasswordResetTokenRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.PasswordResetToken{}); err != nil {
		t.Fatalf("migrate reset token failed: %v", err)
	}
	return NewPasswordResetTokenRepository(db), db
}

func TestPasswordResetTokenSingleUse(t *testing.T) {
	repo, _ := setupPasswordResetTokenRepositoryTest(t)

	now := time.Now()
	token := &models.PasswordResetToken{
		UserID:    42,
		Token:     "aabbccdd",
		ExpiresAt: now.Add(30 * time.Minute),
	}
	if err := repo.Create(token); err != nil {
		t.Fatalf("create token failed: %v", err)
	}

	active, err := repo.GetActiveByToken("aabbccdd", now)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if active == nil || active.UserID != 42 {
		t.Fatalf("active token mismatch: %+v", active)
	}

	if err := repo.MarkUsed(token.ID, now); err != nil {
		t.Fatalf("mark used failed: %v", err)
	}

	active, err = repo.GetActiveByToken("aabbccdd", now)
	if err != nil {
		t.Fatalf("get active after use failed: %v", err)
	}
	if active != nil {
		t.Fatalf("used token should not be active, got %+v", active)
	}
}

func TestPasswordResetTokenExpiry(t *testing.T) {
	repo, _ := setupPasswordResetTokenRepositoryTest(t)

	now := time.Now()
	token := &models.PasswordResetToken{
		UserID:    7,
		Token:     "expired-token",
		ExpiresAt: now.Add(-time.Minute),
	}
	if err := repo.Create(token); err != nil {
		t.Fatalf("create token failed: %v", err)
	}

	active, err := repo.GetActiveByToken("expired-token", now)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if active != nil {
		t.Fatalf("expired token should not be active, got %+v", active)
	}

	removed, err := repo.DeleteExpiredBefore(now)
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed want 1 got %d", removed)
	}
}
