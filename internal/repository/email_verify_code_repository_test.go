package repository

import (
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEmailVerifyCodeRepositoryTest(t *testing.T) (*GormEmailVerifyCodeRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.EmailVerifyCode{}); err != nil {
		t.Fatalf("migrate email verify code failed: %v", err)
	}
	return NewEmailVerifyCodeRepository(db), db
}

func TestEmailVerifyCodeReplaceKeepsSingleActiveRecord(t *testing.T) {
	repo, db := setupEmailVerifyCodeRepositoryTest(t)

	now := time.Now()
	first := &models.EmailVerifyCode{
		Email:     "user@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "111111",
		ExpiresAt: now.Add(15 * time.Minute),
		SentAt:    now,
	}
	if err := repo.Replace(first); err != nil {
		t.Fatalf("replace first failed: %v", err)
	}

	second := &models.EmailVerifyCode{
		Email:     "user@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "222222",
		ExpiresAt: now.Add(15 * time.Minute),
		SentAt:    now.Add(time.Minute),
	}
	if err := repo.Replace(second); err != nil {
		t.Fatalf("replace second failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailVerifyCode{}).
		Where("email = ? AND purpose = ?", "user@example.com", constants.VerifyPurposeRegister).
		Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("active record count want 1 got %d", count)
	}

	latest, err := repo.GetLatest("user@example.com", constants.VerifyPurposeRegister)
	if err != nil {
		t.Fatalf("get latest failed: %v", err)
	}
	if latest == nil || latest.Code != "222222" {
		t.Fatalf("latest code want 222222 got %+v", latest)
	}

	// 不同用途互不影响
	other := &models.EmailVerifyCode{
		Email:     "user@example.com",
		Purpose:   constants.VerifyPurposeReset,
		Code:      "333333",
		ExpiresAt: now.Add(15 * time.Minute),
		SentAt:    now,
	}
	if err := repo.Replace(other); err != nil {
		t.Fatalf("replace other purpose failed: %v", err)
	}
	latest, err = repo.GetLatest("user@example.com", constants.VerifyPurposeRegister)
	if err != nil || latest == nil || latest.Code != "222222" {
		t.Fatalf("register code should survive reset replace, got %+v err=%v", latest, err)
	}
}

func TestEmailVerifyCodeIncrementAttempt(t *testing.T) {
	repo, _ := setupEmailVerifyCodeRepositoryTest(t)

	now := time.Now()
	record := &models.EmailVerifyCode{
		Email:     "retry@example.com",
		Purpose:   constants.VerifyPurposeReset,
		Code:      "654321",
		ExpiresAt: now.Add(15 * time.Minute),
		SentAt:    now,
	}
	if err := repo.Replace(record); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementAttempt(record.ID); err != nil {
			t.Fatalf("increment attempt failed: %v", err)
		}
	}

	latest, err := repo.GetLatest("retry@example.com", constants.VerifyPurposeReset)
	if err != nil {
		t.Fatalf("get latest failed: %v", err)
	}
	if latest.AttemptCount != 3 {
		t.Fatalf("attempt count want 3 got %d", latest.AttemptCount)
	}
}

func TestEmailVerifyCodeDeleteExpiredBefore(t *testing.T) {
	repo, db := setupEmailVerifyCodeRepositoryTest(t)

	now := time.Now()
	expired := &models.EmailVerifyCode{
		Email:     "old@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "000000",
		ExpiresAt: now.Add(-time.Hour),
		SentAt:    now.Add(-2 * time.Hour),
	}
	active := &models.EmailVerifyCode{
		Email:     "new@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "999999",
		ExpiresAt: now.Add(time.Hour),
		SentAt:    now,
	}
	if err := db.Create(expired).Error; err != nil {
		t.Fatalf("create expired failed: %v", err)
	}
	if err := db.Create(active).Error; err != nil {
		t.Fatalf("create active failed: %v", err)
	}

	removed, err := repo.DeleteExpiredBefore(now)
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed want 1 got %d", removed)
	}

	var count int64
	if err := db.Model(&models.EmailVerifyCode{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("remaining count want 1 got %d", count)
	}
}
