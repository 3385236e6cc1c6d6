package repository

import (
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRateLimitEntryRepositoryTest(t *testing.T) (*GormRateLimitEntryRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.RateLimitEntry{}); err != nil {
		t.Fatalf("migrate rate limit entry failed: %v", err)
	}
	return NewRateLimitEntryRepository(db), db
}

func TestRateLimitEntryCountSinceSlidingWindow(t *testing.T) {
	repo, db := setupRateLimitEntryRepositoryTest(t)

	now := time.Now()
	rows := []models.RateLimitEntry{
		{ClientKey: "1.2.3.4", Route: constants.RateLimitRouteVerifyEmail, CreatedAt: now.Add(-20 * time.Minute)},
		{ClientKey: "1.2.3.4", Route: constants.RateLimitRouteVerifyEmail, CreatedAt: now.Add(-10 * time.Minute)},
		{ClientKey: "1.2.3.4", Route: constants.RateLimitRouteVerifyEmail, CreatedAt: now.Add(-time.Minute)},
		{ClientKey: "1.2.3.4", Route: constants.RateLimitRouteSuggest, CreatedAt: now.Add(-time.Minute)},
		{ClientKey: "5.6.7.8", Route: constants.RateLimitRouteVerifyEmail, CreatedAt: now.Add(-time.Minute)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create entry failed: %v", err)
		}
	}

	count, err := repo.CountSince("1.2.3.4", constants.RateLimitRouteVerifyEmail, now.Add(-15*time.Minute))
	if err != nil {
		t.Fatalf("count since failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("window count want 2 got %d", count)
	}

	count, err = repo.CountSince("1.2.3.4", constants.RateLimitRouteSuggest, now.Add(-15*time.Minute))
	if err != nil {
		t.Fatalf("count since suggest failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("suggest count want 1 got %d", count)
	}
}

func TestRateLimitEntryAppendAndDeleteBefore(t *testing.T) {
	repo, db := setupRateLimitEntryRepositoryTest(t)

	now := time.Now()
	if err := repo.Append(&models.RateLimitEntry{
		ClientKey: "1.2.3.4",
		Route:     constants.RateLimitRouteVerifyEmail,
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := db.Create(&models.RateLimitEntry{
		ClientKey: "1.2.3.4",
		Route:     constants.RateLimitRouteVerifyEmail,
		CreatedAt: now.Add(-2 * time.Hour),
	}).Error; err != nil {
		t.Fatalf("create old entry failed: %v", err)
	}

	removed, err := repo.DeleteBefore(now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("delete before failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed want 1 got %d", removed)
	}

	var count int64
	if err := db.Model(&models.RateLimitEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("remaining want 1 got %d", count)
	}
}
