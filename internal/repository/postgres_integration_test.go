//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.EventRegistration{},
		&models.Event{},
		&models.Category{},
		&models.RateLimitEntry{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Event{},
		&models.EventRegistration{},
		&models.RateLimitEntry{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresLocalizedCategorySearch(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	categoryRepo := NewCategoryRepository(db)
	category := &models.Category{
		Slug:     "pg-music",
		NameJSON: models.JSON{"zh-CN": "音乐现场", "en-US": "Live Music"},
	}
	if err := categoryRepo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	rows, err := categoryRepo.SearchByName("音乐")
	if err != nil {
		t.Fatalf("category search zh-CN failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("category search zh-CN want 1 got %d", len(rows))
	}

	rows, err = categoryRepo.SearchByName("Live")
	if err != nil {
		t.Fatalf("category search en-US failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("category search en-US want 1 got %d", len(rows))
	}
}

func TestPostgresEventKeywordSearchAndSuggest(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	eventRepo := NewEventRepository(db)
	now := time.Now()
	event := &models.Event{
		Slug:        "pg-rocket-meetup",
		Title:       "Rocket Builders Meetup",
		OrganizerID: 1,
		Venue:       "Hangar 42",
		StartsAt:    now.Add(24 * time.Hour),
		EndsAt:      now.Add(26 * time.Hour),
		TicketPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
		Currency:    "USD",
		Status:      constants.EventStatusPublished,
	}
	if err := eventRepo.Create(event); err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	rows, total, err := eventRepo.List(EventListFilter{
		Page:          1,
		PageSize:      10,
		Keyword:       "rocket",
		OnlyPublished: true,
	})
	if err != nil {
		t.Fatalf("event list search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("event list search want 1 got total=%d len=%d", total, len(rows))
	}

	titles, err := eventRepo.SuggestTitles("Rocket", 5)
	if err != nil {
		t.Fatalf("event suggest failed: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Rocket Builders Meetup" {
		t.Fatalf("event suggest mismatch: %v", titles)
	}
}
