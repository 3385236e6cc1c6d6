package service

import (
	"errors"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newEventTestService(t *testing.T) (*EventService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Event{}, &models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewEventService(
		repository.NewEventRepository(db),
		repository.NewCategoryRepository(db),
		NewSettingService(repository.NewSettingRepository(db)),
		nil,
	)
	return svc, db
}

func TestEventLifecycle(t *testing.T) {
	svc, _ := newEventTestService(t)

	input := CreateEventInput{
		Slug:        "gopher-meetup",
		Title:       "Gopher Meetup",
		Description: "月度线下聚会",
		Venue:       "虹桥会议中心",
		StartsAt:    time.Now().Add(72 * time.Hour),
		EndsAt:      time.Now().Add(75 * time.Hour),
		Capacity:    100,
		TicketPrice: decimal.NewFromFloat(29.9),
	}
	event, err := svc.Create(5, input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if event.Status != constants.EventStatusDraft {
		t.Fatalf("new event status want draft got %s", event.Status)
	}
	if event.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("default currency want %s got %s", constants.SiteCurrencyDefault, event.Currency)
	}

	// slug 冲突
	if _, err := svc.Create(5, input); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug expected ErrSlugExists, got %v", err)
	}

	// 草稿对公众不可见
	if _, err := svc.GetPublicBySlug("gopher-meetup"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("draft should be hidden, got %v", err)
	}

	published, err := svc.Publish(event.ID)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Status != constants.EventStatusPublished || published.PublishedAt == nil {
		t.Fatalf("publish state mismatch: %+v", published)
	}

	// 已发布不可再次发布
	if _, err := svc.Publish(event.ID); !errors.Is(err, ErrInvalidEventStatus) {
		t.Fatalf("double publish expected ErrInvalidEventStatus, got %v", err)
	}

	visible, err := svc.GetPublicBySlug("gopher-meetup")
	if err != nil {
		t.Fatalf("public detail failed: %v", err)
	}
	if visible.Title != "Gopher Meetup" {
		t.Fatalf("unexpected public title: %s", visible.Title)
	}

	canceled, err := svc.Cancel(event.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.EventStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("cancel state mismatch: %+v", canceled)
	}

	// 已取消不可编辑、不可再取消
	if _, err := svc.Update(event.ID, input); !errors.Is(err, ErrEventCanceled) {
		t.Fatalf("edit canceled expected ErrEventCanceled, got %v", err)
	}
	if _, err := svc.Cancel(event.ID); !errors.Is(err, ErrEventCanceled) {
		t.Fatalf("re-cancel expected ErrEventCanceled, got %v", err)
	}
}

func TestPublishRejectsPastStart(t *testing.T) {
	svc, db := newEventTestService(t)

	event, err := svc.Create(1, CreateEventInput{
		Slug:     "past-start",
		Title:    "过期活动",
		StartsAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := db.Model(&models.Event{}).Where("id = ?", event.ID).
		Update("starts_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate failed: %v", err)
	}

	if _, err := svc.Publish(event.ID); !errors.Is(err, ErrInvalidEventTime) {
		t.Fatalf("past start expected ErrInvalidEventTime, got %v", err)
	}
}

func TestCreateEventValidatesTimes(t *testing.T) {
	svc, _ := newEventTestService(t)

	starts := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(1, CreateEventInput{
		Slug:     "bad-times",
		Title:    "时间错误",
		StartsAt: starts,
		EndsAt:   starts.Add(-time.Hour),
	})
	if !errors.Is(err, ErrInvalidEventTime) {
		t.Fatalf("ends before starts expected ErrInvalidEventTime, got %v", err)
	}
}

func TestSuggestTitlesOnlyPublished(t *testing.T) {
	svc, _ := newEventTestService(t)

	starts := time.Now().Add(24 * time.Hour)
	published, err := svc.Create(1, CreateEventInput{Slug: "go-night", Title: "Go Night", StartsAt: starts})
	if err != nil {
		t.Fatalf("create published failed: %v", err)
	}
	if _, err := svc.Publish(published.ID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := svc.Create(1, CreateEventInput{Slug: "go-workshop", Title: "Go Workshop", StartsAt: starts}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	titles, err := svc.SuggestTitles("Go", 10)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(titles) != 1 || titles[0] != "Go Night" {
		t.Fatalf("suggest should only surface published titles, got %v", titles)
	}

	titles, err = svc.SuggestTitles("   ", 10)
	if err != nil || len(titles) != 0 {
		t.Fatalf("blank prefix should return empty, got %v %v", titles, err)
	}
}
