package service

import (
	"errors"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newRegistrationTestService(t *testing.T) (*RegistrationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Event{}, &models.EventRegistration{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewRegistrationService(
		repository.NewEventRegistrationRepository(db),
		repository.NewEventRepository(db),
		nil,
	)
	return svc, db
}

func seedPublishedEvent(t *testing.T, db *gorm.DB, slug string, capacity int) *models.Event {
	t.Helper()
	now := time.Now()
	event := &models.Event{
		Slug:        slug,
		Title:       "测试活动 " + slug,
		OrganizerID: 1,
		StartsAt:    now.Add(48 * time.Hour),
		EndsAt:      now.Add(50 * time.Hour),
		Capacity:    capacity,
		Status:      constants.EventStatusPublished,
		PublishedAt: &now,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	return event
}

func TestRegisterCapacityAndWaitlist(t *testing.T) {
	svc, db := newRegistrationTestService(t)
	event := seedPublishedEvent(t, db, "cap-two", 2)

	for userID := uint(1); userID <= 2; userID++ {
		reg, err := svc.Register(userID, event.ID)
		if err != nil {
			t.Fatalf("register user %d failed: %v", userID, err)
		}
		if reg.Status != constants.RegistrationStatusConfirmed {
			t.Fatalf("user %d want confirmed got %s", userID, reg.Status)
		}
	}

	reg, err := svc.Register(3, event.ID)
	if err != nil {
		t.Fatalf("register third failed: %v", err)
	}
	if reg.Status != constants.RegistrationStatusWaitlisted {
		t.Fatalf("third registration want waitlisted got %s", reg.Status)
	}

	// 同一用户重复报名被拒绝
	if _, err := svc.Register(1, event.ID); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("duplicate registration expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterRejectsUnpublishedOrStartedEvent(t *testing.T) {
	svc, db := newRegistrationTestService(t)

	draft := &models.Event{
		Slug:        "still-draft",
		Title:       "草稿活动",
		OrganizerID: 1,
		StartsAt:    time.Now().Add(24 * time.Hour),
		Status:      constants.EventStatusDraft,
	}
	if err := db.Create(draft).Error; err != nil {
		t.Fatalf("seed draft failed: %v", err)
	}
	if _, err := svc.Register(1, draft.ID); !errors.Is(err, ErrEventNotPublished) {
		t.Fatalf("draft expected ErrEventNotPublished, got %v", err)
	}

	started := seedPublishedEvent(t, db, "already-started", 0)
	if err := db.Model(started).Update("starts_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate event failed: %v", err)
	}
	if _, err := svc.Register(1, started.ID); !errors.Is(err, ErrEventStarted) {
		t.Fatalf("started expected ErrEventStarted, got %v", err)
	}

	canceled := seedPublishedEvent(t, db, "gone", 0)
	if err := db.Model(canceled).Update("status", constants.EventStatusCanceled).Error; err != nil {
		t.Fatalf("cancel event failed: %v", err)
	}
	if _, err := svc.Register(1, canceled.ID); !errors.Is(err, ErrEventCanceled) {
		t.Fatalf("canceled expected ErrEventCanceled, got %v", err)
	}
}

func TestCancelPromotesWaitlist(t *testing.T) {
	svc, db := newRegistrationTestService(t)
	event := seedPublishedEvent(t, db, "promote", 1)

	if _, err := svc.Register(1, event.ID); err != nil {
		t.Fatalf("register first failed: %v", err)
	}
	waitReg, err := svc.Register(2, event.ID)
	if err != nil {
		t.Fatalf("register second failed: %v", err)
	}
	if waitReg.Status != constants.RegistrationStatusWaitlisted {
		t.Fatalf("second registration want waitlisted got %s", waitReg.Status)
	}

	promoted, err := svc.Cancel(1, event.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if promoted == nil || promoted.UserID != 2 {
		t.Fatalf("waitlisted user 2 should be promoted, got %+v", promoted)
	}
	if promoted.Status != constants.RegistrationStatusConfirmed {
		t.Fatalf("promoted status want confirmed got %s", promoted.Status)
	}

	// 已取消的报名不可重复取消
	if _, err := svc.Cancel(1, event.ID); !errors.Is(err, ErrRegistrationNotFound) {
		t.Fatalf("re-cancel expected ErrRegistrationNotFound, got %v", err)
	}
}
