package repository

import (
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupEventRegistrationRepositoryTest(t *testing.T) (*GormEventRegistrationRepository, *gorm.DB, *models.Event) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.EventRegistration{}); err != nil {
		t.Fatalf("migrate registration failed: %v", err)
	}

	event := &models.Event{
		Slug:        "capacity-demo",
		Title:       "满员测试活动",
		OrganizerID: 1,
		StartsAt:    time.Now().Add(24 * time.Hour),
		Capacity:    2,
		Status:      constants.EventStatusPublished,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	return NewEventRegistrationRepository(db), db, event
}

func TestRegisterWithCapacityMovesToWaitlistWhenFull(t *testing.T) {
	repo, _, event := setupEventRegistrationRepositoryTest(t)

	for userID := uint(1); userID <= 2; userID++ {
		reg := &models.EventRegistration{EventID: event.ID, UserID: userID}
		waitlisted, err := repo.RegisterWithCapacity(reg, event.Capacity)
		if err != nil {
			t.Fatalf("register user %d failed: %v", userID, err)
		}
		if waitlisted {
			t.Fatalf("user %d should be confirmed", userID)
		}
		if reg.Status != constants.RegistrationStatusConfirmed || reg.ConfirmedAt == nil {
			t.Fatalf("user %d status want confirmed got %s", userID, reg.Status)
		}
	}

	third := &models.EventRegistration{EventID: event.ID, UserID: 3}
	waitlisted, err := repo.RegisterWithCapacity(third, event.Capacity)
	if err != nil {
		t.Fatalf("register third failed: %v", err)
	}
	if !waitlisted || third.Status != constants.RegistrationStatusWaitlisted {
		t.Fatalf("third registration should be waitlisted, got %s", third.Status)
	}

	confirmed, err := repo.CountConfirmed(event.ID)
	if err != nil {
		t.Fatalf("count confirmed failed: %v", err)
	}
	if confirmed != 2 {
		t.Fatalf("confirmed count want 2 got %d", confirmed)
	}
}

func TestRegisterWithCapacityUnlimited(t *testing.T) {
	repo, _, event := setupEventRegistrationRepositoryTest(t)

	for userID := uint(1); userID <= 5; userID++ {
		reg := &models.EventRegistration{EventID: event.ID, UserID: userID}
		waitlisted, err := repo.RegisterWithCapacity(reg, 0)
		if err != nil {
			t.Fatalf("register user %d failed: %v", userID, err)
		}
		if waitlisted {
			t.Fatalf("capacity 0 should never waitlist, user %d", userID)
		}
	}
}

func TestCancelAndPromoteOldestWaitlisted(t *testing.T) {
	repo, db, event := setupEventRegistrationRepositoryTest(t)

	var confirmedFirst *models.EventRegistration
	for userID := uint(1); userID <= 2; userID++ {
		reg := &models.EventRegistration{EventID: event.ID, UserID: userID}
		if _, err := repo.RegisterWithCapacity(reg, event.Capacity); err != nil {
			t.Fatalf("register user %d failed: %v", userID, err)
		}
		if userID == 1 {
			confirmedFirst = reg
		}
	}

	// 两个候补，晋升应取最早创建的一个
	waitA := &models.EventRegistration{EventID: event.ID, UserID: 3, CreatedAt: time.Now().Add(-time.Minute)}
	waitB := &models.EventRegistration{EventID: event.ID, UserID: 4}
	for _, reg := range []*models.EventRegistration{waitA, waitB} {
		if _, err := repo.RegisterWithCapacity(reg, event.Capacity); err != nil {
			t.Fatalf("register waitlist failed: %v", err)
		}
	}

	promoted, err := repo.CancelAndPromote(confirmedFirst.ID, time.Now())
	if err != nil {
		t.Fatalf("cancel and promote failed: %v", err)
	}
	if promoted == nil || promoted.UserID != 3 {
		t.Fatalf("oldest waitlisted (user 3) should be promoted, got %+v", promoted)
	}

	var canceled models.EventRegistration
	if err := db.First(&canceled, confirmedFirst.ID).Error; err != nil {
		t.Fatalf("load canceled failed: %v", err)
	}
	if canceled.Status != constants.RegistrationStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("canceled registration status mismatch: %+v", canceled)
	}

	confirmed, err := repo.CountConfirmed(event.ID)
	if err != nil {
		t.Fatalf("count confirmed failed: %v", err)
	}
	if confirmed != 2 {
		t.Fatalf("confirmed count want 2 got %d", confirmed)
	}
}

func TestCancelWaitlistedDoesNotPromote(t *testing.T) {
	repo, _, event := setupEventRegistrationRepositoryTest(t)

	for userID := uint(1); userID <= 3; userID++ {
		reg := &models.EventRegistration{EventID: event.ID, UserID: userID}
		if _, err := repo.RegisterWithCapacity(reg, event.Capacity); err != nil {
			t.Fatalf("register user %d failed: %v", userID, err)
		}
	}
	waitlisted, err := repo.GetActive(event.ID, 3)
	if err != nil || waitlisted == nil {
		t.Fatalf("get waitlisted failed: %v", err)
	}

	promoted, err := repo.CancelAndPromote(waitlisted.ID, time.Now())
	if err != nil {
		t.Fatalf("cancel waitlisted failed: %v", err)
	}
	if promoted != nil {
		t.Fatalf("canceling a waitlisted registration should not promote, got %+v", promoted)
	}
}
