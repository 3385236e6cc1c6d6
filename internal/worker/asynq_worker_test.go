package worker

import (
	"context"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/provider"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func newWorkerTestConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.EventRegistration{},
		&models.OrganizerApplication{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	container := &provider.Container{
		UserRepo:                 repository.NewUserRepository(db),
		EventRepo:                repository.NewEventRepository(db),
		RegistrationRepo:         repository.NewEventRegistrationRepository(db),
		OrganizerApplicationRepo: repository.NewOrganizerApplicationRepository(db),
	}
	return NewConsumer(container), db
}

func TestRegisterSkipsNilMux(t *testing.T) {
	consumer, _ := newWorkerTestConsumer(t)
	// 不应 panic
	consumer.Register(nil)

	var nilConsumer *Consumer
	nilConsumer.Register(asynq.NewServeMux())
}

func TestHandleRegistrationEmailSkipsBadPayload(t *testing.T) {
	consumer, _ := newWorkerTestConsumer(t)

	task := asynq.NewTask(queue.TaskRegistrationEmail, []byte("not-json"))
	if err := consumer.handleRegistrationEmail(context.Background(), task); err == nil {
		t.Fatal("malformed payload should be retried")
	}

	task, err := queue.NewRegistrationEmailTask(queue.RegistrationEmailPayload{RegistrationID: 0})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleRegistrationEmail(context.Background(), task); err != nil {
		t.Fatalf("zero id should be skipped, got %v", err)
	}

	task, err = queue.NewRegistrationEmailTask(queue.RegistrationEmailPayload{RegistrationID: 9999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleRegistrationEmail(context.Background(), task); err != nil {
		t.Fatalf("missing registration should be skipped, got %v", err)
	}
}

func TestHandleApplicationStatusEmailSkipsWithoutEmailService(t *testing.T) {
	consumer, db := newWorkerTestConsumer(t)

	user := &models.User{
		Email:        "applicant@example.com",
		PasswordHash: "x",
		Status:       constants.UserStatusActive,
		Role:         constants.UserRoleMember,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	application := &models.OrganizerApplication{
		UserID:      user.ID,
		OrgName:     "晨星社",
		Description: "校园活动组织",
		Status:      constants.ApplicationStatusAccepted,
	}
	if err := db.Create(application).Error; err != nil {
		t.Fatalf("seed application failed: %v", err)
	}

	task, err := queue.NewApplicationStatusEmailTask(queue.ApplicationStatusEmailPayload{
		ApplicationID: application.ID,
		Status:        constants.ApplicationStatusAccepted,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	// EmailService 未配置时跳过而非重试
	if err := consumer.handleApplicationStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("nil email service should skip, got %v", err)
	}
}

func TestHandleEventCanceledNotificationSkipsMissingEvent(t *testing.T) {
	consumer, db := newWorkerTestConsumer(t)

	task, err := queue.NewEventCanceledNotificationTask(queue.EventCanceledNotificationPayload{EventID: 404})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleEventCanceledNotification(context.Background(), task); err != nil {
		t.Fatalf("missing event should be skipped, got %v", err)
	}

	now := time.Now()
	event := &models.Event{
		Slug:        "canceled-run",
		Title:       "城市夜跑",
		OrganizerID: 1,
		StartsAt:    now.Add(24 * time.Hour),
		Status:      constants.EventStatusCanceled,
		CanceledAt:  &now,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	// 无有效报名时直接完成
	if err := consumer.handleEventCanceledNotification(context.Background(), newEventCanceledTask(t, event.ID)); err != nil {
		t.Fatalf("event without registrations should complete, got %v", err)
	}
}

func newEventCanceledTask(t *testing.T, eventID uint) *asynq.Task {
	t.Helper()
	task, err := queue.NewEventCanceledNotificationTask(queue.EventCanceledNotificationPayload{EventID: eventID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	return task
}

func TestFormatEventTime(t *testing.T) {
	startsAt := time.Date(2026, 9, 20, 14, 0, 0, 0, time.Local)
	if got := formatEventTime(startsAt); got != "2026-09-20 14:00" {
		t.Fatalf("expected 2026-09-20 14:00, got %q", got)
	}
	if got := formatEventTime(time.Time{}); got != "" {
		t.Fatalf("zero time should format empty, got %q", got)
	}
}

func TestHandleEventCanceledNotificationCancelsRegistrations(t *testing.T) {
	consumer, db := newWorkerTestConsumer(t)

	event := &models.Event{
		Slug:        "canceled-meetup",
		Title:       "取消的聚会",
		OrganizerID: 1,
		StartsAt:    time.Now().Add(24 * time.Hour),
		Status:      constants.EventStatusCanceled,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	registrations := []models.EventRegistration{
		{EventID: event.ID, UserID: 1, Status: constants.RegistrationStatusConfirmed},
		{EventID: event.ID, UserID: 2, Status: constants.RegistrationStatusWaitlisted},
	}
	for i := range registrations {
		if err := db.Create(&registrations[i]).Error; err != nil {
			t.Fatalf("seed registration failed: %v", err)
		}
	}

	task, err := queue.NewEventCanceledNotificationTask(queue.EventCanceledNotificationPayload{EventID: event.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleEventCanceledNotification(context.Background(), task); err != nil {
		t.Fatalf("handle event canceled failed: %v", err)
	}

	var canceled int64
	if err := db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", event.ID, constants.RegistrationStatusCanceled).
		Count(&canceled).Error; err != nil {
		t.Fatalf("count canceled failed: %v", err)
	}
	if canceled != 2 {
		t.Fatalf("expected 2 canceled registrations, got %d", canceled)
	}

	// 重复投递不应再命中有效报名
	userIDs, err := consumer.RegistrationRepo.ListActiveUserIDs(event.ID)
	if err != nil {
		t.Fatalf("list active user ids failed: %v", err)
	}
	if len(userIDs) != 0 {
		t.Fatalf("expected no active registrations after cancel, got %d", len(userIDs))
	}
}
