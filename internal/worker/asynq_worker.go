package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/provider"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/service"

	"github.com/hibiken/asynq"
)

// 邮件正文中的活动时间格式
const emailTimeLayout = "2006-01-02 15:04"

func formatEventTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(emailTimeLayout)
}

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskApplicationStatusEmail, c.handleApplicationStatusEmail)
	mux.HandleFunc(queue.TaskRegistrationEmail, c.handleRegistrationEmail)
	mux.HandleFunc(queue.TaskEventCanceledNotification, c.handleEventCanceledNotification)
}

func (c *Consumer) handleApplicationStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_application_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ApplicationStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_application_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.ApplicationID == 0 {
		logger.Debugw("worker_application_status_email_skip_invalid_payload", "application_id", payload.ApplicationID)
		return nil
	}
	application, err := c.OrganizerApplicationRepo.GetByID(payload.ApplicationID)
	if err != nil {
		logger.Warnw("worker_application_status_email_fetch_failed", "application_id", payload.ApplicationID, "error", err)
		return err
	}
	if application == nil {
		logger.Debugw("worker_application_status_email_skip_not_found", "application_id", payload.ApplicationID)
		return nil
	}
	user, err := c.UserRepo.GetByID(application.UserID)
	if err != nil {
		logger.Warnw("worker_application_status_email_fetch_user_failed", "application_id", application.ID, "user_id", application.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_application_status_email_skip_empty_receiver", "application_id", application.ID, "user_id", application.UserID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_application_status_email_skip_email_service_nil", "application_id", application.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = application.Status
	}
	input := service.ApplicationStatusEmailInput{
		OrgName:  application.OrgName,
		Status:   status,
		Feedback: application.Feedback,
	}
	if err := c.EmailService.SendApplicationStatusEmail(strings.TrimSpace(user.Email), input, strings.TrimSpace(user.Locale)); err != nil {
		logger.Warnw("worker_application_status_email_send_failed",
			"application_id", application.ID,
			"user_id", application.UserID,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleRegistrationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_registration_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RegistrationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_registration_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.RegistrationID == 0 {
		logger.Debugw("worker_registration_email_skip_invalid_payload", "registration_id", payload.RegistrationID)
		return nil
	}
	registration, err := c.RegistrationRepo.GetByID(payload.RegistrationID)
	if err != nil {
		logger.Warnw("worker_registration_email_fetch_failed", "registration_id", payload.RegistrationID, "error", err)
		return err
	}
	if registration == nil {
		logger.Debugw("worker_registration_email_skip_not_found", "registration_id", payload.RegistrationID)
		return nil
	}
	if registration.Event == nil {
		logger.Debugw("worker_registration_email_skip_event_missing", "registration_id", registration.ID, "event_id", registration.EventID)
		return nil
	}
	user, err := c.UserRepo.GetByID(registration.UserID)
	if err != nil {
		logger.Warnw("worker_registration_email_fetch_user_failed", "registration_id", registration.ID, "user_id", registration.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_registration_email_skip_empty_receiver", "registration_id", registration.ID, "user_id", registration.UserID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_registration_email_skip_email_service_nil", "registration_id", registration.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = registration.Status
	}
	input := service.RegistrationEmailInput{
		EventTitle:  registration.Event.Title,
		Status:      status,
		StartsAt:    formatEventTime(registration.Event.StartsAt),
		Venue:       registration.Event.Venue,
		TicketPrice: registration.Event.TicketPrice,
		Currency:    registration.Event.Currency,
	}
	if err := c.EmailService.SendRegistrationEmail(strings.TrimSpace(user.Email), input, strings.TrimSpace(user.Locale)); err != nil {
		logger.Warnw("worker_registration_email_send_failed",
			"registration_id", registration.ID,
			"event_id", registration.EventID,
			"user_id", registration.UserID,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleEventCanceledNotification(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_event_canceled_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.EventCanceledNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_event_canceled_unmarshal_failed", "error", err)
		return err
	}
	if payload.EventID == 0 {
		logger.Debugw("worker_event_canceled_skip_invalid_payload", "event_id", payload.EventID)
		return nil
	}
	event, err := c.EventRepo.GetByID(payload.EventID)
	if err != nil {
		logger.Warnw("worker_event_canceled_fetch_failed", "event_id", payload.EventID, "error", err)
		return err
	}
	if event == nil {
		logger.Debugw("worker_event_canceled_skip_not_found", "event_id", payload.EventID)
		return nil
	}
	userIDs, err := c.RegistrationRepo.ListActiveUserIDs(event.ID)
	if err != nil {
		logger.Warnw("worker_event_canceled_list_users_failed", "event_id", event.ID, "error", err)
		return err
	}
	// 先取消有效报名再发通知，重复投递时不会二次发信
	canceled, err := c.RegistrationRepo.CancelActiveByEvent(event.ID, time.Now())
	if err != nil {
		logger.Warnw("worker_event_canceled_cancel_registrations_failed", "event_id", event.ID, "error", err)
		return err
	}
	if canceled > 0 {
		logger.Infow("worker_event_canceled_registrations_canceled", "event_id", event.ID, "canceled", canceled)
	}
	if c.EmailService == nil {
		logger.Warnw("worker_event_canceled_skip_email_service_nil", "event_id", event.ID)
		return nil
	}
	input := service.EventCanceledEmailInput{
		EventTitle: event.Title,
		StartsAt:   formatEventTime(event.StartsAt),
	}
	// 单个收件人失败只记录，不中断整批通知
	failed := 0
	for _, userID := range userIDs {
		user, err := c.UserRepo.GetByID(userID)
		if err != nil {
			logger.Warnw("worker_event_canceled_fetch_user_failed", "event_id", event.ID, "user_id", userID, "error", err)
			failed++
			continue
		}
		if user == nil || strings.TrimSpace(user.Email) == "" {
			logger.Debugw("worker_event_canceled_skip_empty_receiver", "event_id", event.ID, "user_id", userID)
			continue
		}
		if err := c.EmailService.SendEventCanceledEmail(strings.TrimSpace(user.Email), input, strings.TrimSpace(user.Locale)); err != nil {
			logger.Warnw("worker_event_canceled_send_failed", "event_id", event.ID, "user_id", userID, "error", err)
			failed++
		}
	}
	if failed > 0 {
		logger.Warnw("worker_event_canceled_partial_failure", "event_id", event.ID, "total", len(userIDs), "failed", failed)
	}
	return nil
}
