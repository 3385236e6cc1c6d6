package queue

import (
	"encoding/json"

	"github.com/event-horizon/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskApplicationStatusEmail 主办方申请审核结果邮件任务
	TaskApplicationStatusEmail = constants.TaskApplicationStatusEmail
	// TaskRegistrationEmail 报名确认邮件任务
	TaskRegistrationEmail = constants.TaskRegistrationEmail
	// TaskEventCanceledNotification 活动取消通知任务
	TaskEventCanceledNotification = constants.TaskEventCanceledNotification
)

// ApplicationStatusEmailPayload 申请审核结果邮件任务载荷
type ApplicationStatusEmailPayload struct {
	ApplicationID uint   `json:"application_id"`
	Status        string `json:"status"`
}

// RegistrationEmailPayload 报名确认邮件任务载荷
type RegistrationEmailPayload struct {
	RegistrationID uint   `json:"registration_id"`
	Status         string `json:"status"`
}

// EventCanceledNotificationPayload 活动取消通知任务载荷
type EventCanceledNotificationPayload struct {
	EventID uint `json:"event_id"`
}

// NewApplicationStatusEmailTask 创建申请审核结果邮件任务
func NewApplicationStatusEmailTask(payload ApplicationStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskApplicationStatusEmail, body), nil
}

// NewRegistrationEmailTask 创建报名确认邮件任务
func NewRegistrationEmailTask(payload RegistrationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRegistrationEmail, body), nil
}

// NewEventCanceledNotificationTask 创建活动取消通知任务
func NewEventCanceledNotificationTask(payload EventCanceledNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskEventCanceledNotification, body), nil
}
