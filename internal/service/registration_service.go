package service

import (
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/repository"
)

// RegistrationService 活动报名服务
type RegistrationService struct {
	registrationRepo repository.EventRegistrationRepository
	eventRepo        repository.EventRepository
	queueClient      *queue.Client
}

// NewRegistrationService 创建报名服务
func NewRegistrationService(registrationRepo repository.EventRegistrationRepository, eventRepo repository.EventRepository, queueClient *queue.Client) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		queueClient:      queueClient,
	}
}

// Register 用户报名活动
// 活动必须已发布且未开始，同一用户对同一活动最多保留一条有效报名。
// 确认席位满后自动进入候补。
func (s *RegistrationService) Register(userID, eventID uint) (*models.EventRegistration, error) {
	if userID == 0 || eventID == 0 {
		return nil, ErrNotFound
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	switch event.Status {
	case constants.EventStatusPublished:
	case constants.EventStatusCanceled:
		return nil, ErrEventCanceled
	default:
		return nil, ErrEventNotPublished
	}
	if !event.StartsAt.After(time.Now()) {
		return nil, ErrEventStarted
	}

	existing, err := s.registrationRepo.GetActive(eventID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	registration := &models.EventRegistration{
		EventID: eventID,
		UserID:  userID,
	}
	if _, err := s.registrationRepo.RegisterWithCapacity(registration, event.Capacity); err != nil {
		return nil, err
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueRegistrationEmail(queue.RegistrationEmailPayload{
			RegistrationID: registration.ID,
			Status:         registration.Status,
		}); err != nil {
			logger.Warnw("registration_enqueue_email_failed", "registration_id", registration.ID, "error", err)
		}
	}

	registration.Event = event
	return registration, nil
}

// Cancel 取消本人报名
// 取消确认席位时，最早候补的报名自动晋升为确认。
func (s *RegistrationService) Cancel(userID, eventID uint) (*models.EventRegistration, error) {
	if userID == 0 || eventID == 0 {
		return nil, ErrNotFound
	}

	registration, err := s.registrationRepo.GetActive(eventID, userID)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}

	promoted, err := s.registrationRepo.CancelAndPromote(registration.ID, time.Now())
	if err != nil {
		return nil, err
	}

	if promoted != nil && s.queueClient != nil {
		if err := s.queueClient.EnqueueRegistrationEmail(queue.RegistrationEmailPayload{
			RegistrationID: promoted.ID,
			Status:         promoted.Status,
		}); err != nil {
			logger.Warnw("registration_enqueue_promotion_email_failed", "registration_id", promoted.ID, "error", err)
		}
	}

	return promoted, nil
}

// ListMine 查询本人报名记录
func (s *RegistrationService) ListMine(userID uint, page, pageSize int) ([]models.EventRegistration, int64, error) {
	if userID == 0 {
		return nil, 0, ErrNotFound
	}
	return s.registrationRepo.ListByUser(userID, page, pageSize)
}

// ListByEvent 查询活动报名名单
func (s *RegistrationService) ListByEvent(eventID uint, filter repository.RegistrationListFilter) ([]models.EventRegistration, int64, error) {
	if eventID == 0 {
		return nil, 0, ErrNotFound
	}
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, 0, err
	}
	if event == nil {
		return nil, 0, ErrNotFound
	}
	return s.registrationRepo.ListByEvent(eventID, filter)
}

// CountConfirmed 统计确认报名人数
func (s *RegistrationService) CountConfirmed(eventID uint) (int64, error) {
	return s.registrationRepo.CountConfirmed(eventID)
}
