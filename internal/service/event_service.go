package service

import (
	"strings"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/repository"

	"github.com/shopspring/decimal"
)

// EventService 活动业务服务
type EventService struct {
	repo           repository.EventRepository
	categoryRepo   repository.CategoryRepository
	settingService *SettingService
	queueClient    *queue.Client
}

// NewEventService 创建活动服务
func NewEventService(repo repository.EventRepository, categoryRepo repository.CategoryRepository, settingService *SettingService, queueClient *queue.Client) *EventService {
	return &EventService{
		repo:           repo,
		categoryRepo:   categoryRepo,
		settingService: settingService,
		queueClient:    queueClient,
	}
}

// CreateEventInput 创建/更新活动输入
type CreateEventInput struct {
	Slug        string
	Title       string
	Description string
	CategoryID  *uint
	Venue       string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
	TicketPrice decimal.Decimal
	Currency    string
	CoverImage  string
	Tags        []string
}

// ListPublic 公开活动列表（仅已发布）
func (s *EventService) ListPublic(filter repository.EventListFilter) ([]models.Event, int64, error) {
	filter.OnlyPublished = true
	filter.WithCategory = true
	return s.repo.List(filter)
}

// GetPublicBySlug 公开活动详情
func (s *EventService) GetPublicBySlug(slug string) (*models.Event, error) {
	event, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != constants.EventStatusPublished {
		return nil, ErrNotFound
	}
	return event, nil
}

// SuggestTitles 标题前缀联想
func (s *EventService) SuggestTitles(prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	return s.repo.SuggestTitles(prefix, limit)
}

// ListAdmin 后台活动列表
func (s *EventService) ListAdmin(filter repository.EventListFilter) ([]models.Event, int64, error) {
	filter.WithCategory = true
	return s.repo.List(filter)
}

// GetByID 获取活动
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create 创建活动（初始为草稿）
func (s *EventService) Create(organizerID uint, input CreateEventInput) (*models.Event, error) {
	if organizerID == 0 {
		return nil, ErrEventInputInvalid
	}
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrEventInputInvalid
	}
	if err := validateEventTimes(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = s.resolveSiteCurrency()
	}
	price := input.TicketPrice.Round(2)
	if price.IsNegative() {
		price = decimal.Zero
	}

	capacity := input.Capacity
	if capacity < 0 {
		capacity = 0
	}

	now := time.Now()
	event := &models.Event{
		Slug:        slug,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		CategoryID:  input.CategoryID,
		OrganizerID: organizerID,
		Venue:       strings.TrimSpace(input.Venue),
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Capacity:    capacity,
		TicketPrice: models.NewMoneyFromDecimal(price),
		Currency:    currency,
		CoverImage:  strings.TrimSpace(input.CoverImage),
		Tags:        models.StringArray(input.Tags),
		Status:      constants.EventStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update 更新活动
// 已取消的活动不可再编辑。
func (s *EventService) Update(id uint, input CreateEventInput) (*models.Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event.Status == constants.EventStatusCanceled {
		return nil, ErrEventCanceled
	}
	if err := validateEventTimes(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug != "" && slug != event.Slug {
		count, err := s.repo.CountBySlug(slug, &event.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		event.Slug = slug
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		event.Title = title
	}
	event.Description = strings.TrimSpace(input.Description)
	event.CategoryID = input.CategoryID
	event.Venue = strings.TrimSpace(input.Venue)
	event.StartsAt = input.StartsAt
	event.EndsAt = input.EndsAt
	if input.Capacity >= 0 {
		event.Capacity = input.Capacity
	}
	price := input.TicketPrice.Round(2)
	if !price.IsNegative() {
		event.TicketPrice = models.NewMoneyFromDecimal(price)
	}
	if currency := strings.ToUpper(strings.TrimSpace(input.Currency)); currency != "" {
		event.Currency = currency
	}
	event.CoverImage = strings.TrimSpace(input.CoverImage)
	if input.Tags != nil {
		event.Tags = models.StringArray(input.Tags)
	}
	event.UpdatedAt = time.Now()

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Publish 发布活动（草稿 -> 已发布）
func (s *EventService) Publish(id uint) (*models.Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event.Status != constants.EventStatusDraft {
		return nil, ErrInvalidEventStatus
	}
	now := time.Now()
	if !event.StartsAt.After(now) {
		return nil, ErrInvalidEventTime
	}
	if err := s.repo.UpdateStatus(event.ID, constants.EventStatusPublished, now); err != nil {
		return nil, err
	}
	event.Status = constants.EventStatusPublished
	event.PublishedAt = &now
	event.UpdatedAt = now
	return event, nil
}

// Cancel 取消活动（已发布 -> 已取消），异步通知全部有效报名用户
func (s *EventService) Cancel(id uint) (*models.Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	switch event.Status {
	case constants.EventStatusCanceled:
		return nil, ErrEventCanceled
	case constants.EventStatusPublished, constants.EventStatusDraft:
	default:
		return nil, ErrInvalidEventStatus
	}
	now := time.Now()
	if err := s.repo.UpdateStatus(event.ID, constants.EventStatusCanceled, now); err != nil {
		return nil, err
	}

	if s.queueClient != nil && event.Status == constants.EventStatusPublished {
		if err := s.queueClient.EnqueueEventCanceledNotification(queue.EventCanceledNotificationPayload{
			EventID: event.ID,
		}, 0); err != nil {
			logger.Warnw("event_enqueue_canceled_notification_failed", "event_id", event.ID, "error", err)
		}
	}

	event.Status = constants.EventStatusCanceled
	event.CanceledAt = &now
	event.UpdatedAt = now
	return event, nil
}

func (s *EventService) resolveSiteCurrency() string {
	if s.settingService == nil {
		return constants.SiteCurrencyDefault
	}
	currency, err := s.settingService.GetSiteCurrency(constants.SiteCurrencyDefault)
	if err != nil {
		return constants.SiteCurrencyDefault
	}
	return currency
}

func validateEventTimes(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() {
		return ErrInvalidEventTime
	}
	if !endsAt.IsZero() && endsAt.Before(startsAt) {
		return ErrInvalidEventTime
	}
	return nil
}
