package repository

import (
	"errors"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
)

// EventRepository 活动数据访问接口
type EventRepository interface {
	Create(event *models.Event) error
	Update(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetBySlug(slug string) (*models.Event, error)
	List(filter EventListFilter) ([]models.Event, int64, error)
	CountBySlug(slug string, excludeID *uint) (int64, error)
	UpdateStatus(id uint, status string, at time.Time) error
	SuggestTitles(prefix string, limit int) ([]string, error)
}

// GormEventRepository GORM 实现
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建活动仓库
func NewEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Create 创建活动
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update 更新活动
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// GetByID 根据 ID 获取活动
func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Category").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetBySlug 根据 slug 获取活动
func (r *GormEventRepository) GetBySlug(slug string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Category").Where("slug = ?", slug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// List 活动列表
func (r *GormEventRepository) List(filter EventListFilter) ([]models.Event, int64, error) {
	query := r.db.Model(&models.Event{})

	if filter.OnlyPublished {
		query = query.Where("status = ?", constants.EventStatusPublished)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrganizerID != 0 {
		query = query.Where("organizer_id = ?", filter.OrganizerID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		operator := likeOperatorByDialect(dbDialectName(r.db))
		query = query.Where("title "+operator+" ? OR venue "+operator+" ?", like, like)
	}
	if filter.StartsFrom != nil {
		query = query.Where("starts_at >= ?", *filter.StartsFrom)
	}
	if filter.StartsTo != nil {
		query = query.Where("starts_at <= ?", *filter.StartsTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if filter.WithCategory {
		query = query.Preload("Category")
	}

	orderBy := "starts_at ASC, id ASC"
	if filter.OrderBy == "created_desc" {
		orderBy = "id DESC"
	}

	var events []models.Event
	if err := query.Order(orderBy).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// CountBySlug 统计 slug 数量
func (r *GormEventRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Event{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus 更新活动状态
func (r *GormEventRepository) UpdateStatus(id uint, status string, at time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": at,
	}
	switch status {
	case constants.EventStatusPublished:
		updates["published_at"] = at
	case constants.EventStatusCanceled:
		updates["canceled_at"] = at
	}
	return r.db.Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error
}

// SuggestTitles 按标题前缀返回已发布活动的联想词
func (r *GormEventRepository) SuggestTitles(prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	operator := likeOperatorByDialect(dbDialectName(r.db))
	var titles []string
	err := r.db.Model(&models.Event{}).
		Where("status = ?", constants.EventStatusPublished).
		Where("title "+operator+" ?", prefix+"%").
		Order("starts_at ASC").
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}
