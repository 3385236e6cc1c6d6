package repository

import (
	"errors"
	"time"

	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
)

// OrganizerApplicationRepository 主办方申请数据访问接口
type OrganizerApplicationRepository interface {
	Create(application *models.OrganizerApplication) error
	GetByID(id uint) (*models.OrganizerApplication, error)
	GetLatestByUser(userID uint) (*models.OrganizerApplication, error)
	List(filter OrganizerApplicationListFilter) ([]models.OrganizerApplication, int64, error)
	UpdateReview(id uint, status, feedback string, reviewerID uint, reviewedAt time.Time) error
}

// GormOrganizerApplicationRepository GORM 实现
type GormOrganizerApplicationRepository struct {
	db *gorm.DB
}

// NewOrganizerApplicationRepository 创建主办方申请仓库
func NewOrganizerApplicationRepository(db *gorm.DB) *GormOrganizerApplicationRepository {
	return &GormOrganizerApplicationRepository{db: db}
}

// Create 创建申请
func (r *GormOrganizerApplicationRepository) Create(application *models.OrganizerApplication) error {
	return r.db.Create(application).Error
}

// GetByID 根据 ID 获取申请
func (r *GormOrganizerApplicationRepository) GetByID(id uint) (*models.OrganizerApplication, error) {
	var application models.OrganizerApplication
	if err := r.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// GetLatestByUser 获取用户最近一次申请
func (r *GormOrganizerApplicationRepository) GetLatestByUser(userID uint) (*models.OrganizerApplication, error) {
	var application models.OrganizerApplication
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// List 管理端申请列表
func (r *GormOrganizerApplicationRepository) List(filter OrganizerApplicationListFilter) ([]models.OrganizerApplication, int64, error) {
	query := r.db.Model(&models.OrganizerApplication{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("org_name LIKE ?", like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var applications []models.OrganizerApplication
	if err := query.Order("id desc").Find(&applications).Error; err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// UpdateReview 写入审核结论
func (r *GormOrganizerApplicationRepository) UpdateReview(id uint, status, feedback string, reviewerID uint, reviewedAt time.Time) error {
	return r.db.Model(&models.OrganizerApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"feedback":    feedback,
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
			"updated_at":  reviewedAt,
		}).Error
}
