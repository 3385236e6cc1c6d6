package repository

import (
	"time"

	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
)

// RateLimitEntryRepository 限流记录数据访问接口
type RateLimitEntryRepository interface {
	Append(entry *models.RateLimitEntry) error
	CountSince(clientKey, route string, since time.Time) (int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}

// GormRateLimitEntryRepository GORM 实现
type GormRateLimitEntryRepository struct {
	db *gorm.DB
}

// NewRateLimitEntryRepository 创建限流记录仓库
func NewRateLimitEntryRepository(db *gorm.DB) *GormRateLimitEntryRepository {
	return &GormRateLimitEntryRepository{db: db}
}

// Append 记录一次放行
func (r *GormRateLimitEntryRepository) Append(entry *models.RateLimitEntry) error {
	return r.db.Create(entry).Error
}

// CountSince 统计窗口内放行次数
func (r *GormRateLimitEntryRepository) CountSince(clientKey, route string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.RateLimitEntry{}).
		Where("client_key = ? AND route = ? AND created_at >= ?", clientKey, route, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteBefore 清理窗口外的历史记录
func (r *GormRateLimitEntryRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.RateLimitEntry{})
	return result.RowsAffected, result.Error
}
