package repository

import (
	"errors"
	"time"

	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
)

// PasswordResetTokenRepository 密码重置令牌数据访问接口
type PasswordResetTokenRepository interface {
	Create(token *models.PasswordResetToken) error
	GetActiveByToken(token string, now time.Time) (*models.PasswordResetToken, error)
	MarkUsed(id uint, usedAt time.Time) error
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

// GormPasswordResetTokenRepository GORM 实现
type GormPasswordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository 创建密码重置令牌仓库
func NewPasswordResetTokenRepository(db *gorm.DB) *GormPasswordResetTokenRepository {
	return &GormPasswordResetTokenRepository{db: db}
}

// Create 创建重置令牌
func (r *GormPasswordResetTokenRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

// GetActiveByToken 获取未过期且未使用的令牌
func (r *GormPasswordResetTokenRepository) GetActiveByToken(token string, now time.Time) (*models.PasswordResetToken, error) {
	var record models.PasswordResetToken
	if err := r.db.Where("token = ? AND used_at IS NULL AND expires_at > ?", token, now).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkUsed 标记令牌已使用
func (r *GormPasswordResetTokenRepository) MarkUsed(id uint, usedAt time.Time) error {
	return r.db.Model(&models.PasswordResetToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt).Error
}

// DeleteExpiredBefore 清理过期令牌
func (r *GormPasswordResetTokenRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", cutoff).Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
