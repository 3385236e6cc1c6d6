package repository

import (
	"errors"
	"time"

	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
)

// EmailVerifyCodeRepository 邮箱验证码数据访问接口
type EmailVerifyCodeRepository interface {
	Replace(code *models.EmailVerifyCode) error
	GetLatest(email, purpose string) (*models.EmailVerifyCode, error)
	MarkVerified(id uint, verifiedAt time.Time) error
	IncrementAttempt(id uint) error
	DeleteByID(id uint) error
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

// GormEmailVerifyCodeRepository GORM 实现
type GormEmailVerifyCodeRepository struct {
	db *gorm.DB
}

// NewEmailVerifyCodeRepository 创建邮箱验证码仓库
func NewEmailVerifyCodeRepository(db *gorm.DB) *GormEmailVerifyCodeRepository {
	return &GormEmailVerifyCodeRepository{db: db}
}

// Replace 写入验证码记录，同一 (email, purpose) 仅保留一条有效记录
func (r *GormEmailVerifyCodeRepository) Replace(code *models.EmailVerifyCode) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ? AND purpose = ?", code.Email, code.Purpose).
			Delete(&models.EmailVerifyCode{}).Error; err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

// GetLatest 获取最新验证码记录
func (r *GormEmailVerifyCodeRepository) GetLatest(email, purpose string) (*models.EmailVerifyCode, error) {
	var record models.EmailVerifyCode
	if err := r.db.Where("email = ? AND purpose = ?", email, purpose).
		Order("sent_at desc, id desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkVerified 标记验证码已验证
func (r *GormEmailVerifyCodeRepository) MarkVerified(id uint, verifiedAt time.Time) error {
	return r.db.Model(&models.EmailVerifyCode{}).
		Where("id = ?", id).
		Update("verified_at", verifiedAt).Error
}

// IncrementAttempt 增加验证次数
func (r *GormEmailVerifyCodeRepository) IncrementAttempt(id uint) error {
	return r.db.Model(&models.EmailVerifyCode{}).
		Where("id = ?", id).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}

// DeleteByID 删除验证码记录（发信失败时的补偿清理）
func (r *GormEmailVerifyCodeRepository) DeleteByID(id uint) error {
	return r.db.Unscoped().Delete(&models.EmailVerifyCode{}, id).Error
}

// DeleteExpiredBefore 清理过期验证码
func (r *GormEmailVerifyCodeRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	result := r.db.Unscoped().
		Where("expires_at < ?", cutoff).
		Delete(&models.EmailVerifyCode{})
	return result.RowsAffected, result.Error
}
