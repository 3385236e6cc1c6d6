package repository

import (
	"errors"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRegistrationRepository 活动报名数据访问接口
type EventRegistrationRepository interface {
	RegisterWithCapacity(registration *models.EventRegistration, capacity int) (waitlisted bool, err error)
	GetByID(id uint) (*models.EventRegistration, error)
	GetActive(eventID, userID uint) (*models.EventRegistration, error)
	CancelAndPromote(registrationID uint, now time.Time) (promoted *models.EventRegistration, err error)
	ListByUser(userID uint, page, pageSize int) ([]models.EventRegistration, int64, error)
	ListByEvent(eventID uint, filter RegistrationListFilter) ([]models.EventRegistration, int64, error)
	ListActiveUserIDs(eventID uint) ([]uint, error)
	CancelActiveByEvent(eventID uint, now time.Time) (int64, error)
	CountConfirmed(eventID uint) (int64, error)
}

// GormEventRegistrationRepository GORM 实现
type GormEventRegistrationRepository struct {
	db *gorm.DB
}

// NewEventRegistrationRepository 创建活动报名仓库
func NewEventRegistrationRepository(db *gorm.DB) *GormEventRegistrationRepository {
	return &GormEventRegistrationRepository{db: db}
}

// RegisterWithCapacity 在事务内做容量判定并写入报名记录
// 容量不足时转入候补，capacity 为 0 表示不限容量。
func (r *GormEventRegistrationRepository) RegisterWithCapacity(registration *models.EventRegistration, capacity int) (bool, error) {
	waitlisted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// 锁定活动行，避免并发报名时超卖席位
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, registration.EventID).Error; err != nil {
			return err
		}

		now := time.Now()
		if capacity > 0 {
			var confirmed int64
			if err := tx.Model(&models.EventRegistration{}).
				Where("event_id = ? AND status = ?", registration.EventID, constants.RegistrationStatusConfirmed).
				Count(&confirmed).Error; err != nil {
				return err
			}
			if confirmed >= int64(capacity) {
				registration.Status = constants.RegistrationStatusWaitlisted
				waitlisted = true
			}
		}
		if registration.Status == "" || registration.Status == constants.RegistrationStatusConfirmed {
			registration.Status = constants.RegistrationStatusConfirmed
			registration.ConfirmedAt = &now
		}
		return tx.Create(registration).Error
	})
	return waitlisted, err
}

// GetByID 按ID获取报名记录（带活动信息）
func (r *GormEventRegistrationRepository) GetByID(id uint) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.db.Preload("Event").First(&registration, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// GetActive 获取用户在某活动下的有效报名（confirmed/waitlisted）
func (r *GormEventRegistrationRepository) GetActive(eventID, userID uint) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.db.Where("event_id = ? AND user_id = ? AND status IN ?",
		eventID, userID,
		[]string{constants.RegistrationStatusConfirmed, constants.RegistrationStatusWaitlisted}).
		Order("id desc").
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// CancelAndPromote 取消报名并在事务内晋升最早的候补记录
func (r *GormEventRegistrationRepository) CancelAndPromote(registrationID uint, now time.Time) (*models.EventRegistration, error) {
	var promoted *models.EventRegistration
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.EventRegistration
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, registrationID).Error; err != nil {
			return err
		}

		wasConfirmed := current.Status == constants.RegistrationStatusConfirmed
		if err := tx.Model(&models.EventRegistration{}).
			Where("id = ?", registrationID).
			Updates(map[string]interface{}{
				"status":      constants.RegistrationStatusCanceled,
				"canceled_at": now,
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}
		if !wasConfirmed {
			return nil
		}

		// 释放的席位给最早的候补
		var next models.EventRegistration
		err := tx.Where("event_id = ? AND status = ?", current.EventID, constants.RegistrationStatusWaitlisted).
			Order("created_at asc, id asc").
			First(&next).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Model(&models.EventRegistration{}).
			Where("id = ?", next.ID).
			Updates(map[string]interface{}{
				"status":       constants.RegistrationStatusConfirmed,
				"confirmed_at": now,
				"updated_at":   now,
			}).Error; err != nil {
			return err
		}
		next.Status = constants.RegistrationStatusConfirmed
		next.ConfirmedAt = &now
		promoted = &next
		return nil
	})
	return promoted, err
}

// ListByUser 用户侧查询自己的报名
func (r *GormEventRegistrationRepository) ListByUser(userID uint, page, pageSize int) ([]models.EventRegistration, int64, error) {
	query := r.db.Model(&models.EventRegistration{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, page, pageSize)

	var registrations []models.EventRegistration
	if err := query.Preload("Event").Order("id desc").Find(&registrations).Error; err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

// ListByEvent 按活动查询报名记录
func (r *GormEventRegistrationRepository) ListByEvent(eventID uint, filter RegistrationListFilter) ([]models.EventRegistration, int64, error) {
	query := r.db.Model(&models.EventRegistration{}).Where("event_id = ?", eventID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var registrations []models.EventRegistration
	if err := query.Order("id asc").Find(&registrations).Error; err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

// ListActiveUserIDs 获取活动全部有效报名用户ID（取消活动时用于通知）
func (r *GormEventRegistrationRepository) ListActiveUserIDs(eventID uint) ([]uint, error) {
	var userIDs []uint
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status IN ?", eventID,
			[]string{constants.RegistrationStatusConfirmed, constants.RegistrationStatusWaitlisted}).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

// CancelActiveByEvent 批量取消活动下的有效报名（确认与候补）
func (r *GormEventRegistrationRepository) CancelActiveByEvent(eventID uint, now time.Time) (int64, error) {
	result := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status IN ?", eventID,
			[]string{constants.RegistrationStatusConfirmed, constants.RegistrationStatusWaitlisted}).
		Updates(map[string]interface{}{
			"status":      constants.RegistrationStatusCanceled,
			"canceled_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountConfirmed 统计已确认报名数
func (r *GormEventRegistrationRepository) CountConfirmed(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, constants.RegistrationStatusConfirmed).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
