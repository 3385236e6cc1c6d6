package models

import (
	"time"

	"gorm.io/gorm"
)

// EventRegistration 活动报名记录
type EventRegistration struct {
	ID          uint           `gorm:"primarykey" json:"id"`                            // 主键
	EventID     uint           `gorm:"index:idx_registration_event_user;not null" json:"event_id"` // 活动ID
	Event       *Event         `gorm:"foreignKey:EventID" json:"event,omitempty"`
	UserID      uint           `gorm:"index:idx_registration_event_user;not null" json:"user_id"` // 用户ID
	Status      string         `gorm:"index;not null;default:'confirmed'" json:"status"` // 状态（confirmed/waitlisted/canceled）
	ConfirmedAt *time.Time     `json:"confirmed_at"`                                    // 确认时间
	CanceledAt  *time.Time     `json:"canceled_at"`                                     // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                      // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (EventRegistration) TableName() string {
	return "event_registrations"
}
