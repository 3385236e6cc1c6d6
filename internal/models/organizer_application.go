package models

import (
	"time"

	"gorm.io/gorm"
)

// OrganizerApplication 主办方资格申请
type OrganizerApplication struct {
	ID           uint           `gorm:"primarykey" json:"id"`                        // 主键
	UserID       uint           `gorm:"index;not null" json:"user_id"`               // 申请用户ID
	OrgName      string         `gorm:"type:varchar(200);not null" json:"org_name"`  // 主办方名称
	Description  string         `gorm:"type:text" json:"description"`                // 申请说明
	ContactPhone string         `gorm:"type:varchar(40)" json:"contact_phone"`       // 联系电话
	Website      string         `gorm:"type:varchar(300)" json:"website"`            // 官网或社媒链接
	Status       string         `gorm:"index;not null;default:'pending'" json:"status"` // 状态（pending/accepted/rejected）
	Feedback     string         `gorm:"type:text" json:"feedback"`                   // 审核反馈
	ReviewedBy   *uint          `gorm:"index" json:"reviewed_by"`                    // 审核管理员ID
	ReviewedAt   *time.Time     `json:"reviewed_at"`                                 // 审核时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                  // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间
}

// TableName 指定表名
func (OrganizerApplication) TableName() string {
	return "organizer_applications"
}
