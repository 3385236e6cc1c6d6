package models

import (
	"time"

	"gorm.io/gorm"
)

// Event 活动表
type Event struct {
	ID          uint           `gorm:"primarykey" json:"id"`                      // 主键
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`          // 唯一标识
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`   // 活动标题
	Description string         `gorm:"type:text" json:"description"`              // 活动描述
	CategoryID  *uint          `gorm:"index" json:"category_id"`                  // 分类ID
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OrganizerID uint           `gorm:"index;not null" json:"organizer_id"`        // 主办方用户ID
	Venue       string         `gorm:"type:varchar(300)" json:"venue"`            // 活动地点
	StartsAt    time.Time      `gorm:"index;not null" json:"starts_at"`           // 开始时间
	EndsAt      time.Time      `gorm:"index" json:"ends_at"`                      // 结束时间
	Capacity    int            `gorm:"default:0" json:"capacity"`                 // 容量（0 表示不限）
	TicketPrice Money          `gorm:"type:decimal(12,2)" json:"ticket_price"`    // 票价
	Currency    string         `gorm:"type:varchar(10);default:'CNY'" json:"currency"` // 币种
	CoverImage  string         `gorm:"type:varchar(500)" json:"cover_image"`      // 封面图
	Tags        StringArray    `gorm:"type:json" json:"tags"`                     // 标签
	Status      string         `gorm:"default:'draft';index" json:"status"`       // 状态（draft/published/canceled）
	PublishedAt *time.Time     `gorm:"index" json:"published_at"`                 // 发布时间
	CanceledAt  *time.Time     `json:"canceled_at"`                               // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (Event) TableName() string {
	return "events"
}
