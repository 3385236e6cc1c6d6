package models

import "time"

// RateLimitEntry 限流记录
// 说明：每次放行的请求写入一行，窗口内按行数计数实现滑动窗口限流，
// 过期行由后台任务定期清理。
type RateLimitEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                        // 主键
	ClientKey string    `gorm:"type:varchar(255);index:idx_rate_limit_key_route" json:"client_key"` // 客户端标识
	Route     string    `gorm:"type:varchar(100);index:idx_rate_limit_key_route" json:"route"`      // 规则名
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                     // 记录时间
}

// TableName 指定表名
func (RateLimitEntry) TableName() string {
	return "rate_limit_entries"
}
