package models

import "time"

// PasswordResetToken 密码重置令牌
// 说明：验证码校验成功后签发，一次性使用，消费后立即标记 used_at。
type PasswordResetToken struct {
	ID        uint       `gorm:"primarykey" json:"id"`                 // 主键
	UserID    uint       `gorm:"index;not null" json:"user_id"`        // 用户ID
	Token     string     `gorm:"uniqueIndex;not null" json:"-"`        // 令牌（不返回给前端）
	ExpiresAt time.Time  `gorm:"index;not null" json:"expires_at"`     // 过期时间
	UsedAt    *time.Time `gorm:"index" json:"used_at"`                 // 使用时间
	CreatedAt time.Time  `gorm:"index" json:"created_at"`              // 创建时间
}

// TableName 指定表名
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
