package repository

import "time"

// EventListFilter 查询活动列表的过滤条件
type EventListFilter struct {
	Page          int
	PageSize      int
	CategoryID    string
	Keyword       string
	Status        string
	OrganizerID   uint
	OnlyPublished bool
	WithCategory  bool
	StartsFrom    *time.Time
	StartsTo      *time.Time
	OrderBy       string
}

// RegistrationListFilter 查询活动报名列表的过滤条件
type RegistrationListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// OrganizerApplicationListFilter 查询主办方申请列表的过滤条件
type OrganizerApplicationListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page          int
	PageSize      int
	Keyword       string
	Status        string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	LastLoginFrom *time.Time
	LastLoginTo   *time.Time
}

// UserLoginLogListFilter 查询用户登录日志列表的过滤条件
type UserLoginLogListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Email       string
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AuthzAuditLogListFilter 查询权限审计日志列表的过滤条件
type AuthzAuditLogListFilter struct {
	Page            int
	PageSize        int
	OperatorAdminID uint
	TargetAdminID   uint
	Action          string
	Role            string
	Object          string
	Method          string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}
