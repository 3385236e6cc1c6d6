package constants

// 活动状态常量
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCanceled  = "canceled"
)

// 活动报名状态常量
const (
	RegistrationStatusConfirmed  = "confirmed"
	RegistrationStatusWaitlisted = "waitlisted"
	RegistrationStatusCanceled   = "canceled"
)

// 主办方申请状态常量
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 用户角色常量
const (
	UserRoleMember    = "member"
	UserRoleOrganizer = "organizer"
)

// 登录日志状态常量
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// 登录日志失败原因常量
const (
	LoginLogFailReasonBadRequest           = "bad_request"
	LoginLogFailReasonCaptchaRequired      = "captcha_required"
	LoginLogFailReasonCaptchaInvalid       = "captcha_invalid"
	LoginLogFailReasonCaptchaConfigInvalid = "captcha_config_invalid"
	LoginLogFailReasonCaptchaVerifyFailed  = "captcha_verify_failed"
	LoginLogFailReasonInvalidEmail         = "invalid_email"
	LoginLogFailReasonInvalidCredentials   = "invalid_credentials"
	LoginLogFailReasonEmailNotVerified     = "email_not_verified"
	LoginLogFailReasonUserDisabled         = "user_disabled"
	LoginLogFailReasonInternalError        = "internal_error"
)

// 登录日志来源常量
const (
	LoginLogSourceWeb = "web"
)

// 验证码用途常量
const (
	VerifyPurposeRegister = "register"
	VerifyPurposeReset    = "reset"
	VerifyPurposeGeneric  = "generic"
)

// 验证码提供方常量
const (
	CaptchaProviderNone      = "none"
	CaptchaProviderImage     = "image"
	CaptchaProviderTurnstile = "turnstile"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin            = "login"
	CaptchaSceneRegisterSendCode = "register_send_code"
	CaptchaSceneResetSendCode    = "reset_send_code"
)

// 限流规则名常量
const (
	RateLimitRouteVerifyEmail = "verify_email"
	RateLimitRouteSuggest     = "suggest"
)

// 队列常量
const (
	QueueDefault                  = "default"
	TaskApplicationStatusEmail    = "application:status_email"
	TaskRegistrationEmail         = "registration:confirm_email"
	TaskEventCanceledNotification = "event:canceled_notification"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "evh"
)

// 设置键常量
const (
	SettingKeySiteConfig     = "site_config"
	SettingKeyEventConfig    = "event_config"
	SettingKeySMTPConfig     = "smtp_config"
	SettingKeyCaptchaConfig  = "captcha_config"
	SettingFieldSiteCurrency = "currency"
	SettingFieldSuggestLimit = "suggest_limit"
)

// 币种常量
const (
	SiteCurrencyDefault = "CNY"
)

// 站点语言常量
const (
	LocaleZhCN = "zh-CN"
	LocaleZhTW = "zh-TW"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleZhCN, LocaleZhTW, LocaleEnUS}
