package service

import "errors"

// 服务层哨兵错误，处理器按 errors.Is 映射到响应码与文案
var (
	ErrNotFound = errors.New("记录不存在")

	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrInvalidPassword    = errors.New("密码错误")
	ErrWeakPassword       = errors.New("密码不符合安全策略")
	ErrEmailExists        = errors.New("邮箱已注册")
	ErrEmailNotVerified   = errors.New("邮箱未验证")
	ErrUserDisabled       = errors.New("账号已禁用")
	ErrAgreementRequired  = errors.New("需同意服务协议")
	ErrProfileEmpty       = errors.New("没有可更新的资料")

	ErrInvalidVerifyPurpose       = errors.New("验证码用途不支持")
	ErrVerifyCodeInvalid          = errors.New("验证码错误")
	ErrVerifyCodeExpired          = errors.New("验证码已过期")
	ErrVerifyCodeAttemptsExceeded = errors.New("验证码尝试次数超限")
	ErrVerifyCodeTooFrequent      = errors.New("验证码发送过于频繁")
	ErrResetTokenInvalid          = errors.New("重置令牌无效或已失效")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrEmailRecipientRejected    = errors.New("收件地址被拒绝")
	ErrSMTPConfigInvalid         = errors.New("SMTP 配置无效")

	ErrCaptchaRequired      = errors.New("需要人机验证")
	ErrCaptchaInvalid       = errors.New("人机验证未通过")
	ErrCaptchaConfigInvalid = errors.New("人机验证配置无效")
	ErrCaptchaVerifyFailed  = errors.New("人机验证请求失败")

	ErrCategoryInUse      = errors.New("分类下仍有活动")
	ErrSlugExists         = errors.New("标识已存在")
	ErrEventNotPublished  = errors.New("活动未发布")
	ErrEventCanceled      = errors.New("活动已取消")
	ErrEventStarted       = errors.New("活动已开始")
	ErrEventInputInvalid  = errors.New("活动参数不完整")
	ErrInvalidEventStatus = errors.New("活动状态不允许该操作")
	ErrInvalidEventTime   = errors.New("活动时间不合法")

	ErrAlreadyRegistered    = errors.New("已报名该活动")
	ErrRegistrationNotFound = errors.New("报名记录不存在")

	ErrApplicationPending       = errors.New("已有待审核的申请")
	ErrAlreadyOrganizer         = errors.New("已是主办方")
	ErrApplicationFinal         = errors.New("申请已终审")
	ErrApplicationNotFound      = errors.New("申请不存在")
	ErrInvalidApplicationStatus = errors.New("审核结论无效")
	ErrReasonRequired           = errors.New("申请理由不能为空")
)

// verifyCodeMismatchError 验证码不匹配错误，携带剩余可尝试次数
type verifyCodeMismatchError struct {
	remaining int
}

func newVerifyCodeMismatchError(remaining int) error {
	return verifyCodeMismatchError{remaining: remaining}
}

func (e verifyCodeMismatchError) Error() string {
	return "验证码错误"
}

func (e verifyCodeMismatchError) Is(target error) bool {
	return target == ErrVerifyCodeInvalid
}

func (e verifyCodeMismatchError) Key() string {
	return "error.verify_code_mismatch_remaining"
}

func (e verifyCodeMismatchError) Args() []interface{} {
	return []interface{}{e.remaining}
}

// RemainingAttempts 返回错误中携带的剩余尝试次数
func (e verifyCodeMismatchError) RemainingAttempts() int {
	return e.remaining
}

// VerifyCodeRemainingAttempts 从错误中提取剩余尝试次数
func VerifyCodeRemainingAttempts(err error) (int, bool) {
	var mismatch verifyCodeMismatchError
	if errors.As(err, &mismatch) {
		return mismatch.remaining, true
	}
	return 0, false
}
