package i18n

// messages 文案目录，按语言 -> key 组织。
// 未命中的 key 回退到简体中文，再不命中返回 key 本身。
var messages = map[string]map[string]string{
	LocaleZH: {
		// 通用
		"error.bad_request":   "请求参数有误",
		"error.unauthorized":  "请先登录",
		"error.forbidden":     "没有权限执行该操作",
		"error.save_failed":   "保存失败，请稍后重试",
		"error.login_failed":  "登录失败，请稍后重试",
		"error.login_invalid": "邮箱或密码错误",

		// 认证与令牌
		"error.auth_header_missing":  "缺少认证信息",
		"error.auth_header_invalid":  "认证信息格式错误",
		"error.token_invalid":        "登录状态已失效，请重新登录",
		"error.token_revoked":        "登录状态已失效，请重新登录",
		"error.jwt_secret_missing":   "服务端认证配置缺失",
		"error.login_too_many":       "登录尝试过于频繁，请 %d 秒后重试",
		"error.admin_login_invalid":  "用户名或密码错误",
		"error.user_disabled":        "账号已被禁用",
		"error.email_not_verified":   "邮箱尚未验证",
		"error.agreement_required":   "请先同意服务条款",
		"error.register_failed":      "注册失败，请稍后重试",
		"error.email_exists":         "该邮箱已被注册",
		"error.email_invalid":        "邮箱格式不正确",
		"error.profile_empty":        "没有需要更新的内容",
		"error.user_not_found":       "用户不存在",
		"error.user_fetch_failed":    "获取用户信息失败",
		"error.user_update_failed":   "更新用户信息失败",
		"error.user_id_invalid":      "用户ID无效",
		"error.user_id_type_invalid": "用户ID类型错误",

		// 验证码（邮箱）
		"error.verify_purpose_invalid":        "验证码用途无效",
		"error.verify_code_failed":            "验证码校验失败，请稍后重试",
		"error.verify_code_invalid":           "验证码错误",
		"error.verify_code_expired":           "验证码已过期，请重新获取",
		"error.verify_code_attempts_exceeded": "验证码错误次数过多，请重新获取",
		"error.verify_code_mismatch_remaining": "验证码错误，还可尝试 %d 次",
		"error.verify_code_too_frequent":      "验证码发送过于频繁，请稍后再试",
		"error.verify_code_too_many":          "验证码发送次数过多，请 %d 秒后重试",
		"error.send_verify_code_failed":       "验证码发送失败，请稍后重试",
		"error.email_service_not_configured":  "邮件服务未配置",
		"error.email_recipient_not_found":     "收件邮箱不存在",

		// 图形验证码
		"error.captcha_required":       "请完成验证码验证",
		"error.captcha_invalid":        "验证码验证失败",
		"error.captcha_generate_failed": "验证码生成失败",
		"error.captcha_unavailable":    "验证码服务不可用",
		"error.captcha_config_invalid": "验证码配置无效",
		"error.captcha_verify_failed":  "验证码校验异常",

		// 密码
		"error.password_old_invalid":      "原密码错误",
		"error.password_weak":             "密码强度不足",
		"error.password_min_length":       "密码长度不能少于 %d 位",
		"error.password_require_upper":    "密码需包含大写字母",
		"error.password_require_lower":    "密码需包含小写字母",
		"error.password_require_number":   "密码需包含数字",
		"error.password_require_special":  "密码需包含特殊字符",
		"error.reset_failed":              "重置密码失败，请稍后重试",
		"error.reset_token_invalid":       "重置凭证无效或已过期",

		// 限流
		"error.rate_limited":            "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":  "限流服务暂不可用，请稍后重试",

		// 活动
		"error.event_not_found":      "活动不存在",
		"error.event_fetch_failed":   "获取活动失败",
		"error.event_save_failed":    "保存活动失败",
		"error.event_not_published":  "活动未发布",
		"error.event_canceled":       "活动已取消",
		"error.event_started":        "活动已开始",
		"error.event_time_invalid":   "活动时间无效",
		"error.event_status_invalid": "活动状态不允许该操作",
		"error.slug_exists":          "标识已存在",
		"error.slug_used":            "标识已被使用",

		// 报名
		"error.already_registered":        "您已报名该活动",
		"error.registration_not_found":    "报名记录不存在",
		"error.registration_failed":       "报名失败，请稍后重试",
		"error.registration_fetch_failed": "获取报名记录失败",

		// 主办方申请
		"error.already_organizer":           "您已是主办方",
		"error.application_pending":         "您有一份申请正在审核中",
		"error.application_reason_required": "请填写机构名称与申请说明",
		"error.application_not_found":       "申请不存在",
		"error.application_fetch_failed":    "获取申请失败",
		"error.application_submit_failed":   "提交申请失败，请稍后重试",
		"error.application_review_failed":   "审核申请失败，请稍后重试",
		"error.application_final":           "该申请已审核完成，不可变更",
		"error.application_status_invalid":  "审核状态无效",

		// 分类
		"error.category_not_found":     "分类不存在",
		"error.category_fetch_failed":  "获取分类失败",
		"error.category_create_failed": "创建分类失败",
		"error.category_update_failed": "更新分类失败",
		"error.category_delete_failed": "删除分类失败",
		"error.category_in_use":        "分类下仍有活动，无法删除",

		// 设置
		"error.settings_fetch_failed": "获取设置失败",
		"error.settings_save_failed":  "保存设置失败",
		"error.config_fetch_failed":   "获取配置失败",

		// 后台账号与权限
		"error.admin_create_failed":         "创建管理员失败",
		"error.admin_update_failed":         "更新管理员失败",
		"error.admin_delete_failed":         "删除管理员失败",
		"error.admin_delete_self_forbidden": "不能删除当前登录账号",
		"error.admin_delete_last_forbidden": "至少保留一个管理员账号",
		"error.admin_delete_protected":      "该账号受保护，不可删除",
		"error.admin_username_exists":       "用户名已存在",
		"error.admin_username_invalid":      "用户名格式不正确",
		"error.admin_id_invalid":            "管理员ID无效",
		"error.admin_id_type_invalid":       "管理员ID类型错误",

		// 登录日志
		"error.user_login_log_fetch_failed": "获取登录日志失败",

		// 状态标签
		"application.status.pending":  "待审核",
		"application.status.accepted": "已通过",
		"application.status.rejected": "已驳回",

		"registration.status.confirmed":  "已确认",
		"registration.status.waitlisted": "候补中",
		"registration.status.canceled":   "已取消",

		// 邮件文案
		"email.application_status.subject":       "主办方申请审核结果：%s",
		"email.application_status.body":          "您以「%s」提交的主办方申请审核结果：%s。",
		"email.application_status.body_feedback": "您以「%s」提交的主办方申请审核结果：%s。\n\n审核意见：%s",
		"email.registration.subject":             "「%s」报名结果：%s",
		"email.registration.body_confirmed":      "您已成功报名「%s」。\n\n时间：%s\n地点：%s\n票价：%s %s",
		"email.registration.body_waitlisted":     "「%s」当前名额已满，您已进入候补队列。\n\n时间：%s\n地点：%s\n\n一旦有名额释放将自动为您递补并另行通知。",
		"email.event_canceled.subject":           "活动取消通知：%s",
		"email.event_canceled.body":              "很抱歉，您报名的活动「%s」（原定 %s）已取消。\n\n给您带来不便，敬请谅解。",
	},
	LocaleTW: {
		"error.bad_request":   "請求參數有誤",
		"error.unauthorized":  "請先登入",
		"error.forbidden":     "沒有權限執行該操作",
		"error.save_failed":   "儲存失敗，請稍後重試",
		"error.login_failed":  "登入失敗，請稍後重試",
		"error.login_invalid": "郵箱或密碼錯誤",

		"error.auth_header_missing":  "缺少認證資訊",
		"error.auth_header_invalid":  "認證資訊格式錯誤",
		"error.token_invalid":        "登入狀態已失效，請重新登入",
		"error.token_revoked":        "登入狀態已失效，請重新登入",
		"error.jwt_secret_missing":   "服務端認證配置缺失",
		"error.login_too_many":       "登入嘗試過於頻繁，請 %d 秒後重試",
		"error.admin_login_invalid":  "用戶名或密碼錯誤",
		"error.user_disabled":        "帳號已被停用",
		"error.email_not_verified":   "郵箱尚未驗證",
		"error.agreement_required":   "請先同意服務條款",
		"error.register_failed":      "註冊失敗，請稍後重試",
		"error.email_exists":         "該郵箱已被註冊",
		"error.email_invalid":        "郵箱格式不正確",
		"error.profile_empty":        "沒有需要更新的內容",
		"error.user_not_found":       "用戶不存在",
		"error.user_fetch_failed":    "獲取用戶資訊失敗",
		"error.user_update_failed":   "更新用戶資訊失敗",
		"error.user_id_invalid":      "用戶ID無效",
		"error.user_id_type_invalid": "用戶ID類型錯誤",

		"error.verify_purpose_invalid":        "驗證碼用途無效",
		"error.verify_code_failed":            "驗證碼校驗失敗，請稍後重試",
		"error.verify_code_invalid":           "驗證碼錯誤",
		"error.verify_code_expired":           "驗證碼已過期，請重新獲取",
		"error.verify_code_attempts_exceeded": "驗證碼錯誤次數過多，請重新獲取",
		"error.verify_code_mismatch_remaining": "驗證碼錯誤，還可嘗試 %d 次",
		"error.verify_code_too_frequent":      "驗證碼發送過於頻繁，請稍後再試",
		"error.verify_code_too_many":          "驗證碼發送次數過多，請 %d 秒後重試",
		"error.send_verify_code_failed":       "驗證碼發送失敗，請稍後重試",
		"error.email_service_not_configured":  "郵件服務未配置",
		"error.email_recipient_not_found":     "收件郵箱不存在",

		"error.captcha_required":       "請完成驗證碼驗證",
		"error.captcha_invalid":        "驗證碼驗證失敗",
		"error.captcha_generate_failed": "驗證碼生成失敗",
		"error.captcha_unavailable":    "驗證碼服務不可用",
		"error.captcha_config_invalid": "驗證碼配置無效",
		"error.captcha_verify_failed":  "驗證碼校驗異常",

		"error.password_old_invalid":     "原密碼錯誤",
		"error.password_weak":            "密碼強度不足",
		"error.password_min_length":      "密碼長度不能少於 %d 位",
		"error.password_require_upper":   "密碼需包含大寫字母",
		"error.password_require_lower":   "密碼需包含小寫字母",
		"error.password_require_number":  "密碼需包含數字",
		"error.password_require_special": "密碼需包含特殊字符",
		"error.reset_failed":             "重置密碼失敗，請稍後重試",
		"error.reset_token_invalid":      "重置憑證無效或已過期",

		"error.rate_limited":           "請求過於頻繁，請 %d 秒後重試",
		"error.rate_limit_unavailable": "限流服務暫不可用，請稍後重試",

		"error.event_not_found":      "活動不存在",
		"error.event_fetch_failed":   "獲取活動失敗",
		"error.event_save_failed":    "儲存活動失敗",
		"error.event_not_published":  "活動未發布",
		"error.event_canceled":       "活動已取消",
		"error.event_started":        "活動已開始",
		"error.event_time_invalid":   "活動時間無效",
		"error.event_status_invalid": "活動狀態不允許該操作",
		"error.slug_exists":          "標識已存在",
		"error.slug_used":            "標識已被使用",

		"error.already_registered":        "您已報名該活動",
		"error.registration_not_found":    "報名記錄不存在",
		"error.registration_failed":       "報名失敗，請稍後重試",
		"error.registration_fetch_failed": "獲取報名記錄失敗",

		"error.already_organizer":           "您已是主辦方",
		"error.application_pending":         "您有一份申請正在審核中",
		"error.application_reason_required": "請填寫機構名稱與申請說明",
		"error.application_not_found":       "申請不存在",
		"error.application_fetch_failed":    "獲取申請失敗",
		"error.application_submit_failed":   "提交申請失敗，請稍後重試",
		"error.application_review_failed":   "審核申請失敗，請稍後重試",
		"error.application_final":           "該申請已審核完成，不可變更",
		"error.application_status_invalid":  "審核狀態無效",

		"error.category_not_found":     "分類不存在",
		"error.category_fetch_failed":  "獲取分類失敗",
		"error.category_create_failed": "創建分類失敗",
		"error.category_update_failed": "更新分類失敗",
		"error.category_delete_failed": "刪除分類失敗",
		"error.category_in_use":        "分類下仍有活動，無法刪除",

		"error.settings_fetch_failed": "獲取設置失敗",
		"error.settings_save_failed":  "儲存設置失敗",
		"error.config_fetch_failed":   "獲取配置失敗",

		"error.admin_create_failed":         "創建管理員失敗",
		"error.admin_update_failed":         "更新管理員失敗",
		"error.admin_delete_failed":         "刪除管理員失敗",
		"error.admin_delete_self_forbidden": "不能刪除當前登入帳號",
		"error.admin_delete_last_forbidden": "至少保留一個管理員帳號",
		"error.admin_delete_protected":      "該帳號受保護，不可刪除",
		"error.admin_username_exists":       "用戶名已存在",
		"error.admin_username_invalid":      "用戶名格式不正確",
		"error.admin_id_invalid":            "管理員ID無效",
		"error.admin_id_type_invalid":       "管理員ID類型錯誤",

		"error.user_login_log_fetch_failed": "獲取登入日誌失敗",

		"application.status.pending":  "待審核",
		"application.status.accepted": "已通過",
		"application.status.rejected": "已駁回",

		"registration.status.confirmed":  "已確認",
		"registration.status.waitlisted": "候補中",
		"registration.status.canceled":   "已取消",

		"email.application_status.subject":       "主辦方申請審核結果：%s",
		"email.application_status.body":          "您以「%s」提交的主辦方申請審核結果：%s。",
		"email.application_status.body_feedback": "您以「%s」提交的主辦方申請審核結果：%s。\n\n審核意見：%s",
		"email.registration.subject":             "「%s」報名結果：%s",
		"email.registration.body_confirmed":      "您已成功報名「%s」。\n\n時間：%s\n地點：%s\n票價：%s %s",
		"email.registration.body_waitlisted":     "「%s」當前名額已滿，您已進入候補隊列。\n\n時間：%s\n地點：%s\n\n一旦有名額釋放將自動為您遞補並另行通知。",
		"email.event_canceled.subject":           "活動取消通知：%s",
		"email.event_canceled.body":              "很抱歉，您報名的活動「%s」（原定 %s）已取消。\n\n給您帶來不便，敬請諒解。",
	},
	LocaleEN: {
		"error.bad_request":   "Invalid request parameters",
		"error.unauthorized":  "Please sign in first",
		"error.forbidden":     "You are not allowed to perform this action",
		"error.save_failed":   "Failed to save, please try again later",
		"error.login_failed":  "Login failed, please try again later",
		"error.login_invalid": "Incorrect email or password",

		"error.auth_header_missing":  "Missing authorization header",
		"error.auth_header_invalid":  "Malformed authorization header",
		"error.token_invalid":        "Session expired, please sign in again",
		"error.token_revoked":        "Session expired, please sign in again",
		"error.jwt_secret_missing":   "Server authentication is not configured",
		"error.login_too_many":       "Too many login attempts, retry in %d seconds",
		"error.admin_login_invalid":  "Incorrect username or password",
		"error.user_disabled":        "This account has been disabled",
		"error.email_not_verified":   "Email address is not verified",
		"error.agreement_required":   "Please accept the terms of service",
		"error.register_failed":      "Registration failed, please try again later",
		"error.email_exists":         "This email is already registered",
		"error.email_invalid":        "Invalid email address",
		"error.profile_empty":        "Nothing to update",
		"error.user_not_found":       "User not found",
		"error.user_fetch_failed":    "Failed to fetch user",
		"error.user_update_failed":   "Failed to update user",
		"error.user_id_invalid":      "Invalid user ID",
		"error.user_id_type_invalid": "Invalid user ID type",

		"error.verify_purpose_invalid":        "Invalid verification purpose",
		"error.verify_code_failed":            "Verification failed, please try again later",
		"error.verify_code_invalid":           "Incorrect verification code",
		"error.verify_code_expired":           "Verification code expired, please request a new one",
		"error.verify_code_attempts_exceeded": "Too many failed attempts, please request a new code",
		"error.verify_code_mismatch_remaining": "Incorrect code, %d attempts remaining",
		"error.verify_code_too_frequent":      "Code requested too frequently, please wait",
		"error.verify_code_too_many":          "Too many code requests, retry in %d seconds",
		"error.send_verify_code_failed":       "Failed to send verification code",
		"error.email_service_not_configured":  "Email service is not configured",
		"error.email_recipient_not_found":     "Recipient mailbox does not exist",

		"error.captcha_required":       "Please complete the captcha",
		"error.captcha_invalid":        "Captcha verification failed",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.captcha_unavailable":    "Captcha service unavailable",
		"error.captcha_config_invalid": "Invalid captcha configuration",
		"error.captcha_verify_failed":  "Captcha verification error",

		"error.password_old_invalid":     "Current password is incorrect",
		"error.password_weak":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
		"error.reset_failed":             "Failed to reset password, please try again later",
		"error.reset_token_invalid":      "Reset token is invalid or expired",

		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiting unavailable, please try again later",

		"error.event_not_found":      "Event not found",
		"error.event_fetch_failed":   "Failed to fetch events",
		"error.event_save_failed":    "Failed to save event",
		"error.event_not_published":  "Event is not published",
		"error.event_canceled":       "Event has been canceled",
		"error.event_started":        "Event has already started",
		"error.event_time_invalid":   "Invalid event time",
		"error.event_status_invalid": "Operation not allowed in current event status",
		"error.slug_exists":          "Slug already exists",
		"error.slug_used":            "Slug is already in use",

		"error.already_registered":        "You have already registered for this event",
		"error.registration_not_found":    "Registration not found",
		"error.registration_failed":       "Registration failed, please try again later",
		"error.registration_fetch_failed": "Failed to fetch registrations",

		"error.already_organizer":           "You are already an organizer",
		"error.application_pending":         "You already have an application under review",
		"error.application_reason_required": "Organization name and description are required",
		"error.application_not_found":       "Application not found",
		"error.application_fetch_failed":    "Failed to fetch application",
		"error.application_submit_failed":   "Failed to submit application",
		"error.application_review_failed":   "Failed to review application",
		"error.application_final":           "Application is already finalized",
		"error.application_status_invalid":  "Invalid review status",

		"error.category_not_found":     "Category not found",
		"error.category_fetch_failed":  "Failed to fetch categories",
		"error.category_create_failed": "Failed to create category",
		"error.category_update_failed": "Failed to update category",
		"error.category_delete_failed": "Failed to delete category",
		"error.category_in_use":        "Category still has events and cannot be deleted",

		"error.settings_fetch_failed": "Failed to fetch settings",
		"error.settings_save_failed":  "Failed to save settings",
		"error.config_fetch_failed":   "Failed to fetch configuration",

		"error.admin_create_failed":         "Failed to create admin",
		"error.admin_update_failed":         "Failed to update admin",
		"error.admin_delete_failed":         "Failed to delete admin",
		"error.admin_delete_self_forbidden": "You cannot delete your own account",
		"error.admin_delete_last_forbidden": "At least one admin account must remain",
		"error.admin_delete_protected":      "This account is protected and cannot be deleted",
		"error.admin_username_exists":       "Username already exists",
		"error.admin_username_invalid":      "Invalid username",
		"error.admin_id_invalid":            "Invalid admin ID",
		"error.admin_id_type_invalid":       "Invalid admin ID type",

		"error.user_login_log_fetch_failed": "Failed to fetch login logs",

		"application.status.pending":  "Pending",
		"application.status.accepted": "Accepted",
		"application.status.rejected": "Rejected",

		"registration.status.confirmed":  "Confirmed",
		"registration.status.waitlisted": "Waitlisted",
		"registration.status.canceled":   "Canceled",

		"email.application_status.subject":       "Organizer application result: %s",
		"email.application_status.body":          "The organizer application you submitted as %s has been reviewed: %s.",
		"email.application_status.body_feedback": "The organizer application you submitted as %s has been reviewed: %s.\n\nReviewer feedback: %s",
		"email.registration.subject":             "%s registration result: %s",
		"email.registration.body_confirmed":      "Your registration for %s is confirmed.\n\nTime: %s\nVenue: %s\nTicket: %s %s",
		"email.registration.body_waitlisted":     "%s is currently full and you are on the waitlist.\n\nTime: %s\nVenue: %s\n\nWe will promote you automatically when a seat opens up.",
		"email.event_canceled.subject":           "Event canceled: %s",
		"email.event_canceled.body":              "We are sorry, the event %s (originally scheduled at %s) has been canceled.\n\nWe apologize for the inconvenience.",
	},
}
