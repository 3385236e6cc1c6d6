package admin

import (
	"errors"

	"github.com/event-horizon/internal/cache"
	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/i18n"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

// 与前台配置接口共用同一份缓存键，设置更新后主动失效。
const publicConfigCacheKey = "public:config"

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                `json:"username" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneLogin, req.CaptchaPayload.toServicePayload(), c.ClientIP()); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
				return
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
				return
			case errors.Is(captchaErr, service.ErrCaptchaConfigInvalid):
				respondError(c, response.CodeInternal, "error.captcha_config_invalid", captchaErr)
				return
			default:
				respondError(c, response.CodeInternal, "error.captcha_verify_failed", captchaErr)
				return
			}
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.admin_login_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	// 获取当前登录用户 ID
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
			return
		}
		if errors.Is(err, service.ErrWeakPassword) {
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	response.Success(c, nil)
}

// ====================  分类管理  ====================

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}

	response.Success(c, categories)
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Slug      string                 `json:"slug" binding:"required"`
	NameJSON  map[string]interface{} `json:"name" binding:"required"`
	Icon      string                 `json:"icon"`
	SortOrder int                    `json:"sort_order"`
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Slug:      req.Slug,
		NameJSON:  req.NameJSON,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_create_failed", err)
		return
	}

	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.CreateCategoryInput{
		Slug:      req.Slug,
		NameJSON:  req.NameJSON,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "error.slug_used", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_update_failed", err)
		return
	}

	response.Success(c, category)
}

// DeleteCategory 删除分类（软删除）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.CategoryService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCategoryInUse) {
			respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		return
	}

	response.Success(c, nil)
}

// ====================  设置管理  ====================

// GetSettings 获取设置
func (h *Handler) GetSettings(c *gin.Context) {
	key := c.DefaultQuery("key", constants.SettingKeySiteConfig)

	value, err := h.SettingService.GetByKey(key)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}
	if value == nil {
		response.Success(c, gin.H{})
		return
	}

	response.Success(c, value)
}

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	Key   string                 `json:"key" binding:"required"`
	Value map[string]interface{} `json:"value" binding:"required"`
}

// UpdateSettings 更新设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	value, err := h.SettingService.Update(req.Key, req.Value)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_save_failed", err)
		return
	}

	if req.Key == constants.SettingKeySiteConfig {
		_ = cache.Del(c.Request.Context(), publicConfigCacheKey)
	}
	response.Success(c, value)
}
