package provider

import (
	"github.com/event-horizon/internal/authz"
	"github.com/event-horizon/internal/cache"
	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo                repository.AdminRepository
	UserRepo                 repository.UserRepository
	EmailVerifyCodeRepo      repository.EmailVerifyCodeRepository
	PasswordResetTokenRepo   repository.PasswordResetTokenRepository
	RateLimitEntryRepo       repository.RateLimitEntryRepository
	OrganizerApplicationRepo repository.OrganizerApplicationRepository
	EventRepo                repository.EventRepository
	RegistrationRepo         repository.EventRegistrationRepository
	CategoryRepo             repository.CategoryRepository
	SettingRepo              repository.SettingRepository
	UserLoginLogRepo         repository.UserLoginLogRepository
	AuthzAuditLogRepo        repository.AuthzAuditLogRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	EmailService        *service.EmailService
	CaptchaService      *service.CaptchaService
	CategoryService     *service.CategoryService
	SettingService      *service.SettingService
	EventService        *service.EventService
	RegistrationService *service.RegistrationService
	ApplicationService  *service.OrganizerApplicationService
	UserLoginLogService *service.UserLoginLogService
	AuthzAuditService   *service.AuthzAuditService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.EmailVerifyCodeRepo = repository.NewEmailVerifyCodeRepository(db)
	c.PasswordResetTokenRepo = repository.NewPasswordResetTokenRepository(db)
	c.RateLimitEntryRepo = repository.NewRateLimitEntryRepository(db)
	c.OrganizerApplicationRepo = repository.NewOrganizerApplicationRepository(db)
	c.EventRepo = repository.NewEventRepository(db)
	c.RegistrationRepo = repository.NewEventRegistrationRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.UserLoginLogRepo = repository.NewUserLoginLogRepository(db)
	c.AuthzAuditLogRepo = repository.NewAuthzAuditLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.SettingRepo)
	smtpSetting, err := c.SettingService.GetSMTPSetting(c.Config.Email)
	if err != nil {
		logger.Warnw("provider_load_smtp_setting_failed", "error", err)
	} else {
		c.Config.Email = service.SMTPSettingToConfig(smtpSetting)
	}

	captchaSetting, err := c.SettingService.GetCaptchaSetting(c.Config.Captcha)
	if err != nil {
		logger.Warnw("provider_load_captcha_setting_failed", "error", err)
	} else {
		c.Config.Captcha = service.CaptchaSettingToConfig(captchaSetting)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.SettingService, c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.EmailVerifyCodeRepo, c.PasswordResetTokenRepo, c.EmailService)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.EventService = service.NewEventService(c.EventRepo, c.CategoryRepo, c.SettingService, c.QueueClient)
	c.RegistrationService = service.NewRegistrationService(c.RegistrationRepo, c.EventRepo, c.QueueClient)
	c.ApplicationService = service.NewOrganizerApplicationService(c.Config, c.OrganizerApplicationRepo, c.UserRepo, c.QueueClient)
	c.UserLoginLogService = service.NewUserLoginLogService(c.UserLoginLogRepo)
	c.AuthzAuditService = service.NewAuthzAuditService(c.AuthzAuditLogRepo)
}
