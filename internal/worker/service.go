package worker

import (
	"context"
	"errors"
	"time"

	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	cleanupInterval         = 10 * time.Minute
	rateLimitRetentionFloor = time.Hour
)

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.Container != nil {
		go s.runCleanupLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runCleanupLoop 周期清理过期验证码、重置令牌和限流流水
func (s *Service) runCleanupLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.Container == nil {
		return
	}
	c := s.consumer.Container

	retention := rateLimitRetentionFloor
	if c.Config != nil && c.Config.RateLimit.RetentionMinutes > 0 {
		configured := time.Duration(c.Config.RateLimit.RetentionMinutes) * time.Minute
		if configured > retention {
			retention = configured
		}
	}

	runOnce := func() {
		now := time.Now()
		if c.EmailVerifyCodeRepo != nil {
			if removed, err := c.EmailVerifyCodeRepo.DeleteExpiredBefore(now); err != nil {
				logger.Warnw("worker_cleanup_verify_codes_failed", "error", err)
			} else if removed > 0 {
				logger.Debugw("worker_cleanup_verify_codes_done", "removed", removed)
			}
		}
		if c.PasswordResetTokenRepo != nil {
			if removed, err := c.PasswordResetTokenRepo.DeleteExpiredBefore(now); err != nil {
				logger.Warnw("worker_cleanup_reset_tokens_failed", "error", err)
			} else if removed > 0 {
				logger.Debugw("worker_cleanup_reset_tokens_done", "removed", removed)
			}
		}
		if c.RateLimitEntryRepo != nil {
			if removed, err := c.RateLimitEntryRepo.DeleteBefore(now.Add(-retention)); err != nil {
				logger.Warnw("worker_cleanup_rate_limit_entries_failed", "error", err)
			} else if removed > 0 {
				logger.Debugw("worker_cleanup_rate_limit_entries_done", "removed", removed)
			}
		}
	}
	runOnce()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
