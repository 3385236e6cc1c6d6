package service

import (
	"strings"
	"time"

	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/logger"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/queue"
	"github.com/event-horizon/internal/repository"
)

// OrganizerApplicationService 主办方资格申请服务
type OrganizerApplicationService struct {
	cfg             *config.Config
	applicationRepo repository.OrganizerApplicationRepository
	userRepo        repository.UserRepository
	queueClient     *queue.Client
}

// NewOrganizerApplicationService 创建主办方申请服务
func NewOrganizerApplicationService(cfg *config.Config, applicationRepo repository.OrganizerApplicationRepository, userRepo repository.UserRepository, queueClient *queue.Client) *OrganizerApplicationService {
	return &OrganizerApplicationService{
		cfg:             cfg,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		queueClient:     queueClient,
	}
}

// SubmitApplicationInput 提交申请参数
type SubmitApplicationInput struct {
	OrgName      string
	Description  string
	ContactPhone string
	Website      string
}

// Submit 提交主办方资格申请
// 允许提交的条件：从未申请过，或最近一次申请已被驳回。
func (s *OrganizerApplicationService) Submit(userID uint, input SubmitApplicationInput) (*models.OrganizerApplication, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	orgName := strings.TrimSpace(input.OrgName)
	description := strings.TrimSpace(input.Description)
	if orgName == "" || description == "" {
		return nil, ErrReasonRequired
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if strings.ToLower(user.Role) == constants.UserRoleOrganizer {
		return nil, ErrAlreadyOrganizer
	}

	latest, err := s.applicationRepo.GetLatestByUser(userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		switch strings.ToLower(latest.Status) {
		case constants.ApplicationStatusPending:
			return nil, ErrApplicationPending
		case constants.ApplicationStatusAccepted:
			return nil, ErrAlreadyOrganizer
		}
	}

	now := time.Now()
	application := &models.OrganizerApplication{
		UserID:       userID,
		OrgName:      orgName,
		Description:  description,
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Website:      strings.TrimSpace(input.Website),
		Status:       constants.ApplicationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		return nil, err
	}
	return application, nil
}

// GetLatestByUser 查询用户最近一次申请
func (s *OrganizerApplicationService) GetLatestByUser(userID uint) (*models.OrganizerApplication, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	return s.applicationRepo.GetLatestByUser(userID)
}

// GetByID 获取申请详情
func (s *OrganizerApplicationService) GetByID(id uint) (*models.OrganizerApplication, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	application, err := s.applicationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	return application, nil
}

// List 管理端申请列表
func (s *OrganizerApplicationService) List(filter repository.OrganizerApplicationListFilter) ([]models.OrganizerApplication, int64, error) {
	return s.applicationRepo.List(filter)
}

// Review 审核申请
// 终态（accepted/rejected）不可再变更；通过时同步提升用户角色并异步发送结果邮件。
func (s *OrganizerApplicationService) Review(applicationID, reviewerID uint, status, feedback string) (*models.OrganizerApplication, error) {
	if applicationID == 0 {
		return nil, ErrApplicationNotFound
	}
	status = strings.ToLower(strings.TrimSpace(status))

	application, err := s.applicationRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	if isApplicationFinal(application.Status) {
		return nil, ErrApplicationFinal
	}
	if !isApplicationTransitionAllowed(application.Status, status) {
		return nil, ErrInvalidApplicationStatus
	}

	now := time.Now()
	if err := s.applicationRepo.UpdateReview(applicationID, status, strings.TrimSpace(feedback), reviewerID, now); err != nil {
		return nil, err
	}

	if status == constants.ApplicationStatusAccepted {
		if err := s.userRepo.UpdateRole(application.UserID, constants.UserRoleOrganizer); err != nil {
			return nil, err
		}
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueApplicationStatusEmail(queue.ApplicationStatusEmailPayload{
			ApplicationID: applicationID,
			Status:        status,
		}); err != nil {
			logger.Warnw("application_enqueue_status_email_failed", "application_id", applicationID, "error", err)
		}
	}

	application.Status = status
	application.Feedback = strings.TrimSpace(feedback)
	application.ReviewedBy = &reviewerID
	application.ReviewedAt = &now
	application.UpdatedAt = now
	return application, nil
}
