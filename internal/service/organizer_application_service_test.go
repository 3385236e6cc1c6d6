package service

import (
	"errors"
	"testing"

	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newApplicationTestService(t *testing.T) (*OrganizerApplicationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.OrganizerApplication{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewOrganizerApplicationService(
		&config.Config{},
		repository.NewOrganizerApplicationRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
	return svc, db
}

func seedMember(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Status:       constants.UserStatusActive,
		Role:         constants.UserRoleMember,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed member failed: %v", err)
	}
	return user
}

func TestSubmitApplicationResubmitGate(t *testing.T) {
	svc, db := newApplicationTestService(t)
	user := seedMember(t, db, "applicant@example.com")

	input := SubmitApplicationInput{OrgName: "星舰文化", Description: "长期举办技术沙龙"}
	application, err := svc.Submit(user.ID, input)
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if application.Status != constants.ApplicationStatusPending {
		t.Fatalf("new application status want pending got %s", application.Status)
	}

	// 待审核期间不允许重复提交
	if _, err := svc.Submit(user.ID, input); !errors.Is(err, ErrApplicationPending) {
		t.Fatalf("pending resubmit expected ErrApplicationPending, got %v", err)
	}

	// 驳回后允许重新提交
	if _, err := svc.Review(application.ID, 1, constants.ApplicationStatusRejected, "材料不全"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if _, err := svc.Submit(user.ID, input); err != nil {
		t.Fatalf("resubmit after rejection failed: %v", err)
	}
}

func TestReviewTransitionsAndRolePromotion(t *testing.T) {
	svc, db := newApplicationTestService(t)
	user := seedMember(t, db, "soon-organizer@example.com")

	application, err := svc.Submit(user.ID, SubmitApplicationInput{OrgName: "晨星社", Description: "校园活动组织"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.Review(application.ID, 9, "archived", ""); !errors.Is(err, ErrInvalidApplicationStatus) {
		t.Fatalf("unknown status expected ErrInvalidApplicationStatus, got %v", err)
	}

	reviewed, err := svc.Review(application.ID, 9, constants.ApplicationStatusAccepted, "欢迎加入")
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if reviewed.ReviewedAt == nil || reviewed.ReviewedBy == nil || *reviewed.ReviewedBy != 9 {
		t.Fatalf("review metadata missing: %+v", reviewed)
	}

	// 终态不可再变更
	if _, err := svc.Review(application.ID, 9, constants.ApplicationStatusRejected, ""); !errors.Is(err, ErrApplicationFinal) {
		t.Fatalf("final application expected ErrApplicationFinal, got %v", err)
	}

	var promoted models.User
	if err := db.First(&promoted, user.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if promoted.Role != constants.UserRoleOrganizer {
		t.Fatalf("accepted application should promote role, got %s", promoted.Role)
	}

	// 已是主办方后不再受理新申请
	if _, err := svc.Submit(user.ID, SubmitApplicationInput{OrgName: "晨星社", Description: "again"}); !errors.Is(err, ErrAlreadyOrganizer) {
		t.Fatalf("organizer resubmit expected ErrAlreadyOrganizer, got %v", err)
	}
}

func TestSubmitApplicationRequiresReason(t *testing.T) {
	svc, db := newApplicationTestService(t)
	user := seedMember(t, db, "empty@example.com")

	if _, err := svc.Submit(user.ID, SubmitApplicationInput{OrgName: "  ", Description: ""}); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("blank input expected ErrReasonRequired, got %v", err)
	}
}

func TestApplicationStatusMachine(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{constants.ApplicationStatusPending, constants.ApplicationStatusAccepted, true},
		{constants.ApplicationStatusPending, constants.ApplicationStatusRejected, true},
		{constants.ApplicationStatusAccepted, constants.ApplicationStatusRejected, false},
		{constants.ApplicationStatusRejected, constants.ApplicationStatusAccepted, false},
		{constants.ApplicationStatusPending, constants.ApplicationStatusPending, false},
		{"", constants.ApplicationStatusAccepted, false},
	}
	for _, tt := range tests {
		if got := isApplicationTransitionAllowed(tt.from, tt.to); got != tt.want {
			t.Fatalf("transition %q -> %q want %v got %v", tt.from, tt.to, tt.want, got)
		}
	}
}
