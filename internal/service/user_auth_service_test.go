package service

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/event-horizon/internal/config"
	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserAuthTestService(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.EmailVerifyCode{}, &models.PasswordResetToken{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret"
	cfg.UserJWT.ExpireHours = 24
	cfg.Email.VerifyCode.ExpireMinutes = 15
	cfg.Email.VerifyCode.SendIntervalSeconds = 60
	cfg.Email.VerifyCode.MaxAttempts = 3
	cfg.Security.PasswordReset.TokenExpireMinutes = 30

	emailService := NewEmailService(&config.EmailConfig{Enabled: false})
	svc := NewUserAuthService(
		cfg,
		repository.NewUserRepository(db),
		repository.NewEmailVerifyCodeRepository(db),
		repository.NewPasswordResetTokenRepository(db),
		emailService,
	)
	return svc, db
}

func seedVerifyCode(t *testing.T, db *gorm.DB, email, purpose, code string) *models.EmailVerifyCode {
	t.Helper()
	record := &models.EmailVerifyCode{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		SentAt:    time.Now().Add(-2 * time.Minute),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("seed verify code failed: %v", err)
	}
	return record
}

func seedActiveUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	now := time.Now()
	user := &models.User{
		Email:           email,
		PasswordHash:    string(hash),
		DisplayName:     "tester",
		Status:          constants.UserStatusActive,
		Role:            constants.UserRoleMember,
		EmailVerifiedAt: &now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func TestRandomVerifyCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := randomVerifyCode()
		if err != nil {
			t.Fatalf("generate code failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code length want 6 got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}
	}
}

func TestSendVerifyCodeRemovesRecordWhenDispatchFails(t *testing.T) {
	svc, db := newUserAuthTestService(t)

	err := svc.SendVerifyCode("someone@example.com", constants.VerifyPurposeGeneric, "zh-CN")
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailVerifyCode{}).Count(&count).Error; err != nil {
		t.Fatalf("count codes failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed dispatch should leave no code rows, got %d", count)
	}
}

func TestSendVerifyCodeResetUnknownEmailSilent(t *testing.T) {
	svc, db := newUserAuthTestService(t)

	if err := svc.SendVerifyCode("ghost@example.com", constants.VerifyPurposeReset, "zh-CN"); err != nil {
		t.Fatalf("unknown email reset should succeed silently, got %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailVerifyCode{}).Count(&count).Error; err != nil {
		t.Fatalf("count codes failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("unknown email should not create codes, got %d", count)
	}
}

func TestVerifyCodeMismatchCountsAttempts(t *testing.T) {
	svc, db := newUserAuthTestService(t)
	seedVerifyCode(t, db, "user@example.com", constants.VerifyPurposeGeneric, "123456")

	wantRemaining := []int{2, 1, 0}
	for i, want := range wantRemaining {
		_, err := svc.VerifyCode("user@example.com", constants.VerifyPurposeGeneric, "000000")
		if !errors.Is(err, ErrVerifyCodeInvalid) {
			t.Fatalf("attempt %d expected mismatch error, got %v", i+1, err)
		}
		remaining, ok := VerifyCodeRemainingAttempts(err)
		if !ok || remaining != want {
			t.Fatalf("attempt %d remaining want %d got %d (ok=%v)", i+1, want, remaining, ok)
		}
	}

	// 尝试次数耗尽后，即便验证码正确也拒绝
	_, err := svc.VerifyCode("user@example.com", constants.VerifyPurposeGeneric, "123456")
	if !errors.Is(err, ErrVerifyCodeAttemptsExceeded) {
		t.Fatalf("expected ErrVerifyCodeAttemptsExceeded, got %v", err)
	}
}

func TestVerifyCodeExpired(t *testing.T) {
	svc, db := newUserAuthTestService(t)
	record := seedVerifyCode(t, db, "late@example.com", constants.VerifyPurposeGeneric, "123456")
	if err := db.Model(record).Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire code failed: %v", err)
	}

	_, err := svc.VerifyCode("late@example.com", constants.VerifyPurposeGeneric, "123456")
	if !errors.Is(err, ErrVerifyCodeExpired) {
		t.Fatalf("expected ErrVerifyCodeExpired, got %v", err)
	}
}

func TestResetPasswordWithTokenFlow(t *testing.T) {
	svc, db := newUserAuthTestService(t)
	user := seedActiveUser(t, db, "reset@example.com", "OldPass123")
	seedVerifyCode(t, db, "reset@example.com", constants.VerifyPurposeReset, "654321")

	token, err := svc.VerifyCode("reset@example.com", constants.VerifyPurposeReset, "654321")
	if err != nil {
		t.Fatalf("verify reset code failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("reset token length want 64 got %d", len(token))
	}

	if err := svc.ResetPasswordWithToken(token, "NewPass456"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	// 令牌一次性：重复消费被拒绝
	if err := svc.ResetPasswordWithToken(token, "Another789"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("reused token expected ErrResetTokenInvalid, got %v", err)
	}

	if _, _, _, err := svc.Login("reset@example.com", "NewPass456"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := svc.Login("reset@example.com", "OldPass123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should be rejected, got %v", err)
	}

	var updated models.User
	if err := db.First(&updated, user.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version should bump, want %d got %d", user.TokenVersion+1, updated.TokenVersion)
	}
}

func TestVerifyCodeSingleActivePerPurpose(t *testing.T) {
	svc, db := newUserAuthTestService(t)
	codeRepo := repository.NewEmailVerifyCodeRepository(db)

	first := &models.EmailVerifyCode{
		Email:     "dup@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "111111",
		ExpiresAt: time.Now().Add(15 * time.Minute),
		SentAt:    time.Now().Add(-2 * time.Minute),
	}
	if err := codeRepo.Replace(first); err != nil {
		t.Fatalf("replace first failed: %v", err)
	}
	second := &models.EmailVerifyCode{
		Email:     "dup@example.com",
		Purpose:   constants.VerifyPurposeRegister,
		Code:      "222222",
		ExpiresAt: time.Now().Add(15 * time.Minute),
		SentAt:    time.Now(),
	}
	if err := codeRepo.Replace(second); err != nil {
		t.Fatalf("replace second failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailVerifyCode{}).
		Where("email = ? AND purpose = ?", "dup@example.com", constants.VerifyPurposeRegister).
		Count(&count).Error; err != nil {
		t.Fatalf("count codes failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("only one active code per (email,purpose), got %d", count)
	}

	// 旧验证码已被替换，不再可用
	if _, err := svc.VerifyCode("dup@example.com", constants.VerifyPurposeRegister, "111111"); !errors.Is(err, ErrVerifyCodeInvalid) {
		t.Fatalf("replaced code expected invalid, got %v", err)
	}
	if _, err := svc.VerifyCode("dup@example.com", constants.VerifyPurposeRegister, "222222"); err != nil {
		t.Fatalf("latest code should verify, got %v", err)
	}
}
