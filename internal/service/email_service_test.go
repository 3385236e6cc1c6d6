package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/event-horizon/internal/i18n"
	"github.com/event-horizon/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildApplicationStatusContent(t *testing.T) {
	tests := []struct {
		name                string
		locale              string
		status              string
		feedback            string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:   "accepted_zh",
			locale: i18n.LocaleZH,
			status: "accepted",
			wantSubjectContains: []string{
				"主办方申请审核结果",
				"已通过",
			},
			wantBodyContains: []string{
				"星舰文化",
				"已通过",
			},
		},
		{
			name:     "rejected_with_feedback_en",
			locale:   i18n.LocaleEN,
			status:   "rejected",
			feedback: "missing contact info",
			wantSubjectContains: []string{
				"Organizer application result",
				"Rejected",
			},
			wantBodyContains: []string{
				"missing contact info",
			},
		},
		{
			name:   "accepted_tw",
			locale: i18n.LocaleTW,
			status: "accepted",
			wantSubjectContains: []string{
				"主辦方申請審核結果",
				"已通過",
			},
			wantBodyContains: []string{
				"星舰文化",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ApplicationStatusEmailInput{
				OrgName:  "星舰文化",
				Status:   tt.status,
				Feedback: tt.feedback,
			}
			subject, body := buildApplicationStatusContent(input, tt.locale)
			for _, expected := range tt.wantSubjectContains {
				if !strings.Contains(subject, expected) {
					t.Fatalf("subject missing %q: %s", expected, subject)
				}
			}
			for _, expected := range tt.wantBodyContains {
				if !strings.Contains(body, expected) {
					t.Fatalf("body missing %q: %s", expected, body)
				}
			}
		})
	}
}

func TestBuildRegistrationContent(t *testing.T) {
	input := RegistrationEmailInput{
		EventTitle:  "Go Meetup Shanghai",
		Status:      "confirmed",
		StartsAt:    "2026-09-20 14:00",
		Venue:       "浦东软件园",
		TicketPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(19.8)),
		Currency:    "CNY",
	}
	subject, body := buildRegistrationContent(input, i18n.LocaleZH)
	for _, expected := range []string{"Go Meetup Shanghai", "已确认"} {
		if !strings.Contains(subject, expected) {
			t.Fatalf("subject missing %q: %s", expected, subject)
		}
	}
	for _, expected := range []string{"2026-09-20 14:00", "浦东软件园", "19.80", "CNY"} {
		if !strings.Contains(body, expected) {
			t.Fatalf("body missing %q: %s", expected, body)
		}
	}

	input.Status = "waitlisted"
	subject, body = buildRegistrationContent(input, i18n.LocaleEN)
	if !strings.Contains(subject, "Waitlisted") {
		t.Fatalf("subject missing waitlist status: %s", subject)
	}
	if !strings.Contains(body, "waitlist") {
		t.Fatalf("body missing waitlist hint: %s", body)
	}
	if strings.Contains(body, "19.80") {
		t.Fatalf("waitlist body should not mention ticket price: %s", body)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}
