package public

import "testing"

func TestCaptchaPayloadToServicePayload(t *testing.T) {
	req := CaptchaPayloadRequest{
		CaptchaID:      " id-1 ",
		CaptchaCode:    " abcd ",
		TurnstileToken: " token ",
	}
	payload := req.toServicePayload()
	if payload.CaptchaID != "id-1" {
		t.Fatalf("expected trimmed captcha id, got %q", payload.CaptchaID)
	}
	if payload.CaptchaCode != "abcd" {
		t.Fatalf("expected trimmed captcha code, got %q", payload.CaptchaCode)
	}
	if payload.TurnstileToken != "token" {
		t.Fatalf("expected trimmed turnstile token, got %q", payload.TurnstileToken)
	}
}
