package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/provider"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAdminEventTestHandler(t *testing.T) *Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Event{}, &models.EventRegistration{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewEventRegistrationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	container := &provider.Container{
		EventRepo:           eventRepo,
		RegistrationRepo:    registrationRepo,
		CategoryRepo:        categoryRepo,
		EventService:        service.NewEventService(eventRepo, categoryRepo, nil, nil),
		RegistrationService: service.NewRegistrationService(registrationRepo, eventRepo, nil),
	}
	return New(container)
}

func newAdminEventTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("admin_id", uint(1))
		c.Next()
	})
	r.POST("/admin/events", h.CreateEvent)
	r.PUT("/admin/events/:id", h.UpdateEvent)
	r.POST("/admin/events/:id/publish", h.PublishEvent)
	r.POST("/admin/events/:id/cancel", h.CancelEvent)
	return r
}

func decodeAdminEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, map[string]interface{}) {
	t.Helper()
	var resp struct {
		StatusCode int                    `json:"status_code"`
		Data       map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v, body %s", err, w.Body.String())
	}
	return resp.StatusCode, resp.Data
}

func TestAdminEventLifecycle(t *testing.T) {
	h := newAdminEventTestHandler(t)
	r := newAdminEventTestRouter(h)

	startsAt := time.Now().Add(72 * time.Hour).Format(time.RFC3339)
	payload := fmt.Sprintf(`{"slug":"tech-salon","title":"技术沙龙","organizer_id":7,"starts_at":%q,"capacity":50,"ticket_price":99.5,"currency":"CNY"}`, startsAt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	code, data := decodeAdminEnvelope(t, w)
	if code != 0 {
		t.Fatalf("create status_code want 0 got %d, body %s", code, w.Body.String())
	}
	if status, _ := data["status"].(string); status != "draft" {
		t.Fatalf("created event status want draft got %v", data["status"])
	}
	eventID := uint(data["id"].(float64))

	// 发布
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/events/%d/publish", eventID), nil))
	code, data = decodeAdminEnvelope(t, w)
	if code != 0 {
		t.Fatalf("publish status_code want 0 got %d", code)
	}
	if status, _ := data["status"].(string); status != "published" {
		t.Fatalf("published event status want published got %v", data["status"])
	}

	// 重复发布被拒绝
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/events/%d/publish", eventID), nil))
	code, _ = decodeAdminEnvelope(t, w)
	if code != 400 {
		t.Fatalf("republish status_code want 400 got %d", code)
	}

	// 取消
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/events/%d/cancel", eventID), nil))
	code, data = decodeAdminEnvelope(t, w)
	if code != 0 {
		t.Fatalf("cancel status_code want 0 got %d", code)
	}
	if status, _ := data["status"].(string); status != "canceled" {
		t.Fatalf("canceled event status want canceled got %v", data["status"])
	}

	// 已取消活动不可再编辑
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/admin/events/%d", eventID), strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	code, _ = decodeAdminEnvelope(t, w)
	if code != 400 {
		t.Fatalf("update canceled event status_code want 400 got %d", code)
	}
}

func TestAdminCreateEventDuplicateSlug(t *testing.T) {
	h := newAdminEventTestHandler(t)
	r := newAdminEventTestRouter(h)

	startsAt := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	payload := fmt.Sprintf(`{"slug":"dup","title":"重复标识","organizer_id":7,"starts_at":%q}`, startsAt)

	for i, wantCode := range []int{0, 400} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		code, _ := decodeAdminEnvelope(t, w)
		if code != wantCode {
			t.Fatalf("attempt %d status_code want %d got %d", i, wantCode, code)
		}
	}
}
