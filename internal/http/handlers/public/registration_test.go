package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/provider"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newRegistrationTestHandler(t *testing.T) (*Handler, *models.Event) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Event{}, &models.EventRegistration{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	now := time.Now()
	publishedAt := now.Add(-time.Hour)
	event := &models.Event{
		Slug:        "go-meetup",
		Title:       "Go Meetup",
		OrganizerID: 1,
		StartsAt:    now.Add(48 * time.Hour),
		Capacity:    1,
		Status:      constants.EventStatusPublished,
		PublishedAt: &publishedAt,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("create event failed: %v", err)
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
	return New(container), event
}

func newRegistrationTestRouter(h *Handler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/events/:slug/register", h.RegisterForEvent)
	r.DELETE("/events/:slug/register", h.CancelRegistration)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, map[string]interface{}) {
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

func TestRegisterForEventWaitlistAndPromotion(t *testing.T) {
	h, _ := newRegistrationTestHandler(t)

	// 第一位报名者占满唯一名额
	w := httptest.NewRecorder()
	newRegistrationTestRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/go-meetup/register", nil))
	code, data := decodeEnvelope(t, w)
	if code != 0 {
		t.Fatalf("first register status_code want 0 got %d", code)
	}
	if waitlisted, _ := data["waitlisted"].(bool); waitlisted {
		t.Fatalf("first registration should be confirmed")
	}

	// 第二位进入候补
	w = httptest.NewRecorder()
	newRegistrationTestRouter(h, 2).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/go-meetup/register", nil))
	code, data = decodeEnvelope(t, w)
	if code != 0 {
		t.Fatalf("second register status_code want 0 got %d", code)
	}
	if waitlisted, _ := data["waitlisted"].(bool); !waitlisted {
		t.Fatalf("second registration should be waitlisted")
	}

	// 重复报名被拒绝
	w = httptest.NewRecorder()
	newRegistrationTestRouter(h, 2).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/go-meetup/register", nil))
	code, _ = decodeEnvelope(t, w)
	if code != 400 {
		t.Fatalf("duplicate register status_code want 400 got %d", code)
	}

	// 确认者取消，最早候补自动递补
	w = httptest.NewRecorder()
	newRegistrationTestRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/go-meetup/register", nil))
	code, data = decodeEnvelope(t, w)
	if code != 0 {
		t.Fatalf("cancel status_code want 0 got %d", code)
	}
	promoted, ok := data["promoted_user_id"].(float64)
	if !ok || uint(promoted) != 2 {
		t.Fatalf("promoted_user_id want 2 got %v", data["promoted_user_id"])
	}
}

func TestRegisterForEventUnknownSlug(t *testing.T) {
	h, _ := newRegistrationTestHandler(t)

	w := httptest.NewRecorder()
	newRegistrationTestRouter(h, 1).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/no-such-event/register", nil))
	code, _ := decodeEnvelope(t, w)
	if code != 404 {
		t.Fatalf("unknown slug status_code want 404 got %d", code)
	}
}

func TestCancelRegistrationWithoutRegistration(t *testing.T) {
	h, _ := newRegistrationTestHandler(t)

	w := httptest.NewRecorder()
	newRegistrationTestRouter(h, 9).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/go-meetup/register", nil))
	code, _ := decodeEnvelope(t, w)
	if code != 404 {
		t.Fatalf("cancel without registration status_code want 404 got %d", code)
	}
}
