package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"email":" Test@Example.com "}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "1.2.3.4:5678"

	key := KeyByIPAndJSONField("email")(c)
	if key != "test@example.com|1.2.3.4" {
		t.Fatalf("key want test@example.com|1.2.3.4 got %s", key)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("read body after key extraction failed: %v", err)
	}
	if !strings.Contains(string(body), "Test@Example.com") {
		t.Fatalf("request body should be restored after reading field")
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("expected handler response body, got %s", w.Body.String())
	}
}

func newRateLimitTestRepo(t *testing.T) repository.RateLimitEntryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.RateLimitEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return repository.NewRateLimitEntryRepository(db)
}

func TestDBRateLimitMiddlewareSlidingWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newRateLimitTestRepo(t)

	rule := DBRateLimitRule{
		Route:         constants.RateLimitRouteVerifyEmail,
		WindowSeconds: 900,
		MaxRequests:   3,
	}
	r := gin.New()
	r.POST("/send", DBRateLimitMiddleware(repo, rule, KeyByIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/send", nil)
		req.RemoteAddr = "9.9.9.9:1000"
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		if w := send(); w.Code != http.StatusOK {
			t.Fatalf("request %d want 200 got %d body %s", i+1, w.Code, w.Body.String())
		}
	}
	w := send()
	if w.Code != http.StatusOK {
		t.Fatalf("envelope responses use http 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status_code":429`) {
		t.Fatalf("fourth request should be limited, got %s", w.Body.String())
	}

	// 其它客户端不受影响
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send", nil)
	req.RemoteAddr = "8.8.8.8:1000"
	r.ServeHTTP(w2, req)
	if !strings.Contains(w2.Body.String(), `"ok":true`) {
		t.Fatalf("other client should pass, got %s", w2.Body.String())
	}
}

func TestDBRateLimitMiddlewareWindowExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.RateLimitEntry{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	repo := repository.NewRateLimitEntryRepository(db)

	// 预置窗口外的历史流水
	old := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		entry := &models.RateLimitEntry{ClientKey: "9.9.9.9", Route: constants.RateLimitRouteSuggest, CreatedAt: old}
		if err := db.Create(entry).Error; err != nil {
			t.Fatalf("seed entry failed: %v", err)
		}
	}

	rule := DBRateLimitRule{
		Route:         constants.RateLimitRouteSuggest,
		WindowSeconds: 60,
		MaxRequests:   2,
		FailOpen:      true,
	}
	r := gin.New()
	r.GET("/suggest", DBRateLimitMiddleware(repo, rule, KeyByIP), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/suggest", nil)
	req.RemoteAddr = "9.9.9.9:1000"
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("entries outside window should not count, got %s", w.Body.String())
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "uint8", input: uint8(12), want: 12, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
