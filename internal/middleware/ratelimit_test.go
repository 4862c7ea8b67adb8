package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/math490/ProjetoTarefas-3B/internal/config"
	"github.com/math490/ProjetoTarefas-3B/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterThrottlesAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 1,
		BurstSize:      3,
	})

	router := gin.New()
	router.Use(limiter.Handler())
	router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d within burst should pass, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after burst, got %d", w.Code)
	}
}

func TestRateLimiterStop(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{
		Enabled:         true,
		RequestsPerMin:  60,
		BurstSize:       1,
		CleanupInterval: time.Millisecond,
	})

	limiter.Stop()
	limiter.Stop() // idempotent

	// The limiter still works after the cleanup goroutine is gone.
	router := gin.New()
	router.Use(limiter.Handler())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 after Stop, got %d", w.Code)
	}
}
