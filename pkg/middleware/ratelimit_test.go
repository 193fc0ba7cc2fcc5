package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupRateLimitRouter(config RateLimitConfig) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiter(config))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func TestLocalRateLimiter(t *testing.T) {
	t.Run("allows within burst", func(t *testing.T) {
		rl := NewLocalRateLimiter(RateLimitConfig{
			RequestsPerSecond: 10,
			BurstSize:         5,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		defer rl.Stop()

		for i := 0; i < 5; i++ {
			if !rl.Allow("1.2.3.4") {
				t.Fatalf("request %d should be allowed within burst", i)
			}
		}
	})

	t.Run("rejects after burst exhausted", func(t *testing.T) {
		rl := NewLocalRateLimiter(RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		defer rl.Stop()

		rl.Allow("1.2.3.4")
		rl.Allow("1.2.3.4")
		if rl.Allow("1.2.3.4") {
			t.Error("expected rejection after burst exhausted")
		}
	})

	t.Run("separate keys have separate buckets", func(t *testing.T) {
		rl := NewLocalRateLimiter(RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		defer rl.Stop()

		if !rl.Allow("1.1.1.1") {
			t.Error("first key should be allowed")
		}
		if !rl.Allow("2.2.2.2") {
			t.Error("second key should be allowed")
		}
	})

	t.Run("refills over time", func(t *testing.T) {
		rl := NewLocalRateLimiter(RateLimitConfig{
			RequestsPerSecond: 100,
			BurstSize:         1,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		defer rl.Stop()

		rl.Allow("1.2.3.4")
		if rl.Allow("1.2.3.4") {
			t.Fatal("bucket should be empty")
		}
		time.Sleep(50 * time.Millisecond)
		if !rl.Allow("1.2.3.4") {
			t.Error("bucket should have refilled")
		}
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	router := setupRateLimitRouter(RateLimitConfig{
		RequestsPerSecond: 1,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})

	status := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if status() != http.StatusOK {
		t.Error("first request should pass")
	}
	if status() != http.StatusOK {
		t.Error("second request should pass")
	}
	if status() != http.StatusTooManyRequests {
		t.Error("third request should be rate limited")
	}
}
