package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, trusted ...string) (*RateLimiter, *time.Time) {
	t.Helper()
	rl, err := NewRateLimiter(3, 3, trusted, nopLogger{})
	require.NoError(t, err)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func sendOTPRequest(h http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/register/send-otp", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl, now := newTestLimiter(t)
	h := rl.Middleware(okHandler())

	call := func(ip string) int { return sendOTPRequest(h, ip+":5555", "") }

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"), "other IP has its own bucket")

	// 3 запроса в минуту: через 30 секунд накоплено полтора токена
	*now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Middleware(okHandler())

	passed := 0
	for i := 0; i < 50; i++ {
		if sendOTPRequest(h, "10.0.0.1:5555", fmt.Sprintf("203.0.113.%d", i)) == http.StatusNoContent {
			passed++
		}
	}

	assert.Equal(t, 3, passed)
}

func TestRateLimiter_TrustedProxyUsesForwardedClient(t *testing.T) {
	rl, _ := newTestLimiter(t, "10.0.0.0/8")
	h := rl.Middleware(okHandler())

	// Клиент подставляет разные левые значения, прокси дописывает настоящий адрес справа
	passed := 0
	for i := 0; i < 10; i++ {
		xff := fmt.Sprintf("198.51.100.%d, 203.0.113.7", i)
		if sendOTPRequest(h, "10.1.2.3:443", xff) == http.StatusNoContent {
			passed++
		}
	}
	assert.Equal(t, 3, passed)

	assert.Equal(t, http.StatusNoContent, sendOTPRequest(h, "10.1.2.3:443", "203.0.113.8"),
		"another client behind the same proxy has its own bucket")
}

func TestRateLimiter_ClientIP(t *testing.T) {
	rl, _ := newTestLimiter(t, "10.0.0.0/8", "192.168.1.5")

	tests := []struct {
		name   string
		remote string
		xff    []string
		want   string
	}{
		{"no header", "192.0.2.10:1234", nil, "192.0.2.10"},
		{"untrusted peer with header", "192.0.2.10:1234", []string{"203.0.113.7"}, "192.0.2.10"},
		{"trusted peer", "192.168.1.5:1234", []string{"203.0.113.7"}, "203.0.113.7"},
		{"spoofed left value", "192.168.1.5:1234", []string{"1.1.1.1, 203.0.113.7"}, "203.0.113.7"},
		{"chain of trusted proxies", "10.0.0.1:1234", []string{"203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"several header lines", "10.0.0.1:1234", []string{"1.1.1.1", "203.0.113.9"}, "203.0.113.9"},
		{"only proxies in header", "10.0.0.1:1234", []string{"10.0.0.2"}, "10.0.0.1"},
		{"garbage hop", "10.0.0.1:1234", []string{"not-an-ip"}, "10.0.0.1"},
		{"trusted peer without header", "10.0.0.1:1234", nil, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for _, v := range tt.xff {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}

func TestNewRateLimiter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRateLimiter(3, 3, []string{"10.0.0.0/33"}, nopLogger{})
	assert.Error(t, err)

	_, err = NewRateLimiter(3, 3, []string{"proxy.local"}, nopLogger{})
	assert.Error(t, err)
}
