package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redromiee/bag-tracker/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowCapsRequestsPerWindow(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "6th request within the window must be rejected")

	// Other addresses are tracked independently
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestAllowRecoversAfterWindowElapses(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	// Backdate five hits past the window, as if a minute had gone by
	stale := time.Now().Add(-2 * time.Minute)
	for i := 0; i < 5; i++ {
		rl.hits["10.0.0.1"] = append(rl.hits["10.0.0.1"], stale)
	}

	assert.True(t, rl.Allow("10.0.0.1"), "stale entries must be pruned before the count test")
}

func TestRejectedRequestsAreNotRecorded(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.Len(t, rl.hits["10.0.0.1"], 2)
}

func TestMiddlewareWritesRateLimitedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Minute)

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		r.ServeHTTP(w, req)
		return w
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)

	second := do()
	// Application errors ride in the body, not the HTTP status
	assert.Equal(t, http.StatusOK, second.Code)
	var body apierror.Envelope
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, apierror.CodeRateLimited, body.ErrorCode)
}
