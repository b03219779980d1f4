package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(Config{Timeout: 5 * time.Second}, nil)
	body, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Contains(t, gotUA, "Chrome/124.0")
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("second try"))
	}))
	defer srv.Close()

	c := New(Config{Timeout: 5 * time.Second, Attempts: 2}, nil)
	body, err := c.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "second try", string(body))
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestGetReturnsLastErrorWhenExhausted(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{Timeout: 5 * time.Second, Attempts: 1}, nil)
	_, err := c.Get(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestGetHonorsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(Config{Timeout: 5 * time.Second, Attempts: 3}, nil)
	_, err := c.Get(ctx, srv.URL)
	require.Error(t, err)
}

func TestHostLimiterSeparatesHosts(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	// Distinct hosts each get their own burst token.
	start := time.Now()
	require.NoError(t, hl.WaitURL(ctx, "https://a.example.org/jobs"))
	require.NoError(t, hl.WaitURL(ctx, "https://b.example.org/jobs"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostLimiterFallbackBucket(t *testing.T) {
	hl := NewHostLimiter(100, 2)
	assert.NoError(t, hl.WaitURL(context.Background(), "::not a url::"))
}
