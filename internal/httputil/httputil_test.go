// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetText_Success(t *testing.T) {
	headers := make(chan http.Header, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Write([]byte("Conference,Acronym\nA,B\n"))
	}))
	defer ts.Close()

	body, err := GetText(context.Background(), ts.Client(), ts.URL, "confrank/test", "secret")
	require.NoError(t, err)

	assert.Equal(t, "Conference,Acronym\nA,B\n", body)
	h := <-headers
	assert.Equal(t, "confrank/test", h.Get("User-Agent"))
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
}

func TestGetText_NoTokenNoAuthHeader(t *testing.T) {
	headers := make(chan http.Header, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
	}))
	defer ts.Close()

	_, err := GetText(context.Background(), ts.Client(), ts.URL, "", "")
	require.NoError(t, err)
	assert.Empty(t, (<-headers).Get("Authorization"))
}

func TestGetText_ErrorStatusIsNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := GetText(context.Background(), ts.Client(), ts.URL, "", "")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetText_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := GetText(context.Background(), ts.Client(), ts.URL, "", "")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestGetText_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := GetText(ctx, ts.Client(), ts.URL, "", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
