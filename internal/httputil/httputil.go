// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the single HTTP helper used to fetch a remote
// snapshot.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of a fetched snapshot.
const MaxBodyBytes = 64 << 20

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// GetText performs one GET request and returns the response body as text.
// There is no retry: any transport error or non-2xx status is returned to
// the caller. When token is non-empty it is sent as a bearer token.
func GetText(ctx context.Context, client *http.Client, url, userAgent, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if len(data) > MaxBodyBytes {
		return "", fmt.Errorf("response body exceeds %d bytes", MaxBodyBytes)
	}
	return string(data), nil
}
