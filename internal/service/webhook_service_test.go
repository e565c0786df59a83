package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() WebhookPayload {
	return WebhookPayload{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project Inquiry",
		Message: "Hello, I would like to discuss a project.",
	}
}

func TestDeliver_Success(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	svc := NewWebhookService(srv.URL)
	err := svc.Deliver(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", received["name"])
	assert.Equal(t, "jane@example.com", received["email"])
	// The honeypot field must never travel downstream
	assert.NotContains(t, received, "website")
}

func TestDeliver_NotConfigured(t *testing.T) {
	svc := NewWebhookService("")
	err := svc.Deliver(context.Background(), testPayload())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDeliver_Non2xxStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"success":true}`))
		}))

		svc := NewWebhookService(srv.URL)
		err := svc.Deliver(context.Background(), testPayload())
		assert.ErrorIs(t, err, ErrDelivery, "status %d should be a delivery failure", status)
		assert.NotErrorIs(t, err, ErrTimeout)

		srv.Close()
	}
}

func TestDeliver_DownstreamReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"spreadsheet is full"}`))
	}))
	defer srv.Close()

	svc := NewWebhookService(srv.URL)
	err := svc.Deliver(context.Background(), testPayload())
	require.ErrorIs(t, err, ErrDelivery)
	assert.Contains(t, err.Error(), "spreadsheet is full")
}

func TestDeliver_MalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	svc := NewWebhookService(srv.URL)
	err := svc.Deliver(context.Background(), testPayload())
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestDeliver_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	svc := NewWebhookService(srv.URL)
	svc.timeout = 50 * time.Millisecond

	start := time.Now()
	err := svc.Deliver(context.Background(), testPayload())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrDelivery)
	// Deadline fires on schedule: not immediately, not indefinitely
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestDeliver_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	svc := NewWebhookService(srv.URL)
	err := svc.Deliver(context.Background(), testPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelivery)
	assert.False(t, errors.Is(err, ErrTimeout))
}
