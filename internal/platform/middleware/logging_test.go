// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoangvu/tradedesk/internal/platform/ctxutil"
	"github.com/hoangvu/tradedesk/internal/platform/middleware"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

/*
TestStructuredLogger_UserID verifies that the final request log carries the
identity attached by a downstream authorization gate, even though the gate
stores it in a child context.
*/
func TestStructuredLogger_UserID(t *testing.T) {
	logBuffer := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logBuffer, nil))

	// The gate attaches the principal downstream of the logger, the way
	// Authenticate does on protected routes.
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := ctxutil.WithPrincipal(request.Context(), &sec.Principal{
				ID:    "user-123",
				Email: "trader@example.com",
			})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}

	final := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	handler := middleware.StructuredLogger(logger)(gate(final))

	request := httptest.NewRequest(http.MethodGet, "/allHoldings", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, logBuffer.String(), `"user_id":"user-123"`)
}

/*
TestStructuredLogger_Anonymous verifies that unauthenticated requests are
logged without a user_id attribute.
*/
func TestStructuredLogger_Anonymous(t *testing.T) {
	logBuffer := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logBuffer, nil))

	final := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	handler := middleware.StructuredLogger(logger)(final)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Contains(t, logBuffer.String(), "http_request_finished")
	assert.NotContains(t, logBuffer.String(), "user_id")
}
