// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvu/tradedesk/internal/platform/middleware"
)

var testAllowedOrigins = []string{
	"https://stock-trading-frontend-phi.vercel.app",
	"http://localhost:3000",
}

func originGateHandler(t *testing.T) http.Handler {
	t.Helper()
	gate := middleware.OriginGate(testAllowedOrigins)
	return gate(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
}

/*
TestOriginGate_AbsentOrigin verifies requests without an Origin header pass
straight through.
*/
func TestOriginGate_AbsentOrigin(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/allHoldings", nil)
	recorder := httptest.NewRecorder()

	originGateHandler(t).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestOriginGate_AllowedOrigin verifies an allow-listed origin is admitted and
gets the CORS response headers.
*/
func TestOriginGate_AllowedOrigin(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/allHoldings", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()

	originGateHandler(t).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", recorder.Header().Get("Vary"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

/*
TestOriginGate_DisallowedOrigin verifies a foreign origin is rejected with a
generic 403 that leaks neither the allow-list nor the offending value.
*/
func TestOriginGate_DisallowedOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"unknown_site", "https://evil.example.com"},
		{"scheme_mismatch", "https://localhost:3000"},
		{"subdomain_of_allowed", "https://sub.stock-trading-frontend-phi.vercel.app"},
		{"trailing_slash", "http://localhost:3000/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/allHoldings", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			originGateHandler(t).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, "Origin not allowed", envelope["error"])
			assert.NotContains(t, recorder.Body.String(), tt.origin)
		})
	}
}

/*
TestOriginGate_Preflight verifies OPTIONS from an allowed origin is answered
directly with 204 and never reaches the inner handler.
*/
func TestOriginGate_Preflight(t *testing.T) {
	gate := middleware.OriginGate(testAllowedOrigins)
	handler := gate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("inner handler must not run for preflight")
	}))

	request := httptest.NewRequest(http.MethodOptions, "/newOrder", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET, POST, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
}
