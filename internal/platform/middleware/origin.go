// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/hoangvu/tradedesk/internal/platform/apperr"
	"github.com/hoangvu/tradedesk/internal/platform/constants"
	"github.com/hoangvu/tradedesk/internal/platform/respond"
)

// OriginGate admits or rejects requests based on their declared Origin.
//
// # Admission Rules
//
//  1. No Origin header (curl, mobile apps, server-to-server) → admitted.
//  2. Origin exactly matches an allow-list entry → admitted, CORS headers set.
//  3. Anything else → the entire request is rejected with a generic 403
//     before rate limiting or authentication run. No wildcard or subdomain
//     matching.
//
// # Placement
//
// This gate is the first policy decision in the pipeline: only tracing,
// logging, and crash recovery wrap it, so rejections still carry a request
// ID and a log line. Every other component assumes it already passed. The
// allow-list is fixed at process start and immutable for the process
// lifetime.
func OriginGate(allowedOrigins []string) func(http.Handler) http.Handler {

	// Build a set for O(1) exact-match lookup.
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originSet[strings.TrimSpace(origin)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Non-Browser Clients ────────────────────────────────────────
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Exact-Match Admission ──────────────────────────────────────
			if _, isAllowed := originSet[origin]; !isAllowed {
				// Generic rejection: the body never echoes the offending
				// origin or reveals the allow-list contents.
				respond.Error(writer, request, apperr.Forbidden("Origin not allowed"))
				return
			}

			// ── 3. CORS Headers for Admitted Origins ──────────────────────────
			header := writer.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Vary", "Origin")
			header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID")
			header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
			header.Set("Access-Control-Max-Age", "300")

			// ── 4. Pre-Flight Short-Circuit ───────────────────────────────────
			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
