// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvu/tradedesk/internal/auth"
	"github.com/hoangvu/tradedesk/internal/platform/apperr"
	"github.com/hoangvu/tradedesk/internal/platform/ctxutil"
	"github.com/hoangvu/tradedesk/internal/platform/sec"
)

// newTestRouter wires a Handler over an in-memory user store. The returned
// gate stub injects a fixed principal, standing in for the real gate which
// has its own tests.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := map[string]*auth.User{}
	userRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (*auth.User, error) {
			if user, ok := store[email]; ok {
				return user, nil
			}
			return nil, apperr.NotFound("User")
		},
		createFn: func(_ context.Context, user *auth.User) error {
			store[user.Email] = user
			return nil
		},
	}

	service := auth.NewService(userRepo, newMockAttemptRepository(), &mockTokenProvider{token: "signed.jwt.token"}, time.Hour)
	handler := auth.NewHandler(service)

	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := ctxutil.WithPrincipal(request.Context(), &sec.Principal{
				ID:    "u1",
				Email: "trader@example.com",
			})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}

	return handler.Routes(gate)
}

/*
TestHandler_Signup covers the 201 happy path and the exact response shape
the frontend depends on.
*/
func TestHandler_Signup(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"trader@example.com","password":"p1"}`
	request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "User registered successfully!", response["message"])
	assert.NotEmpty(t, response["userId"])
}

/*
TestHandler_Signup_BadInput exercises the 400 rejections at the boundary.
*/
func TestHandler_Signup_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", `{"email": `},
		{"missing_email", `{"password":"p1"}`},
		{"missing_password", `{"email":"trader@example.com"}`},
		{"invalid_email", `{"email":"not-an-email","password":"p1"}`},
		{"overlong_email", `{"email":"` + strings.Repeat("a", 250) + `@x.com","password":"p1"}`},
		{"overlong_password", `{"email":"trader@example.com","password":"` + strings.Repeat("x", 73) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

/*
TestHandler_Signup_Duplicate verifies the second signup with the same email
gets a 409.
*/
func TestHandler_Signup_Duplicate(t *testing.T) {
	router := newTestRouter(t)
	body := `{"email":"trader@example.com","password":"p1"}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, second.Code)
}

/*
TestHandler_Login covers the 200 happy path with {message, token} and the
401 rejection for bad credentials.
*/
func TestHandler_Login(t *testing.T) {
	router := newTestRouter(t)

	signup := httptest.NewRecorder()
	router.ServeHTTP(signup, httptest.NewRequest(http.MethodPost, "/signup",
		strings.NewReader(`{"email":"trader@example.com","password":"p1"}`)))
	require.Equal(t, http.StatusCreated, signup.Code)

	t.Run("valid_credentials", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"trader@example.com","password":"p1"}`)))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Login successful", response["message"])
		assert.Equal(t, "signed.jwt.token", response["token"])
	})

	t.Run("wrong_password", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"trader@example.com","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("unknown_email", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"ghost@example.com","password":"p1"}`)))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing_fields", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"trader@example.com"}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestHandler_Verify checks the gate-attached principal is echoed as
{id, email}.
*/
func TestHandler_Verify(t *testing.T) {
	router := newTestRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/verify", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "u1", response["id"])
	assert.Equal(t, "trader@example.com", response["email"])
}
