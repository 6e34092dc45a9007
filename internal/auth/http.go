// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package auth — HTTP delivery layer for the authentication use cases.
//
// # Architecture
//
// Handlers act as the "gatekeepers" to the system. They are responsible for:
//   - JSON Request parsing and strict input validation.
//   - Mapping HTTP contexts to service layer method calls.
//   - Standardizing JSON response formats via the [respond] package.
//
// They contain NO business logic or database queries.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvu/tradedesk/internal/platform/middleware"
	requestutil "github.com/hoangvu/tradedesk/internal/platform/request"
	"github.com/hoangvu/tradedesk/internal/platform/respond"
	"github.com/hoangvu/tradedesk/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (signup, login) and
// the token self-check endpoint (verify).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /signup : Creates a new account. Unauthenticated.
//   - POST /login  : Authenticates and returns a bearer token. Unauthenticated.
//   - GET  /verify : Echoes the authorized principal. Behind the gate.
//
// The authorization gate is passed in from the composition root so signup and
// login stay in front of it, exactly where the request pipeline puts them.
func (handler *Handler) Routes(gate func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.With(gate).Get("/verify", handler.verify)

	return router
}

// signupRequest represents the JSON payload expected for account creation.
type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupResponse is the public response shape for a successful registration.
type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// signup handles POST /api/auth/signup requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with {message, userId}.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email is taken.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	// Prevent malformed data from reaching the service layer. The password
	// cap matches bcrypt, which only consumes the first 72 bytes; anything
	// longer is refused rather than silently truncated.
	v := &validate.Validator{}
	if err := v.
		Required("email", input.Email).
		Email("email", input.Email).
		MaxLen("email", input.Email, 254).
		Required("password", input.Password).
		Custom("password", len(input.Password) > 72, "Maximum 72 bytes").
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})

	// Service handles uniqueness and bcrypt hashing. On failure we pass the
	// domain error to the respond helper which maps it to the right status.
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, signupResponse{
		Message: "User registered successfully!",
		UserID:  user.ID,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the public response shape for a successful login.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// login handles POST /api/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with {message, token}.
//   - Writes HTTP 401 Unauthorized for bad credentials — same body whether
//     the email is unknown or the password is wrong.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Email:     input.Email,
		Password:  input.Password,
		ClientKey: middleware.RealIP(request),
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, loginResponse{
		Message: "Login successful",
		Token:   result.Token,
	})
}

// verify handles GET /api/auth/verify requests.
//
// The authorization gate has already verified the token and re-resolved the
// identity; this handler just echoes what the gate attached.
func (handler *Handler) verify(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, principal)
}
