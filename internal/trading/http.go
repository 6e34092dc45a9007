// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package trading — HTTP delivery layer for the protected ledger endpoints.
//
// # Architecture
//
// Every route in this package sits behind the authorization gate; by the time
// a handler runs, the request carries a verified principal. Handlers only
// parse input, call the service, and shape output.
package trading

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/hoangvu/tradedesk/internal/platform/request"
	"github.com/hoangvu/tradedesk/internal/platform/respond"
	"github.com/hoangvu/tradedesk/internal/platform/validate"
)

// Handler implements the protected ledger HTTP endpoints.
type Handler struct {
	tradingService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{tradingService: service}
}

// RegisterRoutes attaches the ledger routes to the given router.
//
// # Endpoints
//   - GET  /allHoldings  : Full list of holdings as a bare JSON array.
//   - POST /newOrder     : Records a new order, replies with plain text.
//   - GET  /allPositions : Full list of positions as a bare JSON array.
//
// The paths and response shapes are part of the public contract with the
// trading frontend and must not change.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/allHoldings", handler.allHoldings)
	router.Get("/allPositions", handler.allPositions)
	router.Post("/newOrder", handler.newOrder)
}

// allHoldings handles GET /allHoldings requests.
//
// The response body is the bare array — no envelope — and an empty ledger
// yields [] rather than null.
func (handler *Handler) allHoldings(writer http.ResponseWriter, request *http.Request) {
	holdings, err := handler.tradingService.ListHoldings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if holdings == nil {
		holdings = []*Holding{}
	}

	respond.OK(writer, holdings)
}

// allPositions handles GET /allPositions requests.
func (handler *Handler) allPositions(writer http.ResponseWriter, request *http.Request) {
	positions, err := handler.tradingService.ListPositions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if positions == nil {
		positions = []*Position{}
	}

	respond.OK(writer, positions)
}

// newOrderRequest represents the JSON payload expected for a new order.
type newOrderRequest struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
	Mode  string  `json:"mode"`
}

// newOrder handles POST /newOrder requests.
//
// # Returns
//   - Writes HTTP 200 OK with the plain-text body "Order Saved!".
//   - Writes HTTP 400 Bad Request if validation rules fail.
func (handler *Handler) newOrder(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input newOrderRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	v := &validate.Validator{}
	if err := v.
		Required("name", input.Name).
		MaxLen("name", input.Name, 100).
		Custom("qty", input.Qty < 1, "Must be at least 1").
		Positive("price", input.Price).
		OneOf("mode", input.Mode, OrderModeBuy, OrderModeSell).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	if _, err := handler.tradingService.PlaceOrder(request.Context(), PlaceOrderInput{
		Name:  input.Name,
		Qty:   input.Qty,
		Price: input.Price,
		Mode:  input.Mode,
	}); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	// The frontend matches on this exact string.
	respond.Text(writer, http.StatusOK, "Order Saved!")
}
