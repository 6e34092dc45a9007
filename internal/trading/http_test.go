// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvu/tradedesk/internal/trading"
)

// mockRepository is a function-field test double for [trading.Repository].
type mockRepository struct {
	listHoldingsFn  func(ctx context.Context) ([]*trading.Holding, error)
	listPositionsFn func(ctx context.Context) ([]*trading.Position, error)
	createOrderFn   func(ctx context.Context, order *trading.Order) error
}

func (m *mockRepository) ListHoldings(ctx context.Context) ([]*trading.Holding, error) {
	return m.listHoldingsFn(ctx)
}

func (m *mockRepository) ListPositions(ctx context.Context) ([]*trading.Position, error) {
	return m.listPositionsFn(ctx)
}

func (m *mockRepository) CreateOrder(ctx context.Context, order *trading.Order) error {
	return m.createOrderFn(ctx, order)
}

func newLedgerRouter(repo *mockRepository) http.Handler {
	handler := trading.NewHandler(trading.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

/*
TestHandler_AllHoldings verifies the bare-array body, including the empty
ledger returning [] rather than null.
*/
func TestHandler_AllHoldings(t *testing.T) {
	t.Run("populated_ledger", func(t *testing.T) {
		repo := &mockRepository{
			listHoldingsFn: func(_ context.Context) ([]*trading.Holding, error) {
				return []*trading.Holding{
					{ID: "h1", Name: "INFY", Qty: 10, Avg: 1555.45, Price: 1570.10, Net: "+1.24%", Day: "+0.57%"},
				}, nil
			},
		}

		recorder := httptest.NewRecorder()
		newLedgerRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/allHoldings", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var holdings []map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &holdings))
		require.Len(t, holdings, 1)
		assert.Equal(t, "INFY", holdings[0]["name"])
		assert.EqualValues(t, 10, holdings[0]["qty"])
	})

	t.Run("empty_ledger", func(t *testing.T) {
		repo := &mockRepository{
			listHoldingsFn: func(_ context.Context) ([]*trading.Holding, error) {
				return nil, nil
			},
		}

		recorder := httptest.NewRecorder()
		newLedgerRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/allHoldings", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}

/*
TestHandler_AllPositions verifies the bare-array body including the isLoss
field casing.
*/
func TestHandler_AllPositions(t *testing.T) {
	repo := &mockRepository{
		listPositionsFn: func(_ context.Context) ([]*trading.Position, error) {
			return []*trading.Position{
				{ID: "p1", Product: "CNC", Name: "EVEREADY", Qty: 2, Avg: 316.27, Price: 312.35, Net: "+0.58%", Day: "-1.24%", IsLoss: true},
			}, nil
		},
	}

	recorder := httptest.NewRecorder()
	newLedgerRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/allPositions", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var positions []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &positions))
	require.Len(t, positions, 1)
	assert.Equal(t, "EVEREADY", positions[0]["name"])
	assert.Equal(t, true, positions[0]["isLoss"])
}

/*
TestHandler_NewOrder covers the plain-text confirmation and the persisted
record contents.
*/
func TestHandler_NewOrder(t *testing.T) {
	var saved *trading.Order
	repo := &mockRepository{
		createOrderFn: func(_ context.Context, order *trading.Order) error {
			saved = order
			return nil
		},
	}

	body := `{"name":"TCS","qty":5,"price":3194.8,"mode":"BUY"}`
	recorder := httptest.NewRecorder()
	newLedgerRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/newOrder", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Order Saved!", recorder.Body.String())

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "TCS", saved.Name)
	assert.Equal(t, 5, saved.Qty)
	assert.Equal(t, 3194.8, saved.Price)
	assert.Equal(t, trading.OrderModeBuy, saved.Mode)
	assert.False(t, saved.CreatedAt.IsZero())
}

/*
TestHandler_NewOrder_BadInput exercises the 400 rejections: nothing may be
persisted when validation fails.
*/
func TestHandler_NewOrder_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", `{"name": `},
		{"missing_name", `{"qty":5,"price":3194.8,"mode":"BUY"}`},
		{"overlong_name", `{"name":"` + strings.Repeat("T", 101) + `","qty":5,"price":3194.8,"mode":"BUY"}`},
		{"zero_qty", `{"name":"TCS","qty":0,"price":3194.8,"mode":"BUY"}`},
		{"negative_qty", `{"name":"TCS","qty":-1,"price":3194.8,"mode":"BUY"}`},
		{"zero_price", `{"name":"TCS","qty":5,"price":0,"mode":"BUY"}`},
		{"unknown_mode", `{"name":"TCS","qty":5,"price":3194.8,"mode":"HOLD"}`},
		{"lowercase_mode", `{"name":"TCS","qty":5,"price":3194.8,"mode":"buy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				createOrderFn: func(_ context.Context, _ *trading.Order) error {
					t.Fatal("CreateOrder must not run for invalid input")
					return nil
				},
			}

			recorder := httptest.NewRecorder()
			newLedgerRouter(repo).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/newOrder", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
