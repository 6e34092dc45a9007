// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading

import (
	"context"
	"time"

	"github.com/hoangvu/tradedesk/pkg/uuidv7"
)

// Service exposes the ledger read/write use cases.
//
// There is intentionally no business logic here beyond id assignment: the
// records are opaque to the access-control core, and authorization has
// already happened by the time these methods run.
type Service struct {
	repo Repository
}

// NewService constructs a new trading [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListHoldings returns every holding in the ledger.
func (service *Service) ListHoldings(context context.Context) ([]*Holding, error) {
	return service.repo.ListHoldings(context)
}

// ListPositions returns every open position in the ledger.
func (service *Service) ListPositions(context context.Context) ([]*Position, error) {
	return service.repo.ListPositions(context)
}

// PlaceOrderInput holds the fields accepted for a new order.
type PlaceOrderInput struct {
	Name  string
	Qty   int
	Price float64
	Mode  string
}

// PlaceOrder persists a new order with a generated time-sortable id.
func (service *Service) PlaceOrder(context context.Context, input PlaceOrderInput) (*Order, error) {
	order := &Order{
		ID:        uuidv7.New(),
		Name:      input.Name,
		Qty:       input.Qty,
		Price:     input.Price,
		Mode:      input.Mode,
		CreatedAt: time.Now(),
	}

	if err := service.repo.CreateOrder(context, order); err != nil {
		return nil, err
	}

	return order, nil
}
