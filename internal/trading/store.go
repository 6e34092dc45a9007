// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading

import "context"

// Repository defines the persistence contract for the ledger records.
//
// # Contract
//
// Deliberately small — create with a generated id, and find-all — because the
// access-control core treats these records as opaque. The canonical
// implementation is PostgreSQL ([PostgresRepository]).
type Repository interface {
	// ListHoldings returns every holding in the ledger.
	ListHoldings(ctx context.Context) ([]*Holding, error)

	// ListPositions returns every open position in the ledger.
	ListPositions(ctx context.Context) ([]*Position, error)

	// CreateOrder persists a new order and fills in its generated fields.
	CreateOrder(ctx context.Context, order *Order) error
}
