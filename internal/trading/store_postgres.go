// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangvu/tradedesk/internal/platform/database/schema"
	"github.com/hoangvu/tradedesk/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListHoldings returns every holding in the ledger, oldest first.
func (repository *PostgresRepository) ListHoldings(ctx context.Context) ([]*Holding, error) {
	// Column order matches the Scan order below.
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.TradingHolding.Columns(), ", "),
		schema.TradingHolding.Table, schema.TradingHolding.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_holdings")
	}
	defer rows.Close()

	holdings := make([]*Holding, 0)
	for rows.Next() {
		holding := &Holding{}
		if err := rows.Scan(
			&holding.ID,
			&holding.Name,
			&holding.Qty,
			&holding.Avg,
			&holding.Price,
			&holding.Net,
			&holding.Day,
			&holding.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_holding")
		}
		holdings = append(holdings, holding)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_holdings")
	}

	return holdings, nil
}

// ListPositions returns every open position in the ledger, oldest first.
func (repository *PostgresRepository) ListPositions(ctx context.Context) ([]*Position, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.TradingPosition.Columns(), ", "),
		schema.TradingPosition.Table, schema.TradingPosition.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_positions")
	}
	defer rows.Close()

	positions := make([]*Position, 0)
	for rows.Next() {
		position := &Position{}
		if err := rows.Scan(
			&position.ID,
			&position.Product,
			&position.Name,
			&position.Qty,
			&position.Avg,
			&position.Price,
			&position.Net,
			&position.Day,
			&position.IsLoss,
			&position.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_position")
		}
		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_positions")
	}

	return positions, nil
}

// CreateOrder persists a new order record.
func (repository *PostgresRepository) CreateOrder(ctx context.Context, order *Order) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.TradingOrder.Table,
		strings.Join(schema.TradingOrder.Columns(), ", "),
	)

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		order.ID,
		order.Name,
		order.Qty,
		order.Price,
		order.Mode,
		order.CreatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "create_order")
	}

	return nil
}
