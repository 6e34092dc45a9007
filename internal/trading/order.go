// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading

import "time"

// Order modes accepted from the frontend.
const (
	OrderModeBuy  = "BUY"
	OrderModeSell = "SELL"
)

// Order represents a buy/sell instruction submitted by an authorized client.
type Order struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
	Mode  string  `json:"mode"`

	CreatedAt time.Time `json:"created_at"`
}
