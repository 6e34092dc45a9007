// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

package trading

import "time"

// Position represents an open intraday or derivative position.
type Position struct {
	ID      string  `json:"id"`
	Product string  `json:"product"`
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Avg     float64 `json:"avg"`
	Price   float64 `json:"price"`
	Net     string  `json:"net"`
	Day     string  `json:"day"`
	IsLoss  bool    `json:"isLoss"`

	CreatedAt time.Time `json:"-"`
}
