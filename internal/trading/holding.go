// Copyright (c) 2026 Tradedesk. All rights reserved.
// Author: hoang.vu.dev@gmail.com

// Package trading holds the ledger records served to authorized clients.
//
// # Scope
//
// These records are opaque payloads as far as the access-control core is
// concerned: they carry no security semantics and are passed through once a
// caller has cleared the authorization gate.
package trading

import "time"

// Holding represents an instrument currently held in the ledger.
type Holding struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Avg   float64 `json:"avg"`
	Price float64 `json:"price"`
	Net   string  `json:"net"`
	Day   string  `json:"day"`

	CreatedAt time.Time `json:"-"`
}
