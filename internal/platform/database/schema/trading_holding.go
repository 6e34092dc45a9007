package schema

// TradingHoldingTable represents the 'trading.holding' table
type TradingHoldingTable struct {
	Table     string
	ID        string
	Name      string
	Qty       string
	Avg       string
	Price     string
	Net       string
	Day       string
	CreatedAt string
}

// TradingHolding is the schema definition for trading.holding
var TradingHolding = TradingHoldingTable{
	Table:     "trading.holding",
	ID:        "id",
	Name:      "name",
	Qty:       "qty",
	Avg:       "avg",
	Price:     "price",
	Net:       "net",
	Day:       "day",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t TradingHoldingTable) Columns() []string {
	return []string{t.ID, t.Name, t.Qty, t.Avg, t.Price, t.Net, t.Day, t.CreatedAt}
}
