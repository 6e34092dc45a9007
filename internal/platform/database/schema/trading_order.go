package schema

// TradingOrderTable represents the 'trading.trade_order' table
type TradingOrderTable struct {
	Table     string
	ID        string
	Name      string
	Qty       string
	Price     string
	Mode      string
	CreatedAt string
}

// TradingOrder is the schema definition for trading.trade_order
var TradingOrder = TradingOrderTable{
	Table:     "trading.trade_order",
	ID:        "id",
	Name:      "name",
	Qty:       "qty",
	Price:     "price",
	Mode:      "mode",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t TradingOrderTable) Columns() []string {
	return []string{t.ID, t.Name, t.Qty, t.Price, t.Mode, t.CreatedAt}
}
