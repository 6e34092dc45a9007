package schema

// TradingPositionTable represents the 'trading.position' table
type TradingPositionTable struct {
	Table     string
	ID        string
	Product   string
	Name      string
	Qty       string
	Avg       string
	Price     string
	Net       string
	Day       string
	IsLoss    string
	CreatedAt string
}

// TradingPosition is the schema definition for trading.position
var TradingPosition = TradingPositionTable{
	Table:     "trading.position",
	ID:        "id",
	Product:   "product",
	Name:      "name",
	Qty:       "qty",
	Avg:       "avg",
	Price:     "price",
	Net:       "net",
	Day:       "day",
	IsLoss:    "isloss",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t TradingPositionTable) Columns() []string {
	return []string{t.ID, t.Product, t.Name, t.Qty, t.Avg, t.Price, t.Net, t.Day, t.IsLoss, t.CreatedAt}
}
