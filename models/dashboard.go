package models

import "github.com/shopspring/decimal"

type DashboardTotals struct {
	Revenue       decimal.Decimal `json:"revenue"`
	OrderCount    int             `json:"order_count"`
	CustomerCount int             `json:"customer_count"`
	PendingOrders int             `json:"pending_orders"`
	OpenTickets   int             `json:"open_tickets"`
}

type MonthlySales struct {
	Month   string          `json:"month"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Dashboard struct {
	Totals       DashboardTotals `json:"totals"`
	LowStock     []Product       `json:"low_stock"`
	RecentOrders []Order         `json:"recent_orders"`
	MonthlySales []MonthlySales  `json:"monthly_sales"`
}
